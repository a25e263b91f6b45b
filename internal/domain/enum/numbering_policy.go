package enum

// NumberingPolicy selects how new receipt numbers are produced.
type NumberingPolicy string

const (
	// NumberingSequence stamps "RCT-{year}-{seq}" from a per-user counter.
	NumberingSequence NumberingPolicy = "sequence"
	// NumberingTimestamp stamps "RCT-{YYMM}-{HHmm}" from the wall clock.
	// Not collision free within a minute.
	NumberingTimestamp NumberingPolicy = "timestamp"
)

// Valid reports whether p is a known policy.
func (p NumberingPolicy) Valid() bool {
	return p == NumberingSequence || p == NumberingTimestamp
}
