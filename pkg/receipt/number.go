package receipt

import (
	"fmt"
	"time"
)

// SequenceNumber formats a receipt number from an explicit, caller-owned
// sequence counter: "RCT-2025-0042". Numbers for the same year sort
// lexicographically in sequence order.
func SequenceNumber(year, seq int) string {
	return fmt.Sprintf("RCT-%d-%04d", year, seq)
}

// TimestampNumber derives a receipt number from the wall clock:
// "RCT-{YY}{MM}-{HH}{mm}". Two generations within the same minute collide;
// this weak guarantee is preserved from the original numbering scheme.
// Callers that need uniqueness should use the sequence policy.
func TimestampNumber(now time.Time) string {
	return fmt.Sprintf("RCT-%02d%02d-%02d%02d",
		now.Year()%100, int(now.Month()), now.Hour(), now.Minute())
}
