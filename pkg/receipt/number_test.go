package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSequenceNumber(t *testing.T) {
	assert.Equal(t, "RCT-2025-0001", SequenceNumber(2025, 1))
	assert.Equal(t, "RCT-2025-0042", SequenceNumber(2025, 42))
	assert.Equal(t, "RCT-2026-12345", SequenceNumber(2026, 12345))
}

func TestSequenceNumberOrdering(t *testing.T) {
	// Within a year, numbers sort lexicographically in sequence order.
	prev := SequenceNumber(2025, 1)
	for seq := 2; seq <= 50; seq++ {
		cur := SequenceNumber(2025, seq)
		assert.Less(t, prev, cur)
		prev = cur
	}
}

func TestTimestampNumber(t *testing.T) {
	now := time.Date(2025, time.August, 9, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, "RCT-2508-1405", TimestampNumber(now))

	// Single digit components zero pad.
	now = time.Date(2030, time.January, 2, 3, 4, 0, 0, time.UTC)
	assert.Equal(t, "RCT-3001-0304", TimestampNumber(now))
}

func TestTimestampNumberCollidesWithinMinute(t *testing.T) {
	// Known weak guarantee: two generations in the same minute collide.
	base := time.Date(2025, time.August, 9, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, TimestampNumber(base), TimestampNumber(base.Add(30*time.Second)))
}
