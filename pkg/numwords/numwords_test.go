package numwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{5, "Five"},
		{10, "Ten"},
		{15, "Fifteen"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{101, "One Hundred One"},
		{115, "One Hundred Fifteen"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1500, "One Thousand Five Hundred"},
		{50000, "Fifty Thousand"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{1500000, "Fifteen Lakh"},
		{2550000, "Twenty Five Lakh Fifty Thousand"},
		{9999999, "Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{10000000, "One Crore"},
		{100000000, "Ten Crore"},
		{123456789, "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred Eighty Nine"},
		{999999999, "Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
	}

	for _, tc := range cases {
		got, err := Words(tc.n)
		require.NoError(t, err, "Words(%d)", tc.n)
		assert.Equal(t, tc.want, got, "Words(%d)", tc.n)
	}
}

func TestWordsOutOfRange(t *testing.T) {
	_, err := Words(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Words(1_000_000_000)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
