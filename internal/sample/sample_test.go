package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/advent/internal/domain"
)

func TestForKnownDays(t *testing.T) {
	for day := 1; day <= 6; day++ {
		s, err := For(day)
		require.NoError(t, err, "day %d", day)
		assert.NotEmpty(t, s.Input)
		assert.Equal(t, day, s.Want.Day)
	}
}

func TestForUnknownDay(t *testing.T) {
	_, err := For(25)
	assert.ErrorIs(t, err, domain.ErrUnknownDay)
}

func TestCheck(t *testing.T) {
	s, err := For(4)
	require.NoError(t, err)
	assert.NoError(t, s.Check(domain.Answer{Part1: 4512, Part2: 1924}))

	err = s.Check(domain.Answer{Part1: 4512, Part2: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "part 2")
}
