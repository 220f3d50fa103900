package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gelato-api/internal/domain/entity"
)

func TestTimestamp_RoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 18, 8, 5, 3, 0, time.FixedZone("BOT", -4*3600)),
	}
	for _, in := range instants {
		s := entity.FormatTimestamp(in)
		out, err := entity.ParseTimestamp(s)
		require.NoError(t, err)
		assert.True(t, in.Equal(out), "%s -> %s", in, out)
	}
}

func TestFormatTimestamp_Layout(t *testing.T) {
	ts := time.Date(2023, 7, 4, 9, 8, 7, 999, time.UTC)
	assert.Equal(t, "04/07/2023 09:08:07", entity.FormatTimestamp(ts))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "new@test.com", entity.NormalizeEmail("  New@Test.COM "))
}

func TestComplement_HasCategory(t *testing.T) {
	c := entity.Complement{CategoryIDs: []int64{2, 5}}
	assert.True(t, c.HasCategory(5))
	assert.False(t, c.HasCategory(1))
}
