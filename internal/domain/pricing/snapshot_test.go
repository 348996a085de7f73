//go:build unit

package pricing_test

import (
	"testing"

	"adspace-booking/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewSnapshotter(t *testing.T) {
	cases := []struct {
		name  string
		pct   string
		errIs error
	}{
		{name: "zero commission", pct: "0"},
		{name: "typical commission", pct: "15"},
		{name: "full commission", pct: "100"},
		{name: "negative commission", pct: "-1", errIs: pricing.ErrCommissionRange},
		{name: "above hundred", pct: "100.01", errIs: pricing.ErrCommissionRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.NewSnapshotter(dec(tc.pct))
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTake(t *testing.T) {
	snapshotter, err := pricing.NewSnapshotter(dec("15"))
	require.NoError(t, err)

	t.Run("computes full breakdown", func(t *testing.T) {
		snap, err := snapshotter.Take(dec("1200.00"), 3)
		require.NoError(t, err)

		assert.True(t, snap.MonthlyRate.Equal(dec("1200.00")))
		assert.True(t, snap.CommissionPct.Equal(dec("15")))
		assert.True(t, snap.Subtotal.Equal(dec("3600.00")))
		assert.True(t, snap.Commission.Equal(dec("540.00")))
		assert.True(t, snap.Total.Equal(dec("4140.00")))
	})

	t.Run("rounds half to even", func(t *testing.T) {
		// Half-even at 2dp: 33.335 -> 33.34 (3 is odd, round up),
		// 33.345 -> 33.34 (4 is even, round down).
		snap, err := snapshotter.Take(dec("33.335"), 1)
		require.NoError(t, err)
		assert.True(t, snap.Subtotal.Equal(dec("33.34")), "got %s", snap.Subtotal)

		snap, err = snapshotter.Take(dec("33.345"), 1)
		require.NoError(t, err)
		assert.True(t, snap.Subtotal.Equal(dec("33.34")), "got %s", snap.Subtotal)
	})

	t.Run("no float drift on repeating commission", func(t *testing.T) {
		half, err := pricing.NewSnapshotter(dec("12.5"))
		require.NoError(t, err)

		snap, err := half.Take(dec("99.99"), 7)
		require.NoError(t, err)
		// 99.99*7 = 699.93; 12.5% = 87.49125 -> 87.49
		assert.True(t, snap.Subtotal.Equal(dec("699.93")))
		assert.True(t, snap.Commission.Equal(dec("87.49")))
		assert.True(t, snap.Total.Equal(dec("787.42")))
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		_, err := snapshotter.Take(dec("-1"), 1)
		assert.ErrorIs(t, err, pricing.ErrNegativeRate)
	})

	t.Run("months below one rejected", func(t *testing.T) {
		_, err := snapshotter.Take(dec("100"), 0)
		assert.ErrorIs(t, err, pricing.ErrMonthsOutOfRange)
	})
}

func TestSnapshotEqual(t *testing.T) {
	snapshotter, err := pricing.NewSnapshotter(dec("15"))
	require.NoError(t, err)

	a, err := snapshotter.Take(dec("100"), 2)
	require.NoError(t, err)
	b, err := snapshotter.Take(dec("100.00"), 2)
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "representation differences must not matter")

	c, err := snapshotter.Take(dec("100.01"), 2)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}
