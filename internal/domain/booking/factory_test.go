//go:build unit

package booking_test

import (
	"regexp"
	"testing"
	"time"

	"adspace-booking/internal/domain/booking"
	"adspace-booking/internal/domain/daterange"
	"adspace-booking/internal/domain/pricing"
	"adspace-booking/internal/domain/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decidableRequest(t *testing.T) *request.Request {
	t.Helper()
	period, err := daterange.New(
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	snapshotter, err := pricing.NewSnapshotter(decimal.RequireFromString("15"))
	require.NoError(t, err)
	price, err := snapshotter.Take(decimal.RequireFromString("750"), 2)
	require.NoError(t, err)

	return request.New(uuid.New(), uuid.New(), period, 2, price, "")
}

func TestMaterialize(t *testing.T) {
	factory := booking.NewFactory()

	t.Run("copies the request terms verbatim", func(t *testing.T) {
		req := decidableRequest(t)
		bk, err := factory.Materialize(req)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, bk.ID())
		assert.Equal(t, booking.StatusReserved, bk.Status())
		assert.Equal(t, req.SupportID(), bk.SupportID())
		assert.Equal(t, req.RequesterID(), bk.RequesterID())
		assert.Equal(t, req.ID(), bk.SourceRequestID())
		assert.Equal(t, req.Period(), bk.Period())
		assert.True(t, req.Price().Equal(bk.Price()), "price snapshot is copied, never recomputed")
	})

	t.Run("booking number format", func(t *testing.T) {
		req := decidableRequest(t)
		bk, err := factory.Materialize(req)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^BK-[0-9A-F]{8}$`), bk.Number())
	})

	t.Run("viewed request can be materialized", func(t *testing.T) {
		req := decidableRequest(t)
		require.NoError(t, req.MarkViewed())
		_, err := factory.Materialize(req)
		assert.NoError(t, err)
	})

	t.Run("decided request is refused", func(t *testing.T) {
		req := decidableRequest(t)
		require.NoError(t, req.Reject())
		_, err := factory.Materialize(req)
		assert.ErrorIs(t, err, booking.ErrRequestDecided)
	})
}
