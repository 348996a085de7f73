// Package pricing freezes the monetary terms of a booking request at the
// moment it is created. Snapshots are plain values: once computed they are
// stored on the request and copied verbatim to the booking, so later rate
// changes never reach an existing agreement.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeRate     = errors.New("monthly rate cannot be negative")
	ErrCommissionRange  = errors.New("commission must be between 0 and 100 percent")
	ErrMonthsOutOfRange = errors.New("months must be at least 1")
)

// Snapshot is the frozen price of one request/booking. All amounts are
// fixed-point decimals rounded to the currency minor unit.
type Snapshot struct {
	MonthlyRate   decimal.Decimal
	CommissionPct decimal.Decimal
	Subtotal      decimal.Decimal
	Commission    decimal.Decimal
	Total         decimal.Decimal
}

type Snapshotter struct {
	commissionPct decimal.Decimal
}

func NewSnapshotter(commissionPct decimal.Decimal) (*Snapshotter, error) {
	if commissionPct.IsNegative() || commissionPct.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrCommissionRange
	}
	return &Snapshotter{commissionPct: commissionPct}, nil
}

var oneHundred = decimal.NewFromInt(100)

// Take reads the support's current monthly rate and freezes the full
// price breakdown for the given duration. Rounding is half-even at two
// decimal places (RoundBank).
func (s *Snapshotter) Take(monthlyRate decimal.Decimal, months int) (Snapshot, error) {
	if monthlyRate.IsNegative() {
		return Snapshot{}, ErrNegativeRate
	}
	if months < 1 {
		return Snapshot{}, ErrMonthsOutOfRange
	}

	subtotal := monthlyRate.Mul(decimal.NewFromInt(int64(months))).RoundBank(2)
	commission := subtotal.Mul(s.commissionPct).Div(oneHundred).RoundBank(2)
	total := subtotal.Add(commission)

	return Snapshot{
		MonthlyRate:   monthlyRate.RoundBank(2),
		CommissionPct: s.commissionPct,
		Subtotal:      subtotal,
		Commission:    commission,
		Total:         total,
	}, nil
}

// Equal compares two snapshots by numeric value, not representation.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.MonthlyRate.Equal(other.MonthlyRate) &&
		s.CommissionPct.Equal(other.CommissionPct) &&
		s.Subtotal.Equal(other.Subtotal) &&
		s.Commission.Equal(other.Commission) &&
		s.Total.Equal(other.Total)
}
