package repository

import (
	"adspace-booking/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// priceRow is the snapshot column block shared by requests and bookings.
// Numerics travel as strings so the fixed-point values never pass
// through binary floats.
type priceRow struct {
	monthlyRate   string
	commissionPct string
	subtotal      string
	commission    string
	total         string
}

func (p priceRow) toSnapshot() (pricing.Snapshot, error) {
	var (
		snap pricing.Snapshot
		err  error
	)
	if snap.MonthlyRate, err = decimal.NewFromString(p.monthlyRate); err != nil {
		return pricing.Snapshot{}, err
	}
	if snap.CommissionPct, err = decimal.NewFromString(p.commissionPct); err != nil {
		return pricing.Snapshot{}, err
	}
	if snap.Subtotal, err = decimal.NewFromString(p.subtotal); err != nil {
		return pricing.Snapshot{}, err
	}
	if snap.Commission, err = decimal.NewFromString(p.commission); err != nil {
		return pricing.Snapshot{}, err
	}
	if snap.Total, err = decimal.NewFromString(p.total); err != nil {
		return pricing.Snapshot{}, err
	}
	return snap, nil
}

func priceArgs(s pricing.Snapshot) []any {
	return []any{
		s.MonthlyRate.String(),
		s.CommissionPct.String(),
		s.Subtotal.String(),
		s.Commission.String(),
		s.Total.String(),
	}
}
