package booking

import (
	"errors"
	"strings"

	"adspace-booking/internal/domain/request"

	"github.com/google/uuid"
)

var ErrRequestDecided = errors.New("booking can only be materialized from an undecided request")

// Factory materializes a confirmed booking from an accepted request. It is
// a pure construction step: the overlap check has already cleared the range
// by the time the factory runs, and the price snapshot is copied verbatim.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// Materialize builds the reserved booking for a request the owner is
// accepting. The request entity itself records the acceptance (with the
// new booking id) in the same transaction.
func (f *Factory) Materialize(req *request.Request) (*Booking, error) {
	if !req.Status().Decidable() {
		return nil, ErrRequestDecided
	}

	id := uuid.New()
	return &Booking{
		id:          id,
		number:      numberFor(id),
		supportID:   req.SupportID(),
		requesterID: req.RequesterID(),
		sourceReq:   req.ID(),
		period:      req.Period(),
		price:       req.Price(),
		status:      StatusReserved,
	}, nil
}

// numberFor derives the human-readable booking number from the id prefix.
func numberFor(id uuid.UUID) string {
	return "BK-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}
