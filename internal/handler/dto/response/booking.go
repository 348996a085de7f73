package response

import (
	"time"

	"adspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	Number          string    `json:"number"`
	SupportID       uuid.UUID `json:"supportId"`
	SupportCode     string    `json:"supportCode"`
	SupportName     string    `json:"supportName"`
	RequesterID     uuid.UUID `json:"requesterId"`
	SourceRequestID uuid.UUID `json:"sourceRequestId"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	MonthlyRate     string    `json:"monthlyRate"`
	CommissionPct   string    `json:"commissionPct"`
	Subtotal        string    `json:"subtotal"`
	Commission      string    `json:"commission"`
	Total           string    `json:"total"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		Number:          rm.Number,
		SupportID:       rm.SupportID,
		SupportCode:     rm.SupportCode,
		SupportName:     rm.SupportName,
		RequesterID:     rm.RequesterID,
		SourceRequestID: rm.SourceRequestID,
		StartDate:       rm.StartDate.Format(time.DateOnly),
		EndDate:         rm.EndDate.Format(time.DateOnly),
		MonthlyRate:     rm.MonthlyRate.StringFixed(2),
		CommissionPct:   rm.CommissionPct.String(),
		Subtotal:        rm.Subtotal.StringFixed(2),
		Commission:      rm.Commission.StringFixed(2),
		Total:           rm.Total.StringFixed(2),
		Status:          rm.Status,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromBookingView(rm)
	}
	return out
}
