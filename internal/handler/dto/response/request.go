package response

import (
	"time"

	"adspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestResponse struct {
	ID                uuid.UUID  `json:"id"`
	SupportID         uuid.UUID  `json:"supportId"`
	SupportCode       string     `json:"supportCode"`
	SupportName       string     `json:"supportName"`
	RequesterID       uuid.UUID  `json:"requesterId"`
	StartDate         string     `json:"startDate"`
	EndDate           string     `json:"endDate"`
	Months            int        `json:"months"`
	MonthlyRate       string     `json:"monthlyRate"`
	CommissionPct     string     `json:"commissionPct"`
	Subtotal          string     `json:"subtotal"`
	Commission        string     `json:"commission"`
	Total             string     `json:"total"`
	Status            string     `json:"status"`
	Message           *string    `json:"message,omitempty"`
	AcceptedBookingID *uuid.UUID `json:"acceptedBookingId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type RequestListResponse struct {
	ID          uuid.UUID `json:"id"`
	SupportID   uuid.UUID `json:"supportId"`
	SupportCode string    `json:"supportCode"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Total       string    `json:"total"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromRequestView(rm *queries.RequestView) *RequestResponse {
	return &RequestResponse{
		ID:                rm.ID,
		SupportID:         rm.SupportID,
		SupportCode:       rm.SupportCode,
		SupportName:       rm.SupportName,
		RequesterID:       rm.RequesterID,
		StartDate:         rm.StartDate.Format(time.DateOnly),
		EndDate:           rm.EndDate.Format(time.DateOnly),
		Months:            rm.Months,
		MonthlyRate:       rm.MonthlyRate.StringFixed(2),
		CommissionPct:     rm.CommissionPct.String(),
		Subtotal:          rm.Subtotal.StringFixed(2),
		Commission:        rm.Commission.StringFixed(2),
		Total:             rm.Total.StringFixed(2),
		Status:            rm.Status,
		Message:           rm.Message,
		AcceptedBookingID: rm.AcceptedBookingID,
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}

func FromRequestListItem(rm *queries.RequestListItem) *RequestListResponse {
	return &RequestListResponse{
		ID:          rm.ID,
		SupportID:   rm.SupportID,
		SupportCode: rm.SupportCode,
		StartDate:   rm.StartDate.Format(time.DateOnly),
		EndDate:     rm.EndDate.Format(time.DateOnly),
		Total:       rm.Total.StringFixed(2),
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
	}
}
