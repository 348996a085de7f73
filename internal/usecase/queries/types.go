package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type RequestView struct {
	ID                uuid.UUID       `json:"id"`
	SupportID         uuid.UUID       `json:"support_id"`
	SupportCode       string          `json:"support_code"`
	SupportName       string          `json:"support_name"`
	RequesterID       uuid.UUID       `json:"requester_id"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	Months            int             `json:"months"`
	MonthlyRate       decimal.Decimal `json:"monthly_rate"`
	CommissionPct     decimal.Decimal `json:"commission_pct"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Commission        decimal.Decimal `json:"commission"`
	Total             decimal.Decimal `json:"total"`
	Status            string          `json:"status"`
	Message           *string         `json:"message,omitempty"`
	AcceptedBookingID *uuid.UUID      `json:"accepted_booking_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type RequestListItem struct {
	ID          uuid.UUID       `json:"id"`
	SupportID   uuid.UUID       `json:"support_id"`
	SupportCode string          `json:"support_code"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type BookingView struct {
	ID              uuid.UUID       `json:"id"`
	Number          string          `json:"number"`
	SupportID       uuid.UUID       `json:"support_id"`
	SupportCode     string          `json:"support_code"`
	SupportName     string          `json:"support_name"`
	RequesterID     uuid.UUID       `json:"requester_id"`
	SourceRequestID uuid.UUID       `json:"source_request_id"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	MonthlyRate     decimal.Decimal `json:"monthly_rate"`
	CommissionPct   decimal.Decimal `json:"commission_pct"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Commission      decimal.Decimal `json:"commission"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type SupportView struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	MonthlyRate decimal.Decimal `json:"monthly_rate"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
