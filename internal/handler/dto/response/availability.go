package response

import (
	"time"

	"adspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityConflict struct {
	SupportCode  string     `json:"supportCode"`
	Reason       string     `json:"reason"`
	StartDate    string     `json:"startDate"`
	EndDate      string     `json:"endDate"`
	BookingID    *uuid.UUID `json:"bookingId,omitempty"`
	BookingNum   *string    `json:"bookingNumber,omitempty"`
	BookingStart *string    `json:"bookingStart,omitempty"`
	BookingEnd   *string    `json:"bookingEnd,omitempty"`
}

type CheckAvailabilityResponse struct {
	Valid     bool                   `json:"valid"`
	Conflicts []AvailabilityConflict `json:"conflicts"`
}

func FromConflictItems(items []queries.ConflictItem) *CheckAvailabilityResponse {
	conflicts := make([]AvailabilityConflict, len(items))
	for i, item := range items {
		conflicts[i] = AvailabilityConflict{
			SupportCode: item.SupportCode,
			Reason:      item.Reason,
			StartDate:   item.StartDate.Format(time.DateOnly),
			EndDate:     item.EndDate.Format(time.DateOnly),
			BookingID:   item.BookingID,
			BookingNum:  item.BookingNum,
		}
		if item.BookingStart != nil {
			s := item.BookingStart.Format(time.DateOnly)
			conflicts[i].BookingStart = &s
		}
		if item.BookingEnd != nil {
			e := item.BookingEnd.Format(time.DateOnly)
			conflicts[i].BookingEnd = &e
		}
	}
	return &CheckAvailabilityResponse{
		Valid:     len(conflicts) == 0,
		Conflicts: conflicts,
	}
}
