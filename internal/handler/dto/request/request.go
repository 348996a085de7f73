package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Dates cross the wire as calendar days, not instants.
const dateLayout = time.DateOnly

type CreateRequestRequest struct {
	SupportID uuid.UUID `json:"support_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	Months    int       `json:"months" binding:"required,min=1"`
	Message   *string   `json:"message,omitempty"`
}

func (r CreateRequestRequest) ParseStartDate() (time.Time, error) {
	return time.Parse(dateLayout, r.StartDate)
}

func (r CreateRequestRequest) GetMessage() string {
	if r.Message == nil {
		return ""
	}
	return strings.TrimSpace(*r.Message)
}

type DecideRequestRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept reject"`
}
