package response

import (
	"time"

	"adspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SupportResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	MonthlyRate string    `json:"monthlyRate"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromSupportView(rm *queries.SupportView) *SupportResponse {
	return &SupportResponse{
		ID:          rm.ID,
		Code:        rm.Code,
		Name:        rm.Name,
		MonthlyRate: rm.MonthlyRate.StringFixed(2),
		Active:      rm.Active,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromSupportViews(rms []*queries.SupportView) []*SupportResponse {
	out := make([]*SupportResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromSupportView(rm)
	}
	return out
}
