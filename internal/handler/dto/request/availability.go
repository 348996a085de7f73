package request

import (
	"time"

	"adspace-booking/internal/usecase/queries"
)

type AvailabilityCandidate struct {
	SupportCode string `json:"support_code"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type CheckAvailabilityRequest struct {
	Candidates []AvailabilityCandidate `json:"candidates" binding:"required"`
}

// ToQuery converts the wire candidates to usecase candidates. Unparseable
// dates yield zero times, which the validator treats as shape-invalid and
// skips.
func (r CheckAvailabilityRequest) ToQuery() []queries.Candidate {
	out := make([]queries.Candidate, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		start, _ := time.Parse(dateLayout, c.StartDate)
		end, _ := time.Parse(dateLayout, c.EndDate)
		out = append(out, queries.Candidate{
			SupportCode: c.SupportCode,
			StartDate:   start,
			EndDate:     end,
		})
	}
	return out
}
