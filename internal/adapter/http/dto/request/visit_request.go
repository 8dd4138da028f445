package request

import (
	"time"

	"reforma_xpto/internal/usecase"
)

type ScheduleVisitRequest struct {
	LeadID       string    `json:"lead_id" binding:"required"`
	ScheduledAt  time.Time `json:"scheduled_at" binding:"required"`
	TechnicianID string    `json:"technician_id" binding:"required"`
}

func (r ScheduleVisitRequest) ToInput() usecase.ScheduleVisitInput {
	return usecase.ScheduleVisitInput{LeadID: r.LeadID, ScheduledAt: r.ScheduledAt, TechnicianID: r.TechnicianID}
}

type CompleteVisitRequest struct {
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
	Photos          []string `json:"photos"`
	Videos          []string `json:"videos"`
}

func (r CompleteVisitRequest) ToInput() usecase.CompleteVisitInput {
	return usecase.CompleteVisitInput{
		Findings:        r.Findings,
		Recommendations: r.Recommendations,
		Photos:          r.Photos,
		Videos:          r.Videos,
	}
}
