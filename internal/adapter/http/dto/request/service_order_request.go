package request

import (
	"time"

	"reforma_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateServiceOrderRequest struct {
	ClientID     string          `json:"client_id" binding:"required"`
	LeadID       string          `json:"lead_id"`
	TechnicianID string          `json:"technician_id"`
	Value        decimal.Decimal `json:"value"`
}

func (r CreateServiceOrderRequest) ToInput() usecase.CreateServiceOrderInput {
	return usecase.CreateServiceOrderInput{
		ClientID:     r.ClientID,
		LeadID:       r.LeadID,
		TechnicianID: r.TechnicianID,
		Value:        r.Value,
	}
}

type IssueServiceOrderRequest struct {
	BudgetID     string `json:"budget_id" binding:"required"`
	TechnicianID string `json:"technician_id"`
}

type ScheduleServiceOrderRequest struct {
	ScheduledAt  time.Time `json:"scheduled_at" binding:"required"`
	TechnicianID string    `json:"technician_id"`
}

type FinishServiceOrderRequest struct {
	Notes  string   `json:"notes"`
	Photos []string `json:"photos"`
	Videos []string `json:"videos"`
}

func (r FinishServiceOrderRequest) ToInput() usecase.FinishServiceOrderInput {
	return usecase.FinishServiceOrderInput{Notes: r.Notes, Photos: r.Photos, Videos: r.Videos}
}

type SetServiceOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
