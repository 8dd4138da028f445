package request

import (
	"strings"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateLeadRequest references an existing client by client_id or carries the client data
// inline, in which case the client is matched or created first.
type CreateLeadRequest struct {
	ClientID        string               `json:"client_id"`
	Client          *CreateClientRequest `json:"client"`
	PropertyAddress string               `json:"property_address" binding:"required"`
	Source          string               `json:"source"`
	EstimatedValue  decimal.Decimal      `json:"estimated_value"`
	ResponsibleID   string               `json:"responsible_id"`
	Notes           string               `json:"notes"`
	Status          string               `json:"status"`
}

func (r CreateLeadRequest) HasClientReference() bool {
	return strings.TrimSpace(r.ClientID) != "" || r.Client != nil
}

func (r CreateLeadRequest) ToInput(clientID string) usecase.CreateLeadInput {
	return usecase.CreateLeadInput{
		ClientID:        clientID,
		PropertyAddress: r.PropertyAddress,
		Source:          r.Source,
		EstimatedValue:  r.EstimatedValue,
		ResponsibleID:   r.ResponsibleID,
		Notes:           r.Notes,
		Status:          entities.LeadStatus(r.Status),
	}
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
