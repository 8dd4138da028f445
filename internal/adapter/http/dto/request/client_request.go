package request

import (
	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase"
)

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Kind    string `json:"kind"`
}

func (r CreateClientRequest) ToInput() usecase.CreateClientInput {
	return usecase.CreateClientInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		Kind:    entities.ClientKind(r.Kind),
	}
}
