package usecase

import (
	"context"
	"sort"
	"strings"

	"reforma_xpto/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateLeadInput struct {
	ClientID        string              `validate:"required"`
	PropertyAddress string              `validate:"required"`
	Source          string              `validate:"omitempty,max=64"`
	EstimatedValue  decimal.Decimal     `validate:"gte=0"`
	ResponsibleID   string              `validate:"omitempty"`
	Notes           string              `validate:"omitempty"`
	Status          entities.LeadStatus `validate:"omitempty,oneof=received contacted scheduled visited budgeting sent negotiating approved"`
}

// ILeadUseCase manages sales pipeline opportunities.
type ILeadUseCase interface {
	CreateLead(ctx context.Context, in CreateLeadInput) (entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
}

type LeadUseCase struct {
	core *Core
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(core *Core) *LeadUseCase {
	return &LeadUseCase{core: core}
}

// CreateLead opens a lead for an existing client.
func (u *LeadUseCase) CreateLead(ctx context.Context, in CreateLeadInput) (entities.Lead, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.PropertyAddress = strings.TrimSpace(in.PropertyAddress)
	if err := u.core.validateInput("lead", in); err != nil {
		return entities.Lead{}, err
	}
	if in.Status == "" {
		in.Status = entities.LeadStatusReceived
	}

	var created entities.Lead
	err := u.core.run(ctx, "CreateLead", func(uw *unitOfWork) error {
		client, err := u.core.store.Clients.GetByID(ctx, in.ClientID)
		if err != nil {
			return err
		}
		if client.ID == "" {
			return notFound("client", in.ClientID)
		}

		now := u.core.timestamp()
		created, err = u.core.store.Leads.Create(ctx, entities.Lead{
			ID:              uuid.NewString(),
			ClientID:        client.ID,
			PropertyAddress: in.PropertyAddress,
			Source:          strings.TrimSpace(in.Source),
			EstimatedValue:  in.EstimatedValue,
			ResponsibleID:   strings.TrimSpace(in.ResponsibleID),
			Status:          in.Status,
			Notes:           in.Notes,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return err
		}
		uw.emit(u.core.event(entities.DocumentEventCreated, "lead", created.ID, "", string(created.Status)))
		return nil
	})
	return created, err
}

// UpdateStatus is the manual pipeline edit. Setting the current status again is a no-op.
func (u *LeadUseCase) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if !status.Valid() {
		return entities.Lead{}, validationFailed("lead", "unknown status", map[string]string{"status": "oneof"})
	}

	var lead entities.Lead
	err := u.core.run(ctx, "UpdateLeadStatus", func(uw *unitOfWork) error {
		var err error
		lead, err = u.core.store.Leads.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if lead.ID == "" {
			return notFound("lead", id)
		}
		if lead.Status == status {
			return nil
		}
		if !lead.Status.CanAdvanceTo(status) {
			return preconditionFailed("lead", id, "status cannot move from %s to %s", lead.Status, status)
		}
		lead.Status = status
		lead.UpdatedAt = u.core.timestamp()
		lead, err = u.core.store.Leads.Update(ctx, lead)
		if err != nil {
			return err
		}
		if lead.ID == "" {
			return notFound("lead", id)
		}
		uw.emit(u.core.event(entities.DocumentEventTransitioned, "lead", lead.ID, "", string(status)))
		return nil
	})
	return lead, err
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	var l entities.Lead
	err := u.core.view(func() error {
		var err error
		l, err = u.core.store.Leads.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if l.ID == "" {
			return notFound("lead", id)
		}
		return nil
	})
	return l, err
}

// List returns leads in insertion order.
func (u *LeadUseCase) List(ctx context.Context) ([]entities.Lead, error) {
	var out []entities.Lead
	err := u.core.view(func() error {
		var err error
		out, err = u.core.store.Leads.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	sortByInsertion(out)
	return out, nil
}

// sortByInsertion orders leads by creation time. Equal timestamps fall back to the id so
// stores that scan in arbitrary order still project the same board twice.
func sortByInsertion(leads []entities.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		if !leads[i].CreatedAt.Equal(leads[j].CreatedAt) {
			return leads[i].CreatedAt.Before(leads[j].CreatedAt)
		}
		return leads[i].ID < leads[j].ID
	})
}
