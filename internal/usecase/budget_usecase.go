package usecase

import (
	"context"
	"strings"

	"reforma_xpto/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetItemInput struct {
	Description string          `validate:"required"`
	Quantity    decimal.Decimal `validate:"gt=0"`
	UnitValue   decimal.Decimal `validate:"gte=0"`
	ServiceType string          `validate:"omitempty,max=64"`
}

type CreateBudgetInput struct {
	LeadID string                `validate:"required"`
	Items  []BudgetItemInput     `validate:"dive"`
	Status entities.BudgetStatus `validate:"omitempty,oneof=draft sent"`
	Notes  string
}

type DeriveBudgetInput struct {
	Items []BudgetItemInput `validate:"dive"`
	Notes string
}

type UpdateBudgetItemsInput struct {
	Items []BudgetItemInput `validate:"dive"`
	Notes *string
}

type ApproveBudgetInput struct {
	TechnicianID string
}

// IBudgetUseCase manages quotations and their derivation into service orders.
type IBudgetUseCase interface {
	CreateBudget(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	DeriveFromVisit(ctx context.Context, visitID string, in DeriveBudgetInput) (entities.Budget, error)
	UpdateItems(ctx context.Context, id string, in UpdateBudgetItemsInput) (entities.Budget, error)
	SendBudget(ctx context.Context, id string) (entities.Budget, error)
	ApproveBudget(ctx context.Context, id string, in ApproveBudgetInput) (entities.Budget, entities.ServiceOrder, error)
	RejectBudget(ctx context.Context, id string) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	core *Core
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(core *Core) *BudgetUseCase {
	return &BudgetUseCase{core: core}
}

// CreateBudget creates a budget that did not come from a visit. It draws a fresh ORC number.
func (u *BudgetUseCase) CreateBudget(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	in.LeadID = strings.TrimSpace(in.LeadID)
	in.Items = trimItems(in.Items)
	if err := u.core.validateInput("budget", in); err != nil {
		return entities.Budget{}, err
	}
	if in.Status == "" {
		in.Status = entities.BudgetStatusDraft
	}

	var created entities.Budget
	err := u.core.run(ctx, "CreateBudget", func(uw *unitOfWork) error {
		lead, err := u.core.store.Leads.GetByID(ctx, in.LeadID)
		if err != nil {
			return err
		}
		if lead.ID == "" {
			return notFound("lead", in.LeadID)
		}

		number, err := u.core.registry.Number(ctx, entities.DocumentKindBudget)
		if err != nil {
			return err
		}
		b := u.newBudget(number, lead.ID, in.Items, in.Notes)
		b.Status = in.Status
		if b.Status == entities.BudgetStatusSent {
			sentAt := b.CreatedAt
			b.SentAt = &sentAt
		}
		if created, err = u.create(ctx, uw, b); err != nil {
			return err
		}

		if err := u.core.advanceLead(ctx, uw, lead.ID, entities.LeadStatusBudgeting); err != nil {
			return err
		}
		if created.Status == entities.BudgetStatusSent {
			return u.core.advanceLead(ctx, uw, lead.ID, entities.LeadStatusSent)
		}
		return nil
	})
	return created, err
}

// DeriveFromVisit creates the draft budget of a completed visit that has media. The budget
// inherits the visit number digits: VIS-0007-25 becomes ORC-0007-25.
func (u *BudgetUseCase) DeriveFromVisit(ctx context.Context, visitID string, in DeriveBudgetInput) (entities.Budget, error) {
	visitID = strings.TrimSpace(visitID)
	in.Items = trimItems(in.Items)
	if err := u.core.validateInput("budget", in); err != nil {
		return entities.Budget{}, err
	}

	var created entities.Budget
	err := u.core.run(ctx, "DeriveBudgetFromVisit", func(uw *unitOfWork) error {
		visit, err := loadVisit(ctx, u.core, visitID)
		if err != nil {
			return err
		}
		if visit.Status != entities.VisitStatusCompleted {
			return preconditionFailed("visit", visitID, "budget requires a completed visit, got %s", visit.Status)
		}
		if !visit.HasMedia() {
			return preconditionFailed("visit", visitID, "budget requires at least one photo or video")
		}
		if visit.BudgetID != "" {
			return preconditionFailed("visit", visitID, "visit already derived budget %s", visit.BudgetID)
		}
		existing, err := u.core.store.Budgets.GetByVisitID(ctx, visitID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			return preconditionFailed("visit", visitID, "visit already derived budget %s", existing.ID)
		}

		number, err := entities.InheritNumber(visit.VisitNumber, entities.DocumentKindVisit, entities.DocumentKindBudget)
		if err != nil {
			return validationFailed("visit", err.Error(), map[string]string{"visit_number": "prefix"})
		}
		b := u.newBudget(number, visit.LeadID, in.Items, in.Notes)
		b.VisitID = visit.ID
		b.Status = entities.BudgetStatusDraft
		if created, err = u.create(ctx, uw, b); err != nil {
			return err
		}

		linked := visit
		linked.BudgetID = created.ID
		linked.UpdatedAt = u.core.timestamp()
		if _, err := updateVisit(ctx, u.core, uw, visit, linked); err != nil {
			return err
		}

		return u.core.advanceLead(ctx, uw, visit.LeadID, entities.LeadStatusBudgeting)
	})
	return created, err
}

// UpdateItems replaces the item list while the budget is still open for negotiation.
func (u *BudgetUseCase) UpdateItems(ctx context.Context, id string, in UpdateBudgetItemsInput) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	in.Items = trimItems(in.Items)
	if err := u.core.validateInput("budget", in); err != nil {
		return entities.Budget{}, err
	}

	var budget entities.Budget
	err := u.core.run(ctx, "UpdateBudgetItems", func(uw *unitOfWork) error {
		prev, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		if prev.Status != entities.BudgetStatusDraft && prev.Status != entities.BudgetStatusSent {
			return preconditionFailed("budget", id, "items are locked once the budget is %s", prev.Status)
		}

		budget = prev
		budget.Items = toItems(in.Items)
		if in.Notes != nil {
			budget.Notes = *in.Notes
		}
		budget.UpdatedAt = u.core.timestamp()
		budget, err = u.update(ctx, uw, prev, budget)
		return err
	})
	return budget, err
}

func (u *BudgetUseCase) SendBudget(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)

	var budget entities.Budget
	err := u.core.run(ctx, "SendBudget", func(uw *unitOfWork) error {
		var err error
		budget, err = u.transition(ctx, uw, id, entities.BudgetStatusSent)
		if err != nil {
			return err
		}
		return u.core.advanceLead(ctx, uw, budget.LeadID, entities.LeadStatusSent)
	})
	return budget, err
}

// ApproveBudget approves a sent budget and issues its service order in the same operation.
// If the order cannot be issued the budget stays sent.
func (u *BudgetUseCase) ApproveBudget(ctx context.Context, id string, in ApproveBudgetInput) (entities.Budget, entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)

	var (
		budget entities.Budget
		order  entities.ServiceOrder
	)
	err := u.core.run(ctx, "ApproveBudget", func(uw *unitOfWork) error {
		var err error
		budget, err = u.transition(ctx, uw, id, entities.BudgetStatusApproved)
		if err != nil {
			return err
		}
		budget, order, err = u.core.issueServiceOrder(ctx, uw, budget, strings.TrimSpace(in.TechnicianID))
		if err != nil {
			return err
		}
		return u.core.advanceLead(ctx, uw, budget.LeadID, entities.LeadStatusApproved)
	})
	if err != nil {
		return entities.Budget{}, entities.ServiceOrder{}, err
	}
	return budget, order, nil
}

// RejectBudget records the customer's refusal. It is only ever operator input.
func (u *BudgetUseCase) RejectBudget(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)

	var budget entities.Budget
	err := u.core.run(ctx, "RejectBudget", func(uw *unitOfWork) error {
		var err error
		budget, err = u.transition(ctx, uw, id, entities.BudgetStatusRejected)
		return err
	})
	return budget, err
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	var b entities.Budget
	err := u.core.view(func() error {
		var err error
		b, err = u.load(ctx, id)
		return err
	})
	return b, err
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	var out []entities.Budget
	err := u.core.view(func() error {
		var err error
		out, err = u.core.store.Budgets.List(ctx)
		return err
	})
	return out, err
}

func (u *BudgetUseCase) transition(ctx context.Context, uw *unitOfWork, id string, to entities.BudgetStatus) (entities.Budget, error) {
	prev, err := u.load(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if !prev.Status.CanTransitionTo(to) {
		return entities.Budget{}, preconditionFailed("budget", id, "cannot move from %s to %s", prev.Status, to)
	}

	now := u.core.timestamp()
	next := prev
	next.Status = to
	next.UpdatedAt = now
	switch to {
	case entities.BudgetStatusSent:
		next.SentAt = &now
	case entities.BudgetStatusApproved:
		next.ApprovedAt = &now
	case entities.BudgetStatusRejected:
		next.RejectedAt = &now
	}
	updated, err := u.update(ctx, uw, prev, next)
	if err != nil {
		return entities.Budget{}, err
	}
	uw.emit(u.core.event(entities.DocumentEventTransitioned, "budget", updated.ID, updated.BudgetNumber, string(to)))
	return updated, nil
}

func (u *BudgetUseCase) newBudget(number, leadID string, items []BudgetItemInput, notes string) entities.Budget {
	now := u.core.timestamp()
	return entities.Budget{
		ID:           uuid.NewString(),
		BudgetNumber: number,
		LeadID:       leadID,
		Items:        toItems(items),
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (u *BudgetUseCase) create(ctx context.Context, uw *unitOfWork, b entities.Budget) (entities.Budget, error) {
	created, err := u.core.store.Budgets.Create(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	uw.onRollback(func(ctx context.Context) error {
		return u.core.store.Budgets.Delete(ctx, created.ID)
	})
	uw.emit(u.core.event(entities.DocumentEventCreated, "budget", created.ID, created.BudgetNumber, string(created.Status)))
	return created, nil
}

func (u *BudgetUseCase) load(ctx context.Context, id string) (entities.Budget, error) {
	return loadBudget(ctx, u.core, id)
}

func (u *BudgetUseCase) update(ctx context.Context, uw *unitOfWork, prev, next entities.Budget) (entities.Budget, error) {
	return updateBudget(ctx, u.core, uw, prev, next)
}

func loadBudget(ctx context.Context, c *Core, id string) (entities.Budget, error) {
	b, err := c.store.Budgets.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, notFound("budget", id)
	}
	return b, nil
}

func updateBudget(ctx context.Context, c *Core, uw *unitOfWork, prev, next entities.Budget) (entities.Budget, error) {
	updated, err := c.store.Budgets.Update(ctx, next)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, notFound("budget", next.ID)
	}
	uw.onRollback(func(ctx context.Context) error {
		_, err := c.store.Budgets.Update(ctx, prev)
		return err
	})
	return updated, nil
}

// trimItems normalises item text before validation so a blank description fails "required".
// The caller's slice is left untouched.
func trimItems(in []BudgetItemInput) []BudgetItemInput {
	if in == nil {
		return nil
	}
	out := make([]BudgetItemInput, len(in))
	for i, it := range in {
		it.Description = strings.TrimSpace(it.Description)
		it.ServiceType = strings.TrimSpace(it.ServiceType)
		out[i] = it
	}
	return out
}

func toItems(in []BudgetItemInput) []entities.BudgetItem {
	items := make([]entities.BudgetItem, 0, len(in))
	for _, it := range in {
		items = append(items, entities.BudgetItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitValue:   it.UnitValue,
			ServiceType: it.ServiceType,
		})
	}
	return items
}
