package usecase

import (
	"context"
	"strings"
	"time"

	"reforma_xpto/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateServiceOrderInput struct {
	ClientID     string          `validate:"required"`
	LeadID       string          `validate:"omitempty"`
	TechnicianID string          `validate:"omitempty"`
	Value        decimal.Decimal `validate:"gt=0"`
}

type IssueServiceOrderInput struct {
	TechnicianID string
}

type ScheduleServiceOrderInput struct {
	ScheduledAt  time.Time `validate:"required"`
	TechnicianID string
}

type FinishServiceOrderInput struct {
	Notes  string
	Photos []string
	Videos []string
}

// IServiceOrderUseCase drives execution of authorized work.
type IServiceOrderUseCase interface {
	CreateServiceOrder(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error)
	IssueFromBudget(ctx context.Context, budgetID string, in IssueServiceOrderInput) (entities.ServiceOrder, error)
	Schedule(ctx context.Context, id string, in ScheduleServiceOrderInput) (entities.ServiceOrder, error)
	Start(ctx context.Context, id string) (entities.ServiceOrder, error)
	Pause(ctx context.Context, id string) (entities.ServiceOrder, error)
	Finish(ctx context.Context, id string, in FinishServiceOrderInput) (entities.ServiceOrder, entities.FinancialEntry, error)
	SetStatus(ctx context.Context, id string, status entities.ServiceOrderStatus) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	core *Core
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(core *Core) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{core: core}
}

// CreateServiceOrder issues an order that has no source budget. It draws a fresh OS number.
func (u *ServiceOrderUseCase) CreateServiceOrder(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.LeadID = strings.TrimSpace(in.LeadID)
	if err := u.core.validateInput("service_order", in); err != nil {
		return entities.ServiceOrder{}, err
	}

	var created entities.ServiceOrder
	err := u.core.run(ctx, "CreateServiceOrder", func(uw *unitOfWork) error {
		client, err := u.core.store.Clients.GetByID(ctx, in.ClientID)
		if err != nil {
			return err
		}
		if client.ID == "" {
			return notFound("client", in.ClientID)
		}
		if in.LeadID != "" {
			lead, err := u.core.store.Leads.GetByID(ctx, in.LeadID)
			if err != nil {
				return err
			}
			if lead.ID == "" {
				return notFound("lead", in.LeadID)
			}
		}

		number, err := u.core.registry.Number(ctx, entities.DocumentKindServiceOrder)
		if err != nil {
			return err
		}
		created, err = u.core.createServiceOrder(ctx, uw, entities.ServiceOrder{
			ServiceOrderNumber: number,
			LeadID:             in.LeadID,
			ClientID:           client.ID,
			TechnicianID:       strings.TrimSpace(in.TechnicianID),
			Value:              in.Value,
		})
		return err
	})
	return created, err
}

// IssueFromBudget issues the order of an approved budget that has none yet.
func (u *ServiceOrderUseCase) IssueFromBudget(ctx context.Context, budgetID string, in IssueServiceOrderInput) (entities.ServiceOrder, error) {
	budgetID = strings.TrimSpace(budgetID)

	var order entities.ServiceOrder
	err := u.core.run(ctx, "IssueServiceOrder", func(uw *unitOfWork) error {
		budget, err := loadBudget(ctx, u.core, budgetID)
		if err != nil {
			return err
		}
		_, order, err = u.core.issueServiceOrder(ctx, uw, budget, strings.TrimSpace(in.TechnicianID))
		return err
	})
	return order, err
}

func (u *ServiceOrderUseCase) Schedule(ctx context.Context, id string, in ScheduleServiceOrderInput) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if err := u.core.validateInput("service_order", in); err != nil {
		return entities.ServiceOrder{}, err
	}

	var order entities.ServiceOrder
	err := u.core.run(ctx, "ScheduleServiceOrder", func(uw *unitOfWork) error {
		var err error
		order, err = u.transition(ctx, uw, id, entities.ServiceOrderStatusScheduled, func(o *entities.ServiceOrder) error {
			at := in.ScheduledAt.UTC()
			o.ScheduledAt = &at
			if t := strings.TrimSpace(in.TechnicianID); t != "" {
				o.TechnicianID = t
			}
			return nil
		})
		return err
	})
	return order, err
}

func (u *ServiceOrderUseCase) Start(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.simple(ctx, "StartServiceOrder", id, entities.ServiceOrderStatusScheduled, entities.ServiceOrderStatusInProgress)
}

// Pause sends running work back to scheduled.
func (u *ServiceOrderUseCase) Pause(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.simple(ctx, "PauseServiceOrder", id, entities.ServiceOrderStatusInProgress, entities.ServiceOrderStatusScheduled)
}

func (u *ServiceOrderUseCase) simple(ctx context.Context, name, id string, from, to entities.ServiceOrderStatus) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	var order entities.ServiceOrder
	err := u.core.run(ctx, name, func(uw *unitOfWork) error {
		var err error
		order, err = u.transition(ctx, uw, id, to, func(o *entities.ServiceOrder) error {
			if o.Status != from {
				return preconditionFailed("service_order", id, "expected %s, got %s", from, o.Status)
			}
			return nil
		})
		return err
	})
	return order, err
}

// Finish closes the work and creates its receivable. Either both are stored or neither is.
func (u *ServiceOrderUseCase) Finish(ctx context.Context, id string, in FinishServiceOrderInput) (entities.ServiceOrder, entities.FinancialEntry, error) {
	id = strings.TrimSpace(id)

	var (
		order entities.ServiceOrder
		entry entities.FinancialEntry
	)
	err := u.core.run(ctx, "FinishServiceOrder", func(uw *unitOfWork) error {
		entryID := uuid.NewString()
		var err error
		order, err = u.transition(ctx, uw, id, entities.ServiceOrderStatusFinished, func(o *entities.ServiceOrder) error {
			now := u.core.timestamp()
			o.CompletionDate = &now
			o.CompletionNotes = strings.TrimSpace(in.Notes)
			o.CompletionPhotos = nonNil(in.Photos)
			o.CompletionVideos = nonNil(in.Videos)
			o.FinancialEntryID = entryID
			return nil
		})
		if err != nil {
			return err
		}

		entry, err = u.core.createFinancialEntry(ctx, uw, entities.FinancialEntry{
			ID:            entryID,
			Description:   "Ordem de serviço " + order.ServiceOrderNumber,
			Value:         order.Value,
			Type:          entities.FinancialEntryTypeIncome,
			Status:        entities.FinancialEntryStatusPending,
			DueDate:       order.CompletionDate.AddDate(0, 0, entities.ReceivableDueDays),
			RelatedNumber: order.ServiceOrderNumber,
			CategoryID:    entities.ServiceRevenueCategoryID,
		})
		return err
	})
	if err != nil {
		return entities.ServiceOrder{}, entities.FinancialEntry{}, err
	}
	return order, entry, nil
}

// SetStatus applies an operator-driven status (waiting for material, resumed, billed, paid).
func (u *ServiceOrderUseCase) SetStatus(ctx context.Context, id string, status entities.ServiceOrderStatus) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if !status.Valid() {
		return entities.ServiceOrder{}, validationFailed("service_order", "unknown status", map[string]string{"status": "oneof"})
	}

	var order entities.ServiceOrder
	err := u.core.run(ctx, "SetServiceOrderStatus", func(uw *unitOfWork) error {
		var err error
		order, err = u.transition(ctx, uw, id, status, func(o *entities.ServiceOrder) error {
			if !o.Status.CanBeSetExternally(status) {
				return preconditionFailed("service_order", id, "%s cannot be set from %s", status, o.Status)
			}
			return nil
		})
		return err
	})
	return order, err
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	var o entities.ServiceOrder
	err := u.core.view(func() error {
		var err error
		o, err = u.load(ctx, id)
		return err
	})
	return o, err
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	var out []entities.ServiceOrder
	err := u.core.view(func() error {
		var err error
		out, err = u.core.store.Orders.List(ctx)
		return err
	})
	return out, err
}

// transition checks the state machine, lets mutate adjust the order and stores it.
func (u *ServiceOrderUseCase) transition(ctx context.Context, uw *unitOfWork, id string, to entities.ServiceOrderStatus, mutate func(o *entities.ServiceOrder) error) (entities.ServiceOrder, error) {
	prev, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	next := prev
	if err := mutate(&next); err != nil {
		return entities.ServiceOrder{}, err
	}
	if !prev.Status.CanTransitionTo(to) {
		return entities.ServiceOrder{}, preconditionFailed("service_order", id, "cannot move from %s to %s", prev.Status, to)
	}
	next.Status = to
	next.UpdatedAt = u.core.timestamp()

	updated, err := u.core.store.Orders.Update(ctx, next)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, notFound("service_order", id)
	}
	uw.onRollback(func(ctx context.Context) error {
		_, err := u.core.store.Orders.Update(ctx, prev)
		return err
	})
	uw.emit(u.core.event(entities.DocumentEventTransitioned, "service_order", updated.ID, updated.ServiceOrderNumber, string(to)))
	return updated, nil
}

func (u *ServiceOrderUseCase) load(ctx context.Context, id string) (entities.ServiceOrder, error) {
	o, err := u.core.store.Orders.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, notFound("service_order", id)
	}
	return o, nil
}

// issueServiceOrder derives the order of an approved budget. The order inherits the budget
// number digits (ORC-0007-25 becomes OS-0007-25) and its total as value.
func (c *Core) issueServiceOrder(ctx context.Context, uw *unitOfWork, budget entities.Budget, technicianID string) (entities.Budget, entities.ServiceOrder, error) {
	if budget.Status != entities.BudgetStatusApproved {
		return entities.Budget{}, entities.ServiceOrder{}, preconditionFailed("budget", budget.ID, "service order requires an approved budget, got %s", budget.Status)
	}
	if budget.ServiceOrderID != "" {
		return entities.Budget{}, entities.ServiceOrder{}, preconditionFailed("budget", budget.ID, "budget already derived service order %s", budget.ServiceOrderID)
	}
	// Finishing bills the order value, so a zero-total budget would yield an order that can never finish.
	if !budget.Total().IsPositive() {
		return entities.Budget{}, entities.ServiceOrder{}, preconditionFailed("budget", budget.ID, "service order requires a budget total greater than zero, got %s", budget.Total())
	}
	existing, err := c.store.Orders.GetByBudgetID(ctx, budget.ID)
	if err != nil {
		return entities.Budget{}, entities.ServiceOrder{}, err
	}
	if existing.ID != "" {
		return entities.Budget{}, entities.ServiceOrder{}, preconditionFailed("budget", budget.ID, "budget already derived service order %s", existing.ID)
	}

	lead, err := c.store.Leads.GetByID(ctx, budget.LeadID)
	if err != nil {
		return entities.Budget{}, entities.ServiceOrder{}, err
	}
	if lead.ID == "" {
		return entities.Budget{}, entities.ServiceOrder{}, notFound("lead", budget.LeadID)
	}

	number, err := entities.InheritNumber(budget.BudgetNumber, entities.DocumentKindBudget, entities.DocumentKindServiceOrder)
	if err != nil {
		return entities.Budget{}, entities.ServiceOrder{}, validationFailed("budget", err.Error(), map[string]string{"budget_number": "prefix"})
	}
	order, err := c.createServiceOrder(ctx, uw, entities.ServiceOrder{
		ServiceOrderNumber: number,
		BudgetID:           budget.ID,
		LeadID:             lead.ID,
		ClientID:           lead.ClientID,
		TechnicianID:       technicianID,
		Value:              budget.Total(),
	})
	if err != nil {
		return entities.Budget{}, entities.ServiceOrder{}, err
	}

	linked := budget
	linked.ServiceOrderID = order.ID
	linked.UpdatedAt = c.timestamp()
	linked, err = updateBudget(ctx, c, uw, budget, linked)
	if err != nil {
		return entities.Budget{}, entities.ServiceOrder{}, err
	}
	return linked, order, nil
}

func (c *Core) createServiceOrder(ctx context.Context, uw *unitOfWork, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	now := c.timestamp()
	o.ID = uuid.NewString()
	o.Status = entities.ServiceOrderStatusIssued
	o.CompletionPhotos = []string{}
	o.CompletionVideos = []string{}
	o.CreatedAt = now
	o.UpdatedAt = now

	created, err := c.store.Orders.Create(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	uw.onRollback(func(ctx context.Context) error {
		return c.store.Orders.Delete(ctx, created.ID)
	})
	uw.emit(c.event(entities.DocumentEventCreated, "service_order", created.ID, created.ServiceOrderNumber, string(created.Status)))
	return created, nil
}
