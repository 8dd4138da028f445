package usecase

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"time"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/domain/sequence"
	"reforma_xpto/internal/infrastructure/logging"
	"reforma_xpto/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Store groups the repositories the lifecycle works on.
type Store struct {
	Clients interfaces.IClientRepository
	Leads   interfaces.ILeadRepository
	Visits  interfaces.IVisitRepository
	Budgets interfaces.IBudgetRepository
	Orders  interfaces.IServiceOrderRepository
	Entries interfaces.IFinancialEntryRepository
}

// Core is shared by every lifecycle use case. Its mutex makes the lifecycle a single logical
// actor: one mutation runs to completion before the next one reads state.
type Core struct {
	store     Store
	registry  *sequence.Registry
	publisher interfaces.IEventPublisher
	validate  *validator.Validate
	now       func() time.Time
	log       *logrus.Logger

	mu sync.Mutex
}

type CoreOption func(*Core)

func WithClock(now func() time.Time) CoreOption {
	return func(c *Core) { c.now = now }
}

func WithLogger(l *logrus.Logger) CoreOption {
	return func(c *Core) { c.log = l }
}

// NewCore wires the lifecycle. A nil publisher disables event delivery; a nil registry gets an
// in-memory one.
func NewCore(store Store, registry *sequence.Registry, publisher interfaces.IEventPublisher, opts ...CoreOption) *Core {
	if registry == nil {
		registry = sequence.NewRegistry(nil)
	}
	c := &Core{
		store:     store,
		registry:  registry,
		publisher: publisher,
		validate:  newValidator(),
		now:       time.Now,
		log:       logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Core) timestamp() time.Time {
	return c.now().UTC()
}

// run executes op under the lifecycle lock. When op fails every recorded step is undone in
// reverse order; when it succeeds the collected events are published.
func (c *Core) run(ctx context.Context, name string, op func(u *unitOfWork) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	u := &unitOfWork{}
	if err := op(u); err != nil {
		c.rollback(ctx, name, u)
		return err
	}
	c.publish(ctx, u.events)
	return nil
}

func (c *Core) rollback(ctx context.Context, name string, u *unitOfWork) {
	if len(u.undo) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	for i := len(u.undo) - 1; i >= 0; i-- {
		if err := u.undo[i](ctx); err != nil {
			logging.LogError(c.log, "lifecycle", name, map[string]int{"undo_step": i}, err)
		}
	}
	c.log.WithField("operation", name).Warnf("[lifecycle][usecase] rolled back %d step(s)", len(u.undo))
}

func (c *Core) publish(ctx context.Context, events []entities.DocumentEvent) {
	if c.publisher == nil {
		return
	}
	for _, evt := range events {
		if err := c.publisher.Publish(ctx, evt); err != nil {
			c.log.WithFields(logrus.Fields{
				"entity":      evt.Entity,
				"document_id": evt.DocumentID,
				"event":       evt.Type,
			}).Errorf("[lifecycle][events] publish failed err=%v", err)
		}
	}
}

func (c *Core) event(t entities.DocumentEventType, entity, id, number, status string) entities.DocumentEvent {
	return entities.DocumentEvent{
		Type:       t,
		Entity:     entity,
		DocumentID: id,
		Number:     number,
		Status:     status,
		OccurredAt: c.timestamp(),
	}
}

// newValidator lets numeric tags (gt, gte) apply to decimal fields.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// view runs a read under the lifecycle lock so readers never observe a half-applied operation.
func (c *Core) view(read func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return read()
}

// validateInput runs struct tag validation and reports violations per field.
func (c *Core) validateInput(entity string, input any) error {
	err := c.validate.Struct(input)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return validationFailed(entity, err.Error(), nil)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldName(fe.Namespace())] = fe.Tag()
	}
	return validationFailed(entity, "invalid input", fields)
}

// fieldName turns "CreateBudgetInput.Items[0].Quantity" into "items[0].quantity".
func fieldName(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

// advanceLead moves a lead forward in the pipeline because of a document event. It never moves a
// lead backwards, never revives a lost lead and never sets lost.
func (c *Core) advanceLead(ctx context.Context, u *unitOfWork, leadID string, to entities.LeadStatus) error {
	if leadID == "" || to == entities.LeadStatusLost {
		return nil
	}
	lead, err := c.store.Leads.GetByID(ctx, leadID)
	if err != nil {
		return err
	}
	if lead.ID == "" {
		return notFound("lead", leadID)
	}
	if !lead.Status.CanAdvanceTo(to) {
		return nil
	}

	prev := lead
	lead.Status = to
	lead.UpdatedAt = c.timestamp()
	updated, err := c.store.Leads.Update(ctx, lead)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		return notFound("lead", leadID)
	}
	u.onRollback(func(ctx context.Context) error {
		_, err := c.store.Leads.Update(ctx, prev)
		return err
	})
	u.emit(c.event(entities.DocumentEventTransitioned, "lead", lead.ID, "", string(to)))
	return nil
}
