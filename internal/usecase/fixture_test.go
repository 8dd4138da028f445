package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"reforma_xpto/internal/adapter/persistence/memory"
	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/domain/sequence"
	"reforma_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type lifecycle struct {
	core     *Core
	counters *sequence.MemoryCounterStore
	clients  *ClientUseCase
	leads    *LeadUseCase
	visits   *VisitUseCase
	budgets  *BudgetUseCase
	orders   *ServiceOrderUseCase
	entries  *FinancialEntryUseCase
}

func memoryStore() Store {
	return Store{
		Clients: memory.NewClientRepository(),
		Leads:   memory.NewLeadRepository(),
		Visits:  memory.NewVisitRepository(),
		Budgets: memory.NewBudgetRepository(),
		Orders:  memory.NewServiceOrderRepository(),
		Entries: memory.NewFinancialEntryRepository(),
	}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newLifecycle(t *testing.T, store Store, publisher interfaces.IEventPublisher, gateway interfaces.IPaymentGateway) *lifecycle {
	t.Helper()
	return newLifecycleWithClock(t, store, publisher, gateway, func() time.Time { return fixedNow })
}

// tickingClock starts at fixedNow and advances one second per reading.
func tickingClock() func() time.Time {
	var (
		mu   sync.Mutex
		next = fixedNow
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(time.Second)
		return now
	}
}

func newLifecycleWithClock(t *testing.T, store Store, publisher interfaces.IEventPublisher, gateway interfaces.IPaymentGateway, clock func() time.Time) *lifecycle {
	t.Helper()
	counters := sequence.NewMemoryCounterStore()
	registry := sequence.NewRegistry(counters, sequence.WithClock(clock))
	core := NewCore(store, registry, publisher, WithClock(clock), WithLogger(quietLogger()))
	return &lifecycle{
		core:     core,
		counters: counters,
		clients:  NewClientUseCase(core),
		leads:    NewLeadUseCase(core),
		visits:   NewVisitUseCase(core),
		budgets:  NewBudgetUseCase(core),
		orders:   NewServiceOrderUseCase(core),
		entries:  NewFinancialEntryUseCase(core, gateway),
	}
}

func (l *lifecycle) lead(t *testing.T) entities.Lead {
	t.Helper()
	ctx := context.Background()
	client, err := l.clients.CreateClient(ctx, CreateClientInput{Name: "Ana Souza", Email: "ana@example.com", Phone: "11 99999-0000"})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	lead, err := l.leads.CreateLead(ctx, CreateLeadInput{ClientID: client.ID, PropertyAddress: "Rua das Flores, 10"})
	if err != nil {
		t.Fatalf("create lead: %v", err)
	}
	return lead
}

func (l *lifecycle) completedVisit(t *testing.T, leadID string) entities.Visit {
	t.Helper()
	ctx := context.Background()
	v, err := l.visits.ScheduleVisit(ctx, ScheduleVisitInput{LeadID: leadID, ScheduledAt: fixedNow.Add(24 * time.Hour), TechnicianID: "tech-1"})
	if err != nil {
		t.Fatalf("schedule visit: %v", err)
	}
	v, err = l.visits.CompleteVisit(ctx, v.ID, CompleteVisitInput{Findings: []string{"infiltração"}, Photos: []string{"parede.jpg"}})
	if err != nil {
		t.Fatalf("complete visit: %v", err)
	}
	return v
}

func (l *lifecycle) sentBudget(t *testing.T, leadID string) entities.Budget {
	t.Helper()
	b, err := l.budgets.CreateBudget(context.Background(), CreateBudgetInput{
		LeadID: leadID,
		Status: entities.BudgetStatusSent,
		Items:  []BudgetItemInput{{Description: "Pintura", Quantity: decimal.NewFromInt(2), UnitValue: decimal.NewFromInt(150)}},
	})
	if err != nil {
		t.Fatalf("create budget: %v", err)
	}
	return b
}

func (l *lifecycle) runningOrder(t *testing.T, clientID string, value decimal.Decimal) entities.ServiceOrder {
	t.Helper()
	ctx := context.Background()
	o, err := l.orders.CreateServiceOrder(ctx, CreateServiceOrderInput{ClientID: clientID, Value: value})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err = l.orders.Schedule(ctx, o.ID, ScheduleServiceOrderInput{ScheduledAt: fixedNow}); err != nil {
		t.Fatalf("schedule order: %v", err)
	}
	if o, err = l.orders.Start(ctx, o.ID); err != nil {
		t.Fatalf("start order: %v", err)
	}
	return o
}

func expectKind(t *testing.T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
}
