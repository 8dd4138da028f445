package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"reforma_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestLifecycle_NumberInheritanceAcrossChain(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle(t, memoryStore(), nil, nil)
	l.counters.Seed(entities.DocumentKindVisit, 7)
	lead := l.lead(t)

	visit := l.completedVisit(t, lead.ID)
	if visit.VisitNumber != "VIS-0007-25" {
		t.Fatalf("unexpected visit number %q", visit.VisitNumber)
	}

	budget, err := l.budgets.DeriveFromVisit(ctx, visit.ID, DeriveBudgetInput{
		Items: []BudgetItemInput{
			{Description: "Impermeabilização", Quantity: decimal.NewFromInt(3), UnitValue: decimal.RequireFromString("120.50")},
			{Description: "Pintura", Quantity: decimal.NewFromInt(1), UnitValue: decimal.NewFromInt(400)},
		},
	})
	if err != nil {
		t.Fatalf("derive budget: %v", err)
	}
	if budget.BudgetNumber != "ORC-0007-25" || budget.Status != entities.BudgetStatusDraft || budget.VisitID != visit.ID {
		t.Fatalf("unexpected budget %+v", budget)
	}
	if v, _ := l.visits.GetByID(ctx, visit.ID); v.BudgetID != budget.ID {
		t.Fatalf("visit not linked to budget: %+v", v)
	}

	if _, err := l.budgets.SendBudget(ctx, budget.ID); err != nil {
		t.Fatalf("send: %v", err)
	}
	approved, order, err := l.budgets.ApproveBudget(ctx, budget.ID, ApproveBudgetInput{TechnicianID: "tech-2"})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != entities.BudgetStatusApproved || approved.ApprovedAt == nil || approved.ServiceOrderID != order.ID {
		t.Fatalf("unexpected approved budget %+v", approved)
	}
	if order.ServiceOrderNumber != "OS-0007-25" || order.Status != entities.ServiceOrderStatusIssued {
		t.Fatalf("unexpected order %+v", order)
	}
	if !order.Value.Equal(decimal.RequireFromString("761.50")) {
		t.Fatalf("expected order value 761.50, got %s", order.Value)
	}
	if order.ClientID != lead.ClientID || order.LeadID != lead.ID {
		t.Fatalf("order not linked to lead/client: %+v", order)
	}

	if _, err := l.orders.Schedule(ctx, order.ID, ScheduleServiceOrderInput{ScheduledAt: fixedNow}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if _, err := l.orders.Start(ctx, order.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	finished, entry, err := l.orders.Finish(ctx, order.ID, FinishServiceOrderInput{Notes: "ok", Photos: []string{"fim.jpg"}})
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if finished.Status != entities.ServiceOrderStatusFinished || finished.CompletionDate == nil || finished.FinancialEntryID != entry.ID {
		t.Fatalf("unexpected finished order %+v", finished)
	}
	if entry.Type != entities.FinancialEntryTypeIncome || entry.Status != entities.FinancialEntryStatusPending {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if !entry.DueDate.Equal(finished.CompletionDate.AddDate(0, 0, 7)) {
		t.Fatalf("expected due date 7 days after completion, got %s", entry.DueDate)
	}
	if entry.RelatedNumber != "OS-0007-25" || !strings.Contains(entry.Description, "OS-0007-25") {
		t.Fatalf("entry does not reference the order number: %+v", entry)
	}
	if !entry.Value.Equal(order.Value) {
		t.Fatalf("entry value %s differs from order value %s", entry.Value, order.Value)
	}

	if got, _ := l.leads.GetByID(ctx, lead.ID); got.Status != entities.LeadStatusApproved {
		t.Fatalf("expected lead approved, got %s", got.Status)
	}
	if next, _ := l.core.registry.Next(ctx, entities.DocumentKindBudget); next != "0001-25" {
		t.Fatalf("derivation must not consume the budget sequence, got %s", next)
	}
}

func TestLifecycle_DerivationPreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("visit not completed", func(t *testing.T) {
		l := newLifecycle(t, memoryStore(), nil, nil)
		lead := l.lead(t)
		v, _ := l.visits.ScheduleVisit(ctx, ScheduleVisitInput{LeadID: lead.ID, ScheduledAt: fixedNow, TechnicianID: "t"})
		_, err := l.budgets.DeriveFromVisit(ctx, v.ID, DeriveBudgetInput{})
		expectKind(t, err, ErrPreconditionFailed)
	})

	t.Run("visit without media", func(t *testing.T) {
		l := newLifecycle(t, memoryStore(), nil, nil)
		lead := l.lead(t)
		v, _ := l.visits.ScheduleVisit(ctx, ScheduleVisitInput{LeadID: lead.ID, ScheduledAt: fixedNow, TechnicianID: "t"})
		v, err := l.visits.CompleteVisit(ctx, v.ID, CompleteVisitInput{Findings: []string{"nada"}})
		if err != nil {
			t.Fatalf("complete: %v", err)
		}
		_, err = l.budgets.DeriveFromVisit(ctx, v.ID, DeriveBudgetInput{})
		expectKind(t, err, ErrPreconditionFailed)
		if all, _ := l.budgets.List(ctx); len(all) != 0 {
			t.Fatalf("no budget may exist, got %d", len(all))
		}
	})

	t.Run("second derivation from the same visit", func(t *testing.T) {
		l := newLifecycle(t, memoryStore(), nil, nil)
		lead := l.lead(t)
		v := l.completedVisit(t, lead.ID)
		if _, err := l.budgets.DeriveFromVisit(ctx, v.ID, DeriveBudgetInput{}); err != nil {
			t.Fatalf("first derive: %v", err)
		}
		_, err := l.budgets.DeriveFromVisit(ctx, v.ID, DeriveBudgetInput{})
		expectKind(t, err, ErrPreconditionFailed)
	})

	t.Run("service order from a budget that is not approved", func(t *testing.T) {
		l := newLifecycle(t, memoryStore(), nil, nil)
		lead := l.lead(t)
		b := l.sentBudget(t, lead.ID)
		_, err := l.orders.IssueFromBudget(ctx, b.ID, IssueServiceOrderInput{})
		expectKind(t, err, ErrPreconditionFailed)
	})

	t.Run("second service order from the same budget", func(t *testing.T) {
		l := newLifecycle(t, memoryStore(), nil, nil)
		lead := l.lead(t)
		b := l.sentBudget(t, lead.ID)
		if _, _, err := l.budgets.ApproveBudget(ctx, b.ID, ApproveBudgetInput{}); err != nil {
			t.Fatalf("approve: %v", err)
		}
		_, err := l.orders.IssueFromBudget(ctx, b.ID, IssueServiceOrderInput{})
		expectKind(t, err, ErrPreconditionFailed)
	})

	t.Run("unknown ids", func(t *testing.T) {
		l := newLifecycle(t, memoryStore(), nil, nil)
		_, err := l.budgets.DeriveFromVisit(ctx, "missing", DeriveBudgetInput{})
		expectKind(t, err, ErrNotFound)
		_, err = l.orders.Start(ctx, "missing")
		expectKind(t, err, ErrNotFound)
	})
}

func TestLifecycle_ServiceOrderStateMachine(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle(t, memoryStore(), nil, nil)
	lead := l.lead(t)

	t.Run("finish requires in progress", func(t *testing.T) {
		o, err := l.orders.CreateServiceOrder(ctx, CreateServiceOrderInput{ClientID: lead.ClientID, Value: decimal.NewFromInt(10)})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if o.ServiceOrderNumber != "OS-0001-25" {
			t.Fatalf("expected fresh number, got %s", o.ServiceOrderNumber)
		}
		_, _, err = l.orders.Finish(ctx, o.ID, FinishServiceOrderInput{})
		expectKind(t, err, ErrPreconditionFailed)
		if entries, _ := l.entries.List(ctx); len(entries) != 0 {
			t.Fatalf("no entry may exist, got %d", len(entries))
		}
	})

	t.Run("pause and resume", func(t *testing.T) {
		o := l.runningOrder(t, lead.ClientID, decimal.NewFromInt(10))
		o, err := l.orders.Pause(ctx, o.ID)
		if err != nil || o.Status != entities.ServiceOrderStatusScheduled {
			t.Fatalf("pause: %+v %v", o, err)
		}
		if _, err := l.orders.Pause(ctx, o.ID); !errors.Is(err, ErrPreconditionFailed) {
			t.Fatalf("pausing a scheduled order must fail, got %v", err)
		}
	})

	t.Run("external statuses", func(t *testing.T) {
		o := l.runningOrder(t, lead.ClientID, decimal.NewFromInt(10))
		if _, err := l.orders.SetStatus(ctx, o.ID, entities.ServiceOrderStatusFinished); !errors.Is(err, ErrPreconditionFailed) {
			t.Fatalf("finished is not externally settable, got %v", err)
		}
		if o, _ = l.orders.SetStatus(ctx, o.ID, entities.ServiceOrderStatusWaitingMaterial); o.Status != entities.ServiceOrderStatusWaitingMaterial {
			t.Fatalf("expected waiting_material, got %s", o.Status)
		}
		if o, _ = l.orders.SetStatus(ctx, o.ID, entities.ServiceOrderStatusInProgress); o.Status != entities.ServiceOrderStatusInProgress {
			t.Fatalf("expected in_progress, got %s", o.Status)
		}
		if _, _, err := l.orders.Finish(ctx, o.ID, FinishServiceOrderInput{}); err != nil {
			t.Fatalf("finish: %v", err)
		}
		if o, _ = l.orders.SetStatus(ctx, o.ID, entities.ServiceOrderStatusBilled); o.Status != entities.ServiceOrderStatusBilled {
			t.Fatalf("expected billed, got %s", o.Status)
		}
		if o, _ = l.orders.SetStatus(ctx, o.ID, entities.ServiceOrderStatusPaid); o.Status != entities.ServiceOrderStatusPaid {
			t.Fatalf("expected paid, got %s", o.Status)
		}
	})

	t.Run("paid is terminal", func(t *testing.T) {
		orders, _ := l.orders.List(ctx)
		var paid entities.ServiceOrder
		for _, o := range orders {
			if o.Status == entities.ServiceOrderStatusPaid {
				paid = o
			}
		}
		if paid.ID == "" {
			t.Fatalf("expected a paid order from the previous subtest")
		}
		for _, s := range []entities.ServiceOrderStatus{
			entities.ServiceOrderStatusIssued, entities.ServiceOrderStatusScheduled, entities.ServiceOrderStatusInProgress,
			entities.ServiceOrderStatusWaitingMaterial, entities.ServiceOrderStatusFinished, entities.ServiceOrderStatusBilled,
		} {
			if _, err := l.orders.SetStatus(ctx, paid.ID, s); !errors.Is(err, ErrPreconditionFailed) {
				t.Fatalf("paid -> %s must fail, got %v", s, err)
			}
		}
		_, _, err := l.orders.Finish(ctx, paid.ID, FinishServiceOrderInput{})
		expectKind(t, err, ErrPreconditionFailed)
	})
}

func TestLifecycle_BudgetRules(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle(t, memoryStore(), nil, nil)
	lead := l.lead(t)

	t.Run("initial status approved is rejected", func(t *testing.T) {
		_, err := l.budgets.CreateBudget(ctx, CreateBudgetInput{LeadID: lead.ID, Status: entities.BudgetStatusApproved})
		expectKind(t, err, ErrValidationFailed)
	})

	t.Run("item validation reports fields", func(t *testing.T) {
		_, err := l.budgets.CreateBudget(ctx, CreateBudgetInput{
			LeadID: lead.ID,
			Items:  []BudgetItemInput{{Description: "x", Quantity: decimal.Zero, UnitValue: decimal.NewFromInt(1)}},
		})
		var rule *RuleError
		if !errors.As(err, &rule) || !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected validation RuleError, got %v", err)
		}
		if rule.Fields["items[0].quantity"] != "gt" {
			t.Fatalf("unexpected fields %+v", rule.Fields)
		}
	})

	t.Run("blank item description is rejected", func(t *testing.T) {
		blank := []BudgetItemInput{{Description: "   ", Quantity: decimal.NewFromInt(1), UnitValue: decimal.NewFromInt(10)}}
		_, err := l.budgets.CreateBudget(ctx, CreateBudgetInput{LeadID: lead.ID, Items: blank})
		var rule *RuleError
		if !errors.As(err, &rule) || !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected validation RuleError, got %v", err)
		}
		if rule.Fields["items[0].description"] != "required" {
			t.Fatalf("unexpected fields %+v", rule.Fields)
		}
		if blank[0].Description != "   " {
			t.Fatalf("caller input must not be modified")
		}

		b, err := l.budgets.CreateBudget(ctx, CreateBudgetInput{LeadID: lead.ID})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		_, err = l.budgets.UpdateItems(ctx, b.ID, UpdateBudgetItemsInput{Items: blank})
		expectKind(t, err, ErrValidationFailed)

		v := l.completedVisit(t, lead.ID)
		_, err = l.budgets.DeriveFromVisit(ctx, v.ID, DeriveBudgetInput{Items: blank})
		expectKind(t, err, ErrValidationFailed)

		trimmed, err := l.budgets.UpdateItems(ctx, b.ID, UpdateBudgetItemsInput{Items: []BudgetItemInput{
			{Description: "  Reboco ", Quantity: decimal.NewFromInt(1), UnitValue: decimal.NewFromInt(10)},
		}})
		if err != nil || trimmed.Items[0].Description != "Reboco" {
			t.Fatalf("expected trimmed description, got %+v %v", trimmed.Items, err)
		}
	})

	t.Run("approve draft fails", func(t *testing.T) {
		b, err := l.budgets.CreateBudget(ctx, CreateBudgetInput{LeadID: lead.ID})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		_, _, err = l.budgets.ApproveBudget(ctx, b.ID, ApproveBudgetInput{})
		expectKind(t, err, ErrPreconditionFailed)
		if got, _ := l.budgets.GetByID(ctx, b.ID); got.Status != entities.BudgetStatusDraft {
			t.Fatalf("budget must stay draft, got %s", got.Status)
		}
	})

	t.Run("items locked after rejection", func(t *testing.T) {
		b := l.sentBudget(t, lead.ID)
		if b.SentAt == nil {
			t.Fatalf("budget created as sent must carry sent_at")
		}
		items := []BudgetItemInput{{Description: "Reboco", Quantity: decimal.NewFromInt(1), UnitValue: decimal.NewFromInt(90)}}
		updated, err := l.budgets.UpdateItems(ctx, b.ID, UpdateBudgetItemsInput{Items: items})
		if err != nil || !updated.Total().Equal(decimal.NewFromInt(90)) {
			t.Fatalf("update items: %+v %v", updated, err)
		}
		if _, err := l.budgets.RejectBudget(ctx, b.ID); err != nil {
			t.Fatalf("reject: %v", err)
		}
		_, err = l.budgets.UpdateItems(ctx, b.ID, UpdateBudgetItemsInput{Items: items})
		expectKind(t, err, ErrPreconditionFailed)
		_, err = l.budgets.SendBudget(ctx, b.ID)
		expectKind(t, err, ErrPreconditionFailed)
	})
}

func TestLifecycle_VisitTransitions(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle(t, memoryStore(), nil, nil)
	lead := l.lead(t)

	v, err := l.visits.ScheduleVisit(ctx, ScheduleVisitInput{LeadID: lead.ID, ScheduledAt: fixedNow, TechnicianID: "t"})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if v.VisitNumber != "VIS-0001-25" {
		t.Fatalf("unexpected number %s", v.VisitNumber)
	}
	v, err = l.visits.CancelVisit(ctx, v.ID)
	if err != nil || v.Status != entities.VisitStatusCancelled || v.CancelledAt == nil {
		t.Fatalf("cancel: %+v %v", v, err)
	}
	_, err = l.visits.CompleteVisit(ctx, v.ID, CompleteVisitInput{Photos: []string{"a.jpg"}})
	expectKind(t, err, ErrPreconditionFailed)

	_, err = l.visits.ScheduleVisit(ctx, ScheduleVisitInput{LeadID: lead.ID})
	expectKind(t, err, ErrValidationFailed)

	byLead, _ := l.visits.ListByLeadID(ctx, lead.ID)
	if len(byLead) != 1 {
		t.Fatalf("expected 1 visit, got %d", len(byLead))
	}
}

func TestLifecycle_LeadAdvancesForwardOnly(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle(t, memoryStore(), nil, nil)

	t.Run("document events move the lead", func(t *testing.T) {
		lead := l.lead(t)
		l.completedVisit(t, lead.ID)
		if got, _ := l.leads.GetByID(ctx, lead.ID); got.Status != entities.LeadStatusVisited {
			t.Fatalf("expected visited, got %s", got.Status)
		}
	})

	t.Run("events never move a lead backwards", func(t *testing.T) {
		lead := l.lead(t)
		if _, err := l.leads.UpdateStatus(ctx, lead.ID, entities.LeadStatusNegotiating); err != nil {
			t.Fatalf("update: %v", err)
		}
		if _, err := l.visits.ScheduleVisit(ctx, ScheduleVisitInput{LeadID: lead.ID, ScheduledAt: fixedNow, TechnicianID: "t"}); err != nil {
			t.Fatalf("schedule: %v", err)
		}
		if got, _ := l.leads.GetByID(ctx, lead.ID); got.Status != entities.LeadStatusNegotiating {
			t.Fatalf("expected negotiating, got %s", got.Status)
		}
	})

	t.Run("manual edits", func(t *testing.T) {
		lead := l.lead(t)
		if _, err := l.leads.UpdateStatus(ctx, lead.ID, entities.LeadStatusSent); err != nil {
			t.Fatalf("forward: %v", err)
		}
		_, err := l.leads.UpdateStatus(ctx, lead.ID, entities.LeadStatusContacted)
		expectKind(t, err, ErrPreconditionFailed)
		if _, err := l.leads.UpdateStatus(ctx, lead.ID, entities.LeadStatusLost); err != nil {
			t.Fatalf("lost: %v", err)
		}
		_, err = l.leads.UpdateStatus(ctx, lead.ID, entities.LeadStatusApproved)
		expectKind(t, err, ErrPreconditionFailed)
		_, err = l.visits.ScheduleVisit(ctx, ScheduleVisitInput{LeadID: lead.ID, ScheduledAt: fixedNow, TechnicianID: "t"})
		expectKind(t, err, ErrPreconditionFailed)
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := l.leads.CreateLead(ctx, CreateLeadInput{ClientID: "nope", PropertyAddress: "x"})
		expectKind(t, err, ErrNotFound)
	})
}

func TestClientUseCase_FindOrCreate(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle(t, memoryStore(), nil, nil)

	first, created, err := l.clients.FindOrCreateClient(ctx, CreateClientInput{Name: "Imobiliária Sol", Email: "Contato@Sol.com", Kind: entities.ClientKindRealEstate})
	if err != nil || !created {
		t.Fatalf("expected creation, got created=%v err=%v", created, err)
	}
	if first.Email != "contato@sol.com" {
		t.Fatalf("email must be normalized, got %q", first.Email)
	}
	again, created, err := l.clients.FindOrCreateClient(ctx, CreateClientInput{Name: "Outro nome", Email: "CONTATO@sol.com"})
	if err != nil || created || again.ID != first.ID {
		t.Fatalf("expected match by email, got %+v created=%v err=%v", again, created, err)
	}

	byPhone, _, _ := l.clients.FindOrCreateClient(ctx, CreateClientInput{Name: "João", Phone: "(11) 98888-7777"})
	match, created, _ := l.clients.FindOrCreateClient(ctx, CreateClientInput{Name: "joão", Phone: "11988887777"})
	if created || match.ID != byPhone.ID {
		t.Fatalf("expected match by name and phone")
	}

	_, _, err = l.clients.FindOrCreateClient(ctx, CreateClientInput{Name: "x", Email: "not-an-email"})
	expectKind(t, err, ErrValidationFailed)

	all, _ := l.clients.List(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(all))
	}
}

func TestLifecycle_ConcurrentSchedulingYieldsUniqueNumbers(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle(t, memoryStore(), nil, nil)
	lead := l.lead(t)

	const n = 50
	numbers := make(chan string, n)
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			v, err := l.visits.ScheduleVisit(ctx, ScheduleVisitInput{LeadID: lead.ID, ScheduledAt: fixedNow.Add(time.Hour), TechnicianID: "t"})
			if err != nil {
				errs <- err
				return
			}
			numbers <- v.VisitNumber
		}()
	}
	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		select {
		case err := <-errs:
			t.Fatalf("schedule: %v", err)
		case num := <-numbers:
			if seen[num] {
				t.Fatalf("duplicate number %s", num)
			}
			seen[num] = true
		}
	}
	if !seen["VIS-0001-25"] || !seen["VIS-0050-25"] {
		t.Fatalf("expected numbers 1..50 without gaps")
	}
}
