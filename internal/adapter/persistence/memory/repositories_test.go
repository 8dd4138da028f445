package memory

import (
	"context"
	"testing"

	"reforma_xpto/internal/domain/entities"
)

func TestLeadRepository_InsertionOrderAndMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewLeadRepository()
	for _, id := range []string{"c", "a", "b"} {
		if _, err := repo.Create(ctx, entities.Lead{ID: id}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	if _, err := repo.Create(ctx, entities.Lead{ID: "a"}); err != ErrDuplicateID {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	got, _ := repo.List(ctx)
	if len(got) != 3 || got[0].ID != "c" || got[1].ID != "a" || got[2].ID != "b" {
		t.Fatalf("unexpected order: %+v", got)
	}

	missing, err := repo.GetByID(ctx, "zzz")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero lead, got %+v err=%v", missing, err)
	}
	updated, err := repo.Update(ctx, entities.Lead{ID: "zzz"})
	if err != nil || updated.ID != "" {
		t.Fatalf("expected zero lead on unknown update, got %+v err=%v", updated, err)
	}
}

func TestVisitRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewVisitRepository()
	_, _ = repo.Create(ctx, entities.Visit{ID: "v1", LeadID: "l1", Photos: []string{"a.jpg"}})

	got, _ := repo.GetByID(ctx, "v1")
	got.Photos[0] = "changed.jpg"

	again, _ := repo.GetByID(ctx, "v1")
	if again.Photos[0] != "a.jpg" {
		t.Fatalf("stored visit was mutated through a returned copy")
	}

	byLead, _ := repo.ListByLeadID(ctx, "l1")
	if len(byLead) != 1 {
		t.Fatalf("expected 1 visit for lead, got %d", len(byLead))
	}
	_ = repo.Delete(ctx, "v1")
	if v, _ := repo.GetByID(ctx, "v1"); v.ID != "" {
		t.Fatalf("expected visit deleted")
	}
}

func TestClientRepository_FindByEmailIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository()
	_, _ = repo.Create(ctx, entities.Client{ID: "c1", Email: "ana@example.com"})

	got, _ := repo.FindByEmail(ctx, "ANA@Example.com")
	if got.ID != "c1" {
		t.Fatalf("expected c1, got %+v", got)
	}
	if got, _ := repo.FindByEmail(ctx, ""); got.ID != "" {
		t.Fatalf("empty email must not match")
	}
}

func TestProvenanceLookups(t *testing.T) {
	ctx := context.Background()
	budgets := NewBudgetRepository()
	orders := NewServiceOrderRepository()
	entries := NewFinancialEntryRepository()

	_, _ = budgets.Create(ctx, entities.Budget{ID: "b1", VisitID: "v1"})
	_, _ = orders.Create(ctx, entities.ServiceOrder{ID: "o1", BudgetID: "b1"})
	_, _ = entries.Create(ctx, entities.FinancialEntry{ID: "e1", RelatedNumber: "OS-0001-25"})

	if b, _ := budgets.GetByVisitID(ctx, "v1"); b.ID != "b1" {
		t.Fatalf("expected b1, got %+v", b)
	}
	if b, _ := budgets.GetByVisitID(ctx, ""); b.ID != "" {
		t.Fatalf("empty visit id must not match")
	}
	if o, _ := orders.GetByBudgetID(ctx, "b1"); o.ID != "o1" {
		t.Fatalf("expected o1, got %+v", o)
	}
	if es, _ := entries.ListByRelatedNumber(ctx, "OS-0001-25"); len(es) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(es))
	}
}
