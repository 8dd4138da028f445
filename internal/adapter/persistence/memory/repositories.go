package memory

import (
	"context"
	"strings"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase/interfaces"
)

type ClientRepository struct{ t *table[entities.Client] }

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository() *ClientRepository {
	return &ClientRepository{t: newTable(func(c entities.Client) string { return c.ID }, nil)}
}

func (r *ClientRepository) Create(_ context.Context, c entities.Client) (entities.Client, error) {
	return r.t.create(c)
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (entities.Client, error) {
	return r.t.get(id), nil
}

// FindByEmail compares emails ignoring case.
func (r *ClientRepository) FindByEmail(_ context.Context, email string) (entities.Client, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.Client{}, nil
	}
	return r.t.first(func(c entities.Client) bool { return strings.EqualFold(c.Email, email) }), nil
}

func (r *ClientRepository) List(_ context.Context) ([]entities.Client, error) {
	return r.t.filter(nil), nil
}

type LeadRepository struct{ t *table[entities.Lead] }

var _ interfaces.ILeadRepository = (*LeadRepository)(nil)

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{t: newTable(func(l entities.Lead) string { return l.ID }, nil)}
}

func (r *LeadRepository) Create(_ context.Context, l entities.Lead) (entities.Lead, error) {
	return r.t.create(l)
}

func (r *LeadRepository) GetByID(_ context.Context, id string) (entities.Lead, error) {
	return r.t.get(id), nil
}

func (r *LeadRepository) Update(_ context.Context, l entities.Lead) (entities.Lead, error) {
	return r.t.update(l), nil
}

func (r *LeadRepository) List(_ context.Context) ([]entities.Lead, error) {
	return r.t.filter(nil), nil
}

type VisitRepository struct{ t *table[entities.Visit] }

var _ interfaces.IVisitRepository = (*VisitRepository)(nil)

func NewVisitRepository() *VisitRepository {
	return &VisitRepository{t: newTable(func(v entities.Visit) string { return v.ID }, cloneVisit)}
}

func cloneVisit(v entities.Visit) entities.Visit {
	v.Findings = cloneStrings(v.Findings)
	v.Recommendations = cloneStrings(v.Recommendations)
	v.Photos = cloneStrings(v.Photos)
	v.Videos = cloneStrings(v.Videos)
	return v
}

func (r *VisitRepository) Create(_ context.Context, v entities.Visit) (entities.Visit, error) {
	return r.t.create(v)
}

func (r *VisitRepository) GetByID(_ context.Context, id string) (entities.Visit, error) {
	return r.t.get(id), nil
}

func (r *VisitRepository) Update(_ context.Context, v entities.Visit) (entities.Visit, error) {
	return r.t.update(v), nil
}

func (r *VisitRepository) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

func (r *VisitRepository) List(_ context.Context) ([]entities.Visit, error) {
	return r.t.filter(nil), nil
}

func (r *VisitRepository) ListByLeadID(_ context.Context, leadID string) ([]entities.Visit, error) {
	return r.t.filter(func(v entities.Visit) bool { return v.LeadID == leadID }), nil
}

type BudgetRepository struct{ t *table[entities.Budget] }

var _ interfaces.IBudgetRepository = (*BudgetRepository)(nil)

func NewBudgetRepository() *BudgetRepository {
	return &BudgetRepository{t: newTable(func(b entities.Budget) string { return b.ID }, func(b entities.Budget) entities.Budget {
		if b.Items != nil {
			b.Items = append([]entities.BudgetItem(nil), b.Items...)
		}
		return b
	})}
}

func (r *BudgetRepository) Create(_ context.Context, b entities.Budget) (entities.Budget, error) {
	return r.t.create(b)
}

func (r *BudgetRepository) GetByID(_ context.Context, id string) (entities.Budget, error) {
	return r.t.get(id), nil
}

func (r *BudgetRepository) GetByVisitID(_ context.Context, visitID string) (entities.Budget, error) {
	if visitID == "" {
		return entities.Budget{}, nil
	}
	return r.t.first(func(b entities.Budget) bool { return b.VisitID == visitID }), nil
}

func (r *BudgetRepository) Update(_ context.Context, b entities.Budget) (entities.Budget, error) {
	return r.t.update(b), nil
}

func (r *BudgetRepository) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

func (r *BudgetRepository) List(_ context.Context) ([]entities.Budget, error) {
	return r.t.filter(nil), nil
}

type ServiceOrderRepository struct{ t *table[entities.ServiceOrder] }

var _ interfaces.IServiceOrderRepository = (*ServiceOrderRepository)(nil)

func NewServiceOrderRepository() *ServiceOrderRepository {
	return &ServiceOrderRepository{t: newTable(func(o entities.ServiceOrder) string { return o.ID }, func(o entities.ServiceOrder) entities.ServiceOrder {
		o.CompletionPhotos = cloneStrings(o.CompletionPhotos)
		o.CompletionVideos = cloneStrings(o.CompletionVideos)
		return o
	})}
}

func (r *ServiceOrderRepository) Create(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	return r.t.create(o)
}

func (r *ServiceOrderRepository) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	return r.t.get(id), nil
}

func (r *ServiceOrderRepository) GetByBudgetID(_ context.Context, budgetID string) (entities.ServiceOrder, error) {
	if budgetID == "" {
		return entities.ServiceOrder{}, nil
	}
	return r.t.first(func(o entities.ServiceOrder) bool { return o.BudgetID == budgetID }), nil
}

func (r *ServiceOrderRepository) Update(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	return r.t.update(o), nil
}

func (r *ServiceOrderRepository) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

func (r *ServiceOrderRepository) List(_ context.Context) ([]entities.ServiceOrder, error) {
	return r.t.filter(nil), nil
}

type FinancialEntryRepository struct{ t *table[entities.FinancialEntry] }

var _ interfaces.IFinancialEntryRepository = (*FinancialEntryRepository)(nil)

func NewFinancialEntryRepository() *FinancialEntryRepository {
	return &FinancialEntryRepository{t: newTable(func(e entities.FinancialEntry) string { return e.ID }, nil)}
}

func (r *FinancialEntryRepository) Create(_ context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	return r.t.create(e)
}

func (r *FinancialEntryRepository) GetByID(_ context.Context, id string) (entities.FinancialEntry, error) {
	return r.t.get(id), nil
}

func (r *FinancialEntryRepository) ListByRelatedNumber(_ context.Context, number string) ([]entities.FinancialEntry, error) {
	return r.t.filter(func(e entities.FinancialEntry) bool { return e.RelatedNumber == number }), nil
}

func (r *FinancialEntryRepository) Update(_ context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	return r.t.update(e), nil
}

func (r *FinancialEntryRepository) Delete(_ context.Context, id string) error {
	r.t.delete(id)
	return nil
}

func (r *FinancialEntryRepository) List(_ context.Context) ([]entities.FinancialEntry, error) {
	return r.t.filter(nil), nil
}
