package response

import (
	"reforma_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type StatusMetaResponse struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

func statusMeta(meta entities.StatusMeta, _ bool) StatusMetaResponse {
	return StatusMetaResponse{Label: meta.Label, Color: meta.Color}
}

type ClientResponse struct {
	entities.Client
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{Client: c}
}

type FindOrCreateClientResponse struct {
	Client  ClientResponse `json:"client"`
	Created bool           `json:"created"`
}

type LeadResponse struct {
	entities.Lead
	StatusMeta StatusMetaResponse `json:"status_meta"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{Lead: l, StatusMeta: statusMeta(l.Status.Meta())}
}

type VisitResponse struct {
	entities.Visit
	StatusMeta  StatusMetaResponse `json:"status_meta"`
	PDFFileName string             `json:"pdf_filename"`
}

func FromVisit(v entities.Visit) VisitResponse {
	return VisitResponse{
		Visit:       v,
		StatusMeta:  statusMeta(v.Status.Meta()),
		PDFFileName: entities.PDFFileName(entities.DocumentKindVisit, v.VisitNumber),
	}
}

type BudgetItemResponse struct {
	entities.BudgetItem
	TotalValue decimal.Decimal `json:"total_value"`
}

type BudgetResponse struct {
	entities.Budget
	Items       []BudgetItemResponse `json:"items"`
	TotalValue  decimal.Decimal      `json:"total_value"`
	StatusMeta  StatusMetaResponse   `json:"status_meta"`
	PDFFileName string               `json:"pdf_filename"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{BudgetItem: it, TotalValue: it.Total()})
	}
	return BudgetResponse{
		Budget:      b,
		Items:       items,
		TotalValue:  b.Total(),
		StatusMeta:  statusMeta(b.Status.Meta()),
		PDFFileName: entities.PDFFileName(entities.DocumentKindBudget, b.BudgetNumber),
	}
}

type ServiceOrderResponse struct {
	entities.ServiceOrder
	StatusMeta  StatusMetaResponse `json:"status_meta"`
	PDFFileName string             `json:"pdf_filename"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ServiceOrder: o,
		StatusMeta:   statusMeta(o.Status.Meta()),
		PDFFileName:  entities.PDFFileName(entities.DocumentKindServiceOrder, o.ServiceOrderNumber),
	}
}

type FinancialEntryResponse struct {
	entities.FinancialEntry
	StatusMeta StatusMetaResponse `json:"status_meta"`
}

func FromFinancialEntry(e entities.FinancialEntry) FinancialEntryResponse {
	return FinancialEntryResponse{FinancialEntry: e, StatusMeta: statusMeta(e.Status.Meta())}
}

// ApproveBudgetResponse carries the approved budget and the service order derived from it.
type ApproveBudgetResponse struct {
	Budget       BudgetResponse       `json:"budget"`
	ServiceOrder ServiceOrderResponse `json:"service_order"`
}

// FinishServiceOrderResponse carries the finished order and its receivable.
type FinishServiceOrderResponse struct {
	ServiceOrder   ServiceOrderResponse   `json:"service_order"`
	FinancialEntry FinancialEntryResponse `json:"financial_entry"`
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func FromClients(in []entities.Client) []ClientResponse { return mapSlice(in, FromClient) }
func FromLeads(in []entities.Lead) []LeadResponse       { return mapSlice(in, FromLead) }
func FromVisits(in []entities.Visit) []VisitResponse    { return mapSlice(in, FromVisit) }
func FromBudgets(in []entities.Budget) []BudgetResponse { return mapSlice(in, FromBudget) }
func FromServiceOrders(in []entities.ServiceOrder) []ServiceOrderResponse {
	return mapSlice(in, FromServiceOrder)
}
func FromFinancialEntries(in []entities.FinancialEntry) []FinancialEntryResponse {
	return mapSlice(in, FromFinancialEntry)
}
