package repository

import (
	"context"
	"time"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultBudgetsTableName = "budgets"

type budgetLineItem struct {
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitValue   string `dynamodbav:"unit_value"`
	ServiceType string `dynamodbav:"service_type"`
}

type budgetItem struct {
	ID             string           `dynamodbav:"id"`
	BudgetNumber   string           `dynamodbav:"budget_number"`
	LeadID         string           `dynamodbav:"lead_id"`
	VisitID        string           `dynamodbav:"visit_id,omitempty"`
	Items          []budgetLineItem `dynamodbav:"items"`
	Status         string           `dynamodbav:"status"`
	Notes          string           `dynamodbav:"notes"`
	SentAt         string           `dynamodbav:"sent_at,omitempty"`
	ApprovedAt     string           `dynamodbav:"approved_at,omitempty"`
	RejectedAt     string           `dynamodbav:"rejected_at,omitempty"`
	ServiceOrderID string           `dynamodbav:"service_order_id,omitempty"`
	CreatedAt      string           `dynamodbav:"created_at"`
	UpdatedAt      string           `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: visit_id-index (PK: visit_id); sparse, only derived budgets carry visit_id
type BudgetDynamoRepository struct {
	table dynamoTable[budgetItem]
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{table: dynamoTable[budgetItem]{
		ddb:  ddb,
		name: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	if err := r.table.create(ctx, toBudgetItem(b)); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) GetByVisitID(ctx context.Context, visitID string) (entities.Budget, error) {
	items, err := r.table.queryIndex(ctx, "visit_id", visitID)
	if err != nil || len(items) == 0 {
		return entities.Budget{}, err
	}
	return fromBudgetItem(items[0]), nil
}

func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	ok, err := r.table.replace(ctx, toBudgetItem(b))
	if err != nil || !ok {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

func (r *BudgetDynamoRepository) List(ctx context.Context) ([]entities.Budget, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Budget, 0, len(items))
	for _, it := range items {
		out = append(out, fromBudgetItem(it))
	}
	sortByCreated(out, func(b entities.Budget) time.Time { return b.CreatedAt })
	return out, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	lines := make([]budgetLineItem, 0, len(b.Items))
	for _, it := range b.Items {
		lines = append(lines, budgetLineItem{
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitValue:   it.UnitValue.String(),
			ServiceType: it.ServiceType,
		})
	}
	return budgetItem{
		ID:             b.ID,
		BudgetNumber:   b.BudgetNumber,
		LeadID:         b.LeadID,
		VisitID:        b.VisitID,
		Items:          lines,
		Status:         string(b.Status),
		Notes:          b.Notes,
		SentAt:         formatTimePtr(b.SentAt),
		ApprovedAt:     formatTimePtr(b.ApprovedAt),
		RejectedAt:     formatTimePtr(b.RejectedAt),
		ServiceOrderID: b.ServiceOrderID,
		CreatedAt:      formatTime(b.CreatedAt),
		UpdatedAt:      formatTime(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	items := make([]entities.BudgetItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.BudgetItem{
			Description: line.Description,
			Quantity:    parseDecimal(line.Quantity),
			UnitValue:   parseDecimal(line.UnitValue),
			ServiceType: line.ServiceType,
		})
	}
	return entities.Budget{
		ID:             it.ID,
		BudgetNumber:   it.BudgetNumber,
		LeadID:         it.LeadID,
		VisitID:        it.VisitID,
		Items:          items,
		Status:         entities.BudgetStatus(it.Status),
		Notes:          it.Notes,
		SentAt:         parseTimePtr(it.SentAt),
		ApprovedAt:     parseTimePtr(it.ApprovedAt),
		RejectedAt:     parseTimePtr(it.RejectedAt),
		ServiceOrderID: it.ServiceOrderID,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
