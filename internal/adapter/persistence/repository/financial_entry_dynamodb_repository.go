package repository

import (
	"context"
	"time"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultFinancialEntriesTableName = "financial_entries"

type financialEntryItem struct {
	ID               string `dynamodbav:"id"`
	Description      string `dynamodbav:"description"`
	Value            string `dynamodbav:"value"`
	Type             string `dynamodbav:"type"`
	Status           string `dynamodbav:"status"`
	DueDate          string `dynamodbav:"due_date"`
	RelatedNumber    string `dynamodbav:"related_number,omitempty"`
	CategoryID       string `dynamodbav:"category_id"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
	PaymentReference string `dynamodbav:"payment_reference,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// FinancialEntryDynamoRepository persists FinancialEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: related_number-index (PK: related_number); sparse
type FinancialEntryDynamoRepository struct {
	table dynamoTable[financialEntryItem]
}

var _ interfaces.IFinancialEntryRepository = (*FinancialEntryDynamoRepository)(nil)

func NewFinancialEntryDynamoRepository(ddb *dynamodb.Client) *FinancialEntryDynamoRepository {
	return &FinancialEntryDynamoRepository{table: dynamoTable[financialEntryItem]{
		ddb:  ddb,
		name: getenvDefault("FINANCIAL_ENTRIES_TABLE", defaultFinancialEntriesTableName),
	}}
}

func (r *FinancialEntryDynamoRepository) Create(ctx context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	if err := r.table.create(ctx, toFinancialEntryItem(e)); err != nil {
		return entities.FinancialEntry{}, err
	}
	return e, nil
}

func (r *FinancialEntryDynamoRepository) GetByID(ctx context.Context, id string) (entities.FinancialEntry, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.FinancialEntry{}, err
	}
	return fromFinancialEntryItem(it), nil
}

func (r *FinancialEntryDynamoRepository) ListByRelatedNumber(ctx context.Context, number string) ([]entities.FinancialEntry, error) {
	items, err := r.table.queryIndex(ctx, "related_number", number)
	if err != nil {
		return nil, err
	}
	return fromFinancialEntryItems(items), nil
}

func (r *FinancialEntryDynamoRepository) Update(ctx context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	ok, err := r.table.replace(ctx, toFinancialEntryItem(e))
	if err != nil || !ok {
		return entities.FinancialEntry{}, err
	}
	return e, nil
}

func (r *FinancialEntryDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

func (r *FinancialEntryDynamoRepository) List(ctx context.Context) ([]entities.FinancialEntry, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	return fromFinancialEntryItems(items), nil
}

func toFinancialEntryItem(e entities.FinancialEntry) financialEntryItem {
	return financialEntryItem{
		ID:               e.ID,
		Description:      e.Description,
		Value:            e.Value.String(),
		Type:             string(e.Type),
		Status:           string(e.Status),
		DueDate:          formatTime(e.DueDate),
		RelatedNumber:    e.RelatedNumber,
		CategoryID:       e.CategoryID,
		PaidAt:           formatTimePtr(e.PaidAt),
		PaymentReference: e.PaymentReference,
		CreatedAt:        formatTime(e.CreatedAt),
		UpdatedAt:        formatTime(e.UpdatedAt),
	}
}

func fromFinancialEntryItem(it financialEntryItem) entities.FinancialEntry {
	return entities.FinancialEntry{
		ID:               it.ID,
		Description:      it.Description,
		Value:            parseDecimal(it.Value),
		Type:             entities.FinancialEntryType(it.Type),
		Status:           entities.FinancialEntryStatus(it.Status),
		DueDate:          parseTime(it.DueDate),
		RelatedNumber:    it.RelatedNumber,
		CategoryID:       it.CategoryID,
		PaidAt:           parseTimePtr(it.PaidAt),
		PaymentReference: it.PaymentReference,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

func fromFinancialEntryItems(items []financialEntryItem) []entities.FinancialEntry {
	out := make([]entities.FinancialEntry, 0, len(items))
	for _, it := range items {
		out = append(out, fromFinancialEntryItem(it))
	}
	sortByCreated(out, func(e entities.FinancialEntry) time.Time { return e.CreatedAt })
	return out
}
