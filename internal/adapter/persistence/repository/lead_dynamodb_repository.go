package repository

import (
	"context"
	"time"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID              string `dynamodbav:"id"`
	ClientID        string `dynamodbav:"client_id"`
	PropertyAddress string `dynamodbav:"property_address"`
	Source          string `dynamodbav:"source"`
	EstimatedValue  string `dynamodbav:"estimated_value"`
	ResponsibleID   string `dynamodbav:"responsible_id"`
	Status          string `dynamodbav:"status"`
	Notes           string `dynamodbav:"notes"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type LeadDynamoRepository struct {
	table dynamoTable[leadItem]
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{table: dynamoTable[leadItem]{
		ddb:  ddb,
		name: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	if err := r.table.create(ctx, toLeadItem(l)); err != nil {
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) Update(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	ok, err := r.table.replace(ctx, toLeadItem(l))
	if err != nil || !ok {
		return entities.Lead{}, err
	}
	return l, nil
}

// List returns leads ordered by creation time.
func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Lead, 0, len(items))
	for _, it := range items {
		out = append(out, fromLeadItem(it))
	}
	sortByCreated(out, func(l entities.Lead) time.Time { return l.CreatedAt })
	return out, nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:              l.ID,
		ClientID:        l.ClientID,
		PropertyAddress: l.PropertyAddress,
		Source:          l.Source,
		EstimatedValue:  l.EstimatedValue.String(),
		ResponsibleID:   l.ResponsibleID,
		Status:          string(l.Status),
		Notes:           l.Notes,
		CreatedAt:       formatTime(l.CreatedAt),
		UpdatedAt:       formatTime(l.UpdatedAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	return entities.Lead{
		ID:              it.ID,
		ClientID:        it.ClientID,
		PropertyAddress: it.PropertyAddress,
		Source:          it.Source,
		EstimatedValue:  parseDecimal(it.EstimatedValue),
		ResponsibleID:   it.ResponsibleID,
		Status:          entities.LeadStatus(it.Status),
		Notes:           it.Notes,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
