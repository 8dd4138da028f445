package repository

import (
	"context"
	"time"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultServiceOrdersTableName = "service_orders"

type serviceOrderItem struct {
	ID                 string   `dynamodbav:"id"`
	ServiceOrderNumber string   `dynamodbav:"service_order_number"`
	BudgetID           string   `dynamodbav:"budget_id,omitempty"`
	LeadID             string   `dynamodbav:"lead_id,omitempty"`
	ClientID           string   `dynamodbav:"client_id"`
	TechnicianID       string   `dynamodbav:"technician_id"`
	Value              string   `dynamodbav:"value"`
	Status             string   `dynamodbav:"status"`
	ScheduledAt        string   `dynamodbav:"scheduled_at,omitempty"`
	CompletionDate     string   `dynamodbav:"completion_date,omitempty"`
	CompletionNotes    string   `dynamodbav:"completion_notes"`
	CompletionPhotos   []string `dynamodbav:"completion_photos"`
	CompletionVideos   []string `dynamodbav:"completion_videos"`
	FinancialEntryID   string   `dynamodbav:"financial_entry_id,omitempty"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id); sparse
type ServiceOrderDynamoRepository struct {
	table dynamoTable[serviceOrderItem]
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{table: dynamoTable[serviceOrderItem]{
		ddb:  ddb,
		name: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	if err := r.table.create(ctx, toServiceOrderItem(o)); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) GetByBudgetID(ctx context.Context, budgetID string) (entities.ServiceOrder, error) {
	items, err := r.table.queryIndex(ctx, "budget_id", budgetID)
	if err != nil || len(items) == 0 {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(items[0]), nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	ok, err := r.table.replace(ctx, toServiceOrderItem(o))
	if err != nil || !ok {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServiceOrder, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceOrderItem(it))
	}
	sortByCreated(out, func(o entities.ServiceOrder) time.Time { return o.CreatedAt })
	return out, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		ID:                 o.ID,
		ServiceOrderNumber: o.ServiceOrderNumber,
		BudgetID:           o.BudgetID,
		LeadID:             o.LeadID,
		ClientID:           o.ClientID,
		TechnicianID:       o.TechnicianID,
		Value:              o.Value.String(),
		Status:             string(o.Status),
		ScheduledAt:        formatTimePtr(o.ScheduledAt),
		CompletionDate:     formatTimePtr(o.CompletionDate),
		CompletionNotes:    o.CompletionNotes,
		CompletionPhotos:   nonNilStrings(o.CompletionPhotos),
		CompletionVideos:   nonNilStrings(o.CompletionVideos),
		FinancialEntryID:   o.FinancialEntryID,
		CreatedAt:          formatTime(o.CreatedAt),
		UpdatedAt:          formatTime(o.UpdatedAt),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:                 it.ID,
		ServiceOrderNumber: it.ServiceOrderNumber,
		BudgetID:           it.BudgetID,
		LeadID:             it.LeadID,
		ClientID:           it.ClientID,
		TechnicianID:       it.TechnicianID,
		Value:              parseDecimal(it.Value),
		Status:             entities.ServiceOrderStatus(it.Status),
		ScheduledAt:        parseTimePtr(it.ScheduledAt),
		CompletionDate:     parseTimePtr(it.CompletionDate),
		CompletionNotes:    it.CompletionNotes,
		CompletionPhotos:   nonNilStrings(it.CompletionPhotos),
		CompletionVideos:   nonNilStrings(it.CompletionVideos),
		FinancialEntryID:   it.FinancialEntryID,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
