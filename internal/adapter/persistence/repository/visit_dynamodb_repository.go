package repository

import (
	"context"
	"time"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultVisitsTableName = "visits"

type visitItem struct {
	ID              string   `dynamodbav:"id"`
	VisitNumber     string   `dynamodbav:"visit_number"`
	LeadID          string   `dynamodbav:"lead_id"`
	ScheduledAt     string   `dynamodbav:"scheduled_at"`
	TechnicianID    string   `dynamodbav:"technician_id"`
	Status          string   `dynamodbav:"status"`
	Findings        []string `dynamodbav:"findings"`
	Recommendations []string `dynamodbav:"recommendations"`
	Photos          []string `dynamodbav:"photos"`
	Videos          []string `dynamodbav:"videos"`
	BudgetID        string   `dynamodbav:"budget_id,omitempty"`
	CompletedAt     string   `dynamodbav:"completed_at,omitempty"`
	CancelledAt     string   `dynamodbav:"cancelled_at,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// VisitDynamoRepository persists Visit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id)
type VisitDynamoRepository struct {
	table dynamoTable[visitItem]
}

var _ interfaces.IVisitRepository = (*VisitDynamoRepository)(nil)

func NewVisitDynamoRepository(ddb *dynamodb.Client) *VisitDynamoRepository {
	return &VisitDynamoRepository{table: dynamoTable[visitItem]{
		ddb:  ddb,
		name: getenvDefault("VISITS_TABLE", defaultVisitsTableName),
	}}
}

func (r *VisitDynamoRepository) Create(ctx context.Context, v entities.Visit) (entities.Visit, error) {
	if err := r.table.create(ctx, toVisitItem(v)); err != nil {
		return entities.Visit{}, err
	}
	return v, nil
}

func (r *VisitDynamoRepository) GetByID(ctx context.Context, id string) (entities.Visit, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.Visit{}, err
	}
	return fromVisitItem(it), nil
}

func (r *VisitDynamoRepository) Update(ctx context.Context, v entities.Visit) (entities.Visit, error) {
	ok, err := r.table.replace(ctx, toVisitItem(v))
	if err != nil || !ok {
		return entities.Visit{}, err
	}
	return v, nil
}

func (r *VisitDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

func (r *VisitDynamoRepository) List(ctx context.Context) ([]entities.Visit, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	return fromVisitItems(items), nil
}

func (r *VisitDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.Visit, error) {
	items, err := r.table.queryIndex(ctx, "lead_id", leadID)
	if err != nil {
		return nil, err
	}
	return fromVisitItems(items), nil
}

func toVisitItem(v entities.Visit) visitItem {
	return visitItem{
		ID:              v.ID,
		VisitNumber:     v.VisitNumber,
		LeadID:          v.LeadID,
		ScheduledAt:     formatTime(v.ScheduledAt),
		TechnicianID:    v.TechnicianID,
		Status:          string(v.Status),
		Findings:        nonNilStrings(v.Findings),
		Recommendations: nonNilStrings(v.Recommendations),
		Photos:          nonNilStrings(v.Photos),
		Videos:          nonNilStrings(v.Videos),
		BudgetID:        v.BudgetID,
		CompletedAt:     formatTimePtr(v.CompletedAt),
		CancelledAt:     formatTimePtr(v.CancelledAt),
		CreatedAt:       formatTime(v.CreatedAt),
		UpdatedAt:       formatTime(v.UpdatedAt),
	}
}

func fromVisitItem(it visitItem) entities.Visit {
	return entities.Visit{
		ID:              it.ID,
		VisitNumber:     it.VisitNumber,
		LeadID:          it.LeadID,
		ScheduledAt:     parseTime(it.ScheduledAt),
		TechnicianID:    it.TechnicianID,
		Status:          entities.VisitStatus(it.Status),
		Findings:        nonNilStrings(it.Findings),
		Recommendations: nonNilStrings(it.Recommendations),
		Photos:          nonNilStrings(it.Photos),
		Videos:          nonNilStrings(it.Videos),
		BudgetID:        it.BudgetID,
		CompletedAt:     parseTimePtr(it.CompletedAt),
		CancelledAt:     parseTimePtr(it.CancelledAt),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

func fromVisitItems(items []visitItem) []entities.Visit {
	out := make([]entities.Visit, 0, len(items))
	for _, it := range items {
		out = append(out, fromVisitItem(it))
	}
	sortByCreated(out, func(v entities.Visit) time.Time { return v.CreatedAt })
	return out
}
