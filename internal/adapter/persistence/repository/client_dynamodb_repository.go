package repository

import (
	"context"
	"strings"
	"time"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Email      string `dynamodbav:"email,omitempty"`
	EmailLower string `dynamodbav:"email_lower,omitempty"`
	Phone      string `dynamodbav:"phone"`
	Address    string `dynamodbav:"address"`
	Kind       string `dynamodbav:"kind"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email_lower-index (PK: email_lower)
type ClientDynamoRepository struct {
	table dynamoTable[clientItem]
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{table: dynamoTable[clientItem]{
		ddb:  ddb,
		name: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := r.table.create(ctx, toClientItem(c)); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	it, ok, err := r.table.get(ctx, id)
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) FindByEmail(ctx context.Context, email string) (entities.Client, error) {
	items, err := r.table.queryIndex(ctx, "email_lower", strings.ToLower(strings.TrimSpace(email)))
	if err != nil || len(items) == 0 {
		return entities.Client{}, err
	}
	clients := fromClientItems(items)
	return clients[0], nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	return fromClientItems(items), nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		EmailLower: strings.ToLower(c.Email),
		Phone:      c.Phone,
		Address:    c.Address,
		Kind:       string(c.Kind),
		CreatedAt:  formatTime(c.CreatedAt),
		UpdatedAt:  formatTime(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		Kind:      entities.ClientKind(it.Kind),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func fromClientItems(items []clientItem) []entities.Client {
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	sortByCreated(out, func(c entities.Client) time.Time { return c.CreatedAt })
	return out
}
