package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoTable holds the item-level operations every repository shares.
//
// Table requirements: PK id (string). Secondary lookups use sparse GSIs named "<attr>-index".
type dynamoTable[I any] struct {
	ddb  *dynamodb.Client
	name string
}

// create fails when the id already exists.
func (t dynamoTable[I]) create(ctx context.Context, it I) error {
	return t.put(ctx, it, "attribute_not_exists(#id)")
}

// replace overwrites an existing item. It reports false when the id does not exist.
func (t dynamoTable[I]) replace(ctx context.Context, it I) (bool, error) {
	err := t.put(ctx, it, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (t dynamoTable[I]) put(ctx context.Context, it I, condition string) error {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.name),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (t dynamoTable[I]) get(ctx context.Context, id string) (I, bool, error) {
	var it I
	if id == "" {
		return it, false, nil
	}
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.name),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

func (t dynamoTable[I]) delete(ctx context.Context, id string) error {
	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (t dynamoTable[I]) scan(ctx context.Context) ([]I, error) {
	p := dynamodb.NewScanPaginator(t.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(t.name),
		ConsistentRead: aws.Bool(true),
	})
	var items []I
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		batch := make([]I, 0, len(page.Items))
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

// queryIndex returns every item whose attr equals value, read from the "<attr>-index" GSI.
func (t dynamoTable[I]) queryIndex(ctx context.Context, attr, value string) ([]I, error) {
	if value == "" {
		return nil, nil
	}
	p := dynamodb.NewQueryPaginator(t.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(t.name),
		IndexName:              aws.String(attr + "-index"),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	var items []I
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		batch := make([]I, 0, len(page.Items))
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}
