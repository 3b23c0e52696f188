package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInventoryTableName = "inventory"

type inventoryItem struct {
	ID                int64  `dynamodbav:"id"`
	Name              string `dynamodbav:"name"`
	Category          string `dynamodbav:"category"`
	UnitPrice         string `dynamodbav:"unit_price"`
	AvailableQuantity int    `dynamodbav:"available_quantity"`
	MinQuantity       int    `dynamodbav:"min_quantity"`
}

// InventoryDynamoRepository persists InventoryItem entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (number)

type InventoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb *dynamodb.Client) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVENTORY_TABLE", defaultInventoryTableName),
	}
}

func (r *InventoryDynamoRepository) Create(ctx context.Context, i entities.InventoryItem) (entities.InventoryItem, error) {
	id, err := nextCounter(ctx, r.ddb, r.tableName)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	i.ID = id

	av, err := attributevalue.MarshalMap(toInventoryItem(i))
	if err != nil {
		return entities.InventoryItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	return i, nil
}

func (r *InventoryDynamoRepository) GetByID(ctx context.Context, id int64) (entities.InventoryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            int64Key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.InventoryItem{}, nil
	}

	var it inventoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryItem(it), nil
}

func (r *InventoryDynamoRepository) List(ctx context.Context) ([]entities.InventoryItem, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	items := make([]entities.InventoryItem, 0, len(raw))
	for _, item := range raw {
		var it inventoryItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInventoryItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *InventoryDynamoRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (entities.InventoryItem, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 int64Key(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #available_quantity = :qty"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qty": &types.AttributeValueMemberN{Value: strconv.Itoa(quantity)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                 "id",
			"#available_quantity": "available_quantity",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InventoryItem{}, nil
		}
		return entities.InventoryItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.InventoryItem{}, nil
	}

	var it inventoryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryItem(it), nil
}

func toInventoryItem(i entities.InventoryItem) inventoryItem {
	return inventoryItem{
		ID:                i.ID,
		Name:              i.Name,
		Category:          i.Category,
		UnitPrice:         floatToString(i.UnitPrice),
		AvailableQuantity: i.AvailableQuantity,
		MinQuantity:       i.MinQuantity,
	}
}

func fromInventoryItem(it inventoryItem) entities.InventoryItem {
	price, _ := strconv.ParseFloat(it.UnitPrice, 64)
	return entities.InventoryItem{
		ID:                it.ID,
		Name:              it.Name,
		Category:          it.Category,
		UnitPrice:         price,
		AvailableQuantity: it.AvailableQuantity,
		MinQuantity:       it.MinQuantity,
	}
}
