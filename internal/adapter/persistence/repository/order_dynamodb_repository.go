package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultOrdersTableName = "service_orders"

type orderLaborLineItem struct {
	LaborID   int64  `dynamodbav:"labor_id"`
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type orderInventoryLineItem struct {
	ItemID       int64  `dynamodbav:"item_id"`
	Name         string `dynamodbav:"name"`
	UnitPrice    string `dynamodbav:"unit_price"`
	UsedQuantity int    `dynamodbav:"used_quantity"`
}

type orderItem struct {
	ID             string                   `dynamodbav:"id"`
	Date           string                   `dynamodbav:"date"`
	VehicleID      int64                    `dynamodbav:"vehicle_id"`
	Type           string                   `dynamodbav:"type"`
	Description    string                   `dynamodbav:"description,omitempty"`
	Status         string                   `dynamodbav:"status"`
	TotalCost      string                   `dynamodbav:"total_cost"`
	LaborLines     []orderLaborLineItem     `dynamodbav:"labor_lines"`
	InventoryLines []orderInventoryLineItem `dynamodbav:"inventory_lines"`
	CreatedAt      string                   `dynamodbav:"created_at"`
	UpdatedAt      string                   `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists submitted ServiceOrder records in
// DynamoDB. Lines are embedded in the order item; they are snapshots
// and never updated after submission.
//
// Table requirements:
//   - PK: id (string)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.ServiceOrder, 0, len(raw))
	for _, item := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) })
	return orders, nil
}

func toOrderItem(o entities.ServiceOrder) orderItem {
	labor := make([]orderLaborLineItem, 0, len(o.LaborLines))
	for _, l := range o.LaborLines {
		labor = append(labor, orderLaborLineItem{
			LaborID:   l.LaborID,
			Name:      l.Name,
			UnitPrice: floatToString(l.UnitPrice),
		})
	}
	parts := make([]orderInventoryLineItem, 0, len(o.InventoryLines))
	for _, p := range o.InventoryLines {
		parts = append(parts, orderInventoryLineItem{
			ItemID:       p.ItemID,
			Name:         p.Name,
			UnitPrice:    floatToString(p.UnitPrice),
			UsedQuantity: p.UsedQuantity,
		})
	}
	return orderItem{
		ID:             o.ID,
		Date:           o.Date,
		VehicleID:      o.VehicleID,
		Type:           string(o.Type),
		Description:    o.Description,
		Status:         string(o.Status),
		TotalCost:      floatToString(o.TotalCost),
		LaborLines:     labor,
		InventoryLines: parts,
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.ServiceOrder {
	labor := make([]entities.OrderLaborLine, 0, len(it.LaborLines))
	for _, l := range it.LaborLines {
		price, _ := strconv.ParseFloat(l.UnitPrice, 64)
		labor = append(labor, entities.OrderLaborLine{
			LaborID:   l.LaborID,
			Name:      l.Name,
			UnitPrice: price,
		})
	}
	parts := make([]entities.OrderInventoryLine, 0, len(it.InventoryLines))
	for _, p := range it.InventoryLines {
		price, _ := strconv.ParseFloat(p.UnitPrice, 64)
		parts = append(parts, entities.OrderInventoryLine{
			ItemID:       p.ItemID,
			Name:         p.Name,
			UnitPrice:    price,
			UsedQuantity: p.UsedQuantity,
		})
	}
	total, _ := strconv.ParseFloat(it.TotalCost, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ServiceOrder{
		ID:             it.ID,
		Date:           it.Date,
		VehicleID:      it.VehicleID,
		Type:           entities.OrderType(it.Type),
		Description:    it.Description,
		Status:         entities.OrderStatus(it.Status),
		TotalCost:      total,
		LaborLines:     labor,
		InventoryLines: parts,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
