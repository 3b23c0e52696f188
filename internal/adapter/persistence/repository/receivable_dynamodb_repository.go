package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReceivablesTableName = "receivables"

type receivableItem struct {
	ID            string `dynamodbav:"id"`
	Description   string `dynamodbav:"description"`
	Customer      string `dynamodbav:"customer"`
	Amount        string `dynamodbav:"amount"`
	DueDate       string `dynamodbav:"due_date"`
	Status        string `dynamodbav:"status"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	Reference     string `dynamodbav:"reference,omitempty"`
	OrderID       string `dynamodbav:"order_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ReceivableDynamoRepository persists Receivable entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ReceivableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReceivableRepository = (*ReceivableDynamoRepository)(nil)

func NewReceivableDynamoRepository(ddb *dynamodb.Client) *ReceivableDynamoRepository {
	return &ReceivableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECEIVABLES_TABLE", defaultReceivablesTableName),
	}
}

func (r *ReceivableDynamoRepository) Create(ctx context.Context, rec entities.Receivable) (entities.Receivable, error) {
	av, err := attributevalue.MarshalMap(toReceivableItem(rec))
	if err != nil {
		return entities.Receivable{}, err
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
		return entities.Receivable{}, err
	}
	return rec, nil
}

func (r *ReceivableDynamoRepository) GetByID(ctx context.Context, id string) (entities.Receivable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Receivable{}, err
	}
	if len(out.Item) == 0 {
		return entities.Receivable{}, nil
	}

	var it receivableItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Receivable{}, err
	}
	return fromReceivableItem(it), nil
}

func (r *ReceivableDynamoRepository) List(ctx context.Context) ([]entities.Receivable, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	receivables := make([]entities.Receivable, 0, len(raw))
	for _, item := range raw {
		var it receivableItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		receivables = append(receivables, fromReceivableItem(it))
	}
	sort.Slice(receivables, func(i, j int) bool { return receivables[i].CreatedAt.Before(receivables[j].CreatedAt) })
	return receivables, nil
}

func (r *ReceivableDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.FinanceStatus) (entities.Receivable, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Receivable{}, nil
		}
		return entities.Receivable{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Receivable{}, nil
	}

	var it receivableItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Receivable{}, err
	}
	return fromReceivableItem(it), nil
}

func toReceivableItem(rec entities.Receivable) receivableItem {
	return receivableItem{
		ID:            rec.ID,
		Description:   rec.Description,
		Customer:      rec.Customer,
		Amount:        floatToString(rec.Amount),
		DueDate:       rec.DueDate,
		Status:        string(rec.Status),
		PaymentMethod: rec.PaymentMethod,
		Reference:     rec.Reference,
		OrderID:       rec.OrderID,
		CreatedAt:     rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReceivableItem(it receivableItem) entities.Receivable {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Receivable{
		ID:            it.ID,
		Description:   it.Description,
		Customer:      it.Customer,
		Amount:        amount,
		DueDate:       it.DueDate,
		Status:        entities.FinanceStatus(it.Status),
		PaymentMethod: it.PaymentMethod,
		Reference:     it.Reference,
		OrderID:       it.OrderID,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
