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

const defaultPayablesTableName = "payables"

type payableItem struct {
	ID            string `dynamodbav:"id"`
	Description   string `dynamodbav:"description"`
	Category      string `dynamodbav:"category"`
	Amount        string `dynamodbav:"amount"`
	DueDate       string `dynamodbav:"due_date"`
	Status        string `dynamodbav:"status"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	Reference     string `dynamodbav:"reference,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// PayableDynamoRepository persists Payable entities in DynamoDB. Only
// Pendente/Pago are stored; Atrasado is derived at read time by the
// use case.
//
// Table requirements:
//   - PK: id (string)

type PayableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayableRepository = (*PayableDynamoRepository)(nil)

func NewPayableDynamoRepository(ddb *dynamodb.Client) *PayableDynamoRepository {
	return &PayableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYABLES_TABLE", defaultPayablesTableName),
	}
}

func (r *PayableDynamoRepository) Create(ctx context.Context, p entities.Payable) (entities.Payable, error) {
	av, err := attributevalue.MarshalMap(toPayableItem(p))
	if err != nil {
		return entities.Payable{}, err
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
		return entities.Payable{}, err
	}
	return p, nil
}

func (r *PayableDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payable{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payable{}, nil
	}

	var it payableItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payable{}, err
	}
	return fromPayableItem(it), nil
}

func (r *PayableDynamoRepository) List(ctx context.Context) ([]entities.Payable, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	payables := make([]entities.Payable, 0, len(raw))
	for _, item := range raw {
		var it payableItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		payables = append(payables, fromPayableItem(it))
	}
	sort.Slice(payables, func(i, j int) bool { return payables[i].CreatedAt.Before(payables[j].CreatedAt) })
	return payables, nil
}

func (r *PayableDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.FinanceStatus) (entities.Payable, error) {
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
			return entities.Payable{}, nil
		}
		return entities.Payable{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payable{}, nil
	}

	var it payableItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payable{}, err
	}
	return fromPayableItem(it), nil
}

func toPayableItem(p entities.Payable) payableItem {
	return payableItem{
		ID:            p.ID,
		Description:   p.Description,
		Category:      p.Category,
		Amount:        floatToString(p.Amount),
		DueDate:       p.DueDate,
		Status:        string(p.Status),
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPayableItem(it payableItem) entities.Payable {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Payable{
		ID:            it.ID,
		Description:   it.Description,
		Category:      it.Category,
		Amount:        amount,
		DueDate:       it.DueDate,
		Status:        entities.FinanceStatus(it.Status),
		PaymentMethod: it.PaymentMethod,
		Reference:     it.Reference,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
