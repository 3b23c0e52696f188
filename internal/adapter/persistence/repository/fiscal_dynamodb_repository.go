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

const defaultFiscalTableName = "fiscal_documents"

type documentLineItem struct {
	Name      string `dynamodbav:"name"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type fiscalDocumentItem struct {
	ID               string             `dynamodbav:"id"`
	Number           string             `dynamodbav:"number"`
	Type             string             `dynamodbav:"type"`
	Date             string             `dynamodbav:"date"`
	CustomerName     string             `dynamodbav:"customer_name"`
	CustomerDocument string             `dynamodbav:"customer_document"`
	VehicleID        int64              `dynamodbav:"vehicle_id,omitempty"`
	OrderID          string             `dynamodbav:"order_id,omitempty"`
	Value            string             `dynamodbav:"value"`
	Status           string             `dynamodbav:"status"`
	Items            []documentLineItem `dynamodbav:"items"`
	Services         []documentLineItem `dynamodbav:"services"`
	CreatedAt        string             `dynamodbav:"created_at"`
	UpdatedAt        string             `dynamodbav:"updated_at"`
}

// FiscalDynamoRepository persists FiscalDocument entities in DynamoDB.
// Per-type numbering sequences live in the shared counters table, keyed
// by document type.
//
// Table requirements:
//   - PK: id (string)

type FiscalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFiscalDocumentRepository = (*FiscalDynamoRepository)(nil)

func NewFiscalDynamoRepository(ddb *dynamodb.Client) *FiscalDynamoRepository {
	return &FiscalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FISCAL_DOCUMENTS_TABLE", defaultFiscalTableName),
	}
}

func (r *FiscalDynamoRepository) Create(ctx context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) {
	av, err := attributevalue.MarshalMap(toFiscalDocumentItem(d))
	if err != nil {
		return entities.FiscalDocument{}, err
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
		return entities.FiscalDocument{}, err
	}
	return d, nil
}

func (r *FiscalDynamoRepository) GetByID(ctx context.Context, id string) (entities.FiscalDocument, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if len(out.Item) == 0 {
		return entities.FiscalDocument{}, nil
	}

	var it fiscalDocumentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FiscalDocument{}, err
	}
	return fromFiscalDocumentItem(it), nil
}

func (r *FiscalDynamoRepository) List(ctx context.Context) ([]entities.FiscalDocument, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	docs := make([]entities.FiscalDocument, 0, len(raw))
	for _, item := range raw {
		var it fiscalDocumentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		docs = append(docs, fromFiscalDocumentItem(it))
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].CreatedAt.Before(docs[j].CreatedAt) })
	return docs, nil
}

func (r *FiscalDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.FiscalDocumentStatus) (entities.FiscalDocument, error) {
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
			return entities.FiscalDocument{}, nil
		}
		return entities.FiscalDocument{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FiscalDocument{}, nil
	}

	var it fiscalDocumentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FiscalDocument{}, err
	}
	return fromFiscalDocumentItem(it), nil
}

func (r *FiscalDynamoRepository) NextNumber(ctx context.Context, docType entities.FiscalDocumentType) (int64, error) {
	return nextCounter(ctx, r.ddb, r.tableName+"/"+string(docType))
}

func toFiscalDocumentItem(d entities.FiscalDocument) fiscalDocumentItem {
	return fiscalDocumentItem{
		ID:               d.ID,
		Number:           d.Number,
		Type:             string(d.Type),
		Date:             d.Date,
		CustomerName:     d.CustomerName,
		CustomerDocument: d.CustomerDocument,
		VehicleID:        d.VehicleID,
		OrderID:          d.OrderID,
		Value:            floatToString(d.Value),
		Status:           string(d.Status),
		Items:            toDocumentLineItems(d.Items),
		Services:         toDocumentLineItems(d.Services),
		CreatedAt:        d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFiscalDocumentItem(it fiscalDocumentItem) entities.FiscalDocument {
	value, _ := strconv.ParseFloat(it.Value, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.FiscalDocument{
		ID:               it.ID,
		Number:           it.Number,
		Type:             entities.FiscalDocumentType(it.Type),
		Date:             it.Date,
		CustomerName:     it.CustomerName,
		CustomerDocument: it.CustomerDocument,
		VehicleID:        it.VehicleID,
		OrderID:          it.OrderID,
		Value:            value,
		Status:           entities.FiscalDocumentStatus(it.Status),
		Items:            fromDocumentLineItems(it.Items),
		Services:         fromDocumentLineItems(it.Services),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

func toDocumentLineItems(lines []entities.DocumentLine) []documentLineItem {
	out := make([]documentLineItem, 0, len(lines))
	for _, l := range lines {
		out = append(out, documentLineItem{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: floatToString(l.UnitPrice),
		})
	}
	return out
}

func fromDocumentLineItems(items []documentLineItem) []entities.DocumentLine {
	out := make([]entities.DocumentLine, 0, len(items))
	for _, it := range items {
		price, _ := strconv.ParseFloat(it.UnitPrice, 64)
		out = append(out, entities.DocumentLine{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: price,
		})
	}
	return out
}
