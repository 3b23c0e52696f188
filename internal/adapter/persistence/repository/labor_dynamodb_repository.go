package repository

import (
	"context"
	"sort"
	"strconv"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultLaborTableName = "labor_options"

type laborItem struct {
	ID        int64  `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
}

// LaborDynamoRepository persists LaborOption entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)

type LaborDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILaborRepository = (*LaborDynamoRepository)(nil)

func NewLaborDynamoRepository(ddb *dynamodb.Client) *LaborDynamoRepository {
	return &LaborDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LABOR_TABLE", defaultLaborTableName),
	}
}

func (r *LaborDynamoRepository) Create(ctx context.Context, l entities.LaborOption) (entities.LaborOption, error) {
	id, err := nextCounter(ctx, r.ddb, r.tableName)
	if err != nil {
		return entities.LaborOption{}, err
	}
	l.ID = id

	av, err := attributevalue.MarshalMap(toLaborItem(l))
	if err != nil {
		return entities.LaborOption{}, err
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
		return entities.LaborOption{}, err
	}
	return l, nil
}

func (r *LaborDynamoRepository) GetByID(ctx context.Context, id int64) (entities.LaborOption, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            int64Key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LaborOption{}, err
	}
	if len(out.Item) == 0 {
		return entities.LaborOption{}, nil
	}

	var it laborItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LaborOption{}, err
	}
	return fromLaborItem(it), nil
}

func (r *LaborDynamoRepository) List(ctx context.Context) ([]entities.LaborOption, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	options := make([]entities.LaborOption, 0, len(raw))
	for _, item := range raw {
		var it laborItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		options = append(options, fromLaborItem(it))
	}
	sort.Slice(options, func(i, j int) bool { return options[i].ID < options[j].ID })
	return options, nil
}

func toLaborItem(l entities.LaborOption) laborItem {
	return laborItem{
		ID:        l.ID,
		Name:      l.Name,
		UnitPrice: floatToString(l.UnitPrice),
	}
}

func fromLaborItem(it laborItem) entities.LaborOption {
	price, _ := strconv.ParseFloat(it.UnitPrice, 64)
	return entities.LaborOption{
		ID:        it.ID,
		Name:      it.Name,
		UnitPrice: price,
	}
}
