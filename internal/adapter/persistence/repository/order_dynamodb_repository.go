package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"webatelier/internal/domain/entities"
	"webatelier/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID                 string   `dynamodbav:"id"`
	CustomerName       string   `dynamodbav:"customer_name"`
	CustomerSurname    string   `dynamodbav:"customer_surname"`
	CustomerEmail      string   `dynamodbav:"customer_email"`
	Profession         string   `dynamodbav:"profession"`
	WebsiteName        string   `dynamodbav:"website_name"`
	WebsiteType        string   `dynamodbav:"website_type"`
	TargetAudience     string   `dynamodbav:"target_audience"`
	Purpose            string   `dynamodbav:"purpose"`
	ColorPalette       string   `dynamodbav:"color_palette"`
	KnowledgeText      string   `dynamodbav:"knowledge_text"`
	AdditionalFeatures []string `dynamodbav:"additional_features,omitempty"`
	SelectedPages      []string `dynamodbav:"selected_pages,omitempty"`
	TotalPrice         string   `dynamodbav:"total_price"`
	Status             string   `dynamodbav:"status"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB. This is
// the primary, authoritative order backend of the submission pipeline.
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

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// List scans the full table. The dashboard is low-volume; a paginated
// query would only matter at a scale this service does not see.
func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                 o.ID,
		CustomerName:       o.CustomerName,
		CustomerSurname:    o.CustomerSurname,
		CustomerEmail:      o.CustomerEmail,
		Profession:         o.Profession,
		WebsiteName:        o.WebsiteName,
		WebsiteType:        string(o.WebsiteType),
		TargetAudience:     o.TargetAudience,
		Purpose:            o.Purpose,
		ColorPalette:       o.ColorPalette,
		KnowledgeText:      o.KnowledgeText,
		AdditionalFeatures: o.AdditionalFeatures,
		SelectedPages:      o.SelectedPages,
		TotalPrice:         floatToString(o.TotalPrice),
		Status:             string(o.Status),
		CreatedAt:          o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.TotalPrice, 64)
	return entities.Order{
		ID:                 it.ID,
		CustomerName:       it.CustomerName,
		CustomerSurname:    it.CustomerSurname,
		CustomerEmail:      it.CustomerEmail,
		Profession:         it.Profession,
		WebsiteName:        it.WebsiteName,
		WebsiteType:        entities.WebsiteType(it.WebsiteType),
		TargetAudience:     it.TargetAudience,
		Purpose:            it.Purpose,
		ColorPalette:       it.ColorPalette,
		KnowledgeText:      it.KnowledgeText,
		AdditionalFeatures: it.AdditionalFeatures,
		SelectedPages:      it.SelectedPages,
		TotalPrice:         total,
		Status:             entities.OrderStatus(it.Status),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
