package repository

import (
	"context"
	"strconv"
	"time"

	"webatelier/internal/domain/entities"
	"webatelier/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	Email      string  `dynamodbav:"email"`
	Name       string  `dynamodbav:"name"`
	Surname    string  `dynamodbav:"surname"`
	Profession string  `dynamodbav:"profession"`
	OrderCount int     `dynamodbav:"order_count"`
	TotalSpent float64 `dynamodbav:"total_spent"`
	CreatedAt  string  `dynamodbav:"created_at"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists customers in DynamoDB, keyed by email.
// Each accepted submission upserts the customer: identity fields are
// overwritten, order count and total spent are incremented atomically.
//
// Table requirements:
//   - PK: email (string)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) RecordOrder(ctx context.Context, identity entities.Identity, profession string, orderTotal float64) (entities.User, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: identity.Email},
		},
		UpdateExpression: aws.String(
			"SET #name = :name, #surname = :surname, #profession = :profession, " +
				"#updated_at = :now, #created_at = if_not_exists(#created_at, :now) " +
				"ADD #order_count :one, #total_spent :total",
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: identity.Name},
			":surname":    &types.AttributeValueMemberS{Value: identity.Surname},
			":profession": &types.AttributeValueMemberS{Value: profession},
			":now":        &types.AttributeValueMemberS{Value: now},
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":total":      &types.AttributeValueMemberN{Value: strconv.FormatFloat(orderTotal, 'f', -1, 64)},
		},
		ExpressionAttributeNames: map[string]string{
			"#name":        "name",
			"#surname":     "surname",
			"#profession":  "profession",
			"#updated_at":  "updated_at",
			"#created_at":  "created_at",
			"#order_count": "order_count",
			"#total_spent": "total_spent",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.User{}, err
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	users := make([]entities.User, 0)
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
			var it userItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			users = append(users, fromUserItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return users, nil
}

func fromUserItem(it userItem) entities.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.User{
		Email:      it.Email,
		Name:       it.Name,
		Surname:    it.Surname,
		Profession: it.Profession,
		OrderCount: it.OrderCount,
		TotalSpent: it.TotalSpent,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
