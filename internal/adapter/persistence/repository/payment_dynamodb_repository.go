package repository

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"moturial_payments/internal/config"
	"moturial_payments/internal/domain/entities"
	"moturial_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsExternalIDIndex  = "external_id-index"
	paymentsUserIDIndex      = "user_id-index"

	externalIDGuardPrefix = "external_id#"
	conditionCheckFailed  = "ConditionalCheckFailed"
)

// DynamoAPI is the subset of *dynamodb.Client used by the ledger.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type paymentItem struct {
	ID            string            `dynamodbav:"id"`
	ExternalID    string            `dynamodbav:"external_id"`
	UserID        string            `dynamodbav:"user_id"`
	Amount        string            `dynamodbav:"amount"`
	Currency      string            `dynamodbav:"currency"`
	PaymentMethod string            `dynamodbav:"payment_method"`
	Status        string            `dynamodbav:"status"`
	Installments  int               `dynamodbav:"installments"`
	Description   string            `dynamodbav:"description,omitempty"`
	ErrorMessage  string            `dynamodbav:"error_message,omitempty"`
	Metadata      map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt     string            `dynamodbav:"created_at"`
	UpdatedAt     string            `dynamodbav:"updated_at"`
	ProcessedAt   string            `dynamodbav:"processed_at,omitempty"`
	Version       int64             `dynamodbav:"version"`
}

// PaymentDynamoRepository is the payment ledger backed by DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: external_id-index (PK: external_id)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//
// Writes are conditional on the stored version, so two writers that read the
// same record cannot both succeed. Each external id is also claimed by a guard
// item (id "external_id#<external id>", owner_id) written in the same
// transaction as the payment. Guards carry no index attributes. A guard for a
// provisional external id stays behind after the processor id replaces it.

type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentLedger = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: config.GetenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) FindByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it)
}

// FindByExternalID resolves the id through the index and then reads the
// record itself with a consistent read; index reads may lag behind writes.
func (r *PaymentDynamoRepository) FindByExternalID(ctx context.Context, externalID string) (entities.Payment, error) {
	ids, err := r.idsByExternalID(ctx, externalID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(ids) == 0 {
		return entities.Payment{}, nil
	}
	if len(ids) > 1 {
		log.Printf("[payment][ledger] external id owned by several records external_id=%s ids=%v", externalID, ids)
	}
	return r.FindByID(ctx, ids[0])
}

func (r *PaymentDynamoRepository) FindByUserID(ctx context.Context, userID string) ([]entities.Payment, error) {
	items := make([]entities.Payment, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(paymentsUserIDIndex),
			KeyConditionExpression: aws.String("user_id = :uid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid": &types.AttributeValueMemberS{Value: userID},
			},
			ScanIndexForward:  aws.Bool(false),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p, err := fromPaymentItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, p)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *PaymentDynamoRepository) ExistsByExternalID(ctx context.Context, externalID string) (bool, error) {
	ids, err := r.idsByExternalID(ctx, externalID)
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// Save inserts p when Version is 0 and otherwise replaces the stored record if
// its version still matches p.Version. The external id is claimed atomically
// with the write.
func (r *PaymentDynamoRepository) Save(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if p.ExternalID != "" {
		// fast path; the guard item below is what enforces uniqueness
		ids, err := r.idsByExternalID(ctx, p.ExternalID)
		if err != nil {
			return entities.Payment{}, err
		}
		for _, id := range ids {
			if id != p.ID {
				log.Printf("[payment][ledger] external id already taken external_id=%s owner=%s id=%s", p.ExternalID, id, p.ID)
				return entities.Payment{}, interfaces.ErrLedgerDuplicateExternalID
			}
		}
	}

	expected := p.Version
	p.Version = expected + 1
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	put := &types.Put{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if expected == 0 {
		put.ConditionExpression = aws.String("attribute_not_exists(#id)")
		put.ExpressionAttributeNames = map[string]string{"#id": "id"}
	} else {
		put.ConditionExpression = aws.String("#version = :expected")
		put.ExpressionAttributeNames = map[string]string{"#version": "version"}
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		}
	}
	items := []types.TransactWriteItem{{Put: put}}
	if p.ExternalID != "" {
		items = append(items, types.TransactWriteItem{Put: r.externalIDGuard(p)})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if !errors.As(err, &tce) {
			return entities.Payment{}, err
		}
		reasons := tce.CancellationReasons
		if len(reasons) > 1 && aws.ToString(reasons[1].Code) == conditionCheckFailed {
			log.Printf("[payment][ledger] external id claimed concurrently external_id=%s id=%s", p.ExternalID, p.ID)
			return entities.Payment{}, interfaces.ErrLedgerDuplicateExternalID
		}
		if len(reasons) > 0 && aws.ToString(reasons[0].Code) == conditionCheckFailed {
			log.Printf("[payment][ledger] conditional write rejected id=%s expected_version=%d", p.ID, expected)
			return entities.Payment{}, interfaces.ErrLedgerVersionConflict
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) externalIDGuard(p entities.Payment) *types.Put {
	return &types.Put{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"id":       &types.AttributeValueMemberS{Value: externalIDGuardPrefix + p.ExternalID},
			"owner_id": &types.AttributeValueMemberS{Value: p.ID},
		},
		ConditionExpression:      aws.String("attribute_not_exists(#id) OR #owner = :owner"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#owner": "owner_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: p.ID},
		},
	}
}

func (r *PaymentDynamoRepository) idsByExternalID(ctx context.Context, externalID string) ([]string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsExternalIDIndex),
		KeyConditionExpression: aws.String("external_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: externalID},
		},
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ids = append(ids, it.ID)
	}
	return ids, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:            p.ID,
		ExternalID:    p.ExternalID,
		UserID:        p.UserID,
		Amount:        p.Amount.StringFixed(2),
		Currency:      p.Currency,
		PaymentMethod: string(p.PaymentMethod),
		Status:        string(p.Status),
		Installments:  p.Installments,
		Description:   p.Description,
		ErrorMessage:  p.ErrorMessage,
		Metadata:      p.Metadata,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Version:       p.Version,
	}
	if p.ProcessedAt != nil {
		it.ProcessedAt = p.ProcessedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return entities.Payment{}, err
	}
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	p := entities.Payment{
		ID:            it.ID,
		ExternalID:    it.ExternalID,
		UserID:        it.UserID,
		Amount:        amount,
		Currency:      it.Currency,
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		Status:        entities.PaymentStatus(it.Status),
		Installments:  it.Installments,
		Description:   it.Description,
		ErrorMessage:  it.ErrorMessage,
		Metadata:      it.Metadata,
		CreatedAt:     created,
		UpdatedAt:     updated,
		Version:       it.Version,
	}
	if it.ProcessedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ProcessedAt); err == nil {
			p.ProcessedAt = &t
		}
	}
	return p, nil
}
