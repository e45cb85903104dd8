package repository

import (
	"context"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type paymentOrderItem struct {
	OrderID          string `dynamodbav:"order_id"`
	Studio           string `dynamodbav:"studio"`
	Start            string `dynamodbav:"start"`
	End              string `dynamodbav:"end"`
	PayerName        string `dynamodbav:"payer_name"`
	PayerContact     string `dynamodbav:"payer_contact"`
	Note             string `dynamodbav:"note,omitempty"`
	InterviewGuests  string `dynamodbav:"interview_guests,omitempty"`
	PartnerCode      string `dynamodbav:"partner_code,omitempty"`
	DurationMinutes  int64  `dynamodbav:"duration_minutes"`
	PaidMinutes      int64  `dynamodbav:"paid_minutes"`
	Amount           int64  `dynamodbav:"amount"`
	TaxIncluded      bool   `dynamodbav:"tax_included"`
	InvoiceRequested bool   `dynamodbav:"invoice_requested"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	CompletedAt      string `dynamodbav:"completed_at,omitempty"`
}

// PaymentOrderDynamoRepository persists PaymentOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
type PaymentOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentOrderRepository = (*PaymentOrderDynamoRepository)(nil)

func NewPaymentOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentOrderDynamoRepository {
	return &PaymentOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentOrderDynamoRepository) Create(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
	av, err := attributevalue.MarshalMap(toPaymentOrderItem(o))
	if err != nil {
		return entities.PaymentOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "order_id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PaymentOrder{}, ErrOrderExists
		}
		return entities.PaymentOrder{}, err
	}
	return o, nil
}

func (r *PaymentOrderDynamoRepository) GetByID(ctx context.Context, orderID string) (entities.PaymentOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentOrder{}, nil
	}

	var it paymentOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentOrder{}, err
	}
	return fromPaymentOrderItem(it), nil
}

// MarkCompleted only succeeds while the stored status is still pending, so
// two concurrent notifications cannot both complete the order.
func (r *PaymentOrderDynamoRepository) MarkCompleted(ctx context.Context, orderID string, at time.Time) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :completed, #completed_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "order_id",
			"#status":       "status",
			"#completed_at": "completed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":   &types.AttributeValueMemberS{Value: string(entities.PaymentOrderStatusPending)},
			":completed": &types.AttributeValueMemberS{Value: string(entities.PaymentOrderStatusCompleted)},
			":at":        &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toPaymentOrderItem(o entities.PaymentOrder) paymentOrderItem {
	it := paymentOrderItem{
		OrderID:          o.OrderID,
		Studio:           string(o.Studio),
		Start:            o.Interval.Start.UTC().Format(time.RFC3339),
		End:              o.Interval.End.UTC().Format(time.RFC3339),
		PayerName:        o.Payer.Name,
		PayerContact:     o.Payer.Contact,
		Note:             o.Note,
		InterviewGuests:  o.InterviewGuests,
		PartnerCode:      o.PartnerCode,
		DurationMinutes:  o.DurationMinutes,
		PaidMinutes:      o.PaidMinutes,
		Amount:           o.Amount,
		TaxIncluded:      o.TaxIncluded,
		InvoiceRequested: o.InvoiceRequested,
		Status:           string(o.Status),
		CreatedAt:        o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !o.CompletedAt.IsZero() {
		it.CompletedAt = o.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentOrderItem(it paymentOrderItem) entities.PaymentOrder {
	start, _ := time.Parse(time.RFC3339, it.Start)
	end, _ := time.Parse(time.RFC3339, it.End)
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var completed time.Time
	if it.CompletedAt != "" {
		completed, _ = time.Parse(time.RFC3339Nano, it.CompletedAt)
	}
	return entities.PaymentOrder{
		OrderID:          it.OrderID,
		Studio:           entities.Studio(it.Studio),
		Interval:         entities.TimeInterval{Start: start, End: end},
		Payer:            entities.Payer{Name: it.PayerName, Contact: it.PayerContact},
		Note:             it.Note,
		InterviewGuests:  it.InterviewGuests,
		PartnerCode:      it.PartnerCode,
		DurationMinutes:  it.DurationMinutes,
		PaidMinutes:      it.PaidMinutes,
		Amount:           it.Amount,
		TaxIncluded:      it.TaxIncluded,
		InvoiceRequested: it.InvoiceRequested,
		Status:           entities.PaymentOrderStatus(it.Status),
		CreatedAt:        created,
		CompletedAt:      completed,
	}
}
