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

const (
	usageCodeMonthIndex = "code_key-year_month-index"
	usageRefIDPrefix    = "ref#"
)

type partnerItem struct {
	CodeKey       string  `dynamodbav:"code_key"`
	Code          string  `dynamodbav:"code"`
	DisplayName   string  `dynamodbav:"display_name"`
	HoursPerMonth float64 `dynamodbav:"hours_per_month"`
}

type usageItem struct {
	ID             string  `dynamodbav:"id"`
	CodeKey        string  `dynamodbav:"code_key"`
	Code           string  `dynamodbav:"code"`
	YearMonth      string  `dynamodbav:"year_month"`
	Date           string  `dynamodbav:"date"`
	Hours          float64 `dynamodbav:"hours"`
	Studio         string  `dynamodbav:"studio,omitempty"`
	ReservationRef string  `dynamodbav:"reservation_ref,omitempty"`
	Note           string  `dynamodbav:"note,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
}

// QuotaLedgerDynamoRepository stores partners and usage in two tables.
//
// Table requirements:
//   - partners PK: code_key (lower-cased code)
//   - usage PK: id; GSI code_key-year_month-index (PK: code_key, SK: year_month)
//
// Usage linked to a reservation is keyed by the reservation reference, which
// makes appends idempotent and deletes direct.
type QuotaLedgerDynamoRepository struct {
	ddb           *dynamodb.Client
	partnersTable string
	usageTable    string
}

var _ interfaces.IQuotaLedgerRepository = (*QuotaLedgerDynamoRepository)(nil)

func NewQuotaLedgerDynamoRepository(ddb *dynamodb.Client, partnersTable, usageTable string) *QuotaLedgerDynamoRepository {
	return &QuotaLedgerDynamoRepository{ddb: ddb, partnersTable: partnersTable, usageTable: usageTable}
}

func (r *QuotaLedgerDynamoRepository) FindPartner(ctx context.Context, code string) (entities.PartnerQuota, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.partnersTable),
		Key: map[string]types.AttributeValue{
			"code_key": &types.AttributeValueMemberS{Value: entities.NormalizeCode(code)},
		},
	})
	if err != nil {
		return entities.PartnerQuota{}, err
	}
	if len(out.Item) == 0 {
		return entities.PartnerQuota{}, nil
	}

	var it partnerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PartnerQuota{}, err
	}
	if it.Code == "" {
		it.Code = it.CodeKey
	}
	return entities.PartnerQuota{Code: it.Code, DisplayName: it.DisplayName, HoursPerMonth: it.HoursPerMonth}, nil
}

func (r *QuotaLedgerDynamoRepository) ListUsage(ctx context.Context, code, yearMonth string) ([]entities.UsageRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.usageTable),
		IndexName:              aws.String(usageCodeMonthIndex),
		KeyConditionExpression: aws.String("code_key = :code AND year_month = :ym"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: entities.NormalizeCode(code)},
			":ym":   &types.AttributeValueMemberS{Value: yearMonth},
		},
	})

	var records []entities.UsageRecord
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it usageItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromUsageItem(it))
		}
	}
	return records, nil
}

func (r *QuotaLedgerDynamoRepository) AppendUsage(ctx context.Context, rec entities.UsageRecord) (entities.UsageRecord, error) {
	if rec.ReservationReference != "" {
		rec.ID = usageRefIDPrefix + rec.ReservationReference
	} else if rec.ID == "" {
		id, err := newRecordID(rec.CreatedAt)
		if err != nil {
			return entities.UsageRecord{}, err
		}
		rec.ID = id
	}

	av, err := attributevalue.MarshalMap(toUsageItem(rec))
	if err != nil {
		return entities.UsageRecord{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.usageTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return rec, nil
		}
		return entities.UsageRecord{}, err
	}
	return rec, nil
}

func (r *QuotaLedgerDynamoRepository) ListReferencedUsage(ctx context.Context) ([]entities.UsageRecord, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.usageTable),
		FilterExpression: aws.String("attribute_exists(#ref)"),
		ExpressionAttributeNames: map[string]string{
			"#ref": "reservation_ref",
		},
	})

	var records []entities.UsageRecord
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it usageItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if it.ReservationRef != "" {
				records = append(records, fromUsageItem(it))
			}
		}
	}
	return records, nil
}

func (r *QuotaLedgerDynamoRepository) DeleteUsageByReferences(ctx context.Context, refs []string) (int, error) {
	removed := 0
	for ref := range refSet(refs) {
		out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.usageTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: usageRefIDPrefix + ref},
			},
			ReturnValues: types.ReturnValueAllOld,
		})
		if err != nil {
			return removed, err
		}
		if len(out.Attributes) > 0 {
			removed++
		}
	}
	return removed, nil
}

func toUsageItem(rec entities.UsageRecord) usageItem {
	return usageItem{
		ID:             rec.ID,
		CodeKey:        entities.NormalizeCode(rec.Code),
		Code:           rec.Code,
		YearMonth:      rec.YearMonth,
		Date:           rec.Date,
		Hours:          rec.HoursConsumed,
		Studio:         string(rec.Studio),
		ReservationRef: rec.ReservationReference,
		Note:           rec.Note,
		CreatedAt:      rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUsageItem(it usageItem) entities.UsageRecord {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.UsageRecord{
		ID:                   it.ID,
		Code:                 it.Code,
		YearMonth:            it.YearMonth,
		Date:                 it.Date,
		HoursConsumed:        it.Hours,
		Studio:               entities.Studio(it.Studio),
		ReservationReference: it.ReservationRef,
		Note:                 it.Note,
		CreatedAt:            created,
	}
}
