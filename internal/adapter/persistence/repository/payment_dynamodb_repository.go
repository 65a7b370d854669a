package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"paydesk/internal/domain/entities"
	"paydesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultPaymentsTableName = "payments"

	// DynamoDB caps BatchWriteItem at 25 items per request.
	batchWriteChunkSize = 25
)

type paymentItem struct {
	ID                string  `dynamodbav:"id"`
	PayeeAddressLine1 string  `dynamodbav:"payee_address_line_1"`
	PayeeCity         string  `dynamodbav:"payee_city"`
	PayeeCountry      string  `dynamodbav:"payee_country"`
	PayeePostalCode   string  `dynamodbav:"payee_postal_code"`
	PayeePhoneNumber  string  `dynamodbav:"payee_phone_number"`
	PayeeEmail        string  `dynamodbav:"payee_email"`
	Currency          string  `dynamodbav:"currency"`
	DueAmount         float64 `dynamodbav:"due_amount"`
	DiscountPercent   float64 `dynamodbav:"discount_percent"`
	TaxPercent        float64 `dynamodbav:"tax_percent"`
	PayeeDueDate      string  `dynamodbav:"payee_due_date"`
	Status            string  `dynamodbav:"payee_payment_status"`
	TotalDue          float64 `dynamodbav:"total_due"`
	EvidenceFileID    string  `dynamodbav:"evidence_file_id,omitempty"`
}

// knownAttributes are the schema-owned document attributes; anything else on a
// stored item round-trips through Payment.Extra.
var knownAttributes = map[string]bool{
	"id":                          true,
	entities.FieldAddressLine1:    true,
	entities.FieldCity:            true,
	entities.FieldCountry:         true,
	entities.FieldPostalCode:      true,
	entities.FieldPhoneNumber:     true,
	entities.FieldEmail:           true,
	entities.FieldCurrency:        true,
	entities.FieldDueAmount:       true,
	entities.FieldDiscountPercent: true,
	entities.FieldTaxPercent:      true,
	entities.FieldDueDate:         true,
	entities.FieldStatus:          true,
	entities.FieldTotalDue:        true,
	entities.FieldEvidenceFileID:  true,
}

// PaymentDynamoRepository persists Payment documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Unknown fields are stored flat alongside the schema attributes, matching the
// document model the records were ingested from.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) InsertOne(ctx context.Context, p entities.Payment) (string, error) {
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	av, err := toPaymentAttributes(p)
	if err != nil {
		return "", err
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
		return "", err
	}
	return p.ID, nil
}

// InsertMany is the bulk-write path for batch ingestion. DynamoDB's
// BatchWriteItem is not transactional across items; the pipeline validates the
// whole batch before calling this, so nothing here is partially validated.
func (r *PaymentDynamoRepository) InsertMany(ctx context.Context, payments []entities.Payment) ([]string, error) {
	ids := make([]string, 0, len(payments))

	for start := 0; start < len(payments); start += batchWriteChunkSize {
		end := start + batchWriteChunkSize
		if end > len(payments) {
			end = len(payments)
		}

		writes := make([]types.WriteRequest, 0, end-start)
		for i := start; i < end; i++ {
			p := payments[i]
			if strings.TrimSpace(p.ID) == "" {
				p.ID = uuid.NewString()
			}
			av, err := toPaymentAttributes(p)
			if err != nil {
				return nil, err
			}
			writes = append(writes, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
			ids = append(ids, p.ID)
		}

		pending := map[string][]types.WriteRequest{r.tableName: writes}
		for len(pending[r.tableName]) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return nil, err
			}
			if len(out.UnprocessedItems[r.tableName]) == 0 {
				break
			}
			pending = out.UnprocessedItems
		}
	}
	return ids, nil
}

func (r *PaymentDynamoRepository) FindOne(ctx context.Context, id string) (entities.Payment, error) {
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
	return fromPaymentAttributes(out.Item)
}

// Find scans the table, optionally filtered by stored payment status, and
// applies skip/limit client-side while walking the scan pages.
func (r *PaymentDynamoRepository) Find(ctx context.Context, statusFilter string, skip, limit int) ([]entities.Payment, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if statusFilter != "" {
		input.FilterExpression = aws.String("#s = :s")
		input.ExpressionAttributeNames = map[string]string{"#s": entities.FieldStatus}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: statusFilter},
		}
	}

	payments := make([]entities.Payment, 0, limit)
	remainingToSkip := skip
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			if remainingToSkip > 0 {
				remainingToSkip--
				continue
			}
			p, err := fromPaymentAttributes(raw)
			if err != nil {
				return nil, err
			}
			payments = append(payments, p)
			if len(payments) == limit {
				return payments, nil
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return payments, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// UpdateOne applies a flat field patch via an update expression. A missing id
// reports matched == 0 through the conditional check, mirroring updateOne
// semantics of a document store.
func (r *PaymentDynamoRepository) UpdateOne(ctx context.Context, id string, patch map[string]any) (int, error) {
	if len(patch) == 0 {
		return 0, errors.New("empty patch")
	}

	names := map[string]string{"#id": "id"}
	values := map[string]types.AttributeValue{}
	sets := make([]string, 0, len(patch))

	i := 0
	for field, value := range patch {
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return 0, fmt.Errorf("marshal patch field %s: %w", field, err)
		}
		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		names[nameKey] = field
		values[valueKey] = av
		sets = append(sets, nameKey+" = "+valueKey)
		i++
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}

func (r *PaymentDynamoRepository) DeleteOne(ctx context.Context, id string) (int, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return 0, err
	}
	if len(out.Attributes) == 0 {
		return 0, nil
	}
	return 1, nil
}

func toPaymentAttributes(p entities.Payment) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(paymentItem{
		ID:                p.ID,
		PayeeAddressLine1: p.PayeeAddressLine1,
		PayeeCity:         p.PayeeCity,
		PayeeCountry:      p.PayeeCountry,
		PayeePostalCode:   p.PayeePostalCode,
		PayeePhoneNumber:  p.PayeePhoneNumber,
		PayeeEmail:        p.PayeeEmail,
		Currency:          p.Currency,
		DueAmount:         p.DueAmount,
		DiscountPercent:   p.DiscountPercent,
		TaxPercent:        p.TaxPercent,
		PayeeDueDate:      p.PayeeDueDate,
		Status:            string(p.Status),
		TotalDue:          p.TotalDue,
		EvidenceFileID:    p.EvidenceFileID,
	})
	if err != nil {
		return nil, err
	}

	for k, v := range p.Extra {
		if knownAttributes[k] {
			continue
		}
		extraAV, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal extra field %s: %w", k, err)
		}
		av[k] = extraAV
	}
	return av, nil
}

func fromPaymentAttributes(av map[string]types.AttributeValue) (entities.Payment, error) {
	var it paymentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Payment{}, err
	}

	p := entities.Payment{
		ID:                it.ID,
		PayeeAddressLine1: it.PayeeAddressLine1,
		PayeeCity:         it.PayeeCity,
		PayeeCountry:      it.PayeeCountry,
		PayeePostalCode:   it.PayeePostalCode,
		PayeePhoneNumber:  it.PayeePhoneNumber,
		PayeeEmail:        it.PayeeEmail,
		Currency:          it.Currency,
		DueAmount:         it.DueAmount,
		DiscountPercent:   it.DiscountPercent,
		TaxPercent:        it.TaxPercent,
		PayeeDueDate:      it.PayeeDueDate,
		Status:            entities.PaymentStatus(it.Status),
		TotalDue:          it.TotalDue,
		EvidenceFileID:    it.EvidenceFileID,
	}

	for k, raw := range av {
		if knownAttributes[k] {
			continue
		}
		var v any
		if err := attributevalue.Unmarshal(raw, &v); err != nil {
			return entities.Payment{}, fmt.Errorf("unmarshal extra field %s: %w", k, err)
		}
		if p.Extra == nil {
			p.Extra = map[string]any{}
		}
		p.Extra[k] = v
	}
	return p, nil
}
