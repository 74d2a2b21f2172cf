package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tukangku/internal/domain/entities"
	"tukangku/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersCustomerIDIndex  = "customer_id-index"
	ordersWorkerIDIndex    = "worker_id-index"
)

type orderItem struct {
	ID                 string `dynamodbav:"id"`
	CustomerID         string `dynamodbav:"customer_id"`
	WorkerID           string `dynamodbav:"worker_id"`
	ServiceID          string `dynamodbav:"service_id"`
	Harga              int64  `dynamodbav:"harga"`
	TipeLayanan        string `dynamodbav:"tipe_layanan"`
	QuotedPrice        int64  `dynamodbav:"quoted_price,omitempty"`
	FinalPrice         int64  `dynamodbav:"final_price,omitempty"`
	Discount           int64  `dynamodbav:"discount,omitempty"`
	AppliedVoucher     string `dynamodbav:"applied_voucher,omitempty"`
	Status             string `dynamodbav:"status"`
	PaymentStatus      string `dynamodbav:"payment_status"`
	FinalPaymentStatus string `dynamodbav:"final_payment_status,omitempty"`
	WorkerAccess       bool   `dynamodbav:"worker_access"`
	JadwalPerbaikan    string `dynamodbav:"jadwal_perbaikan"`
	Catatan            string `dynamodbav:"catatan,omitempty"`
	HasBeenReviewed    bool   `dynamodbav:"has_been_reviewed"`
	DibuatPada         string `dynamodbav:"dibuat_pada"`
	PaidAt             string `dynamodbav:"paid_at,omitempty"`
	FinalPaidAt        string `dynamodbav:"final_paid_at,omitempty"`
	QuoteProposedAt    string `dynamodbav:"quote_proposed_at,omitempty"`
	QuoteRespondedAt   string `dynamodbav:"quote_responded_at,omitempty"`
	CompletedAt        string `dynamodbav:"completed_at,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: worker_id-index (PK: worker_id)
//
// State-machine transitions are conditional updates keyed on the current
// status; settlement updates are keyed on the payment-status field of the leg
// they settle. A failed condition returns a zero Order and a nil error.

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

func (r *OrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error) {
	return r.queryIndex(ctx, ordersCustomerIDIndex, "customer_id", customerID)
}

func (r *OrderDynamoRepository) ListByWorkerID(ctx context.Context, workerID string) ([]entities.Order, error) {
	return r.queryIndex(ctx, ordersWorkerIDIndex, "worker_id", workerID)
}

func (r *OrderDynamoRepository) ListActiveByWorkerSchedule(ctx context.Context, workerID string, slot time.Time, statuses []entities.OrderStatus) ([]entities.Order, error) {
	values := map[string]types.AttributeValue{
		":wid":  &types.AttributeValueMemberS{Value: workerID},
		":slot": &types.AttributeValueMemberS{Value: timeToString(slot)},
	}

	filter := "jadwal_perbaikan = :slot AND #status IN ("
	for i, s := range statuses {
		ph := fmt.Sprintf(":s%d", i)
		if i > 0 {
			filter += ", "
		}
		filter += ph
		values[ph] = &types.AttributeValueMemberS{Value: string(s)}
	}
	filter += ")"

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(ordersWorkerIDIndex),
		KeyConditionExpression:    aws.String("worker_id = :wid"),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalOrders(out.Items)
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, "#status = :from", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to"
		vals := map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		}
		names := map[string]string{"#status": "status"}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) ForceStatus(ctx context.Context, id string, to entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, "", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to"
		vals := map[string]types.AttributeValue{
			":to": &types.AttributeValueMemberS{Value: string(to)},
		}
		names := map[string]string{"#status": "status"}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) SetQuote(ctx context.Context, id string, price int64) (entities.Order, error) {
	return r.update(ctx, id, "#status = :from", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to, quoted_price = :price, quote_proposed_at = :now"
		vals := map[string]types.AttributeValue{
			":from":  &types.AttributeValueMemberS{Value: string(entities.OrderStatusAccepted)},
			":to":    &types.AttributeValueMemberS{Value: string(entities.OrderStatusQuoteProposed)},
			":price": &types.AttributeValueMemberN{Value: int64ToString(price)},
			":now":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{"#status": "status"}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) ApplyQuoteDecision(ctx context.Context, id string, accept bool) (entities.Order, error) {
	return r.update(ctx, id, "#status = :from", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		vals := map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(entities.OrderStatusQuoteProposed)},
			":now":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{"#status": "status"}

		if accept {
			// The quoted price becomes the settled price of the order.
			vals[":to"] = &types.AttributeValueMemberS{Value: string(entities.OrderStatusQuoteAccepted)}
			return "SET #status = :to, final_price = quoted_price, quote_responded_at = :now", vals, names
		}
		vals[":to"] = &types.AttributeValueMemberS{Value: string(entities.OrderStatusQuoteRejected)}
		return "SET #status = :to, quote_responded_at = :now", vals, names
	})
}

func (r *OrderDynamoRepository) MarkInitialPaid(ctx context.Context, id string, nextStatus entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, "payment_status <> :paid", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET payment_status = :paid, worker_access = :access, #status = :next, paid_at = :now"
		vals := map[string]types.AttributeValue{
			":paid":   &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
			":access": &types.AttributeValueMemberBOOL{Value: true},
			":next":   &types.AttributeValueMemberS{Value: string(nextStatus)},
			":now":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{"#status": "status"}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) MarkInitialFailed(ctx context.Context, id string) (entities.Order, error) {
	return r.update(ctx, id, "payment_status <> :paid", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET payment_status = :failed, worker_access = :access, #status = :cancelled"
		vals := map[string]types.AttributeValue{
			":paid":      &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
			":failed":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusFailed)},
			":access":    &types.AttributeValueMemberBOOL{Value: false},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.OrderStatusCancelled)},
		}
		names := map[string]string{"#status": "status"}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) MarkFinalPaid(ctx context.Context, id string, nextStatus entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, "final_payment_status <> :paid", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET final_payment_status = :paid, #status = :next, final_paid_at = :now"
		vals := map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
			":next": &types.AttributeValueMemberS{Value: string(nextStatus)},
			":now":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{"#status": "status"}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) MarkFinalFailed(ctx context.Context, id string) (entities.Order, error) {
	return r.update(ctx, id, "final_payment_status <> :paid", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET final_payment_status = :failed"
		vals := map[string]types.AttributeValue{
			":paid":   &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
			":failed": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusFailed)},
		}
		return expr, vals, nil
	})
}

func (r *OrderDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(key + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalOrders(out.Items)
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	cond := "attribute_exists(#id)"
	if condition != "" {
		cond += " AND " + condition
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
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

func unmarshalOrders(raw []map[string]types.AttributeValue) ([]entities.Order, error) {
	items := make([]entities.Order, 0, len(raw))
	for _, m := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOrderItem(it))
	}
	return items, nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                 o.ID,
		CustomerID:         o.CustomerID,
		WorkerID:           o.WorkerID,
		ServiceID:          o.ServiceID,
		Harga:              o.Harga,
		TipeLayanan:        string(o.TipeLayanan),
		QuotedPrice:        o.QuotedPrice,
		FinalPrice:         o.FinalPrice,
		Discount:           o.Discount,
		AppliedVoucher:     o.AppliedVoucher,
		Status:             string(o.Status),
		PaymentStatus:      string(o.PaymentStatus),
		FinalPaymentStatus: string(o.FinalPaymentStatus),
		WorkerAccess:       o.WorkerAccess,
		JadwalPerbaikan:    timeToString(o.JadwalPerbaikan),
		Catatan:            o.Catatan,
		HasBeenReviewed:    o.HasBeenReviewed,
		DibuatPada:         timeToString(o.DibuatPada),
		PaidAt:             timeToString(o.PaidAt),
		FinalPaidAt:        timeToString(o.FinalPaidAt),
		QuoteProposedAt:    timeToString(o.QuoteProposedAt),
		QuoteRespondedAt:   timeToString(o.QuoteRespondedAt),
		CompletedAt:        timeToString(o.CompletedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		WorkerID:           it.WorkerID,
		ServiceID:          it.ServiceID,
		Harga:              it.Harga,
		TipeLayanan:        entities.ServiceType(it.TipeLayanan),
		QuotedPrice:        it.QuotedPrice,
		FinalPrice:         it.FinalPrice,
		Discount:           it.Discount,
		AppliedVoucher:     it.AppliedVoucher,
		Status:             entities.OrderStatus(it.Status),
		PaymentStatus:      entities.PaymentStatus(it.PaymentStatus),
		FinalPaymentStatus: entities.PaymentStatus(it.FinalPaymentStatus),
		WorkerAccess:       it.WorkerAccess,
		JadwalPerbaikan:    parseTime(it.JadwalPerbaikan),
		Catatan:            it.Catatan,
		HasBeenReviewed:    it.HasBeenReviewed,
		DibuatPada:         parseTime(it.DibuatPada),
		PaidAt:             parseTime(it.PaidAt),
		FinalPaidAt:        parseTime(it.FinalPaidAt),
		QuoteProposedAt:    parseTime(it.QuoteProposedAt),
		QuoteRespondedAt:   parseTime(it.QuoteRespondedAt),
		CompletedAt:        parseTime(it.CompletedAt),
	}
}
