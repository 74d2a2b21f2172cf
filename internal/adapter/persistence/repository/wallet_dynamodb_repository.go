package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"tukangku/internal/domain/entities"
	"tukangku/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWalletsTableName            = "wallets"
	defaultWalletTransactionsTableName = "wallet_transactions"
	walletTransactionsWorkerIDIndex    = "worker_id-index"
)

type walletItem struct {
	WorkerID       string `dynamodbav:"worker_id"`
	CurrentBalance int64  `dynamodbav:"current_balance"`
	UpdatedAt      string `dynamodbav:"updated_at,omitempty"`
}

type withdrawalDestinationItem struct {
	Type    string `dynamodbav:"type"`
	Account string `dynamodbav:"account"`
}

type walletTransactionItem struct {
	ID          string                     `dynamodbav:"id"`
	WorkerID    string                     `dynamodbav:"worker_id"`
	Type        string                     `dynamodbav:"type"`
	Amount      int64                      `dynamodbav:"amount"`
	Description string                     `dynamodbav:"description,omitempty"`
	Status      string                     `dynamodbav:"status"`
	OrderID     string                     `dynamodbav:"order_id,omitempty"`
	Destination *withdrawalDestinationItem `dynamodbav:"destination,omitempty"`
	Timestamp   string                     `dynamodbav:"timestamp"`
}

// WalletDynamoRepository persists the wallet ledger in DynamoDB.
//
// Table requirements:
//   - wallets: PK worker_id (string)
//   - wallet_transactions: PK id (string), GSI worker_id-index (PK: worker_id)
//
// The two mutating operations run as TransactWriteItems so the balance change
// and its ledger record commit as one unit. CreditForOrder additionally owns
// the completion write on the orders table: completing an order and paying the
// worker for it is a single atomic fact.

type WalletDynamoRepository struct {
	ddb               *dynamodb.Client
	walletsTable      string
	transactionsTable string
	ordersTable       string
}

var _ interfaces.IWalletRepository = (*WalletDynamoRepository)(nil)

func NewWalletDynamoRepository(ddb *dynamodb.Client) *WalletDynamoRepository {
	return &WalletDynamoRepository{
		ddb:               ddb,
		walletsTable:      getenvDefault("WALLETS_TABLE", defaultWalletsTableName),
		transactionsTable: getenvDefault("WALLET_TRANSACTIONS_TABLE", defaultWalletTransactionsTableName),
		ordersTable:       getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *WalletDynamoRepository) GetByWorkerID(ctx context.Context, workerID string) (entities.Wallet, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.walletsTable),
		Key: map[string]types.AttributeValue{
			"worker_id": &types.AttributeValueMemberS{Value: workerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Wallet{}, err
	}
	if len(out.Item) == 0 {
		return entities.Wallet{}, nil
	}

	var it walletItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Wallet{}, err
	}
	return entities.Wallet{
		WorkerID:       it.WorkerID,
		CurrentBalance: it.CurrentBalance,
		UpdatedAt:      parseTime(it.UpdatedAt),
	}, nil
}

func (r *WalletDynamoRepository) ListTransactions(ctx context.Context, workerID string) ([]entities.WalletTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.transactionsTable),
		IndexName:              aws.String(walletTransactionsWorkerIDIndex),
		KeyConditionExpression: aws.String("worker_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WalletTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it walletTransactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWalletTransactionItem(it))
	}

	// Newest first; the GSI has no sort key.
	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items, nil
}

func (r *WalletDynamoRepository) CreditForOrder(ctx context.Context, ord entities.Order, amount int64) (entities.Order, error) {
	now := time.Now().UTC()
	nowStr := now.Format(time.RFC3339Nano)

	txItem := walletTransactionItem{
		ID:          newTransactionID(),
		WorkerID:    ord.WorkerID,
		Type:        string(entities.WalletTransactionCashIn),
		Amount:      amount,
		Description: "Payout for completed order " + ord.ID,
		Status:      string(entities.WalletTransactionSuccess),
		OrderID:     ord.ID,
		Timestamp:   nowStr,
	}
	txAV, err := attributevalue.MarshalMap(txItem)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Complete the order, re-validating the preconditions inside
				// the transaction: the loser of a double-complete race fails
				// here and nothing below applies.
				Update: &types.Update{
					TableName: aws.String(r.ordersTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: ord.ID},
					},
					ConditionExpression: aws.String("#status = :from AND payment_status = :paid"),
					UpdateExpression:    aws.String("SET #status = :completed, completed_at = :now"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":from":      &types.AttributeValueMemberS{Value: string(ord.Status)},
						":paid":      &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
						":completed": &types.AttributeValueMemberS{Value: string(entities.OrderStatusCompleted)},
						":now":       &types.AttributeValueMemberS{Value: nowStr},
					},
				},
			},
			{
				// ADD on a missing item initializes the balance, which is how
				// wallets get created lazily on first credit.
				Update: &types.Update{
					TableName: aws.String(r.walletsTable),
					Key: map[string]types.AttributeValue{
						"worker_id": &types.AttributeValueMemberS{Value: ord.WorkerID},
					},
					UpdateExpression: aws.String("SET updated_at = :now ADD current_balance :amount"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: int64ToString(amount)},
						":now":    &types.AttributeValueMemberS{Value: nowStr},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.transactionsTable),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionFailure(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}

	ord.Status = entities.OrderStatusCompleted
	ord.CompletedAt = now
	return ord, nil
}

func (r *WalletDynamoRepository) Withdraw(ctx context.Context, workerID string, tx entities.WalletTransaction) (entities.WalletTransaction, error) {
	now := time.Now().UTC()
	tx.ID = newTransactionID()
	tx.WorkerID = workerID
	tx.Timestamp = now

	txAV, err := attributevalue.MarshalMap(toWalletTransactionItem(tx))
	if err != nil {
		return entities.WalletTransaction{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.walletsTable),
					Key: map[string]types.AttributeValue{
						"worker_id": &types.AttributeValueMemberS{Value: workerID},
					},
					ConditionExpression: aws.String("current_balance >= :amount"),
					UpdateExpression:    aws.String("SET updated_at = :now ADD current_balance :neg"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: int64ToString(tx.Amount)},
						":neg":    &types.AttributeValueMemberN{Value: int64ToString(-tx.Amount)},
						":now":    &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.transactionsTable),
					Item:                txAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionFailure(err) {
			return entities.WalletTransaction{}, nil
		}
		return entities.WalletTransaction{}, err
	}
	return tx, nil
}

func isTransactionConditionFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toWalletTransactionItem(tx entities.WalletTransaction) walletTransactionItem {
	it := walletTransactionItem{
		ID:          tx.ID,
		WorkerID:    tx.WorkerID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: tx.Description,
		Status:      string(tx.Status),
		OrderID:     tx.OrderID,
		Timestamp:   timeToString(tx.Timestamp),
	}
	if tx.Destination != nil {
		it.Destination = &withdrawalDestinationItem{Type: tx.Destination.Type, Account: tx.Destination.Account}
	}
	return it
}

func fromWalletTransactionItem(it walletTransactionItem) entities.WalletTransaction {
	tx := entities.WalletTransaction{
		ID:          it.ID,
		WorkerID:    it.WorkerID,
		Type:        entities.WalletTransactionType(it.Type),
		Amount:      it.Amount,
		Description: it.Description,
		Status:      entities.WalletTransactionStatus(it.Status),
		OrderID:     it.OrderID,
		Timestamp:   parseTime(it.Timestamp),
	}
	if it.Destination != nil {
		tx.Destination = &entities.WithdrawalDestination{Type: it.Destination.Type, Account: it.Destination.Account}
	}
	return tx
}
