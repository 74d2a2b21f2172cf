package repository

import (
	"context"

	"tukangku/internal/domain/entities"
	"tukangku/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVouchersTableName = "vouchers"

type voucherItem struct {
	Code         string `dynamodbav:"code"`
	Type         string `dynamodbav:"type"`
	DiscountType string `dynamodbav:"discount_type"`
	Value        int64  `dynamodbav:"value"`
	MaxDiscount  int64  `dynamodbav:"max_discount,omitempty"`
	MinOrder     int64  `dynamodbav:"min_order,omitempty"`
	Status       string `dynamodbav:"status"`
	StartDate    string `dynamodbav:"start_date,omitempty"`
	EndDate      string `dynamodbav:"end_date,omitempty"`
	CreatedAt    string `dynamodbav:"created_at,omitempty"`
}

// VoucherDynamoRepository reads vouchers from DynamoDB.
//
// Table requirements:
//   - PK: code (string)

type VoucherDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVoucherRepository = (*VoucherDynamoRepository)(nil)

func NewVoucherDynamoRepository(ddb *dynamodb.Client) *VoucherDynamoRepository {
	return &VoucherDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VOUCHERS_TABLE", defaultVouchersTableName),
	}
}

func (r *VoucherDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Voucher, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		return entities.Voucher{}, err
	}
	if len(out.Item) == 0 {
		return entities.Voucher{}, nil
	}

	var it voucherItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Voucher{}, err
	}
	return entities.Voucher{
		Code:         it.Code,
		Type:         it.Type,
		DiscountType: entities.VoucherDiscountType(it.DiscountType),
		Value:        it.Value,
		MaxDiscount:  it.MaxDiscount,
		MinOrder:     it.MinOrder,
		Status:       it.Status,
		StartDate:    parseTime(it.StartDate),
		EndDate:      parseTime(it.EndDate),
		CreatedAt:    parseTime(it.CreatedAt),
	}, nil
}
