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

const defaultServicesTableName = "services"

type serviceItem struct {
	ID                string `dynamodbav:"id"`
	WorkerID          string `dynamodbav:"worker_id"`
	NamaLayanan       string `dynamodbav:"nama_layanan"`
	Deskripsi         string `dynamodbav:"deskripsi,omitempty"`
	Harga             int64  `dynamodbav:"harga"`
	TipeLayanan       string `dynamodbav:"tipe_layanan"`
	StatusPersetujuan string `dynamodbav:"status_persetujuan"`
	CreatedAt         string `dynamodbav:"created_at,omitempty"`
}

// ServiceDynamoRepository reads the service catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) ListApproved(ctx context.Context) ([]entities.Service, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("status_persetujuan = :approved"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved": &types.AttributeValueMemberS{Value: string(entities.ApprovalStatusApproved)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Service, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceItem(it))
	}
	return items, nil
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:                it.ID,
		WorkerID:          it.WorkerID,
		NamaLayanan:       it.NamaLayanan,
		Deskripsi:         it.Deskripsi,
		Harga:             it.Harga,
		TipeLayanan:       entities.ServiceType(it.TipeLayanan),
		StatusPersetujuan: entities.ApprovalStatus(it.StatusPersetujuan),
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
