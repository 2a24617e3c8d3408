package repository

import (
	"context"
	"time"

	"paving_estimates/internal/domain/entities"
	"paving_estimates/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type rateItem struct {
	Price float64 `dynamodbav:"price"`
	Unit  string  `dynamodbav:"unit"`
}

type lineItem struct {
	Cost   float64  `dynamodbav:"cost"`
	Margin float64  `dynamodbav:"margin"`
	Name   string   `dynamodbav:"name"`
	Price  float64  `dynamodbav:"price"`
	Rate   rateItem `dynamodbav:"rate"`
	Time   float64  `dynamodbav:"time"`
	Type   string   `dynamodbav:"type"`
	Units  float64  `dynamodbav:"units"`
}

type addressItem struct {
	City    string `dynamodbav:"city"`
	Country string `dynamodbav:"country"`
	State   string `dynamodbav:"state"`
	Street  string `dynamodbav:"street"`
	Zip     string `dynamodbav:"zip"`
}

type estimateItem struct {
	ID              string       `dynamodbav:"id"`
	ContractorName  string       `dynamodbav:"contractor_name"`
	CustomerAddress *addressItem `dynamodbav:"customer_address,omitempty"`
	CustomerName    string       `dynamodbav:"customer_name"`
	Items           []lineItem   `dynamodbav:"items"`
	JobNumber       string       `dynamodbav:"job_number"`
	TotalCost       float64      `dynamodbav:"total_cost"`
	TotalMargin     float64      `dynamodbav:"total_margin"`
	TotalPrice      float64      `dynamodbav:"total_price"`
	CreatedAt       string       `dynamodbav:"created_at"`
	UpdatedAt       string       `dynamodbav:"updated_at"`
}

type estimateSummaryItem struct {
	ID             string `dynamodbav:"id"`
	ContractorName string `dynamodbav:"contractor_name"`
	CustomerName   string `dynamodbav:"customer_name"`
	JobNumber      string `dynamodbav:"job_number"`
}

// EstimateDynamoRepository persists Estimate records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Estimates are write-once: PutItem is guarded by attribute_not_exists so a
// generated id can never silently overwrite an existing record.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListSummaries(ctx context.Context) ([]entities.EstimateSummary, error) {
	summaries := []entities.EstimateSummary{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("#id, contractor_name, customer_name, job_number"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []estimateSummaryItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			summaries = append(summaries, entities.EstimateSummary{
				ID:             it.ID,
				ContractorName: it.ContractorName,
				CustomerName:   it.CustomerName,
				JobNumber:      it.JobNumber,
			})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return summaries, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	it := estimateItem{
		ID:             e.ID,
		ContractorName: e.ContractorName,
		CustomerName:   e.CustomerName,
		Items:          make([]lineItem, 0, len(e.Items)),
		JobNumber:      e.JobNumber,
		TotalCost:      e.TotalCost,
		TotalMargin:    e.TotalMargin,
		TotalPrice:     e.TotalPrice,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.CustomerAddress != nil {
		it.CustomerAddress = &addressItem{
			City:    e.CustomerAddress.City,
			Country: e.CustomerAddress.Country,
			State:   e.CustomerAddress.State,
			Street:  e.CustomerAddress.Street,
			Zip:     e.CustomerAddress.Zip,
		}
	}
	for _, item := range e.Items {
		it.Items = append(it.Items, lineItem{
			Cost:   item.Cost,
			Margin: item.Margin,
			Name:   item.Name,
			Price:  item.Price,
			Rate:   rateItem{Price: item.Rate.Price, Unit: item.Rate.Unit},
			Time:   item.Time,
			Type:   string(item.Type),
			Units:  item.Units,
		})
	}
	return it
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	e := entities.Estimate{
		ID:             it.ID,
		ContractorName: it.ContractorName,
		CustomerName:   it.CustomerName,
		Items:          make([]entities.Item, 0, len(it.Items)),
		JobNumber:      it.JobNumber,
		TotalCost:      it.TotalCost,
		TotalMargin:    it.TotalMargin,
		TotalPrice:     it.TotalPrice,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.CustomerAddress != nil {
		e.CustomerAddress = &entities.Address{
			City:    it.CustomerAddress.City,
			Country: it.CustomerAddress.Country,
			State:   it.CustomerAddress.State,
			Street:  it.CustomerAddress.Street,
			Zip:     it.CustomerAddress.Zip,
		}
	}
	for _, item := range it.Items {
		e.Items = append(e.Items, entities.Item{
			Cost:   item.Cost,
			Margin: item.Margin,
			Name:   item.Name,
			Price:  item.Price,
			Rate:   entities.Rate{Price: item.Rate.Price, Unit: item.Rate.Unit},
			Time:   item.Time,
			Type:   entities.ItemType(item.Type),
			Units:  item.Units,
		})
	}
	return e
}
