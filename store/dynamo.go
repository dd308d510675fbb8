package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/ohmgo/codec"
	"github.com/hupe1980/ohmgo/network"
)

// DynamoStore implements ExactStore on a DynamoDB table shared between
// the offline build step and any number of query processes.
//
// Table schema:
//   - Partition key: series (string) - the catalog identifier
//   - Sort key: resistance (number) - the canonical resistance key
//   - Attributes: topology and the three (magnitude, decade) pairs
//
// Create the table with:
//
//	aws dynamodb create-table \
//	  --table-name resistor-networks \
//	  --attribute-definitions AttributeName=series,AttributeType=S AttributeName=resistance,AttributeType=N \
//	  --key-schema AttributeName=series,KeyType=HASH AttributeName=resistance,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type DynamoStore struct {
	client    DDBClient
	tableName string
}

// DDBClient is the subset of DynamoDB operations the store uses.
type DDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// NewDynamoStore creates an exact store on the given table.
func NewDynamoStore(client DDBClient, tableName string) *DynamoStore {
	return &DynamoStore{client: client, tableName: tableName}
}

// resistanceKey formats the sort key. FormatFloat with precision -1
// produces the shortest exact representation, so the same float64
// always maps to the same item.
func resistanceKey(resistance float64) string {
	return strconv.FormatFloat(resistance, 'g', -1, 64)
}

// Lookup implements ExactStore.
func (s *DynamoStore) Lookup(ctx context.Context, catalogID string, resistance float64) (codec.Record, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"series":     &types.AttributeValueMemberS{Value: catalogID},
			"resistance": &types.AttributeValueMemberN{Value: resistanceKey(resistance)},
		},
	})
	if err != nil {
		return codec.Record{}, fmt.Errorf("dynamodb get: %w", err)
	}
	if len(out.Item) == 0 {
		return codec.Record{}, fmt.Errorf("catalog %s key %g: %w", catalogID, resistance, ErrNotFound)
	}
	return recordFromItem(out.Item, resistance)
}

// PutRecord writes one record, used by the offline export step.
func (s *DynamoStore) PutRecord(ctx context.Context, catalogID string, rec codec.Record) error {
	item := map[string]types.AttributeValue{
		"series":     &types.AttributeValueMemberS{Value: catalogID},
		"resistance": &types.AttributeValueMemberN{Value: resistanceKey(rec.Key())},
		"topology":   numberAttr(int(rec.Topology)),
	}
	for i, pair := range rec.Resistors {
		item[fmt.Sprintf("r%d", i+1)] = numberAttr(int(pair.Magnitude))
		item[fmt.Sprintf("o%d", i+1)] = numberAttr(int(pair.Decade))
	}

	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put: %w", err)
	}
	return nil
}

func numberAttr(v int) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(v)}
}

func recordFromItem(item map[string]types.AttributeValue, resistance float64) (codec.Record, error) {
	topology, err := byteAttr(item, "topology")
	if err != nil {
		return codec.Record{}, err
	}
	if !network.Topology(topology).Valid() {
		return codec.Record{}, fmt.Errorf("invalid topology attribute: %d", topology)
	}

	rec := codec.Record{
		Resistance: float32(resistance),
		Topology:   network.Topology(topology),
	}
	for i := range rec.Resistors {
		magnitude, err := byteAttr(item, fmt.Sprintf("r%d", i+1))
		if err != nil {
			return codec.Record{}, err
		}
		decade, err := byteAttr(item, fmt.Sprintf("o%d", i+1))
		if err != nil {
			return codec.Record{}, err
		}
		rec.Resistors[i] = codec.Pair{Magnitude: magnitude, Decade: decade}
	}
	return rec, nil
}

func byteAttr(item map[string]types.AttributeValue, name string) (uint8, error) {
	attr, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("missing or invalid %s attribute", name)
	}
	v, err := strconv.ParseUint(attr.Value, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("parse %s attribute: %w", name, err)
	}
	return uint8(v), nil
}
