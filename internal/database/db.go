package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DBTX is the subset of the DynamoDB client the queries need.
type DBTX interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

func New(db DBTX, table string) *Queries {
	return &Queries{db: db, table: table}
}

type Queries struct {
	db    DBTX
	table string
}

func (q *Queries) Table() string {
	return q.table
}
