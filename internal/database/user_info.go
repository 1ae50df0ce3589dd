package database

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const userInfoKey = "user_id"

type PutUserInfoParams struct {
	UserID         string
	FirstName      string
	LastName       string
	Email          string
	EducationLevel string
	FieldOfStudy   string
	Interests      []string
	Skills         []string
	CareerGoals    string
	// CreationDate defaults to the current time when zero.
	CreationDate time.Time
}

// PutUserInfo replaces the whole record stored under arg.UserID.
func (q *Queries) PutUserInfo(ctx context.Context, arg PutUserInfoParams) error {
	item := UserInfo{
		UserID:         arg.UserID,
		FirstName:      arg.FirstName,
		LastName:       arg.LastName,
		Email:          arg.Email,
		EducationLevel: arg.EducationLevel,
		FieldOfStudy:   arg.FieldOfStudy,
		Interests:      arg.Interests,
		Skills:         arg.Skills,
		CareerGoals:    arg.CareerGoals,
		CreationDate:   arg.CreationDate,
	}
	if item.CreationDate.IsZero() {
		item.CreationDate = time.Now().UTC()
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return &StoreError{Op: "put", Table: q.table, Kind: KindEncoding, Err: err}
	}

	_, err = q.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(q.table),
		Item:      av,
	})
	if err != nil {
		return &StoreError{Op: "put", Table: q.table, Kind: classify(err), Err: err}
	}
	return nil
}

// GetUserInfo returns ErrNotFound when the table holds no record for userID.
func (q *Queries) GetUserInfo(ctx context.Context, userID string) (UserInfo, error) {
	out, err := q.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(q.table),
		Key: map[string]types.AttributeValue{
			userInfoKey: &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return UserInfo{}, &StoreError{Op: "get", Table: q.table, Kind: classify(err), Err: err}
	}
	if out == nil || len(out.Item) == 0 {
		return UserInfo{}, ErrNotFound
	}

	var i UserInfo
	if err := attributevalue.UnmarshalMap(out.Item, &i); err != nil {
		return UserInfo{}, &StoreError{Op: "get", Table: q.table, Kind: KindEncoding, Err: err}
	}
	return i, nil
}
