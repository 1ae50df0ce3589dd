package database

import (
	"time"
)

type UserInfo struct {
	UserID         string    `dynamodbav:"user_id" json:"user_id"`
	FirstName      string    `dynamodbav:"first_name" json:"first_name"`
	LastName       string    `dynamodbav:"last_name" json:"last_name"`
	Email          string    `dynamodbav:"email" json:"email"`
	EducationLevel string    `dynamodbav:"education_level" json:"education_level"`
	FieldOfStudy   string    `dynamodbav:"field_of_study" json:"field_of_study"`
	Interests      []string  `dynamodbav:"interests" json:"interests"`
	Skills         []string  `dynamodbav:"skills" json:"skills"`
	CareerGoals    string    `dynamodbav:"career_goals" json:"career_goals"`
	CreationDate   time.Time `dynamodbav:"creation_date" json:"creation_date"`
}
