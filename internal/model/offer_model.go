package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Offer is a job posting published by a company.
type Offer struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string        `bson:"title" json:"title"`
	Employer    string        `bson:"employer" json:"employer"`
	Description string        `bson:"description" json:"description"`
	Skills      string        `bson:"skills" json:"skills"`
	Salary      string        `bson:"salary" json:"salary"`
}
