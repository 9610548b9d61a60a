package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Postulant is a job seeker account.
type Postulant struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string        `bson:"name" json:"name"`
	Username     string        `bson:"username" json:"username"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password" json:"-"` // never JSON-encode
}
