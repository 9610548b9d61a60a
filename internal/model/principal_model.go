package model

import "go.mongodb.org/mongo-driver/v2/bson"

// PrincipalKind selects which account collection a login is resolved against.
type PrincipalKind string

const (
	KindPostulant PrincipalKind = "postulant"
	KindCompany   PrincipalKind = "company"
)

// Valid reports whether k is one of the two known kinds.
func (k PrincipalKind) Valid() bool {
	return k == KindPostulant || k == KindCompany
}

// Principal is the kind-agnostic view of an authenticatable account, as
// returned by credential lookup. A postulant and a company sharing an email
// are distinct principals.
type Principal struct {
	ID           bson.ObjectID `json:"id"`
	Kind         PrincipalKind `json:"kind"`
	Name         string        `json:"name"`
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"` // never JSON-encode
}
