package entities

import "time"

type ClientKind string

const (
	ClientKindIndividual ClientKind = "individual"
	ClientKindRealEstate ClientKind = "real_estate"
)

func (k ClientKind) Valid() bool {
	return k == ClientKindIndividual || k == ClientKindRealEstate
}

// Client is the customer a Lead belongs to.
type Client struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	Kind      ClientKind `json:"kind"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
