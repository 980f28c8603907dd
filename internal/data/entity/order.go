package entity

import "github.com/google/uuid"

// Order owns its tickets; the two are only ever created together in
// one transaction and tickets cascade on delete.
type Order struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	Tickets []*Ticket
}
