package entity

import "github.com/google/uuid"

// Ticket claims one seat within one movie session. The database holds
// a unique constraint on (movie_session_id, row, seat).
type Ticket struct {
	BaseSimple
	MovieSessionID uuid.UUID `db:"movie_session_id"`
	OrderID        uuid.UUID `db:"order_id"`
	Row            int       `db:"row"`
	Seat           int       `db:"seat"`
}
