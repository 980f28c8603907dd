package entity

import "github.com/google/uuid"

// Join rows carry an explicit sequence so genre/actor lists read back
// in insertion order.

type MovieGenre struct {
	MovieID  uuid.UUID `db:"movie_id"`
	GenreID  uuid.UUID `db:"genre_id"`
	Sequence int       `db:"sequence"`
}

type MovieActor struct {
	MovieID  uuid.UUID `db:"movie_id"`
	ActorID  uuid.UUID `db:"actor_id"`
	Sequence int       `db:"sequence"`
}
