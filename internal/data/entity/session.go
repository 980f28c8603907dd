package entity

import (
	"time"

	"github.com/google/uuid"
)

type MovieSession struct {
	Base
	MovieID      uuid.UUID `db:"movie_id"`
	CinemaHallID uuid.UUID `db:"cinema_hall_id"`
	ShowTime     time.Time `db:"show_time"`
}
