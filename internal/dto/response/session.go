package response

import (
	"time"

	"cinema-api/internal/data/entity"
)

// MovieSessionListResponse is the flat list shape with the display
// fields resolved from the movie and hall.
type MovieSessionListResponse struct {
	ID                 string    `json:"id"`
	ShowTime           time.Time `json:"show_time"`
	MovieTitle         string    `json:"movie_title"`
	CinemaHallName     string    `json:"cinema_hall_name"`
	CinemaHallCapacity int       `json:"cinema_hall_capacity"`
}

// MovieSessionDetailResponse expands the movie and hall in full.
type MovieSessionDetailResponse struct {
	ID         string             `json:"id"`
	ShowTime   time.Time          `json:"show_time"`
	Movie      MovieResponse      `json:"movie"`
	CinemaHall CinemaHallResponse `json:"cinema_hall"`
}

func MovieSessionToListResponse(session *entity.MovieSession, movie *entity.Movie, hall *entity.CinemaHall) MovieSessionListResponse {
	return MovieSessionListResponse{
		ID:                 session.ID.String(),
		ShowTime:           session.ShowTime,
		MovieTitle:         movie.Title,
		CinemaHallName:     hall.Name,
		CinemaHallCapacity: hall.Capacity(),
	}
}
