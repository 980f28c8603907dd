package request

type CreateGenreRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateActorRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type CreateCinemaHallRequest struct {
	Name       string `json:"name" validate:"required"`
	Rows       int    `json:"rows" validate:"required,gt=0"`
	SeatsInRow int    `json:"seats_in_row" validate:"required,gt=0"`
}
