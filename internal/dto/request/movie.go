package request

type CreateMovieRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Duration    int      `json:"duration" validate:"required,gt=0"`
	Genres      []string `json:"genres" validate:"omitempty,dive,uuid4"`
	Actors      []string `json:"actors" validate:"omitempty,dive,uuid4"`
}

// MovieListQuery carries the optional list filters. Raw strings are
// parsed by the service; malformed ids match nothing.
type MovieListQuery struct {
	Genres string
	Actors string
	Title  string
}
