package request

type MovieSessionRequest struct {
	Movie      string `json:"movie" validate:"required,uuid4"`
	CinemaHall string `json:"cinema_hall" validate:"required,uuid4"`
	ShowTime   string `json:"show_time" validate:"required"` // RFC 3339
}

// SessionListQuery carries the optional list filters. Malformed values
// yield an empty result set, not an error.
type SessionListQuery struct {
	Date  string // YYYY-MM-DD
	Movie string
}
