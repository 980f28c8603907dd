package request

// TicketRequest claims one seat. Row and seat bounds are validated by
// the booking engine against the session's hall, not by struct tags,
// so the error can name the valid range.
type TicketRequest struct {
	MovieSessionID string `json:"movie_session" validate:"required,uuid4"`
	Row            int    `json:"row"`
	Seat           int    `json:"seat"`
}

type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}
