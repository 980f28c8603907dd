package response

import (
	"time"

	"cinema-api/internal/data/entity"
)

type TicketResponse struct {
	ID             string `json:"id"`
	MovieSessionID string `json:"movie_session"`
	Row            int    `json:"row"`
	Seat           int    `json:"seat"`
}

type OrderResponse struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	tickets := make([]TicketResponse, len(order.Tickets))
	for i, ticket := range order.Tickets {
		tickets[i] = TicketResponse{
			ID:             ticket.ID.String(),
			MovieSessionID: ticket.MovieSessionID.String(),
			Row:            ticket.Row,
			Seat:           ticket.Seat,
		}
	}

	return OrderResponse{
		ID:        order.ID.String(),
		CreatedAt: order.CreatedAt,
		Tickets:   tickets,
	}
}
