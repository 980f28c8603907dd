package usecase

import (
	"context"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	// PlaceOrder validates every ticket in caller order and commits
	// the order plus all tickets in one transaction, or nothing.
	PlaceOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetUserOrders(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if len(req.Tickets) == 0 {
		return nil, utils.NewValidationErrorf("an order must contain at least one ticket")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Place order validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError("validation failed", errs)
	}

	now := time.Now()
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID: userID,
	}

	// Sessions and halls are memoized so a batch for one session does
	// not re-read the grid per ticket.
	sessions := make(map[uuid.UUID]*entity.MovieSession)
	halls := make(map[uuid.UUID]*entity.CinemaHall)

	for _, tr := range req.Tickets {
		sessionID, err := uuid.Parse(tr.MovieSessionID)
		if err != nil {
			return nil, utils.NewValidationErrorf("invalid movie session id %s", tr.MovieSessionID)
		}

		session, ok := sessions[sessionID]
		if !ok {
			session, err = s.repo.MovieSession.FindByID(ctx, sessionID)
			if err != nil {
				return nil, err
			}
			if session == nil {
				return nil, utils.NewNotFoundError("movie session %s not found", sessionID.String())
			}
			sessions[sessionID] = session
		}

		hall, ok := halls[session.CinemaHallID]
		if !ok {
			hall, err = s.repo.Hall.FindByID(ctx, session.CinemaHallID)
			if err != nil {
				return nil, err
			}
			if hall == nil {
				return nil, utils.NewInternalError("cinema hall missing for movie session", nil)
			}
			halls[session.CinemaHallID] = hall
		}

		// Seat grid bounds come from the hall at booking time, so a
		// hall edit moves the bounds for existing sessions too.
		if tr.Row < 1 || tr.Row > hall.Rows {
			return nil, utils.NewValidationErrorf(
				"row %d is invalid, must be between 1 and %d", tr.Row, hall.Rows,
			)
		}
		if tr.Seat < 1 || tr.Seat > hall.SeatsInRow {
			return nil, utils.NewValidationErrorf(
				"seat %d is invalid, must be between 1 and %d", tr.Seat, hall.SeatsInRow,
			)
		}

		order.Tickets = append(order.Tickets, &entity.Ticket{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			MovieSessionID: sessionID,
			OrderID:        order.ID,
			Row:            tr.Row,
			Seat:           tr.Seat,
		})
	}

	// The availability check and all inserts happen inside one
	// transaction; racing orders for the same seat are arbitrated by
	// the unique constraint and the loser gets a conflict error.
	if err := s.repo.Order.CreateWithTickets(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("ticket_count", len(order.Tickets)),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	orders, err := s.repo.Order.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, err
	}

	total, err := s.repo.Order.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user orders", zap.Error(err))
		return nil, err
	}

	orderResponses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = response.OrderToResponse(order)
	}

	return response.NewPaginatedResponse(orderResponses, req.Page, req.PerPage, total), nil
}

func (s *orderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*response.OrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, utils.NewNotFoundError("order %s not found", orderID)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Orders are visible to their owner only; an existing order of
	// another user looks like a missing one.
	if order == nil || order.UserID != userID {
		return nil, utils.NewNotFoundError("order %s not found", orderID)
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}
