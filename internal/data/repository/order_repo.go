package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type OrderRepository interface {
	// CreateWithTickets persists the order and every ticket in one
	// transaction. A taken seat surfaces as a conflict error and
	// nothing is written.
	CreateWithTickets(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) CreateWithTickets(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order transaction", zap.Error(err))
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (id, user_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err = tx.Exec(ctx, orderQuery,
		order.ID,
		order.UserID,
		order.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order for user %s: %w", order.UserID.String(), err)
	}

	existsQuery := `
		SELECT EXISTS (
			SELECT 1 FROM tickets
			WHERE movie_session_id = $1 AND "row" = $2 AND seat = $3
		)
	`
	ticketQuery := `
		INSERT INTO tickets (id, movie_session_id, order_id, "row", seat, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	// Tickets go in caller order so the first failing ticket decides
	// the reported error.
	for _, ticket := range order.Tickets {
		var taken bool
		err := tx.QueryRow(ctx, existsQuery, ticket.MovieSessionID, ticket.Row, ticket.Seat).Scan(&taken)
		if err != nil {
			r.log.Error("Failed to check seat availability",
				zap.Error(err),
				zap.String("movie_session_id", ticket.MovieSessionID.String()),
			)
			return fmt.Errorf("check seat availability: %w", err)
		}
		if taken {
			return utils.NewConflictError(
				"seat %d in row %d is already taken for movie session %s",
				ticket.Seat, ticket.Row, ticket.MovieSessionID.String(),
			)
		}

		_, err = tx.Exec(ctx, ticketQuery,
			ticket.ID,
			ticket.MovieSessionID,
			ticket.OrderID,
			ticket.Row,
			ticket.Seat,
			ticket.CreatedAt,
		)
		if err != nil {
			// A concurrent order can slip between the check and the
			// insert; the unique constraint closes that window.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return utils.NewConflictError(
					"seat %d in row %d is already taken for movie session %s",
					ticket.Seat, ticket.Row, ticket.MovieSessionID.String(),
				)
			}

			r.log.Error("Failed to create ticket",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
				zap.Int("row", ticket.Row),
				zap.Int("seat", ticket.Seat),
			)
			return fmt.Errorf("create ticket row %d seat %d: %w", ticket.Row, ticket.Seat, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return utils.NewConflictError("seat already taken for this movie session")
		}

		r.log.Error("Failed to commit order transaction",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
		return fmt.Errorf("commit order transaction: %w", err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	tickets, err := r.findTickets(ctx, []uuid.UUID{order.ID})
	if err != nil {
		return nil, err
	}
	order.Tickets = tickets[order.ID]

	return &order, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find orders by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	var orderIDs []uuid.UUID
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
		orderIDs = append(orderIDs, order.ID)
	}
	rows.Close()

	if len(orders) == 0 {
		return orders, nil
	}

	tickets, err := r.findTickets(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		order.Tickets = tickets[order.ID]
	}

	return orders, nil
}

func (r *orderRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count orders by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count orders by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *orderRepository) findTickets(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]*entity.Ticket, error) {
	query := `
		SELECT id, movie_session_id, order_id, "row", seat, created_at
		FROM tickets
		WHERE order_id = ANY($1)
		ORDER BY created_at, "row", seat
	`

	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		r.log.Error("Failed to find tickets by order IDs", zap.Error(err))
		return nil, fmt.Errorf("find tickets by order IDs: %w", err)
	}
	defer rows.Close()

	tickets := make(map[uuid.UUID][]*entity.Ticket)
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.MovieSessionID,
			&ticket.OrderID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets[ticket.OrderID] = append(tickets[ticket.OrderID], &ticket)
	}

	return tickets, nil
}
