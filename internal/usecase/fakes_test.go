package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeTokenRepo struct {
	tokens map[string]*entity.AuthToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*entity.AuthToken)}
}

func (f *fakeTokenRepo) Create(_ context.Context, token *entity.AuthToken) error {
	f.tokens[token.Token] = token
	return nil
}

func (f *fakeTokenRepo) FindValidToken(_ context.Context, token string) (*entity.AuthToken, error) {
	t, ok := f.tokens[token]
	if !ok || t.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return t, nil
}

type fakeGenreRepo struct {
	genres map[uuid.UUID]*entity.Genre
}

func newFakeGenreRepo() *fakeGenreRepo {
	return &fakeGenreRepo{genres: make(map[uuid.UUID]*entity.Genre)}
}

func (f *fakeGenreRepo) Create(_ context.Context, genre *entity.Genre) error {
	f.genres[genre.ID] = genre
	return nil
}

func (f *fakeGenreRepo) FindAll(_ context.Context) ([]*entity.Genre, error) {
	out := make([]*entity.Genre, 0, len(f.genres))
	for _, genre := range f.genres {
		out = append(out, genre)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeGenreRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Genre, error) {
	return f.genres[id], nil
}

func (f *fakeGenreRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Genre, error) {
	var out []*entity.Genre
	for _, id := range ids {
		if genre, ok := f.genres[id]; ok {
			out = append(out, genre)
		}
	}
	return out, nil
}

type fakeActorRepo struct {
	actors map[uuid.UUID]*entity.Actor
}

func newFakeActorRepo() *fakeActorRepo {
	return &fakeActorRepo{actors: make(map[uuid.UUID]*entity.Actor)}
}

func (f *fakeActorRepo) Create(_ context.Context, actor *entity.Actor) error {
	f.actors[actor.ID] = actor
	return nil
}

func (f *fakeActorRepo) FindAll(_ context.Context) ([]*entity.Actor, error) {
	out := make([]*entity.Actor, 0, len(f.actors))
	for _, actor := range f.actors {
		out = append(out, actor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	return out, nil
}

func (f *fakeActorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Actor, error) {
	return f.actors[id], nil
}

func (f *fakeActorRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Actor, error) {
	var out []*entity.Actor
	for _, id := range ids {
		if actor, ok := f.actors[id]; ok {
			out = append(out, actor)
		}
	}
	return out, nil
}

type fakeHallRepo struct {
	halls map[uuid.UUID]*entity.CinemaHall
}

func newFakeHallRepo() *fakeHallRepo {
	return &fakeHallRepo{halls: make(map[uuid.UUID]*entity.CinemaHall)}
}

func (f *fakeHallRepo) Create(_ context.Context, hall *entity.CinemaHall) error {
	f.halls[hall.ID] = hall
	return nil
}

func (f *fakeHallRepo) FindAll(_ context.Context) ([]*entity.CinemaHall, error) {
	out := make([]*entity.CinemaHall, 0, len(f.halls))
	for _, hall := range f.halls {
		out = append(out, hall)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeHallRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CinemaHall, error) {
	return f.halls[id], nil
}

type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
	genres map[uuid.UUID][]uuid.UUID // movie -> genre ids in order
	actors map[uuid.UUID][]uuid.UUID

	genreRepo *fakeGenreRepo
	actorRepo *fakeActorRepo
}

func newFakeMovieRepo(genreRepo *fakeGenreRepo, actorRepo *fakeActorRepo) *fakeMovieRepo {
	return &fakeMovieRepo{
		movies:    make(map[uuid.UUID]*entity.Movie),
		genres:    make(map[uuid.UUID][]uuid.UUID),
		actors:    make(map[uuid.UUID][]uuid.UUID),
		genreRepo: genreRepo,
		actorRepo: actorRepo,
	}
}

func (f *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error {
	f.movies[movie.ID] = movie
	f.genres[movie.ID] = genreIDs
	f.actors[movie.ID] = actorIDs
	return nil
}

func (f *fakeMovieRepo) FindAll(_ context.Context, filter repository.MovieFilter) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, movie := range f.movies {
		if filter.Title != "" && !strings.Contains(strings.ToLower(movie.Title), strings.ToLower(filter.Title)) {
			continue
		}
		if len(filter.GenreIDs) > 0 && !hasAny(f.genres[movie.ID], filter.GenreIDs) {
			continue
		}
		if len(filter.ActorIDs) > 0 && !hasAny(f.actors[movie.ID], filter.ActorIDs) {
			continue
		}
		out = append(out, movie)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func hasAny(have, want []uuid.UUID) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (f *fakeMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	return f.movies[id], nil
}

func (f *fakeMovieRepo) FindGenres(_ context.Context, movieID uuid.UUID) ([]*entity.Genre, error) {
	var out []*entity.Genre
	for _, id := range f.genres[movieID] {
		out = append(out, f.genreRepo.genres[id])
	}
	return out, nil
}

func (f *fakeMovieRepo) FindActors(_ context.Context, movieID uuid.UUID) ([]*entity.Actor, error) {
	var out []*entity.Actor
	for _, id := range f.actors[movieID] {
		out = append(out, f.actorRepo.actors[id])
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.MovieSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.MovieSession)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.MovieSession) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) FindAll(_ context.Context, filter repository.SessionFilter) ([]*entity.MovieSession, error) {
	var out []*entity.MovieSession
	for _, session := range f.sessions {
		if filter.Date != nil {
			y1, m1, d1 := session.ShowTime.Date()
			y2, m2, d2 := filter.Date.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		if filter.MovieID != nil && session.MovieID != *filter.MovieID {
			continue
		}
		out = append(out, session)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ShowTime.Before(out[j].ShowTime) })
	return out, nil
}

func (f *fakeSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.MovieSession, error) {
	return f.sessions[id], nil
}

func (f *fakeSessionRepo) Update(_ context.Context, session *entity.MovieSession) error {
	if _, ok := f.sessions[session.ID]; !ok {
		return fmt.Errorf("movie session %s does not exist", session.ID)
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.sessions[id]; !ok {
		return fmt.Errorf("movie session %s does not exist", id)
	}
	delete(f.sessions, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	seats  map[string]bool // session/row/seat
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[uuid.UUID]*entity.Order),
		seats:  make(map[string]bool),
	}
}

func seatKey(sessionID uuid.UUID, row, seat int) string {
	return fmt.Sprintf("%s/%d/%d", sessionID, row, seat)
}

// CreateWithTickets mirrors the transactional contract: either every
// ticket claims its seat or nothing is recorded.
func (f *fakeOrderRepo) CreateWithTickets(_ context.Context, order *entity.Order) error {
	claimed := make(map[string]bool, len(order.Tickets))
	for _, ticket := range order.Tickets {
		key := seatKey(ticket.MovieSessionID, ticket.Row, ticket.Seat)
		if f.seats[key] || claimed[key] {
			return utils.NewConflictError(
				"seat %d in row %d is already taken for movie session %s",
				ticket.Seat, ticket.Row, ticket.MovieSessionID.String(),
			)
		}
		claimed[key] = true
	}

	for key := range claimed {
		f.seats[key] = true
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var all []*entity.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			all = append(all, order)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeOrderRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, order := range f.orders {
		if order.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeStore struct {
	user    *fakeUserRepo
	token   *fakeTokenRepo
	genre   *fakeGenreRepo
	actor   *fakeActorRepo
	hall    *fakeHallRepo
	movie   *fakeMovieRepo
	session *fakeSessionRepo
	order   *fakeOrderRepo
}

func newFakeStore() (*fakeStore, *repository.Repository) {
	genre := newFakeGenreRepo()
	actor := newFakeActorRepo()

	store := &fakeStore{
		user:    newFakeUserRepo(),
		token:   newFakeTokenRepo(),
		genre:   genre,
		actor:   actor,
		hall:    newFakeHallRepo(),
		movie:   newFakeMovieRepo(genre, actor),
		session: newFakeSessionRepo(),
		order:   newFakeOrderRepo(),
	}

	repo := &repository.Repository{
		User:         store.user,
		Token:        store.token,
		Genre:        store.genre,
		Actor:        store.actor,
		Hall:         store.hall,
		Movie:        store.movie,
		MovieSession: store.session,
		Order:        store.order,
	}

	return store, repo
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func requireKind(t *testing.T, err error, kind utils.ErrorKind) *utils.AppError {
	t.Helper()
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, kind, appErr.Kind)
	return appErr
}

// ---- seed helpers ----

func seedHall(store *fakeStore, name string, rows, seatsInRow int) *entity.CinemaHall {
	hall := &entity.CinemaHall{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:       name,
		Rows:       rows,
		SeatsInRow: seatsInRow,
	}
	store.hall.halls[hall.ID] = hall
	return hall
}

func seedMovie(store *fakeStore, title string) *entity.Movie {
	movie := &entity.Movie{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Title:       title,
		Description: title + " description",
		Duration:    120,
	}
	store.movie.movies[movie.ID] = movie
	return movie
}

func seedSession(store *fakeStore, movie *entity.Movie, hall *entity.CinemaHall, showTime time.Time) *entity.MovieSession {
	session := &entity.MovieSession{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		MovieID:      movie.ID,
		CinemaHallID: hall.ID,
		ShowTime:     showTime,
	}
	store.session.sessions[session.ID] = session
	return session
}

func seedGenre(store *fakeStore, name string) *entity.Genre {
	genre := &entity.Genre{
		Base: entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name: name,
	}
	store.genre.genres[genre.ID] = genre
	return genre
}

func seedActor(store *fakeStore, firstName, lastName string) *entity.Actor {
	actor := &entity.Actor{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		FirstName: firstName,
		LastName:  lastName,
	}
	store.actor.actors[actor.ID] = actor
	return actor
}
