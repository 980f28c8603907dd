package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-api/internal/dto/request"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMovieSession(t *testing.T) {
	ctx := context.Background()

	t.Run("creates session with expanded movie and hall", func(t *testing.T) {
		store, repo := newFakeStore()
		hall := seedHall(store, "IMAX", 15, 20)
		movie := seedMovie(store, "Dune")
		svc := NewMovieSessionService(repo, testLogger())

		resp, err := svc.CreateMovieSession(ctx, &request.MovieSessionRequest{
			Movie:      movie.ID.String(),
			CinemaHall: hall.ID.String(),
			ShowTime:   "2026-09-01T19:30:00Z",
		})
		require.NoError(t, err)

		assert.Equal(t, "Dune", resp.Movie.Title)
		assert.Equal(t, "IMAX", resp.CinemaHall.Name)
		assert.Equal(t, 300, resp.CinemaHall.Capacity)
		assert.Equal(t, time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC), resp.ShowTime)
	})

	t.Run("unknown movie reference fails validation", func(t *testing.T) {
		store, repo := newFakeStore()
		hall := seedHall(store, "IMAX", 15, 20)
		svc := NewMovieSessionService(repo, testLogger())

		missing := uuid.NewString()
		_, err := svc.CreateMovieSession(ctx, &request.MovieSessionRequest{
			Movie:      missing,
			CinemaHall: hall.ID.String(),
			ShowTime:   "2026-09-01T19:30:00Z",
		})
		appErr := requireKind(t, err, utils.KindValidation)
		assert.Contains(t, appErr.Message, missing)
	})

	t.Run("unknown hall reference fails validation", func(t *testing.T) {
		store, repo := newFakeStore()
		movie := seedMovie(store, "Dune")
		svc := NewMovieSessionService(repo, testLogger())

		_, err := svc.CreateMovieSession(ctx, &request.MovieSessionRequest{
			Movie:      movie.ID.String(),
			CinemaHall: uuid.NewString(),
			ShowTime:   "2026-09-01T19:30:00Z",
		})
		requireKind(t, err, utils.KindValidation)
	})

	t.Run("bad show time fails validation", func(t *testing.T) {
		store, repo := newFakeStore()
		hall := seedHall(store, "IMAX", 15, 20)
		movie := seedMovie(store, "Dune")
		svc := NewMovieSessionService(repo, testLogger())

		_, err := svc.CreateMovieSession(ctx, &request.MovieSessionRequest{
			Movie:      movie.ID.String(),
			CinemaHall: hall.ID.String(),
			ShowTime:   "next tuesday",
		})
		appErr := requireKind(t, err, utils.KindValidation)
		assert.Contains(t, appErr.Message, "show_time")
	})
}

func TestGetMovieSessions(t *testing.T) {
	ctx := context.Background()

	store, repo := newFakeStore()
	hall := seedHall(store, "Main", 6, 8)
	movieA := seedMovie(store, "Arrival")
	movieB := seedMovie(store, "Blade Runner")
	seedSession(store, movieA, hall, time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC))
	seedSession(store, movieA, hall, time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC))
	seedSession(store, movieB, hall, time.Date(2026, 9, 1, 21, 0, 0, 0, time.UTC))
	svc := NewMovieSessionService(repo, testLogger())

	t.Run("lists all with resolved display fields", func(t *testing.T) {
		sessions, err := svc.GetMovieSessions(ctx, request.SessionListQuery{})
		require.NoError(t, err)
		require.Len(t, sessions, 3)
		assert.Equal(t, "Arrival", sessions[0].MovieTitle)
		assert.Equal(t, "Main", sessions[0].CinemaHallName)
		assert.Equal(t, 48, sessions[0].CinemaHallCapacity)
	})

	t.Run("filters by date", func(t *testing.T) {
		sessions, err := svc.GetMovieSessions(ctx, request.SessionListQuery{Date: "2026-09-01"})
		require.NoError(t, err)
		assert.Len(t, sessions, 2)
	})

	t.Run("filters by movie", func(t *testing.T) {
		sessions, err := svc.GetMovieSessions(ctx, request.SessionListQuery{Movie: movieB.ID.String()})
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, "Blade Runner", sessions[0].MovieTitle)
	})

	t.Run("combines date and movie filters", func(t *testing.T) {
		sessions, err := svc.GetMovieSessions(ctx, request.SessionListQuery{
			Date:  "2026-09-01",
			Movie: movieA.ID.String(),
		})
		require.NoError(t, err)
		assert.Len(t, sessions, 1)
	})

	t.Run("malformed date matches nothing", func(t *testing.T) {
		sessions, err := svc.GetMovieSessions(ctx, request.SessionListQuery{Date: "09/01/2026"})
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})

	t.Run("malformed movie id matches nothing", func(t *testing.T) {
		sessions, err := svc.GetMovieSessions(ctx, request.SessionListQuery{Movie: "7"})
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})
}

func TestUpdateMovieSession(t *testing.T) {
	ctx := context.Background()

	store, repo := newFakeStore()
	hall := seedHall(store, "Main", 6, 8)
	other := seedHall(store, "Annex", 4, 4)
	movie := seedMovie(store, "Arrival")
	session := seedSession(store, movie, hall, time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC))
	svc := NewMovieSessionService(repo, testLogger())

	t.Run("moves session to another hall and time", func(t *testing.T) {
		resp, err := svc.UpdateMovieSession(ctx, session.ID.String(), &request.MovieSessionRequest{
			Movie:      movie.ID.String(),
			CinemaHall: other.ID.String(),
			ShowTime:   "2026-09-03T20:00:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, "Annex", resp.CinemaHall.Name)
		assert.Equal(t, time.Date(2026, 9, 3, 20, 0, 0, 0, time.UTC), resp.ShowTime)
	})

	t.Run("unknown session is not found", func(t *testing.T) {
		_, err := svc.UpdateMovieSession(ctx, uuid.NewString(), &request.MovieSessionRequest{
			Movie:      movie.ID.String(),
			CinemaHall: hall.ID.String(),
			ShowTime:   "2026-09-03T20:00:00Z",
		})
		requireKind(t, err, utils.KindNotFound)
	})
}

func TestDeleteMovieSession(t *testing.T) {
	ctx := context.Background()

	store, repo := newFakeStore()
	hall := seedHall(store, "Main", 6, 8)
	movie := seedMovie(store, "Arrival")
	session := seedSession(store, movie, hall, time.Now().Add(time.Hour))
	svc := NewMovieSessionService(repo, testLogger())

	t.Run("deletes existing session", func(t *testing.T) {
		require.NoError(t, svc.DeleteMovieSession(ctx, session.ID.String()))

		_, err := svc.GetMovieSession(ctx, session.ID.String())
		requireKind(t, err, utils.KindNotFound)
	})

	t.Run("deleting twice is not found", func(t *testing.T) {
		err := svc.DeleteMovieSession(ctx, session.ID.String())
		requireKind(t, err, utils.KindNotFound)
	})
}
