package usecase

import (
	"context"
	"testing"

	"cinema-api/internal/dto/request"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("creates movie with ordered genres and actors", func(t *testing.T) {
		store, repo := newFakeStore()
		drama := seedGenre(store, "Drama")
		romance := seedGenre(store, "Romance")
		kate := seedActor(store, "Kate", "Winslet")
		leo := seedActor(store, "Leonardo", "DiCaprio")
		svc := NewMovieService(repo, testLogger())

		resp, err := svc.CreateMovie(ctx, &request.CreateMovieRequest{
			Title:       "Titanic",
			Description: "Ship sinks",
			Duration:    195,
			Genres:      []string{romance.ID.String(), drama.ID.String()},
			Actors:      []string{kate.ID.String(), leo.ID.String()},
		})
		require.NoError(t, err)

		assert.Equal(t, "Titanic", resp.Title)
		require.Len(t, resp.Genres, 2)
		assert.Equal(t, "Romance", resp.Genres[0].Name)
		assert.Equal(t, "Drama", resp.Genres[1].Name)
		require.Len(t, resp.Actors, 2)
		assert.Equal(t, "Kate Winslet", resp.Actors[0].FullName)
	})

	t.Run("rejects unknown genre reference", func(t *testing.T) {
		store, repo := newFakeStore()
		drama := seedGenre(store, "Drama")
		svc := NewMovieService(repo, testLogger())

		missing := uuid.NewString()
		_, err := svc.CreateMovie(ctx, &request.CreateMovieRequest{
			Title:    "Ghosts",
			Duration: 90,
			Genres:   []string{drama.ID.String(), missing},
		})
		appErr := requireKind(t, err, utils.KindValidation)
		assert.Contains(t, appErr.Message, missing)
	})

	t.Run("rejects unknown actor reference", func(t *testing.T) {
		_, repo := newFakeStore()
		svc := NewMovieService(repo, testLogger())

		missing := uuid.NewString()
		_, err := svc.CreateMovie(ctx, &request.CreateMovieRequest{
			Title:    "Ghosts",
			Duration: 90,
			Actors:   []string{missing},
		})
		appErr := requireKind(t, err, utils.KindValidation)
		assert.Contains(t, appErr.Message, missing)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		_, repo := newFakeStore()
		svc := NewMovieService(repo, testLogger())

		_, err := svc.CreateMovie(ctx, &request.CreateMovieRequest{Duration: 90})
		requireKind(t, err, utils.KindValidation)
	})
}

func TestGetMovies(t *testing.T) {
	ctx := context.Background()

	store, repo := newFakeStore()
	drama := seedGenre(store, "Drama")
	comedy := seedGenre(store, "Comedy")
	actor := seedActor(store, "Bill", "Murray")
	svc := NewMovieService(repo, testLogger())

	_, err := svc.CreateMovie(ctx, &request.CreateMovieRequest{
		Title:    "Groundhog Day",
		Duration: 101,
		Genres:   []string{comedy.ID.String()},
		Actors:   []string{actor.ID.String()},
	})
	require.NoError(t, err)

	_, err = svc.CreateMovie(ctx, &request.CreateMovieRequest{
		Title:    "Manchester by the Sea",
		Duration: 137,
		Genres:   []string{drama.ID.String()},
	})
	require.NoError(t, err)

	_, err = svc.CreateMovie(ctx, &request.CreateMovieRequest{
		Title:    "Titanic",
		Duration: 195,
		Genres:   []string{drama.ID.String()},
	})
	require.NoError(t, err)

	t.Run("lists all without filters", func(t *testing.T) {
		movies, err := svc.GetMovies(ctx, request.MovieListQuery{})
		require.NoError(t, err)
		assert.Len(t, movies, 3)
	})

	t.Run("filters by genre", func(t *testing.T) {
		movies, err := svc.GetMovies(ctx, request.MovieListQuery{Genres: comedy.ID.String()})
		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, "Groundhog Day", movies[0].Title)
	})

	t.Run("filters by actor", func(t *testing.T) {
		movies, err := svc.GetMovies(ctx, request.MovieListQuery{Actors: actor.ID.String()})
		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, "Groundhog Day", movies[0].Title)
	})

	t.Run("title filter matches substring case-insensitively", func(t *testing.T) {
		movies, err := svc.GetMovies(ctx, request.MovieListQuery{Title: "ita"})
		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, "Titanic", movies[0].Title)

		movies, err = svc.GetMovies(ctx, request.MovieListQuery{Title: "ati"})
		require.NoError(t, err)
		assert.Empty(t, movies)

		movies, err = svc.GetMovies(ctx, request.MovieListQuery{Title: "manchester"})
		require.NoError(t, err)
		require.Len(t, movies, 1)
	})

	t.Run("malformed genre filter matches nothing", func(t *testing.T) {
		movies, err := svc.GetMovies(ctx, request.MovieListQuery{Genres: "not-a-uuid"})
		require.NoError(t, err)
		assert.Empty(t, movies)
	})

	t.Run("malformed actor filter matches nothing", func(t *testing.T) {
		movies, err := svc.GetMovies(ctx, request.MovieListQuery{Actors: "1,2,3"})
		require.NoError(t, err)
		assert.Empty(t, movies)
	})
}

func TestGetMovie(t *testing.T) {
	ctx := context.Background()

	_, repo := newFakeStore()
	svc := NewMovieService(repo, testLogger())

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.GetMovie(ctx, uuid.NewString())
		requireKind(t, err, utils.KindNotFound)
	})

	t.Run("unparseable id is not found", func(t *testing.T) {
		_, err := svc.GetMovie(ctx, "42")
		requireKind(t, err, utils.KindNotFound)
	})
}
