package response

import "cinema-api/internal/data/entity"

type MovieResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"`
	Genres      []GenreResponse `json:"genres"`
	Actors      []ActorResponse `json:"actors"`
}

func MovieToResponse(movie *entity.Movie, genres []*entity.Genre, actors []*entity.Actor) MovieResponse {
	genreResponses := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = GenreToResponse(genre)
	}

	actorResponses := make([]ActorResponse, len(actors))
	for i, actor := range actors {
		actorResponses[i] = ActorToResponse(actor)
	}

	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      genreResponses,
		Actors:      actorResponses,
	}
}
