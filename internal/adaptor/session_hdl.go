package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-api/internal/dto/request"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieSessionHandler struct {
	service usecase.MovieSessionService
	log     *zap.Logger
}

func NewMovieSessionHandler(service usecase.MovieSessionService, log *zap.Logger) *MovieSessionHandler {
	return &MovieSessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie_session")),
	}
}

// CreateMovieSession handles POST /api/cinema/movie_sessions/ (staff)
func (h *MovieSessionHandler) CreateMovieSession(w http.ResponseWriter, r *http.Request) {
	var req request.MovieSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.CreateMovieSession(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// GetMovieSessions handles GET /api/cinema/movie_sessions/ (authenticated)
// Supports ?date=YYYY-MM-DD and ?movie=<id>; both AND-combine.
func (h *MovieSessionHandler) GetMovieSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sessions, err := h.service.GetMovieSessions(r.Context(), request.SessionListQuery{
		Date:  query.Get("date"),
		Movie: query.Get("movie"),
	})
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", sessions)
}

// GetMovieSession handles GET /api/cinema/movie_sessions/{id}/ (authenticated)
func (h *MovieSessionHandler) GetMovieSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetMovieSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// UpdateMovieSession handles PUT /api/cinema/movie_sessions/{id}/ (staff)
func (h *MovieSessionHandler) UpdateMovieSession(w http.ResponseWriter, r *http.Request) {
	var req request.MovieSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.UpdateMovieSession(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// DeleteMovieSession handles DELETE /api/cinema/movie_sessions/{id}/ (staff)
func (h *MovieSessionHandler) DeleteMovieSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovieSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
