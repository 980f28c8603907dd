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

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ==================== GENRES ====================

// CreateGenre handles POST /api/cinema/genres/ (staff)
func (h *CatalogHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "success", genre)
}

// GetGenres handles GET /api/cinema/genres/ (authenticated)
func (h *CatalogHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", genres)
}

// GetGenre handles GET /api/cinema/genres/{id}/ (authenticated)
func (h *CatalogHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	genre, err := h.service.GetGenre(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", genre)
}

// ==================== ACTORS ====================

// CreateActor handles POST /api/cinema/actors/ (staff)
func (h *CatalogHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.CreateActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "success", actor)
}

// GetActors handles GET /api/cinema/actors/ (authenticated)
func (h *CatalogHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	actors, err := h.service.GetActors(r.Context())
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", actors)
}

// GetActor handles GET /api/cinema/actors/{id}/ (authenticated)
func (h *CatalogHandler) GetActor(w http.ResponseWriter, r *http.Request) {
	actor, err := h.service.GetActor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", actor)
}

// ==================== CINEMA HALLS ====================

// CreateCinemaHall handles POST /api/cinema/cinema_halls/ (staff)
func (h *CatalogHandler) CreateCinemaHall(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCinemaHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hall, err := h.service.CreateCinemaHall(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "success", hall)
}

// GetCinemaHalls handles GET /api/cinema/cinema_halls/ (authenticated)
func (h *CatalogHandler) GetCinemaHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.GetCinemaHalls(r.Context())
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

// GetCinemaHall handles GET /api/cinema/cinema_halls/{id}/ (authenticated)
func (h *CatalogHandler) GetCinemaHall(w http.ResponseWriter, r *http.Request) {
	hall, err := h.service.GetCinemaHall(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}
