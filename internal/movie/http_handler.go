package movie

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"moviecatalog/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the movie routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/movies/by-year/{year}", h.ByYear)
	mux.HandleFunc("GET /v1/movies/highest-rated", h.HighestRated)
	mux.HandleFunc("GET /v1/movies/by-language/{language}", h.ByLanguage)
}

type yearParams struct {
	Year string `validate:"required,whole_number"`
}

type languageParams struct {
	Language string `validate:"required,max=64,language_token"`
}

// ByYear handles GET /v1/movies/by-year/{year}
func (h *HTTPHandler) ByYear(w http.ResponseWriter, r *http.Request) {
	params := yearParams{Year: r.PathValue("year")}
	if details := httpx.ValidateStruct(params); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid year", details)
		return
	}
	year, _ := strconv.Atoi(params.Year)

	titles, err := h.service.TitlesByYear(r.Context(), year)
	if err != nil {
		log.Printf("movies by year failed: request_id=%s year=%d error=%v", httpx.RequestIDFrom(r), year, err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if len(titles) == 0 {
		httpx.JSONError(w, r, http.StatusNotFound, "NO_DATA", fmt.Sprintf("No data about movies released in the year %d", year), nil)
		return
	}
	httpx.JSONSuccess(w, r, titles, map[string]any{"total": len(titles)})
}

// HighestRated handles GET /v1/movies/highest-rated
func (h *HTTPHandler) HighestRated(w http.ResponseWriter, r *http.Request) {
	best, err := h.service.HighestRatedByYear(r.Context())
	if err != nil {
		log.Printf("highest rated failed: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, best, map[string]any{"total": len(best)})
}

// ByLanguage handles GET /v1/movies/by-language/{language}
func (h *HTTPHandler) ByLanguage(w http.ResponseWriter, r *http.Request) {
	params := languageParams{Language: r.PathValue("language")}
	if details := httpx.ValidateStruct(params); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid language", details)
		return
	}

	matches, err := h.service.MoviesByLanguage(r.Context(), params.Language)
	if err != nil {
		log.Printf("movies by language failed: request_id=%s language=%q error=%v", httpx.RequestIDFrom(r), params.Language, err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if len(matches) == 0 {
		httpx.JSONError(w, r, http.StatusNotFound, "NO_DATA", fmt.Sprintf("No data about movies released in %s", params.Language), nil)
		return
	}
	httpx.JSONSuccess(w, r, matches, map[string]any{"total": len(matches)})
}
