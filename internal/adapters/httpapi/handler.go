package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tripstack/travelapi/internal/core/domain"
	"github.com/tripstack/travelapi/internal/core/usecase"
)

const maxJSONBodySize = 1 << 20

// Handler owns the full HTTP surface: the per-resource CRUD routes and the
// list/search/filter query routes.
type Handler struct {
	airports *usecase.ResourceService[domain.Airport]
	airlines *usecase.ResourceService[domain.Airline]
	routes   *usecase.ResourceService[domain.Route]
	hotels   *usecase.ResourceService[domain.Hotel]
	queries  *usecase.QueryService
	log      *zap.SugaredLogger
}

func NewHandler(
	airports *usecase.ResourceService[domain.Airport],
	airlines *usecase.ResourceService[domain.Airline],
	routes *usecase.ResourceService[domain.Route],
	hotels *usecase.ResourceService[domain.Hotel],
	queries *usecase.QueryService,
	log *zap.SugaredLogger,
) *Handler {
	return &Handler{
		airports: airports,
		airlines: airlines,
		routes:   routes,
		hotels:   hotels,
		queries:  queries,
		log:      log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(h.log))
	r.Get("/healthz", h.healthz)

	r.Route("/airport", func(r chi.Router) {
		r.Get("/list", h.listAirports)
		r.Get("/direct-connections", h.directConnections)
		newResourceHandler("Airport", h.airports, h.log).mount(r)
	})
	r.Route("/airline", func(r chi.Router) {
		r.Get("/list", h.listAirlines)
		r.Get("/to-airport", h.airlinesToAirport)
		newResourceHandler("Airline", h.airlines, h.log).mount(r)
	})
	r.Route("/route", func(r chi.Router) {
		newResourceHandler("Route", h.routes, h.log).mount(r)
	})
	r.Route("/hotel", func(r chi.Router) {
		r.Get("/search", h.searchHotels)
		r.Get("/filter", h.filterHotels)
		r.Get("/{id}", h.getHotel)
	})

	return r
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(h.log, w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.hotels.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		resourceError(h.log, w, "Hotel", err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, hotel)
}

func (h *Handler) listAirports(w http.ResponseWriter, r *http.Request) {
	airports, err := h.queries.ListAirports(r.Context(), r.URL.Query().Get("country"), parsePage(r))
	if err != nil {
		serverError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, airports)
}

func (h *Handler) directConnections(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("airport")
	if code == "" {
		writeMessage(h.log, w, http.StatusBadRequest, "Airport code is required")
		return
	}
	codes, err := h.queries.DirectConnections(r.Context(), code, parsePage(r))
	if err != nil {
		serverError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, codes)
}

func (h *Handler) listAirlines(w http.ResponseWriter, r *http.Request) {
	airlines, err := h.queries.ListAirlines(r.Context(), r.URL.Query().Get("country"), parsePage(r))
	if err != nil {
		serverError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, airlines)
}

func (h *Handler) airlinesToAirport(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("destinationAirportCode")
	if code == "" {
		writeMessage(h.log, w, http.StatusBadRequest, "Destination airport code is required")
		return
	}
	airlines, err := h.queries.AirlinesToAirport(r.Context(), code, parsePage(r))
	if err != nil {
		serverError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, airlines)
}

func (h *Handler) searchHotels(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeMessage(h.log, w, http.StatusBadRequest, "Hotel name is required")
		return
	}
	hotels, err := h.queries.SearchHotels(r.Context(), name, parsePage(r))
	if err != nil {
		serverError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, hotels)
}

func (h *Handler) filterHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.HotelFilter{
		Name:        q.Get("name"),
		Title:       q.Get("title"),
		Description: q.Get("description"),
		Country:     q.Get("country"),
		City:        q.Get("city"),
		State:       q.Get("state"),
	}
	hotels, err := h.queries.FilterHotels(r.Context(), filter, parsePage(r))
	if err != nil {
		serverError(h.log, w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, hotels)
}

// resourceError maps a service failure onto the uniform error envelope.
// Precedence: validation, conflict, not-found, then the generic 500.
func resourceError(log *zap.SugaredLogger, w http.ResponseWriter, resource string, err error) {
	var violation *domain.ErrSchemaViolation
	switch {
	case errors.As(err, &violation):
		writeJSON(log, w, http.StatusBadRequest, errorResponse{
			Message: "Invalid request body",
			Error:   violation.Violations,
		})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeMirrored(log, w, http.StatusConflict, resource+" already exists")
	case errors.Is(err, domain.ErrNotFound):
		writeMirrored(log, w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, domain.ErrInvalidKey):
		writeMirrored(log, w, http.StatusBadRequest, "Invalid document key")
	default:
		serverError(log, w, err)
	}
}

func serverError(log *zap.SugaredLogger, w http.ResponseWriter, err error) {
	log.Errorw("request failed", "error", err)
	writeMessage(log, w, http.StatusInternalServerError, "Internal server error")
}

// errorResponse is the failure envelope. Message is always present; Error
// carries the violation list on 400 and mirrors Message on 404/409 for
// backward-compatible clients.
type errorResponse struct {
	Message string `json:"message"`
	Error   any    `json:"error,omitempty"`
}

func writeMessage(log *zap.SugaredLogger, w http.ResponseWriter, status int, message string) {
	writeJSON(log, w, status, errorResponse{Message: message})
}

func writeMirrored(log *zap.SugaredLogger, w http.ResponseWriter, status int, message string) {
	writeJSON(log, w, status, errorResponse{Message: message, Error: message})
}

func writeJSON(log *zap.SugaredLogger, w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		log.Errorw("encode response", "error", err)
		http.Error(w, `{"message":"Internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		log.Errorw("write response", "error", err)
	}
}

// parsePage reads limit and offset (or skip) from the query string.
// Non-numeric input falls back to the default instead of failing; range
// clamping happens in the query service.
func parsePage(r *http.Request) domain.Page {
	page := domain.DefaultPage()
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			page.Limit = v
		}
	}
	raw := q.Get("offset")
	if raw == "" {
		raw = q.Get("skip")
	}
	if raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			page.Offset = v
		}
	}
	return page
}
