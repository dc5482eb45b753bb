package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tripstack/travelapi/internal/core/usecase"
)

// resourceHandler serves the four document operations for one resource
// family. The same handler is mounted per resource with its display name and
// service; every branch performs exactly one service call.
type resourceHandler[T any] struct {
	name string
	svc  *usecase.ResourceService[T]
	log  *zap.SugaredLogger
}

func newResourceHandler[T any](name string, svc *usecase.ResourceService[T], log *zap.SugaredLogger) *resourceHandler[T] {
	return &resourceHandler[T]{name: name, svc: svc, log: log}
}

func (h *resourceHandler[T]) mount(r chi.Router) {
	r.Get("/{id}", h.get)
	r.Post("/{id}", h.create)
	r.Put("/{id}", h.replace)
	r.Delete("/{id}", h.remove)
}

func (h *resourceHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, doc)
}

func (h *resourceHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}
	doc, err := h.svc.Create(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(h.log, w, http.StatusCreated, doc)
}

// replaceResponse wraps the echoed payload with the key it was stored under.
type replaceResponse[T any] struct {
	Key  string `json:"key"`
	Data T      `json:"data"`
}

func (h *resourceHandler[T]) replace(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}
	key := chi.URLParam(r, "id")
	doc, err := h.svc.Replace(r.Context(), key, body)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, replaceResponse[T]{Key: key, Data: doc})
}

func (h *resourceHandler[T]) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, err)
		return
	}
	writeMessage(h.log, w, http.StatusAccepted, h.name+" deleted")
}

func (h *resourceHandler[T]) readBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeMessage(h.log, w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return body, true
}

func (h *resourceHandler[T]) fail(w http.ResponseWriter, err error) {
	resourceError(h.log, w, h.name, err)
}
