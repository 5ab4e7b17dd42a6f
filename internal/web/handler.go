package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/MuhammedQureshi/BarberPages/internal/booking"
	"github.com/MuhammedQureshi/BarberPages/internal/web/views"
	"github.com/MuhammedQureshi/BarberPages/pkg/logger"
)

// msgMissingFields is the exact error message returned when a create
// request omits a required field. Clients match on it, so it must not
// change.
const msgMissingFields = "Missing required fields."

const qrSize = 256

type createResponse struct {
	Success bool   `json:"success"`
	Slug    string `json:"slug"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the public booking-page routes: the JSON create
// endpoint, the rendered page, and its QR code.
type Handler struct {
	writer  *booking.Writer
	repo    booking.Repository
	log     *slog.Logger
	baseURL string
}

// NewHandler wires the HTTP layer. baseURL is the public origin used
// when encoding page links into QR codes, without a trailing slash.
func NewHandler(writer *booking.Writer, repo booking.Repository, log *slog.Logger, baseURL string) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		writer:  writer,
		repo:    repo,
		log:     log.With(logger.Component("web.handler")),
		baseURL: baseURL,
	}
}

// Router mounts all public routes. createMiddleware wraps only the
// create endpoint, so rate limits on writes don't throttle page views.
func (h *Handler) Router(createMiddleware ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.home)
	r.With(createMiddleware...).Post("/api/bookings", h.create)
	r.Get("/{slug}", h.page)
	r.Get("/{slug}/qr", h.qr)
	return r
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req booking.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.ErrorContext(r.Context(), "failed to decode create request", logger.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	assigned, err := h.writer.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrMissingFields) {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgMissingFields})
			return
		}
		h.log.ErrorContext(r.Context(), "failed to create booking page", logger.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, createResponse{Success: true, Slug: assigned})
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, err := h.repo.FindBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			h.render(w, r, http.StatusNotFound, views.NotFound())
			return
		}
		h.log.ErrorContext(r.Context(), "failed to load booking page",
			logger.Slug(slug), logger.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, views.Page(page))
}

func (h *Handler) qr(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	exists, err := h.repo.SlugExists(r.Context(), slug)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to check slug for QR code",
			logger.Slug(slug), logger.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if !exists {
		http.NotFound(w, r)
		return
	}

	png, err := qrcode.Encode(h.baseURL+"/"+slug, qrcode.Medium, qrSize)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to encode QR code",
			logger.Slug(slug), logger.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.Home())
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render page", logger.Error(err))
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("failed to encode response", logger.Error(err))
	}
}
