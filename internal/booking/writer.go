package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MuhammedQureshi/BarberPages/pkg/logger"
)

// CreateRequest is the creation endpoint payload. BusinessName, Services,
// ContactMethod, ContactValue, and Email are required; the rest is
// optional presentation data.
type CreateRequest struct {
	BusinessName  string    `json:"businessName"`
	Description   string    `json:"description,omitempty"`
	Services      []Service `json:"services"`
	ContactMethod string    `json:"contactMethod"`
	ContactValue  string    `json:"contactValue"`
	Calendly      string    `json:"calendly,omitempty"`
	Stripe        string    `json:"stripe,omitempty"`
	Email         string    `json:"email"`
}

// maxAllocateAttempts bounds the re-allocation loop when concurrent
// submissions race for the same slug.
const maxAllocateAttempts = 3

// Writer validates submissions and persists new booking pages.
type Writer struct {
	repo  Repository
	alloc *Allocator
	log   *slog.Logger
	now   func() time.Time
}

func NewWriter(repo Repository, log *slog.Logger) *Writer {
	return &Writer{
		repo:  repo,
		alloc: NewAllocator(repo),
		log:   log.With(logger.Component("booking.writer")),
		now:   time.Now,
	}
}

// Create validates req, allocates a unique slug, and persists the page.
// It returns the assigned slug so the caller can build the page URL.
//
// Validation fails fast with ErrMissingFields before any store access.
// The probe-then-insert sequence is not atomic, so the insert can still
// lose a race for the candidate slug; in that case the repository's
// unique index rejects the write and Create re-allocates against live
// state, a bounded number of times. Existing pages are never overwritten.
func (w *Writer) Create(ctx context.Context, req CreateRequest) (string, error) {
	req.Services = withoutUnnamed(req.Services)
	if req.BusinessName == "" || len(req.Services) == 0 ||
		req.ContactMethod == "" || req.ContactValue == "" || req.Email == "" {
		return "", ErrMissingFields
	}

	for attempt := 1; attempt <= maxAllocateAttempts; attempt++ {
		assigned, err := w.alloc.Allocate(ctx, req.BusinessName)
		if err != nil {
			return "", err
		}

		page := &Page{
			ID:            uuid.NewString(),
			BusinessName:  req.BusinessName,
			Description:   req.Description,
			Slug:          assigned,
			Services:      req.Services,
			ContactMethod: ContactMethod(req.ContactMethod),
			ContactValue:  req.ContactValue,
			Calendly:      req.Calendly,
			Stripe:        req.Stripe,
			Email:         req.Email,
			Created:       w.now(),
		}

		err = w.repo.Insert(ctx, page)
		if err == nil {
			w.log.InfoContext(ctx, "booking page created", logger.Slug(assigned))
			return assigned, nil
		}
		if !errors.Is(err, ErrSlugTaken) {
			return "", err
		}
		w.log.WarnContext(ctx, "lost slug allocation race, retrying", logger.Slug(assigned))
	}

	return "", fmt.Errorf("allocate unique slug for %q: %w", req.BusinessName, ErrSlugTaken)
}

// withoutUnnamed drops service entries with an empty name. The original
// form filters these client-side; the writer must not rely on that.
func withoutUnnamed(services []Service) []Service {
	kept := make([]Service, 0, len(services))
	for _, s := range services {
		if strings.TrimSpace(s.Name) != "" {
			kept = append(kept, s)
		}
	}
	return kept
}
