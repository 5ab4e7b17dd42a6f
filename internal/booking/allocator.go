package booking

import (
	"context"
	"fmt"

	"github.com/MuhammedQureshi/BarberPages/pkg/slug"
)

// SlugChecker is the read-only store access the allocator needs.
type SlugChecker interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// Allocator assigns collision-free slugs derived from business names. It
// only reads; claiming the returned slug is the caller's write, guarded
// by the repository's unique index.
type Allocator struct {
	store SlugChecker
}

func NewAllocator(store SlugChecker) *Allocator {
	return &Allocator{store: store}
}

// Allocate normalizes businessName into a base slug and probes the store
// for the first free candidate: base, base-1, base-2, and so on. Names
// with no alphanumeric characters fall back to a generated "page-xxxxxx"
// base, so allocation always terminates with a non-empty slug.
func (a *Allocator) Allocate(ctx context.Context, businessName string) (string, error) {
	base := slug.Make(businessName)
	if base == "" {
		base = "page-" + slug.Random(6)
	}

	candidate := base
	for n := 1; ; n++ {
		taken, err := a.store.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("probe slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
