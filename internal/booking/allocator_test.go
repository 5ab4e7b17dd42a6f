package booking_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammedQureshi/BarberPages/internal/booking"
	"github.com/MuhammedQureshi/BarberPages/pkg/slug"
)

func TestAllocate(t *testing.T) {
	ctx := context.Background()

	t.Run("free base slug is used as-is", func(t *testing.T) {
		repo := booking.NewMemoryRepository()
		alloc := booking.NewAllocator(repo)

		got, err := alloc.Allocate(ctx, "Jay's Barbershop")
		require.NoError(t, err)
		assert.Equal(t, "jays-barbershop", got)
	})

	t.Run("collisions get numeric suffixes", func(t *testing.T) {
		repo := booking.NewMemoryRepository()
		alloc := booking.NewAllocator(repo)

		require.NoError(t, repo.Insert(ctx, &booking.Page{Slug: "jays-barbershop"}))

		got, err := alloc.Allocate(ctx, "Jay's Barbershop")
		require.NoError(t, err)
		assert.Equal(t, "jays-barbershop-1", got)

		require.NoError(t, repo.Insert(ctx, &booking.Page{Slug: "jays-barbershop-1"}))

		got, err = alloc.Allocate(ctx, "Jay's Barbershop")
		require.NoError(t, err)
		assert.Equal(t, "jays-barbershop-2", got)
	})

	t.Run("name without alphanumerics terminates with generated base", func(t *testing.T) {
		repo := booking.NewMemoryRepository()
		alloc := booking.NewAllocator(repo)

		got, err := alloc.Allocate(ctx, "!!! ???")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "page-"), "fallback base: %q", got)
		assert.True(t, slug.IsValid(got), "fallback must be a valid slug: %q", got)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		alloc := booking.NewAllocator(failingChecker{})

		_, err := alloc.Allocate(ctx, "Jay's Barbershop")
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

type failingChecker struct{}

func (failingChecker) SlugExists(context.Context, string) (bool, error) {
	return false, assert.AnError
}
