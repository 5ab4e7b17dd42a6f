package booking

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository used in tests and local
// development. It mirrors the MongoDB repository's semantics, including
// the unique-slug guarantee on insert.
type MemoryRepository struct {
	mu    sync.RWMutex
	pages map[string]Page // keyed by slug
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{pages: make(map[string]Page)}
}

func (r *MemoryRepository) Insert(_ context.Context, page *Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pages[page.Slug]; exists {
		return ErrSlugTaken
	}
	r.pages[page.Slug] = *page
	return nil
}

func (r *MemoryRepository) FindBySlug(_ context.Context, slug string) (*Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, ok := r.pages[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return &page, nil
}

func (r *MemoryRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.pages[slug]
	return ok, nil
}

// Len reports the number of stored pages.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pages)
}
