// Package products owns the in-memory product collection, the filtered view
// derived from the current search term, and pagination over that view. The
// collection mutates only after the server confirms an operation; there is no
// optimistic pre-mutation, so a failed call leaves local state untouched.
package products

import (
	"context"
	"strings"
	"sync"

	"github.com/rogerio-castellano/catalog-dashboard/internal/models"
)

// DefaultPageSize matches the dashboard table.
const DefaultPageSize = 5

// ProductAPI is the slice of the remote client the controller needs.
type ProductAPI interface {
	Products(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, draft models.ProductDraft) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, draft models.ProductDraft) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Snapshot is an immutable view of the controller state.
type Snapshot struct {
	Filtered    []models.Product
	SearchTerm  string
	CurrentPage int
	PageSize    int
	TotalPages  int
}

type Controller struct {
	api ProductAPI

	mu          sync.RWMutex
	items       []models.Product
	filtered    []models.Product
	searchTerm  string
	currentPage int
	pageSize    int
	generation  uint64
	subscribers []func(Snapshot)
}

func NewController(api ProductAPI, pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller{api: api, pageSize: pageSize, currentPage: 1}
}

// Subscribe registers fn to be called with a snapshot after every state
// change.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	c.subscribers = append(c.subscribers, fn)
	c.mu.Unlock()
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Filtered:    c.filtered,
		SearchTerm:  c.searchTerm,
		CurrentPage: c.currentPage,
		PageSize:    c.pageSize,
		TotalPages:  totalPages(len(c.filtered), c.pageSize),
	}
}

// Load replaces the collection with the server's. A response that resolves
// after a newer Load started is discarded rather than applied to current
// state.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	items, err := c.api.Products(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return nil
	}
	c.items = items
	c.refilterLocked()
	c.mu.Unlock()
	c.notify()
	return nil
}

// SetSearchTerm recomputes the filtered view synchronously and resets the
// current page to 1.
func (c *Controller) SetSearchTerm(term string) {
	c.mu.Lock()
	c.searchTerm = term
	c.refilterLocked()
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) SearchTerm() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.searchTerm
}

// Create validates the draft client-side first; validation failures come back
// as a field-keyed message map and no request is issued. On success the
// server's canonical product (with its assigned id) is appended.
func (c *Controller) Create(ctx context.Context, draft models.ProductDraft) (map[string]string, error) {
	if errs := ValidateDraft(draft); len(errs) > 0 {
		return errs, nil
	}
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Code = strings.TrimSpace(draft.Code)

	created, err := c.api.CreateProduct(ctx, draft)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.items = append(c.items, created)
	c.refilterLocked()
	c.mu.Unlock()
	c.notify()
	return nil, nil
}

// Update sends the patch and, on success, replaces the local entry with the
// server's canonical response — never with the local patch — so the client
// reflects any server-side normalization. If two edits to the same product
// race, the last response to resolve wins.
func (c *Controller) Update(ctx context.Context, id string, patch models.ProductDraft) error {
	updated, err := c.api.UpdateProduct(ctx, id, patch)
	if err != nil {
		return err
	}

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i] = updated
			break
		}
	}
	c.refilterLocked()
	c.mu.Unlock()
	c.notify()
	return nil
}

// Remove deletes on the server first; a failure leaves the collection
// untouched.
func (c *Controller) Remove(ctx context.Context, id string) error {
	if err := c.api.DeleteProduct(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	kept := c.items[:0]
	for _, p := range c.items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.items = kept
	c.refilterLocked()
	c.mu.Unlock()
	c.notify()
	return nil
}

// Page returns the requested slice of the filtered view. The page number is
// not clamped here; the pagination control keeps it within range.
func (c *Controller) Page(pageNumber int) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	start := clamp((pageNumber-1)*c.pageSize, 0, len(c.filtered))
	end := clamp(pageNumber*c.pageSize, start, len(c.filtered))
	return c.filtered[start:end]
}

// SetPage records the page chosen by the pagination control.
func (c *Controller) SetPage(pageNumber int) {
	c.mu.Lock()
	c.currentPage = pageNumber
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) CurrentPage() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentPage
}

func (c *Controller) TotalPages() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return totalPages(len(c.filtered), c.pageSize)
}

// refilterLocked recomputes the filtered view and resets pagination; any
// change to the search term or the collection puts the user back on page 1.
func (c *Controller) refilterLocked() {
	term := strings.ToLower(c.searchTerm)
	filtered := make([]models.Product, 0, len(c.items))
	for _, p := range c.items {
		if matches(p, term) {
			filtered = append(filtered, p)
		}
	}
	c.filtered = filtered
	c.currentPage = 1
}

func matches(p models.Product, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(p.Code), lowerTerm)
}

func totalPages(count, pageSize int) int {
	return (count + pageSize - 1) / pageSize
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (c *Controller) notify() {
	c.mu.RLock()
	subscribers := make([]func(Snapshot), len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.mu.RUnlock()

	snap := c.Snapshot()
	for _, fn := range subscribers {
		fn(snap)
	}
}
