// Package registry implements the in-memory book, borrower and librarian
// collections backing the services layer.
package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuslib/backend/internal/models"
)

// BookRegistry holds the catalog keyed by book id.
type BookRegistry struct {
	mu    sync.Mutex
	books map[string]*models.Book
}

func NewBookRegistry() *BookRegistry {
	return &BookRegistry{
		books: make(map[string]*models.Book),
	}
}

// Create stores a new book and assigns its id. Status defaults to Available.
func (r *BookRegistry) Create(book models.Book) *models.Book {
	r.mu.Lock()
	defer r.mu.Unlock()

	book.ID = uuid.NewString()
	if book.Status == "" {
		book.Status = models.BookAvailable
	}
	if book.Copies <= 0 {
		book.Copies = 1
	}
	now := time.Now().UTC()
	if book.AcquisitionDate.IsZero() {
		book.AcquisitionDate = now
	}
	book.LastUpdated = now

	r.books[book.ID] = &book
	copied := book
	return &copied
}

// Get returns a copy of the book, or false if the id is unknown.
func (r *BookRegistry) Get(id string) (*models.Book, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[id]
	if !ok {
		return nil, false
	}
	copied := *book
	return &copied, true
}

// Update replaces the mutable catalog fields of an existing book. The id and
// circulation status are preserved; status belongs to the circulation service.
func (r *BookRegistry) Update(id string, book models.Book) (*models.Book, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.books[id]
	if !ok {
		return nil, false
	}

	book.ID = existing.ID
	book.Status = existing.Status
	book.AcquisitionDate = existing.AcquisitionDate
	book.LastUpdated = time.Now().UTC()
	if book.Copies <= 0 {
		book.Copies = existing.Copies
	}

	r.books[id] = &book
	copied := book
	return &copied, true
}

// Delete removes a book. Returns false if the id is unknown.
func (r *BookRegistry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return false
	}
	delete(r.books, id)
	return true
}

// DeleteMany removes the given ids and reports how many existed.
func (r *BookRegistry) DeleteMany(ids []string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for _, id := range ids {
		if _, ok := r.books[id]; ok {
			delete(r.books, id)
			deleted++
		}
	}
	return deleted
}

// List returns copies of all books in unspecified order.
func (r *BookRegistry) List() []models.Book {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]models.Book, 0, len(r.books))
	for _, book := range r.books {
		result = append(result, *book)
	}
	return result
}

// SetStatus updates the circulation status of a book.
func (r *BookRegistry) SetStatus(id string, status models.BookStatus) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[id]
	if !ok {
		return false
	}
	book.Status = status
	book.LastUpdated = time.Now().UTC()
	return true
}

// Count returns the number of books in the catalog.
func (r *BookRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.books)
}
