package registry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/campuslib/backend/internal/models"
)

// BorrowerRegistry holds borrower records keyed by id. Records are immutable
// for circulation purposes once created.
type BorrowerRegistry struct {
	mu        sync.Mutex
	borrowers map[string]*models.Borrower
}

func NewBorrowerRegistry() *BorrowerRegistry {
	return &BorrowerRegistry{
		borrowers: make(map[string]*models.Borrower),
	}
}

// Create stores a new borrower and assigns its id.
func (r *BorrowerRegistry) Create(borrower models.Borrower) *models.Borrower {
	r.mu.Lock()
	defer r.mu.Unlock()

	borrower.ID = uuid.NewString()
	r.borrowers[borrower.ID] = &borrower
	copied := borrower
	return &copied
}

// Get returns a copy of the borrower, or false if the id is unknown.
func (r *BorrowerRegistry) Get(id string) (*models.Borrower, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	borrower, ok := r.borrowers[id]
	if !ok {
		return nil, false
	}
	copied := *borrower
	return &copied, true
}

// List returns copies of all borrowers in unspecified order.
func (r *BorrowerRegistry) List() []models.Borrower {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]models.Borrower, 0, len(r.borrowers))
	for _, borrower := range r.borrowers {
		result = append(result, *borrower)
	}
	return result
}
