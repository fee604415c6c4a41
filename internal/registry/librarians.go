package registry

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuslib/backend/internal/models"
)

var ErrEmailTaken = errors.New("email already registered")

type librarianRecord struct {
	librarian    models.Librarian
	passwordHash string
}

// LibrarianRegistry holds staff accounts keyed by id, with a lowercase email
// index for login.
type LibrarianRegistry struct {
	mu      sync.Mutex
	byID    map[string]*librarianRecord
	byEmail map[string]string
}

func NewLibrarianRegistry() *LibrarianRegistry {
	return &LibrarianRegistry{
		byID:    make(map[string]*librarianRecord),
		byEmail: make(map[string]string),
	}
}

// Create stores a new librarian account. Fails with ErrEmailTaken if the
// email is already registered.
func (r *LibrarianRegistry) Create(librarian models.Librarian, passwordHash string) (*models.Librarian, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(librarian.Email)
	if _, ok := r.byEmail[email]; ok {
		return nil, ErrEmailTaken
	}

	librarian.ID = uuid.NewString()
	librarian.Email = email
	if librarian.Role == "" {
		librarian.Role = "librarian"
	}
	librarian.CreatedAt = time.Now().UTC()

	r.byID[librarian.ID] = &librarianRecord{librarian: librarian, passwordHash: passwordHash}
	r.byEmail[email] = librarian.ID

	copied := librarian
	return &copied, nil
}

// GetByEmail returns a copy of the account and its password hash.
func (r *LibrarianRegistry) GetByEmail(email string) (*models.Librarian, string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, "", false
	}
	record := r.byID[id]
	copied := record.librarian
	return &copied, record.passwordHash, true
}

// GetByID returns a copy of the account.
func (r *LibrarianRegistry) GetByID(id string) (*models.Librarian, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	copied := record.librarian
	return &copied, true
}

// TouchLogin records a successful login time.
func (r *LibrarianRegistry) TouchLogin(id string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record, ok := r.byID[id]; ok {
		t := at.UTC()
		record.librarian.LastLogin = &t
	}
}
