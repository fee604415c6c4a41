package services

import (
	"log"
	"math/rand"
	"sort"
	"strings"

	"github.com/campuslib/backend/internal/models"
	"github.com/campuslib/backend/internal/registry"
)

// CatalogService manages the book registry: CRUD, listing and catalog
// statistics. Circulation status is read-only here; only the circulation
// service flips Available/Borrowed.
type CatalogService struct {
	books *registry.BookRegistry
}

func NewCatalogService(books *registry.BookRegistry) *CatalogService {
	return &CatalogService{books: books}
}

// AddBook stores a new catalog entry, generating a barcode when none is
// supplied.
func (s *CatalogService) AddBook(book models.Book) *models.Book {
	if book.Barcode == "" {
		book.Barcode = generateBarcode()
	}
	created := s.books.Create(book)
	log.Printf("[CATALOG] Added book %q (%s)", created.Title, created.Barcode)
	return created
}

// UpdateBook replaces the catalog fields of an existing book.
func (s *CatalogService) UpdateBook(id string, book models.Book) (*models.Book, error) {
	updated, ok := s.books.Update(id, book)
	if !ok {
		return nil, ErrBookNotFound
	}
	log.Printf("[CATALOG] Updated book %q", updated.Title)
	return updated, nil
}

// DeleteBook removes a book from the catalog. A borrowed book cannot be
// deleted while its loan is live.
func (s *CatalogService) DeleteBook(id string) error {
	book, ok := s.books.Get(id)
	if !ok {
		return ErrBookNotFound
	}
	if book.Status == models.BookBorrowed {
		return ErrBookOnLoan
	}
	s.books.Delete(id)
	log.Printf("[CATALOG] Deleted book %q", book.Title)
	return nil
}

// DeleteBooks removes several books at once, skipping borrowed ones, and
// reports how many were deleted.
func (s *CatalogService) DeleteBooks(ids []string) int {
	deletable := make([]string, 0, len(ids))
	for _, id := range ids {
		if book, ok := s.books.Get(id); ok && book.Status != models.BookBorrowed {
			deletable = append(deletable, id)
		}
	}
	deleted := s.books.DeleteMany(deletable)
	log.Printf("[CATALOG] Bulk delete removed %d of %d books", deleted, len(ids))
	return deleted
}

// GetBook returns a single catalog entry.
func (s *CatalogService) GetBook(id string) (*models.Book, error) {
	book, ok := s.books.Get(id)
	if !ok {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// BookListOptions narrows and orders the catalog listing.
type BookListOptions struct {
	Search  string
	Faculty string
	Status  string
	SortBy  string
	Order   string
	Page    int
	PerPage int
}

// ListBooks returns one page of matching books plus the total match count.
// Search covers title, author, ISBN and barcode.
func (s *CatalogService) ListBooks(opts BookListOptions) ([]models.Book, int) {
	all := s.books.List()

	result := make([]models.Book, 0, len(all))
	for _, book := range all {
		if opts.Search != "" && !bookMatches(&book, opts.Search) {
			continue
		}
		if opts.Faculty != "" && book.Faculty != opts.Faculty {
			continue
		}
		if opts.Status != "" && string(book.Status) != opts.Status {
			continue
		}
		result = append(result, book)
	}

	sortBooks(result, opts.SortBy, opts.Order)
	total := len(result)
	return paginateBooks(result, opts.Page, opts.PerPage), total
}

// Statistics derives the catalog counters.
func (s *CatalogService) Statistics() models.CatalogStats {
	stats := models.CatalogStats{}
	for _, book := range s.books.List() {
		stats.Total++
		switch book.Status {
		case models.BookAvailable:
			stats.Available++
		case models.BookBorrowed:
			stats.Borrowed++
		case models.BookReserved:
			stats.Reserved++
		}
	}
	return stats
}

func bookMatches(book *models.Book, term string) bool {
	lowered := strings.ToLower(term)
	return strings.Contains(strings.ToLower(book.Title), lowered) ||
		strings.Contains(strings.ToLower(book.Author), lowered) ||
		strings.Contains(book.ISBN, term) ||
		strings.Contains(book.Barcode, term)
}

func sortBooks(books []models.Book, sortBy, order string) {
	desc := order == "desc"
	sort.SliceStable(books, func(i, j int) bool {
		if desc {
			i, j = j, i
		}
		switch sortBy {
		case "author":
			return books[i].Author < books[j].Author
		case "isbn":
			return books[i].ISBN < books[j].ISBN
		case "status":
			return books[i].Status < books[j].Status
		case "lastUpdated":
			return books[i].LastUpdated.Before(books[j].LastUpdated)
		default:
			return books[i].Title < books[j].Title
		}
	})
}

func paginateBooks(books []models.Book, page, perPage int) []models.Book {
	if perPage <= 0 {
		perPage = 10
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(books) {
		return []models.Book{}
	}
	end := start + perPage
	if end > len(books) {
		end = len(books)
	}
	return books[start:end]
}

func generateBarcode() string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, 9)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return "LIB-" + string(b)
}
