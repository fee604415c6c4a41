package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuslib/backend/internal/models"
	"github.com/campuslib/backend/internal/registry"
)

func newCatalogFixture() (*CatalogService, *registry.BookRegistry) {
	books := registry.NewBookRegistry()
	return NewCatalogService(books), books
}

func TestCatalogService_AddBook(t *testing.T) {
	t.Run("stores the book with defaults", func(t *testing.T) {
		service, _ := newCatalogFixture()

		created := service.AddBook(models.Book{Title: "Kintu", Author: "Jennifer Nansubuga Makumbi", ISBN: "9781510709096"})
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, models.BookAvailable, created.Status)
		assert.Equal(t, 1, created.Copies)
	})

	t.Run("generates a barcode when none is supplied", func(t *testing.T) {
		service, _ := newCatalogFixture()

		created := service.AddBook(models.Book{Title: "Kintu"})
		assert.True(t, strings.HasPrefix(created.Barcode, "LIB-"))
		assert.Len(t, created.Barcode, 13)
	})

	t.Run("keeps a supplied barcode", func(t *testing.T) {
		service, _ := newCatalogFixture()

		created := service.AddBook(models.Book{Title: "Kintu", Barcode: "LIB-CUSTOM001"})
		assert.Equal(t, "LIB-CUSTOM001", created.Barcode)
	})
}

func TestCatalogService_UpdateBook(t *testing.T) {
	t.Run("replaces catalog fields", func(t *testing.T) {
		service, books := newCatalogFixture()
		created := service.AddBook(models.Book{Title: "Kintu", Location: "Shelf A"})

		updated, err := service.UpdateBook(created.ID, models.Book{Title: "Kintu", Location: "Shelf B", Copies: 2})
		assert.NoError(t, err)
		assert.Equal(t, "Shelf B", updated.Location)
		assert.Equal(t, 2, updated.Copies)

		got, _ := books.Get(created.ID)
		assert.Equal(t, "Shelf B", got.Location)
	})

	t.Run("preserves circulation status", func(t *testing.T) {
		service, books := newCatalogFixture()
		created := service.AddBook(models.Book{Title: "Kintu"})
		books.SetStatus(created.ID, models.BookBorrowed)

		updated, err := service.UpdateBook(created.ID, models.Book{Title: "Kintu", Location: "Shelf C"})
		assert.NoError(t, err)
		assert.Equal(t, models.BookBorrowed, updated.Status)
	})

	t.Run("unknown book", func(t *testing.T) {
		service, _ := newCatalogFixture()

		_, err := service.UpdateBook("missing", models.Book{Title: "Kintu"})
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestCatalogService_DeleteBook(t *testing.T) {
	t.Run("removes an available book", func(t *testing.T) {
		service, books := newCatalogFixture()
		created := service.AddBook(models.Book{Title: "Kintu"})

		assert.NoError(t, service.DeleteBook(created.ID))
		_, ok := books.Get(created.ID)
		assert.False(t, ok)
	})

	t.Run("borrowed book cannot be deleted", func(t *testing.T) {
		service, books := newCatalogFixture()
		created := service.AddBook(models.Book{Title: "Kintu"})
		books.SetStatus(created.ID, models.BookBorrowed)

		assert.ErrorIs(t, service.DeleteBook(created.ID), ErrBookOnLoan)
	})

	t.Run("unknown book", func(t *testing.T) {
		service, _ := newCatalogFixture()

		assert.ErrorIs(t, service.DeleteBook("missing"), ErrBookNotFound)
	})

	t.Run("bulk delete skips borrowed books", func(t *testing.T) {
		service, books := newCatalogFixture()
		a := service.AddBook(models.Book{Title: "Kintu"})
		b := service.AddBook(models.Book{Title: "Abyssinian Chronicles"})
		c := service.AddBook(models.Book{Title: "The River and the Source"})
		books.SetStatus(b.ID, models.BookBorrowed)

		deleted := service.DeleteBooks([]string{a.ID, b.ID, c.ID, "missing"})
		assert.Equal(t, 2, deleted)

		_, ok := books.Get(b.ID)
		assert.True(t, ok)
	})
}

func TestCatalogService_ListBooks(t *testing.T) {
	seed := func() (*CatalogService, *registry.BookRegistry) {
		service, books := newCatalogFixture()
		service.AddBook(models.Book{Title: "Kintu", Author: "Jennifer Nansubuga Makumbi", ISBN: "9781510709096", Faculty: "Arts"})
		service.AddBook(models.Book{Title: "Abyssinian Chronicles", Author: "Moses Isegawa", ISBN: "9780375705779", Faculty: "Arts"})
		service.AddBook(models.Book{Title: "The River and the Source", Author: "Margaret A. Ogola", ISBN: "9789966882055", Faculty: "Literature"})
		return service, books
	}

	t.Run("search by title, author and isbn", func(t *testing.T) {
		service, _ := seed()

		result, total := service.ListBooks(BookListOptions{Search: "kintu"})
		assert.Equal(t, 1, total)
		assert.Equal(t, "Kintu", result[0].Title)

		_, total = service.ListBooks(BookListOptions{Search: "isegawa"})
		assert.Equal(t, 1, total)

		_, total = service.ListBooks(BookListOptions{Search: "9789966882055"})
		assert.Equal(t, 1, total)
	})

	t.Run("filter by faculty and status", func(t *testing.T) {
		service, books := seed()

		_, total := service.ListBooks(BookListOptions{Faculty: "Arts"})
		assert.Equal(t, 2, total)

		all, _ := service.ListBooks(BookListOptions{})
		books.SetStatus(all[0].ID, models.BookBorrowed)

		_, total = service.ListBooks(BookListOptions{Status: "Borrowed"})
		assert.Equal(t, 1, total)
	})

	t.Run("sorts by title by default", func(t *testing.T) {
		service, _ := seed()

		result, _ := service.ListBooks(BookListOptions{})
		assert.Equal(t, "Abyssinian Chronicles", result[0].Title)
		assert.Equal(t, "Kintu", result[1].Title)
		assert.Equal(t, "The River and the Source", result[2].Title)
	})

	t.Run("descending author sort", func(t *testing.T) {
		service, _ := seed()

		result, _ := service.ListBooks(BookListOptions{SortBy: "author", Order: "desc"})
		assert.Equal(t, "Moses Isegawa", result[0].Author)
	})

	t.Run("pagination", func(t *testing.T) {
		service, _ := seed()

		page, total := service.ListBooks(BookListOptions{Page: 2, PerPage: 2})
		assert.Equal(t, 3, total)
		assert.Len(t, page, 1)
	})
}

func TestCatalogService_Statistics(t *testing.T) {
	service, books := newCatalogFixture()
	a := service.AddBook(models.Book{Title: "Kintu"})
	b := service.AddBook(models.Book{Title: "Abyssinian Chronicles"})
	service.AddBook(models.Book{Title: "The River and the Source"})
	books.SetStatus(a.ID, models.BookBorrowed)
	books.SetStatus(b.ID, models.BookReserved)

	stats := service.Statistics()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Available)
	assert.Equal(t, 1, stats.Borrowed)
	assert.Equal(t, 1, stats.Reserved)
}
