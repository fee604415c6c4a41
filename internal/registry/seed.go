package registry

import "github.com/campuslib/backend/internal/models"

// SeedBooks loads the demo catalog used when the server starts without an
// import. Every book starts Available so the catalog and the (empty) loan
// ledger agree.
func SeedBooks(books *BookRegistry) {
	fixtures := []models.Book{
		{
			Title:   "The River and the Source",
			Author:  "Margaret A. Ogola",
			ISBN:    "9789966463607",
			Subject: "Literature",
			Faculty: "Arts",
			Copies:  3,
		},
		{
			Title:   "Kintu",
			Author:  "Jennifer Nansubuga Makumbi",
			ISBN:    "9789987736011",
			Subject: "Literature",
			Faculty: "Arts",
			Copies:  2,
		},
		{
			Title:   "Abyssinian Chronicles",
			Author:  "Moses Isegawa",
			ISBN:    "9780375705774",
			Subject: "Literature",
			Faculty: "Arts",
			Copies:  1,
		},
	}

	for _, book := range fixtures {
		books.Create(book)
	}
}

// SeedBorrowers loads the demo borrower records.
func SeedBorrowers(borrowers *BorrowerRegistry) {
	fixtures := []models.Borrower{
		{
			Name:       "John Doe",
			Category:   models.CategoryStudent,
			Email:      "john.doe@university.ac.ug",
			Phone:      "+256701234567",
			Department: "Computer Science",
		},
		{
			Name:       "Jane Smith",
			Category:   models.CategoryFaculty,
			Email:      "jane.smith@university.ac.ug",
			Phone:      "+256701234568",
			Department: "Literature",
		},
		{
			Name:       "Michael Otieno",
			Category:   models.CategoryStaff,
			Email:      "michael.otieno@university.ac.ug",
			Phone:      "+256701234569",
			Department: "Library",
		},
	}

	for _, borrower := range fixtures {
		borrowers.Create(borrower)
	}
}
