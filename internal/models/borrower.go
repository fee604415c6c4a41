package models

type BorrowerCategory string

const (
	CategoryStudent BorrowerCategory = "student"
	CategoryFaculty BorrowerCategory = "faculty"
	CategoryStaff   BorrowerCategory = "staff"
)

var ValidBorrowerCategories = map[string]bool{
	string(CategoryStudent): true,
	string(CategoryFaculty): true,
	string(CategoryStaff):   true,
}

func IsValidBorrowerCategory(category string) bool {
	return ValidBorrowerCategories[category]
}

// Borrower is a person entitled to borrow. Category determines loan duration
// policy. Records are created by the borrower registry, never by circulation.
type Borrower struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Category   BorrowerCategory `json:"category"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone,omitempty"`
	Department string           `json:"department,omitempty"`
}
