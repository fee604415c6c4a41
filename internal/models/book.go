package models

import "time"

type BookStatus string

const (
	BookAvailable BookStatus = "Available"
	BookBorrowed  BookStatus = "Borrowed"
	BookReserved  BookStatus = "Reserved"
)

var ValidBookStatuses = map[string]bool{
	string(BookAvailable): true,
	string(BookBorrowed):  true,
	string(BookReserved):  true,
}

func IsValidBookStatus(status string) bool {
	return ValidBookStatuses[status]
}

// Book represents a catalog item. Status is mutated only by the circulation
// service as a side effect of issue/return; everything else belongs to catalog
// management.
type Book struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	ISBN            string     `json:"isbn"`
	Subject         string     `json:"subject,omitempty"`
	Faculty         string     `json:"faculty,omitempty"`
	Status          BookStatus `json:"status"`
	Edition         string     `json:"edition,omitempty"`
	Publisher       string     `json:"publisher,omitempty"`
	PublicationYear string     `json:"publicationYear,omitempty"`
	Copies          int        `json:"copies"`
	Location        string     `json:"location,omitempty"`
	Description     string     `json:"description,omitempty"`
	Language        string     `json:"language,omitempty"`
	Barcode         string     `json:"barcode,omitempty"`
	AcquisitionDate time.Time  `json:"acquisitionDate"`
	LastUpdated     time.Time  `json:"lastUpdated"`
}
