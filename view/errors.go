package view

import "errors"

// The two user-visible failures of a submission
var (
	ErrMissingInput    = errors.New("missing product name")
	ErrProductNotFound = errors.New("product not found")
)

// AlertMessage returns the text shown to the user for a submission error
func AlertMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingInput):
		return "Please enter a product name"
	case errors.Is(err, ErrProductNotFound):
		return "Product not found in database. Please try another product."
	default:
		return "Something went wrong. Please try again."
	}
}
