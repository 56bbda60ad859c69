package dto

import (
	"fmt"
	"strings"
)

const (
	MaxNameLength = 100
	MaxPrice      = 99999999.99
	MaxStock      = 2147483647
)

// ProductInput is the body of create and update requests. Price and Stock
// are pointers so that an absent field can be told apart from a zero value.
type ProductInput struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Stock *int64   `json:"stock"`
}

// Sanitize trims the name and strips angle brackets before the value is
// stored or echoed back.
func (in *ProductInput) Sanitize() {
	in.Name = strings.NewReplacer("<", "", ">", "").Replace(in.Name)
	in.Name = strings.TrimSpace(in.Name)
}

// Validate returns all violations at once so the caller can report them
// together.
func (in *ProductInput) Validate() []string {
	var errs []string

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "Product name is required and cannot be empty")
	} else if len(strings.TrimSpace(in.Name)) > MaxNameLength {
		errs = append(errs, fmt.Sprintf("Product name cannot exceed %d characters", MaxNameLength))
	}

	if in.Price == nil {
		errs = append(errs, "Price is required")
	} else if *in.Price < 0 {
		errs = append(errs, "Price must be a positive number")
	} else if *in.Price > MaxPrice {
		errs = append(errs, fmt.Sprintf("Price cannot exceed %.2f", MaxPrice))
	}

	if in.Stock == nil {
		errs = append(errs, "Stock is required")
	} else if *in.Stock < 0 {
		errs = append(errs, "Stock must be a positive integer")
	} else if *in.Stock > MaxStock {
		errs = append(errs, "Stock value is too large")
	}

	return errs
}
