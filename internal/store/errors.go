package store

import (
	"errors"
	"fmt"
)

// Domain errors. Handlers map these onto HTTP status codes; anything else
// coming out of the store is a driver error and propagates unchanged.
var (
	// ErrNotFound signals a lookup miss within the tenant scope.
	ErrNotFound = errors.New("record not found")

	// ErrVariationInUse blocks deletion of a variation that appears in at
	// least one historical order line item.
	ErrVariationInUse = errors.New("cannot delete variation as it has been ordered")

	// ErrSubCategoryInUse blocks deletion of a subcategory still linked to
	// any product.
	ErrSubCategoryInUse = errors.New("cannot delete subcategory as it is used in products")

	// ErrCategoryInUse blocks deletion of a category whose subcategories
	// are still linked to any product.
	ErrCategoryInUse = errors.New("cannot delete category as a subcategory has already been added to a product")

	// ErrBrandInUse blocks deletion of a brand still referenced by products.
	ErrBrandInUse = errors.New("cannot delete brand as it is used in products")
)

// ValidationError is raised before any database access when a required
// field is missing from the input.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func requiredField(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
