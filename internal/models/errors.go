package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrContactNotUnique is returned when an account with the same contact
	// identifier already exists.
	ErrContactNotUnique = errors.New("an account with this contact already exists")

	// ErrCategoryNameNotUnique is returned when a category with the same name
	// already exists.
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")

	// ErrAggregateNotUnique is returned when a second aggregate row for the
	// same account and category would be created.
	ErrAggregateNotUnique = errors.New("there is already an aggregate for this account and category")
)
