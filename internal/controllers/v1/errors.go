package v1

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// status returns the appropriate HTTP status for an error.
//
// Business-rule outcomes map to 409 so that callers can distinguish them from
// validation failures, they are expected conditions and carry no server error
// semantics.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, ledger.ErrInsufficientBalance) ||
		errors.Is(err, models.ErrContactNotUnique) ||
		errors.Is(err, ledger.ErrAllowanceBelowCarveOut) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}
