package handler

import (
	"errors"

	"elearn-api/internal/domain"
)

// errorMessage returns the client facing message of a domain error.
func errorMessage(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}
