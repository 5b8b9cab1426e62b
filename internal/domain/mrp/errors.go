package mrp

import (
	"fmt"

	"github.com/mrp/backend/internal/domain/shared"
)

// Error code constants
const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeReferentialIntegrity = "REFERENTIAL_INTEGRITY"
)

func newValidationError(format string, args ...any) *shared.DomainError {
	return shared.NewDomainError(ErrCodeValidation, fmt.Sprintf(format, args...))
}

func newReferentialIntegrityError(format string, args ...any) *shared.DomainError {
	return shared.NewDomainError(ErrCodeReferentialIntegrity, fmt.Sprintf(format, args...))
}
