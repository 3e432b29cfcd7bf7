package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound        = errors.New("error.user_not_found")
	ErrRecordNotFound      = errors.New("error.record_not_found")
	ErrReviewNotFound      = errors.New("error.review_not_found")
	ErrDuplicateRecord     = errors.New("error.duplicate_record")
	ErrInvalidPagination   = errors.New("error.invalid_pagination")
	ErrInvalidSort         = errors.New("error.invalid_sort")
	ErrInvalidScore        = errors.New("error.invalid_score")
	ErrUnauthorized        = errors.New("error.unauthorized")
	ErrForbidden           = errors.New("error.forbidden")
	ErrInvalidSignature    = errors.New("error.invalid_webhook_signature")
	ErrDuplicatePurchase   = errors.New("error.duplicate_purchase")
	ErrCheckoutFailed      = errors.New("error.checkout_failed")
	ErrActivityLogNotFound = errors.New("error.activity_log_not_found")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
