package dto

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rcampos/vinylstore-backend/internal/domain/errors"
)

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// ValidationProblem é um problem RFC 7807 com a lista de erros de campo
type ValidationProblem struct {
	problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// NewProblem cria um problem RFC 7807 com title/detail traduzidos
func NewProblem(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) problems.DefaultProblem {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	return problems.DefaultProblem{
		Type:     baseURL + problemType,
		Title:    T(c, titleKey, params...),
		Status:   status,
		Detail:   T(c, detailKey, params...),
		Instance: c.Request.URL.Path,
	}
}

// respond escreve o problem com o media type RFC 7807
func respond(c *gin.Context, status int, problem interface{}) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(status, problem)
}

// ValidationErrorResponse responde 400 com os erros de campo extraídos
// do binding (go-playground/validator)
func ValidationErrorResponse(c *gin.Context, err error) {
	problem := ValidationProblem{
		DefaultProblem: NewProblem(c, domainerrors.ProblemTypeValidation,
			"error.validation.title", "error.validation.detail", http.StatusBadRequest),
	}

	var fieldErrors validator.ValidationErrors
	if stderrors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			problem.Errors = append(problem.Errors, ValidationError{
				Field:   fe.Field(),
				Message: fe.Error(),
				Tag:     fe.Tag(),
			})
		}
	}

	respond(c, http.StatusBadRequest, problem)
}

// NotFoundResponse responde 404 para o recurso informado (chave i18n)
func NotFoundResponse(c *gin.Context, resourceKey string) {
	problem := NewProblem(c, domainerrors.ProblemTypeNotFound,
		"error.not_found.title", "error.not_found.detail", http.StatusNotFound,
		map[string]interface{}{"Resource": T(c, resourceKey)},
	)
	respond(c, http.StatusNotFound, problem)
}

// ConflictResponse responde 409 com o detalhe informado (chave i18n)
func ConflictResponse(c *gin.Context, detailKey string) {
	problem := NewProblem(c, domainerrors.ProblemTypeConflict,
		"error.conflict.title", detailKey, http.StatusConflict)
	respond(c, http.StatusConflict, problem)
}

// BadRequestResponse responde 400 com o detalhe informado (chave i18n)
func BadRequestResponse(c *gin.Context, detailKey string) {
	problem := NewProblem(c, domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title", detailKey, http.StatusBadRequest)
	respond(c, http.StatusBadRequest, problem)
}

// UnauthorizedResponse responde 401
func UnauthorizedResponse(c *gin.Context) {
	problem := NewProblem(c, domainerrors.ProblemTypeUnauthorized,
		"error.unauthorized.title", "error.unauthorized.detail", http.StatusUnauthorized)
	respond(c, http.StatusUnauthorized, problem)
}

// ForbiddenResponse responde 403
func ForbiddenResponse(c *gin.Context) {
	problem := NewProblem(c, domainerrors.ProblemTypeForbidden,
		"error.forbidden.title", "error.forbidden.detail", http.StatusForbidden)
	respond(c, http.StatusForbidden, problem)
}

// InternalErrorResponse responde 500 genérico
func InternalErrorResponse(c *gin.Context) {
	problem := NewProblem(c, domainerrors.ProblemTypeInternal,
		"error.internal.title", "error.internal.detail", http.StatusInternalServerError)
	respond(c, http.StatusInternalServerError, problem)
}

// RespondDomainError mapeia erros de domínio para o status HTTP e o
// problem correspondentes. Erros desconhecidos viram 500 genérico.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, domainerrors.ErrUserNotFound):
		NotFoundResponse(c, "resource.user")
	case stderrors.Is(err, domainerrors.ErrRecordNotFound):
		NotFoundResponse(c, "resource.vinyl_record")
	case stderrors.Is(err, domainerrors.ErrReviewNotFound):
		NotFoundResponse(c, "resource.review")
	case stderrors.Is(err, domainerrors.ErrActivityLogNotFound):
		NotFoundResponse(c, "resource.activity_log")
	case stderrors.Is(err, domainerrors.ErrDuplicateRecord):
		ConflictResponse(c, "error.duplicate_record")
	case stderrors.Is(err, domainerrors.ErrInvalidPagination):
		BadRequestResponse(c, "error.invalid_pagination")
	case stderrors.Is(err, domainerrors.ErrInvalidSort):
		BadRequestResponse(c, "error.invalid_sort")
	case stderrors.Is(err, domainerrors.ErrInvalidScore):
		BadRequestResponse(c, "error.invalid_score")
	case stderrors.Is(err, domainerrors.ErrInvalidSignature):
		BadRequestResponse(c, "error.invalid_webhook_signature")
	case stderrors.Is(err, domainerrors.ErrUnauthorized):
		UnauthorizedResponse(c)
	case stderrors.Is(err, domainerrors.ErrForbidden):
		ForbiddenResponse(c)
	default:
		InternalErrorResponse(c)
	}
}
