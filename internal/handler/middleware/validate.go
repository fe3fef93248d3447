package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"orders-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BodyValidator checks one pre-condition of a JSON request body.
// Returns "" on pass, or the rejection reason.
type BodyValidator interface {
	Validate(body map[string]any) (reason string)
}

// ValidateBody runs the validators in order before the handler; the
// first failure aborts with 400 and its reason. The body is restored
// so the handler can still bind it.
func ValidateBody(validators ...BodyValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abortValidation(c, "failed to read request body")
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		body := map[string]any{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &body); err != nil {
				abortValidation(c, "request body must be valid JSON")
				return
			}
		}

		for _, v := range validators {
			if reason := v.Validate(body); reason != "" {
				abortValidation(c, reason)
				return
			}
		}

		c.Next()
	}
}

func abortValidation(c *gin.Context, reason string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error": reason,
	})
	_ = c.Error(gin.Error{Err: errs.New(reason), Type: gin.ErrorTypeBind})
}

type requiredField struct {
	field string
}

// RequiredField rejects requests where the field is absent or empty.
func RequiredField(field string) BodyValidator {
	return requiredField{field: field}
}

func (v requiredField) Validate(body map[string]any) string {
	value, ok := body[v.field]
	if !ok || value == nil {
		return v.field + " must be provided"
	}
	if s, isString := value.(string); isString && s == "" {
		return v.field + " must be provided"
	}
	return ""
}

type uuidField struct {
	field string
}

// UUIDField rejects requests where the field is not a well-formed UUID.
// Absence passes; combine with RequiredField when the field is mandatory.
func UUIDField(field string) BodyValidator {
	return uuidField{field: field}
}

func (v uuidField) Validate(body map[string]any) string {
	value, ok := body[v.field]
	if !ok || value == nil {
		return ""
	}

	s, isString := value.(string)
	if !isString {
		return v.field + " must be a valid identifier"
	}
	if _, err := uuid.Parse(s); err != nil {
		return v.field + " must be a valid identifier"
	}
	return ""
}
