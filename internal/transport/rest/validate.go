package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pawerflow/question-service/internal/domain"
)

const maxBodyBytes = 64 << 10

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads a JSON body into dst and runs struct validation. Every
// failure is returned as a *domain.ValidationError.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "required")
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", fmt.Sprintf("max %d bytes", maxErr.Limit))
		default:
			return domain.NewValidationError("body", "invalid JSON: "+err.Error())
		}
	}

	return validateStruct(dst)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("body", err.Error())
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
	}
	return domain.NewValidationErrors(fields)
}

// fieldPath drops the request struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	collection := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		if collection {
			return fmt.Sprintf("at most %s items", fe.Param())
		}
		return fmt.Sprintf("max %s characters", fe.Param())
	case "min":
		if collection {
			return fmt.Sprintf("at least %s items", fe.Param())
		}
		return fmt.Sprintf("min %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	case "uuid":
		return "must be a valid UUID"
	default:
		return "invalid value"
	}
}
