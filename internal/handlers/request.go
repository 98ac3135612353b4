package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/pagination"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError lists every field that failed structural validation
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

var errMalformedBody = errors.New("malformed request body")

// decodeJSON decodes the request body into dst and validates it.
// It returns errMalformedBody when the body is not JSON, or a
// *ValidationError when fields are missing, of the wrong type or out of range.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ValidationError{Fields: []string{describeTypeError(typeErr)}}
		}
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return validateStruct(dst)
}

func describeTypeError(err *json.UnmarshalTypeError) string {
	path := err.Field
	if path == "" {
		return "body must be a JSON " + jsonTypeName(err.Type)
	}
	return fmt.Sprintf("%s must be of type %s", path, jsonTypeName(err.Type))
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.Kind().String()
	}
}

func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, describeFieldError(fe))
	}
	return &ValidationError{Fields: fields}
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.SplitN(fe.Namespace(), ".", 2)
	path := fe.Field()
	if len(field) == 2 {
		path = field[1]
	}

	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", path, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", path, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", path, fe.Tag())
	}
}

// parseWindow reads limit and offset from the query string, applying defaults.
func parseWindow(q url.Values) (pagination.Window, error) {
	w := pagination.DefaultWindow()

	var fields []string
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			fields = append(fields, "limit must be an integer")
		} else {
			w.Limit = n
		}
	}
	if s := q.Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			fields = append(fields, "offset must be an integer")
		} else {
			w.Offset = n
		}
	}
	if len(fields) > 0 {
		return w, &ValidationError{Fields: fields}
	}

	if err := w.Validate(); err != nil {
		return w, &ValidationError{Fields: []string{err.Error()}}
	}
	return w, nil
}

// writeRequestError answers a request that never reached the services
func writeRequestError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "Validation failed", Details: verr.Fields}, logger)
	default:
		WriteError(w, http.StatusBadRequest, "Invalid request body", logger)
	}
}
