package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DataBinder binds the JSON request body into req and validates it. Binding failures are returned
// as errdef validation errors listing the offending fields.
func DataBinder(c *gin.Context, req any) error {
	if c.ContentType() != "application/json" {
		return errdef.NewUnsupportedMediaType("%s only accepts content of type application/json", c.FullPath())
	}

	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		var body []byte
		if cached, ok := c.Get(gin.BodyBytesKey); ok {
			body, _ = cached.([]byte)
		}
		return bindingError(err, body, req)
	}

	return nil
}

func bindingError(err error, body []byte, req any) error {
	if errors.Is(err, io.EOF) {
		return errdef.NewBadRequest("request body is empty")
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]errdef.FieldError, len(validationErrors))
		names := make([]string, len(validationErrors))
		for i, fe := range validationErrors {
			fields[i] = errdef.FieldError{Field: fe.Field(), Message: fieldMessage(fe)}
			names[i] = fe.Field()
		}
		return errdef.NewValidation(fields, "invalid data: %s", strings.Join(names, ", "))
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		field := errdef.FieldError{Field: typeError.Field, Message: fmt.Sprintf("must be of type %s", typeError.Type)}
		return errdef.NewValidation([]errdef.FieldError{field}, "invalid data: %s", typeError.Field)
	}

	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) {
		return errdef.NewBadRequest("malformed JSON at offset %d: %v", syntaxError.Offset, err)
	}

	if name, ok := invalidField(body, req); ok {
		field := errdef.FieldError{Field: name, Message: parseMessage(err)}
		return errdef.NewValidation([]errdef.FieldError{field}, "invalid data: %s: %v", name, err)
	}

	return errdef.NewValidation(nil, "invalid data: %v", err)
}

// invalidField returns the name of the first top level field of body which can't be decoded into
// the type req points to.
func invalidField(body []byte, req any) (string, bool) {
	if len(body) == 0 {
		return "", false
	}
	typ := reflect.TypeOf(req)
	if typ == nil || typ.Kind() != reflect.Pointer {
		return "", false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", false
	}

	for _, name := range slices.Sorted(maps.Keys(fields)) {
		single, err := json.Marshal(map[string]json.RawMessage{name: fields[name]})
		if err != nil {
			continue
		}
		if err := json.Unmarshal(single, reflect.New(typ.Elem()).Interface()); err != nil {
			return name, true
		}
	}

	return "", false
}

func parseMessage(err error) string {
	var timeError *time.ParseError
	if errors.As(err, &timeError) {
		return "must be an RFC 3339 date-time"
	}
	var dateError *model.DateError
	if errors.As(err, &dateError) {
		return "must be a date in the format YYYY-MM-DD"
	}
	return fmt.Sprintf("is invalid: %v", err)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "eventType":
		return "must be one of meeting, consultation, surgery, conference, webinar, break, rounds, personal, research, other"
	case "oneOf":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte", "lte", "gt", "lt":
		return fmt.Sprintf("failed the %s=%s constraint", fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("failed on the %q tag", fe.Tag())
	}
}

// QueryBinder binds and validates the query string into req.
func QueryBinder(c *gin.Context, req any) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return bindingError(err, nil, req)
	}
	return nil
}
