package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func oneOf(fl validator.FieldLevel) bool {
	matches := strings.Split(fl.Param(), " ")
	value := fl.Field().String()
	for _, match := range matches {
		if match == value {
			return true
		}
	}
	return false
}

func eventType(fl validator.FieldLevel) bool {
	return model.EventType(fl.Field().String()).IsValid()
}

// jsonName reports fields by the name clients send them with.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// date exposes model.Date to the validator as its underlying time so "required" rejects zero days.
func date(field reflect.Value) any {
	d, ok := field.Interface().(model.Date)
	if !ok || d.IsZero() {
		return nil
	}
	return d.Time
}

// RegisterValidation Inspiration: https://blog.logrocket.com/gin-binding-in-go-a-tutorial-with-examples/
func RegisterValidation() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("error getting validation engine")
	}

	v.RegisterTagNameFunc(jsonName)
	v.RegisterCustomTypeFunc(date, model.Date{})

	if err := v.RegisterValidation("oneOf", oneOf); err != nil {
		return err
	}
	return v.RegisterValidation("eventType", eventType)
}
