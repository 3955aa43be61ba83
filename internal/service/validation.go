package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"team-capacity-backend/internal/capacity"
	apperrors "team-capacity-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs struct validation and converts failures into field errors
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	out := make(apperrors.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, &apperrors.ValidationError{Field: fe.Field(), Message: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "hexcolor":
		return "must be a hex color such as #3b82f6"
	case "unique":
		return "must not contain duplicates"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	}
	return "is invalid"
}

// parseRange parses already format-validated dates and rejects inverted ranges
func parseRange(start, end string) (capacity.DateRange, error) {
	r, err := capacity.ParseDateRange(start, end)
	if err == nil {
		return r, nil
	}
	if errors.Is(err, capacity.ErrInvalidRange) {
		return capacity.DateRange{}, apperrors.ErrInvalidDateRange
	}

	var errs apperrors.ValidationErrors
	if _, err := capacity.ParseDate(start); err != nil {
		errs.Add("start_date", "must be a date in YYYY-MM-DD format")
	}
	if _, err := capacity.ParseDate(end); err != nil {
		errs.Add("end_date", "must be a date in YYYY-MM-DD format")
	}
	return capacity.DateRange{}, errs
}

var maxDaysPerWeek = decimal.NewFromInt(7)

// normalizeDaysPerWeek checks the raw value against [0, 7], then rounds to
// one fractional digit
func normalizeDaysPerWeek(d decimal.Decimal) (decimal.Decimal, bool) {
	if d.IsNegative() || d.GreaterThan(maxDaysPerWeek) {
		return d, false
	}
	return d.Round(1), true
}

// resolveWindow parses an optional calendar window. With neither bound given
// it falls back to the month containing now, padded to whole weeks.
func resolveWindow(start, end string, now time.Time) (capacity.DateRange, error) {
	if start == "" && end == "" {
		return capacity.MonthWindow(now), nil
	}
	var errs apperrors.ValidationErrors
	if start == "" {
		errs.Add("start", "is required when end is given")
	}
	if end == "" {
		errs.Add("end", "is required when start is given")
	}
	if len(errs) > 0 {
		return capacity.DateRange{}, errs
	}
	s, err := capacity.ParseDate(start)
	if err != nil {
		errs.Add("start", "must be a date in YYYY-MM-DD format")
	}
	e, err := capacity.ParseDate(end)
	if err != nil {
		errs.Add("end", "must be a date in YYYY-MM-DD format")
	}
	if len(errs) > 0 {
		return capacity.DateRange{}, errs
	}
	window, err := capacity.NewDateRange(s, e)
	if err != nil {
		return capacity.DateRange{}, apperrors.ErrInvalidWindow
	}
	return window, nil
}
