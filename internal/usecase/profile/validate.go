package profile

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(salaryRangeValidation, domain.SalaryRange{})
	return v
}

func salaryRangeValidation(sl validator.StructLevel) {
	s := sl.Current().Interface().(domain.SalaryRange)
	if s.Min != nil && s.Max != nil && *s.Min > *s.Max {
		sl.ReportError(s.Max, "max", "Max", "gtefield", "min")
	}
}

// Validate checks p against the profile field rules. Violations are returned
// as domain.ValidationErrors keyed by the JSON field path.
func Validate(p *domain.Profile) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(domain.ValidationErrors, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fe.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		out[key] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "unique":
		return "must not contain duplicates"
	case "gtefield":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}
