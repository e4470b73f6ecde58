package entities

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"flightops360/hangar/internal/apperr"
)

// validate is shared by every entity; it caches struct metadata per type.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// defaulter fills in values a caller may leave out before tags are checked.
type defaulter interface {
	applyDefaults()
}

// ruleChecker holds constraints spanning several fields, which tags do not
// express.
type ruleChecker interface {
	checkRules() error
}

// Validate fills defaults on v, checks its validate tags and then its
// cross-field rules. Failures are apperr.ValidationError values naming the
// JSON field.
func Validate(v any) error {
	if d, ok := v.(defaulter); ok {
		d.applyDefaults()
	}
	if err := validate.Struct(v); err != nil {
		return fromValidator(err)
	}
	if c, ok := v.(ruleChecker); ok {
		return c.checkRules()
	}
	return nil
}

func fromValidator(err error) error {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return err
	}
	fe := fields[0]
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	return apperr.Invalid(field, "%s", describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.Join(oneOfValues(fe.Param()), ", ")
	case "gte", "min":
		if fe.Param() == "0" {
			return "must not be negative"
		}
		return "must be at least " + fe.Param()
	case "email":
		return "is not a valid address"
	default:
		return "failed the " + fe.Tag() + " check"
	}
}

// oneOfValues splits a oneof parameter, honouring single-quoted values.
func oneOfValues(param string) []string {
	var out []string
	for param != "" {
		param = strings.TrimLeft(param, " ")
		if param == "" {
			break
		}
		if param[0] == '\'' {
			if end := strings.IndexByte(param[1:], '\''); end >= 0 {
				out = append(out, param[1:end+1])
				param = param[end+2:]
				continue
			}
		}
		word, rest, _ := strings.Cut(param, " ")
		out = append(out, word)
		param = rest
	}
	return out
}
