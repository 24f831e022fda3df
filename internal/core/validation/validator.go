// Package validation turns decoded request bodies into typed, normalized
// domain records, collecting every field violation it finds.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	barcodePattern      = regexp.MustCompile(`^[0-9]{12,13}$`)
	phone10Pattern      = regexp.MustCompile(`^\d{10}$`)
	zipCodePattern      = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	contactPhonePattern = regexp.MustCompile(`^[+]*[(]{0,1}[0-9]{1,4}[)]{0,1}[-\s./0-9]*$`)
	emailPattern        = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	oneofParamPattern   = regexp.MustCompile(`'[^']*'|\S+`)
)

// Validator validates entity input. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the clock used for "must be in the future" rules.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// New creates a Validator with the entity rule set registered.
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.RegisterTagNameFunc(jsonFieldName)

	patterns := map[string]*regexp.Regexp{
		"barcode":      barcodePattern,
		"phone10":      phone10Pattern,
		"zipcode":      zipCodePattern,
		"contactphone": contactPhonePattern,
		"emailaddr":    emailPattern,
	}
	for tag, re := range patterns {
		// registration only fails for empty tags or nil funcs
		_ = v.validate.RegisterValidation(tag, matchPattern(re))
	}
	bounds := map[string]func(cmp int) bool{
		"dgte": func(cmp int) bool { return cmp >= 0 },
		"dgt":  func(cmp int) bool { return cmp > 0 },
		"dlte": func(cmp int) bool { return cmp <= 0 },
	}
	for tag, ok := range bounds {
		_ = v.validate.RegisterValidation(tag, decimalBound(ok))
	}
	return v
}

// matchPattern accepts the empty string; presence is enforced separately.
func matchPattern(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || re.MatchString(s)
	}
}

// decimalBound compares a decimal field with the tag parameter exactly;
// ok receives the result of field.Cmp(param).
func decimalBound(ok func(cmp int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, isDecimal := fl.Field().Interface().(decimal.Decimal)
		if !isDecimal {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("invalid decimal bound %q on %s", fl.Param(), fl.FieldName()))
		}
		return ok(d.Cmp(bound))
	}
}

// jsonFieldName reports fields by their JSON name so violations read like the request body.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return lowerFirst(fld.Name)
	}
	return name
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// check runs the struct rules over rec and merges the resulting violations with
// those already recorded by r. Rule failures on fields that already failed
// coercion are dropped.
func (v *Validator) check(r *reader, rec any) error {
	verr := r.errs
	if err := v.validate.Struct(rec); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validating %T: %w", rec, err)
		}
		for _, fe := range fieldErrs {
			field := fieldPath(fe)
			if verr.HasField(field) {
				continue
			}
			verr.Add(field, describe(fe, field))
		}
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// checkVar validates a single value that is not part of a struct.
func (v *Validator) checkVar(r *reader, field string, value any, tag string) {
	if r.errs.HasField(field) {
		return
	}
	err := v.validate.Var(value, tag)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		r.errs.Add(field, describe(fieldErrs[0], field))
	}
}

// fieldPath strips the root struct name from the namespace: "Order.items[0].quantity" -> "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError, field string) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at least %s item(s)", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s cannot exceed %s characters", field, param)
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s cannot contain more than %s items", field, param)
		}
		return fmt.Sprintf("%s cannot exceed %s", field, param)
	case "gte", "dgte":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "gt", "dgt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "lte", "dlte":
		return fmt.Sprintf("%s cannot exceed %s", field, param)
	case "oneof":
		return fmt.Sprintf("'%v' is not a valid %s; expected one of: %s", fe.Value(), field, strings.Join(oneofValues(param), ", "))
	case "barcode":
		return field + " must be 12 or 13 digits"
	case "phone10":
		return field + " must be exactly 10 digits"
	case "zipcode":
		return field + " must be a valid ZIP code"
	case "contactphone":
		return field + " must be a valid phone number"
	case "emailaddr":
		return field + " must be a valid email address"
	case "uuid":
		return field + " must be a valid identifier"
	case "uri":
		return field + " must be a valid URL or path"
	}
	return field + " is invalid"
}

func oneofValues(param string) []string {
	vals := oneofParamPattern.FindAllString(param, -1)
	for i, val := range vals {
		vals[i] = strings.Trim(val, "'")
	}
	return vals
}

// future records a violation when t is not after the validator's clock.
func (v *Validator) future(r *reader, field string, t time.Time) {
	if r.errs.HasField(field) {
		return
	}
	if !t.After(v.now()) {
		r.errs.Add(field, field+" must be in the future")
	}
}
