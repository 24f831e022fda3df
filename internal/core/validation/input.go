package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Input is a decoded JSON request body. Numbers should be decoded as json.Number.
type Input map[string]any

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var maxInt = decimal.NewFromInt(math.MaxInt32)

// reader pulls typed values out of an Input. Readers created for nested
// objects share the missing list and the violation set of their parent.
type reader struct {
	in      map[string]any
	prefix  string
	missing *[]string
	errs    *apperrors.ValidationError
}

func newReader(in Input) *reader {
	return &reader{
		in:      in,
		missing: new([]string),
		errs:    apperrors.NewValidationError(""),
	}
}

func (r *reader) path(name string) string {
	if r.prefix == "" {
		return name
	}
	return r.prefix + "." + name
}

func (r *reader) fail(name, msg string) {
	field := r.path(name)
	r.errs.Add(field, field+" "+msg)
}

// supplied reports whether the key appears in the input at all.
func (r *reader) supplied(name string) bool {
	_, ok := r.in[name]
	return ok
}

// present reports whether the key carries a value: it is not absent, not null
// and not a blank string. Zero and false are values.
func (r *reader) present(name string) bool {
	v, ok := r.in[name]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	return true
}

func (r *reader) require(names ...string) {
	for _, name := range names {
		if !r.present(name) {
			*r.missing = append(*r.missing, r.path(name))
		}
	}
}

// forbidEmpty rejects required fields that an update supplies as null or blank.
func (r *reader) forbidEmpty(names ...string) {
	for _, name := range names {
		if r.supplied(name) && !r.present(name) {
			r.fail(name, "cannot be empty")
		}
	}
}

func (r *reader) missingError() error {
	if len(*r.missing) == 0 {
		return nil
	}
	verr := apperrors.NewValidationError("Missing required fields: " + strings.Join(*r.missing, ", "))
	for _, field := range *r.missing {
		verr.Add(field, field+" is required")
	}
	return verr
}

func (r *reader) optString(name string) *string {
	v, ok := r.in[name]
	if !ok {
		return nil
	}
	var s string
	switch t := v.(type) {
	case nil:
	case string:
		s = strings.TrimSpace(t)
	case json.Number:
		s = t.String()
	default:
		r.fail(name, "must be a string")
		return nil
	}
	return &s
}

func (r *reader) str(name string) string {
	if p := r.optString(name); p != nil {
		return *p
	}
	return ""
}

func (r *reader) optDecimal(name string) *decimal.Decimal {
	if !r.present(name) {
		return nil
	}
	d, ok := toDecimal(r.in[name])
	if !ok {
		r.fail(name, "must be a number")
		return nil
	}
	return &d
}

func (r *reader) number(name string) decimal.Decimal {
	if p := r.optDecimal(name); p != nil {
		return *p
	}
	return decimal.Zero
}

func (r *reader) optInt(name string) *int {
	if !r.present(name) {
		return nil
	}
	d, ok := toDecimal(r.in[name])
	if !ok {
		r.fail(name, "must be a number")
		return nil
	}
	if !d.IsInteger() {
		r.fail(name, "must be a whole number")
		return nil
	}
	if d.Abs().GreaterThan(maxInt) {
		r.fail(name, "is out of range")
		return nil
	}
	n := int(d.IntPart())
	return &n
}

func (r *reader) integer(name string) int {
	if p := r.optInt(name); p != nil {
		return *p
	}
	return 0
}

func (r *reader) optDate(name string) *time.Time {
	if !r.present(name) {
		return nil
	}
	switch t := r.in[name].(type) {
	case time.Time:
		return &t
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				ts = ts.UTC()
				return &ts
			}
		}
	}
	r.fail(name, "must be a valid date")
	return nil
}

func (r *reader) date(name string) time.Time {
	if p := r.optDate(name); p != nil {
		return *p
	}
	return time.Time{}
}

func (r *reader) optStrings(name string) *[]string {
	if !r.present(name) {
		return nil
	}
	var raw []any
	switch t := r.in[name].(type) {
	case []any:
		raw = t
	case []string:
		out := make([]string, len(t))
		for i, s := range t {
			out[i] = strings.TrimSpace(s)
		}
		return &out
	default:
		r.fail(name, "must be a list")
		return nil
	}
	out := make([]string, 0, len(raw))
	for i, e := range raw {
		s, ok := e.(string)
		if !ok {
			r.fail(fmt.Sprintf("%s[%d]", name, i), "must be a string")
			continue
		}
		out = append(out, strings.TrimSpace(s))
	}
	return &out
}

// object returns a reader over a nested object. The reader is empty when the
// key is absent or not an object.
func (r *reader) object(name string) *reader {
	sub := &reader{prefix: r.path(name), missing: r.missing, errs: r.errs}
	if !r.present(name) {
		return sub
	}
	m, ok := asMap(r.in[name])
	if !ok {
		r.fail(name, "must be an object")
		return sub
	}
	sub.in = m
	return sub
}

// objects returns one reader per element of a list of objects. Elements that
// are not objects get an empty reader so indexes stay aligned.
func (r *reader) objects(name string) []*reader {
	if !r.present(name) {
		return nil
	}
	raw, ok := r.in[name].([]any)
	if !ok {
		r.fail(name, "must be a list")
		return nil
	}
	out := make([]*reader, len(raw))
	for i, e := range raw {
		elem := fmt.Sprintf("%s[%d]", name, i)
		out[i] = &reader{prefix: r.path(elem), missing: r.missing, errs: r.errs}
		m, ok := asMap(e)
		if !ok {
			r.fail(elem, "must be an object")
			continue
		}
		out[i].in = m
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Input:
		return t, true
	}
	return nil, false
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		return d, err == nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(t), true
	case float32:
		return toDecimal(float64(t))
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case int32:
		return decimal.NewFromInt(int64(t)), true
	case decimal.Decimal:
		return t, true
	}
	return decimal.Zero, false
}

func typed[T ~string](vals []string) []T {
	out := make([]T, len(vals))
	for i, v := range vals {
		out[i] = T(v)
	}
	return out
}

func typedPtr[T ~string](p *string) *T {
	if p == nil {
		return nil
	}
	t := T(*p)
	return &t
}

func upperPtr(p *string) {
	if p != nil {
		*p = strings.ToUpper(*p)
	}
}

func lowerPtr(p *string) {
	if p != nil {
		*p = strings.ToLower(*p)
	}
}

// secret reads a string without trimming it.
func (r *reader) secret(name string) string {
	s, ok := r.in[name].(string)
	if !ok && r.supplied(name) {
		r.fail(name, "must be a string")
	}
	return s
}
