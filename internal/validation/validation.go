// Package validation checks decoded JSON request bodies before they reach the
// storage layer.
//
// Validators operate on the generic JSON object (map[string]any with numbers
// kept as json.Number) rather than on typed structs, so a wrong-typed value
// such as "pages": "many" is reported as a validation error instead of a
// decoding failure. Rules are declared with ozzo-validation map rules.
//
// # Usage
//
//	obj, res := validation.ParseObject(body)
//	if res.Valid() {
//		res = validation.ValidateCreate(obj)
//	}
//	if !res.Valid() {
//		// respond 400 with res.Error() and res.Errors
//	}
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Error codes reported in FieldError.Code.
const (
	CodeRequired           = "required"
	CodeType               = "type"
	CodeFormat             = "format"
	CodeMinimum            = "minimum"
	CodeMinLength          = "min_length"
	CodeAdditionalProperty = "additional_property"
	CodeImmutable          = "immutable"
	CodeInvalid            = "invalid"
)

// instanceField names the request body as a whole.
const instanceField = "instance"

// FieldError describes a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the outcome of validating one request body. The zero value is a
// successful result.
type Result struct {
	Errors []FieldError `json:"errors,omitempty"`
}

// Valid reports whether no constraint was violated.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Messages returns the human-readable messages in order.
func (r Result) Messages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Error joins all messages into one string.
func (r Result) Error() string {
	return strings.Join(r.Messages(), "; ")
}

// ParseObject decodes body as a single JSON object. Numbers are kept as
// json.Number. Anything other than an object yields an invalid Result.
func ParseObject(body []byte) (map[string]any, Result) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, notAnObject()
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, notAnObject()
	}

	obj, ok := v.(map[string]any)
	if !ok || obj == nil {
		return nil, notAnObject()
	}
	return obj, Result{}
}

func notAnObject() Result {
	return Result{Errors: []FieldError{{
		Field:   instanceField,
		Code:    CodeType,
		Message: "instance is not of a type(s) object",
	}}}
}

// --- Rules ---

type kind string

const (
	kindString  kind = "string"
	kindInteger kind = "integer"
)

func isKind(value any, k kind) bool {
	switch k {
	case kindString:
		_, ok := value.(string)
		return ok
	case kindInteger:
		_, ok := asInt64(value)
		return ok
	}
	return false
}

func asInt64(value any) (int64, bool) {
	switch n := value.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		// 150.0 and 2e2 are integers too
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(n)
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// floatToInt64 accepts finite values with no fractional part that fit in int64.
func floatToInt64(f float64) (int64, bool) {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func typeRule(field string, k kind) ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		if !isKind(value, k) {
			return ozzo.NewError(CodeType, fmt.Sprintf("instance.%s is not of a type(s) %s", field, k))
		}
		return nil
	})
}

func minLengthRule(field string, min int) ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		s, _ := value.(string)
		if err := ozzo.Validate(s, ozzo.Required, ozzo.RuneLength(min, 0)); err != nil {
			return ozzo.NewError(CodeMinLength, fmt.Sprintf("instance.%s does not meet minimum length of %d", field, min))
		}
		return nil
	})
}

func uriRule(field string) ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		s, _ := value.(string)
		// RequestURL skips empty values and requires a scheme
		if s == "" || is.RequestURL.Validate(s) != nil {
			return ozzo.NewError(CodeFormat, fmt.Sprintf("instance.%s does not conform to the \"uri\" format", field))
		}
		return nil
	})
}

func minimumRule(field string, min int64) ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		n, _ := asInt64(value)
		// Min skips zero values, so Required is what rejects 0 for positive minimums.
		rules := []ozzo.Rule{ozzo.Min(min)}
		if min > 0 {
			rules = append([]ozzo.Rule{ozzo.Required}, rules...)
		}
		if err := ozzo.Validate(n, rules...); err != nil {
			return ozzo.NewError(CodeMinimum, fmt.Sprintf("instance.%s must be greater than or equal to %d", field, min))
		}
		return nil
	})
}

func immutableRule(field string) ozzo.Rule {
	return ozzo.By(func(interface{}) error {
		return ozzo.NewError(CodeImmutable, fmt.Sprintf("instance.%s cannot be changed", field))
	})
}

// collect flattens the ozzo error map into an ordered Result: declared
// properties first in declaration order, then anything else sorted by name.
func collect(err error, order []string) Result {
	if err == nil {
		return Result{}
	}

	var errs ozzo.Errors
	if !errors.As(err, &errs) {
		return Result{Errors: []FieldError{{Field: instanceField, Code: CodeInvalid, Message: err.Error()}}}
	}

	var res Result
	seen := make(map[string]bool, len(errs))
	for _, field := range order {
		if e, ok := errs[field]; ok {
			res.Errors = append(res.Errors, toFieldError(field, e))
			seen[field] = true
		}
	}

	var rest []string
	for field := range errs {
		if !seen[field] {
			rest = append(rest, field)
		}
	}
	sort.Strings(rest)
	for _, field := range rest {
		res.Errors = append(res.Errors, toFieldError(field, errs[field]))
	}
	return res
}

func toFieldError(field string, err error) FieldError {
	var verr ozzo.Error
	if !errors.As(err, &verr) {
		return FieldError{Field: field, Code: CodeInvalid, Message: err.Error()}
	}

	switch verr.Code() {
	case ozzo.ErrKeyMissing.Code():
		return FieldError{
			Field:   field,
			Code:    CodeRequired,
			Message: fmt.Sprintf("instance requires property %q", field),
		}
	case ozzo.ErrKeyUnexpected.Code():
		return FieldError{
			Field:   field,
			Code:    CodeAdditionalProperty,
			Message: fmt.Sprintf("instance is not allowed to have the additional property %q", field),
		}
	}
	return FieldError{Field: field, Code: verr.Code(), Message: verr.Message()}
}
