// Package validate provides struct-tag validation with structured,
// machine-readable errors.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	email               valid email address
//	boolean             "true","false","1","0" (or actual bool)
//	alpha_dash          letters, digits, hyphens, underscores
//	snake_case          lower-case letters, digits, underscores
//	numeric             any number
//	integer             whole number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	size=N              string: exact length
//	gt=N                number > N
//	gte=N               number >= N
//	lt=N                number < N
//	lte=N               number <= N
//	between=min,max     number or string length between min and max (inclusive)
//	in=a,b,c            value must be one of the listed items
//	regex=pattern       value must match the regex (avoid commas in pattern)
//
// Example:
//
//	type Input struct {
//	    Name     string  `json:"name"     validate:"required,min=2,max=100"`
//	    Material string  `json:"material" validate:"required,in=PVC,ALUMINUM,WOOD,MIXED"`
//	    Rate     float64 `json:"rate"     validate:"required,gt=0"`
//	}
//
// Each violation is reported as a FieldError carrying the rule code, a
// human message, the field path (dot/array notation for nested callers)
// and, where it helps, an expected/received context.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// FieldError is a single validation failure.
type FieldError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Path    string         `json:"path"`
	Context map[string]any `json:"context,omitempty"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s [%s]", e.Path, e.Message, e.Code)
}

// NewFieldError builds a FieldError for callers that layer business rules
// on top of the tag-driven schema checks.
func NewFieldError(code, path, message string, ctx map[string]any) FieldError {
	return FieldError{Code: code, Message: message, Path: path, Context: ctx}
}

// Struct validates all exported fields of v that carry a `validate` tag.
// A nil/empty result means v passed.
func Struct(v interface{}) []FieldError {
	var errs []FieldError
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := splitRules(tag)

		// Pointer fields: nil means absent; validate the pointee otherwise.
		if value.Kind() == reflect.Ptr {
			if value.IsNil() {
				if hasRule(rules, "required") {
					errs = append(errs, FieldError{
						Code:    "required",
						Message: fmt.Sprintf("The %s field is required.", name),
						Path:    name,
					})
				}
				continue
			}
			value = value.Elem()
		}

		// If `nullable` is present and the field is empty, skip all rules.
		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if fe, ok := applyRule(rule, name, value); ok {
				errs = append(errs, fe)
				break // first failing rule per field
			}
		}
	}

	return errs
}

// applyRule checks one rule against one field value. The second return is
// true when the rule failed.
func applyRule(rule, field string, v reflect.Value) (FieldError, bool) {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	fail := func(msg string, ctx map[string]any) (FieldError, bool) {
		return FieldError{Code: key, Message: msg, Path: field, Context: ctx}, true
	}

	switch key {
	case "required":
		if isEmpty(v) {
			return fail(fmt.Sprintf("The %s field is required.", field), nil)
		}

	case "email":
		if !emailRE.MatchString(raw) {
			return fail(fmt.Sprintf("The %s must be a valid email address.", field), received(raw))
		}

	case "boolean":
		lower := strings.ToLower(raw)
		if v.Kind() != reflect.Bool && lower != "true" && lower != "false" && lower != "1" && lower != "0" {
			return fail(fmt.Sprintf("The %s field must be true or false.", field), received(raw))
		}

	case "alpha_dash":
		for _, c := range raw {
			if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '-' && c != '_' {
				return fail(fmt.Sprintf("The %s field may only contain letters, numbers, dashes, and underscores.", field), received(raw))
			}
		}

	case "snake_case":
		if !snakeCaseRE.MatchString(raw) {
			return fail(fmt.Sprintf("The %s field must be snake_case.", field), received(raw))
		}

	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fail(fmt.Sprintf("The %s field must be a number.", field), received(raw))
		}

	case "integer":
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return fail(fmt.Sprintf("The %s field must be an integer.", field), received(raw))
		}

	case "min":
		n := mustParseFloat(param)
		if isNumericKind(v) {
			if toFloat(v) < n {
				return fail(fmt.Sprintf("The %s must be at least %s.", field, param), expected(">= "+param, raw))
			}
		} else if float64(len([]rune(raw))) < n {
			return fail(fmt.Sprintf("The %s must be at least %s characters.", field, param), expected(">= "+param+" chars", raw))
		}

	case "max":
		n := mustParseFloat(param)
		if isNumericKind(v) {
			if toFloat(v) > n {
				return fail(fmt.Sprintf("The %s must not be greater than %s.", field, param), expected("<= "+param, raw))
			}
		} else if float64(len([]rune(raw))) > n {
			return fail(fmt.Sprintf("The %s must not exceed %s characters.", field, param), expected("<= "+param+" chars", raw))
		}

	case "size":
		n := mustParseFloat(param)
		if float64(len([]rune(raw))) != n {
			return fail(fmt.Sprintf("The %s must be exactly %s characters.", field, param), expected(param+" chars", raw))
		}

	case "gt":
		if toFloat(v) <= mustParseFloat(param) {
			return fail(fmt.Sprintf("The %s must be greater than %s.", field, param), expected("> "+param, raw))
		}

	case "gte":
		if toFloat(v) < mustParseFloat(param) {
			return fail(fmt.Sprintf("The %s must be greater than or equal to %s.", field, param), expected(">= "+param, raw))
		}

	case "lt":
		if toFloat(v) >= mustParseFloat(param) {
			return fail(fmt.Sprintf("The %s must be less than %s.", field, param), expected("< "+param, raw))
		}

	case "lte":
		if toFloat(v) > mustParseFloat(param) {
			return fail(fmt.Sprintf("The %s must be less than or equal to %s.", field, param), expected("<= "+param, raw))
		}

	case "between":
		parts := strings.SplitN(param, ",", 2)
		if len(parts) == 2 {
			lo, hi := mustParseFloat(parts[0]), mustParseFloat(parts[1])
			if isNumericKind(v) {
				if f := toFloat(v); f < lo || f > hi {
					return fail(fmt.Sprintf("The %s must be between %s and %s.", field, parts[0], parts[1]), expected(param, raw))
				}
			} else if l := float64(len([]rune(raw))); l < lo || l > hi {
				return fail(fmt.Sprintf("The %s must be between %s and %s characters.", field, parts[0], parts[1]), expected(param+" chars", raw))
			}
		}

	case "in":
		allowed := strings.Split(param, ",")
		for _, a := range allowed {
			if raw == strings.TrimSpace(a) {
				return FieldError{}, false
			}
		}
		return fail(fmt.Sprintf("The selected %s is invalid.", field), expected(param, raw))

	case "regex":
		re, err := regexp.Compile(param)
		if err != nil {
			return fail(fmt.Sprintf("The %s has an invalid validation pattern.", field), nil)
		}
		if !re.MatchString(raw) {
			return fail(fmt.Sprintf("The %s format is invalid.", field), expected(param, raw))
		}
	}

	return FieldError{}, false
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

var (
	emailRE     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	snakeCaseRE = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

func received(raw string) map[string]any {
	return map[string]any{"received": raw}
}

func expected(want string, raw string) map[string]any {
	return map[string]any{"expected": want, "received": raw}
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Bool:
		return false // false is a valid boolean value, not empty
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	return false
}

func isNumericKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	f, _ := strconv.ParseFloat(fmt.Sprintf("%v", v.Interface()), 64)
	return f
}

func mustParseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func jsonFieldName(f reflect.StructField) string {
	name := f.Tag.Get("json")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	if idx := strings.Index(name, ","); idx != -1 {
		name = name[:idx]
	}
	return name
}

// splitRules splits the validate tag by comma while keeping multi-value
// rule parameters (in=, between=) intact.
// e.g. "required,in=area,perimeter,fixed,max=100" → ["required","in=area,perimeter,fixed","max=100"]
func splitRules(tag string) []string {
	var rules []string
	var current strings.Builder
	inParam := false // true when inside a multi-value param (in=, between=)

	multiValuePrefixes := []string{"in=", "between="}

	for i := 0; i < len(tag); i++ {
		ch := tag[i]
		if ch == ',' {
			if inParam {
				// A new rule either has no '=' or has '=' after the first word.
				if looksLikeNewRule(tag[i+1:]) {
					rules = append(rules, current.String())
					current.Reset()
					inParam = false
				} else {
					// Comma is part of the param value (e.g. in=a,b,c).
					current.WriteByte(ch)
				}
			} else {
				rules = append(rules, current.String())
				current.Reset()
			}
		} else {
			current.WriteByte(ch)
			if !inParam {
				for _, pfx := range multiValuePrefixes {
					if strings.HasSuffix(current.String(), pfx) {
						inParam = true
						break
					}
				}
			}
		}
	}
	if current.Len() > 0 {
		rules = append(rules, current.String())
	}
	return rules
}

// looksLikeNewRule returns true when the string starts with a known rule
// keyword (the next token after a comma is a new rule, not a param value).
func looksLikeNewRule(s string) bool {
	known := []string{
		"required", "nullable", "email", "boolean", "alpha_dash",
		"snake_case", "numeric", "integer", "regex=", "min=", "max=",
		"size=", "gt=", "gte=", "lt=", "lte=", "in=", "between=",
	}
	for _, k := range known {
		if strings.HasPrefix(s, k) {
			return true
		}
	}
	return false
}

func hasRule(rules []string, target string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == target {
			return true
		}
	}
	return false
}
