// Package validation runs struct-tag validation over form inputs and turns failures
// into a map of json field name to a message fit for display next to the field.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern = regexp.MustCompile(`^\+?\d{10,13}$`)
	upiPattern   = regexp.MustCompile(`^[a-zA-Z0-9._-]{2,256}@[a-zA-Z]{2,64}$`)

	imageExtensions = map[string]struct{}{
		".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {}, ".svg": {},
	}

	// now is replaced in tests.
	now = time.Now

	mu       sync.RWMutex
	validate *validator.Validate
	enums    = map[string][]string{}
)

// FieldErrors maps json field names to messages. A nil or empty map means valid.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, "; ")
}

// Get returns the validator with the custom rules registered.
func Get() *validator.Validate {
	mu.RLock()
	v := validate
	mu.RUnlock()
	if v != nil {
		return v
	}

	mu.Lock()
	defer mu.Unlock()
	if validate == nil {
		validate = newValidator()
	}
	return validate
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("phoneemail", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return phonePattern.MatchString(s) || v.Var(s, "email") == nil
	})
	must("upi", func(fl validator.FieldLevel) bool {
		return upiPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	must("notpast", notPast)
	must("imageurl", imageURL)

	for tag, values := range enums {
		must(tag, enumRule(values))
	}
	return v
}

// RegisterEnum adds a rule named tag that accepts exactly the given values. It must be
// called before the first validation, typically from an init function.
func RegisterEnum(tag string, values ...string) error {
	mu.Lock()
	defer mu.Unlock()
	if validate != nil {
		return fmt.Errorf("register %s: validator already in use", tag)
	}
	enums[tag] = append([]string(nil), values...)
	return nil
}

// MustRegisterEnum is RegisterEnum for init functions.
func MustRegisterEnum(tag string, values ...string) {
	if err := RegisterEnum(tag, values...); err != nil {
		panic(err)
	}
}

func enumRule(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, v := range values {
			if s == v {
				return true
			}
		}
		return false
	}
}

func notPast(fl validator.FieldLevel) bool {
	var t time.Time
	switch f := fl.Field().Interface().(type) {
	case time.Time:
		t = f
	case string:
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(f))
		if err != nil {
			return false
		}
		t = parsed
	default:
		return false
	}
	today := now()
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	ty, tm, td := t.Date()
	return !time.Date(ty, tm, td, 0, 0, 0, 0, today.Location()).Before(start)
}

func imageURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(strings.TrimSpace(fl.Field().String()))
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		return true
	}
	_, ok := imageExtensions[ext]
	return ok
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Validate checks every field of input and returns all failures at once, or nil.
func Validate(input any) FieldErrors {
	err := Get().Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"_": err.Error()}
	}

	labels := labelsOf(input)
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe, labels)
	}
	return out
}

// ValidateField returns the message for one json field, or "" when it is valid.
func ValidateField(input any, field string) string {
	return Validate(input)[field]
}

// Fields lists the json names of input's fields in declaration order.
func Fields(input any) []string {
	t := reflect.TypeOf(input)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	out := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := jsonName(t.Field(i)); name != "" && t.Field(i).IsExported() {
			out = append(out, name)
		}
	}
	return out
}

func labelsOf(input any) map[string]string {
	labels := map[string]string{}
	t := reflect.TypeOf(input)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return labels
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		label := f.Tag.Get("label")
		if label == "" {
			label = humanize(jsonName(f))
		}
		labels[f.Name] = label
	}
	return labels
}

// humanize turns "tradingViewId" into "Trading view id".
func humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func message(fe validator.FieldError, labels map[string]string) string {
	label := labels[fe.StructField()]
	if label == "" {
		label = humanize(fe.Field())
	}
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "email":
		return "Enter a valid email address."
	case "phoneemail":
		return "Enter a valid email or phone number."
	case "upi":
		return "Enter a valid UPI ID (name@bank)."
	case "notpast":
		return label + " cannot be in the past."
	case "imageurl":
		return "Enter a valid image URL."
	case "eqfield":
		if strings.Contains(strings.ToLower(fe.StructField()), "password") {
			return "Passwords do not match."
		}
		return fmt.Sprintf("%s must match %s.", label, humanize(fe.Param()))
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more.", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.Join(strings.Fields(fe.Param()), ", "))
	}

	mu.RLock()
	values, isEnum := enums[fe.Tag()]
	mu.RUnlock()
	if isEnum {
		return fmt.Sprintf("%s must be one of: %s.", label, strings.Join(values, ", "))
	}
	return label + " is invalid."
}
