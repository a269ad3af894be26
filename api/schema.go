package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrSchemaMismatch is returned when a value of the wrong Go type is checked against a schema.
var ErrSchemaMismatch = errors.New("value does not match schema type")

// ValidationError reports the first field that failed validation.
// Field is the JSON name and is empty for whole-body problems.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Schema decodes and validates one payload shape.
type Schema interface {
	// Decode parses data into a new value and validates it.
	Decode(data []byte) (interface{}, error)
	// Check validates an already built value.
	Check(v interface{}) error
}

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
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ObjectSchema validates a single JSON object decoded into T.
type ObjectSchema[T any] struct{}

// Object returns the schema for T.
func Object[T any]() ObjectSchema[T] {
	return ObjectSchema[T]{}
}

// Decode returns a *T.
func (s ObjectSchema[T]) Decode(data []byte) (interface{}, error) {
	var v T
	if err := decodeJSON(data, &v); err != nil {
		return nil, err
	}
	if err := validateValue(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Check accepts T or *T.
func (s ObjectSchema[T]) Check(v interface{}) error {
	switch t := v.(type) {
	case *T:
		if t == nil {
			return fmt.Errorf("%w: nil %T", ErrSchemaMismatch, t)
		}
		return validateValue(t)
	case T:
		return validateValue(&t)
	default:
		var zero T
		return fmt.Errorf("%w: expected %T, got %T", ErrSchemaMismatch, zero, v)
	}
}

// ListSchema validates a JSON array whose elements match T.
type ListSchema[T any] struct{}

// List returns the array schema for T.
func List[T any]() ListSchema[T] {
	return ListSchema[T]{}
}

// Decode returns a non-nil []T.
func (s ListSchema[T]) Decode(data []byte) (interface{}, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &ValidationError{Message: "body must be an array"}
	}
	items := []T{}
	if err := decodeJSON(trimmed, &items); err != nil {
		return nil, err
	}
	if err := checkItems(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Check accepts []T or []*T.
func (s ListSchema[T]) Check(v interface{}) error {
	switch items := v.(type) {
	case []T:
		return checkItems(items)
	case []*T:
		for i, item := range items {
			if item == nil {
				return fmt.Errorf("item %d: %w: nil element", i, ErrSchemaMismatch)
			}
			if err := validateValue(item); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		return nil
	default:
		var zero []T
		return fmt.Errorf("%w: expected %T, got %T", ErrSchemaMismatch, zero, v)
	}
}

func checkItems[T any](items []T) error {
	for i := range items {
		if err := validateValue(&items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

type voidSchema struct{}

// Void returns the schema of an empty body.
func Void() Schema {
	return voidSchema{}
}

func (voidSchema) Decode(data []byte) (interface{}, error) {
	if len(bytes.TrimSpace(data)) != 0 {
		return nil, &ValidationError{Message: "body must be empty"}
	}
	return nil, nil
}

func (voidSchema) Check(v interface{}) error {
	if v != nil {
		return fmt.Errorf("%w: expected no body, got %T", ErrSchemaMismatch, v)
	}
	return nil
}

// Patch is a partially supplied T. Fields holds the JSON names present in the
// payload; only those fields of Value carry meaning.
type Patch[T any] struct {
	Value  T
	Fields map[string]bool
}

// Has reports whether the named JSON field was supplied.
func (p *Patch[T]) Has(field string) bool {
	return p.Fields[field]
}

// PartialSchema relaxes every field of an ObjectSchema to optional while
// validating supplied fields with the same rules.
type PartialSchema[T any] struct {
	fields map[string]string
}

// Partial derives the update schema from a create schema.
func Partial[T any](ObjectSchema[T]) PartialSchema[T] {
	var zero T
	return PartialSchema[T]{fields: jsonFields(reflect.TypeOf(zero))}
}

// Decode returns a *Patch[T].
func (s PartialSchema[T]) Decode(data []byte) (interface{}, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &ValidationError{Message: "body must be an object"}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &ValidationError{Message: "invalid JSON body"}
	}

	patch := &Patch[T]{Fields: make(map[string]bool, len(raw))}
	if err := decodeJSON(trimmed, &patch.Value); err != nil {
		return nil, err
	}
	for name := range raw {
		if _, ok := s.fields[name]; ok {
			patch.Fields[name] = true
		}
	}

	if err := s.Check(patch); err != nil {
		return nil, err
	}
	return patch, nil
}

// Check accepts *Patch[T] and validates only the supplied fields.
func (s PartialSchema[T]) Check(v interface{}) error {
	patch, ok := v.(*Patch[T])
	if !ok || patch == nil {
		return fmt.Errorf("%w: expected *Patch, got %T", ErrSchemaMismatch, v)
	}
	if len(patch.Fields) == 0 {
		return nil
	}

	goNames := make([]string, 0, len(patch.Fields))
	for name := range patch.Fields {
		goName, ok := s.fields[name]
		if !ok {
			return &ValidationError{Field: name, Message: fmt.Sprintf("%s is not a known field", name)}
		}
		goNames = append(goNames, goName)
	}

	if err := validate.StructPartial(&patch.Value, goNames...); err != nil {
		return translate(err)
	}
	return nil
}

// jsonFields maps JSON names to Go field names for the exported fields of t.
func jsonFields(t reflect.Type) map[string]string {
	out := map[string]string{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		out[name] = f.Name
	}
	return out
}

type selfValidator interface {
	Validate() error
}

func validateValue(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return translate(err)
	}
	if sv, ok := v.(selfValidator); ok {
		return sv.Validate()
	}
	return nil
}

func decodeJSON(data []byte, dest interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return &ValidationError{Message: "body is required"}
	}

	err := json.Unmarshal(data, dest)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return &ValidationError{Message: "body must be " + indefinite(kindName(typeErr.Type))}
		}
		return &ValidationError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be %s", typeErr.Field, indefinite(kindName(typeErr.Type))),
		}
	}
	return &ValidationError{Message: "invalid JSON body"}
}

func kindName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

func indefinite(noun string) string {
	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + noun
	}
	return "a " + noun
}

func translate(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	fe := errs[0]
	field := fe.Field()
	return &ValidationError{Field: field, Message: fieldMessage(field, fe)}
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}

// NewPatch builds a patch supplying the named JSON fields of value.
func NewPatch[T any](value T, fields ...string) *Patch[T] {
	p := &Patch[T]{Value: value, Fields: make(map[string]bool, len(fields))}
	for _, f := range fields {
		p.Fields[f] = true
	}
	return p
}

// MarshalJSON encodes only the supplied fields, so an explicit null survives.
func (p Patch[T]) MarshalJSON() ([]byte, error) {
	v := reflect.ValueOf(p.Value)
	names := jsonFields(v.Type())
	out := make(map[string]interface{}, len(p.Fields))
	for name := range p.Fields {
		goName, ok := names[name]
		if !ok {
			continue
		}
		out[name] = v.FieldByName(goName).Interface()
	}
	return json.Marshal(out)
}
