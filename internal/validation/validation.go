// Package validation decodes and constrains request input before it reaches
// the ticket service. Every failure is reported as a *ValidationError that
// carries one FieldError per offending location.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"tickets-api/internal/models"
)

// Error types reported in FieldError.Type.
const (
	TypeMissing        = "missing"
	TypeStringTooShort = "string_too_short"
	TypeStringType     = "string_type"
	TypeObjectType     = "object_type"
	TypeJSONInvalid    = "json_invalid"
	TypeIntParsing     = "int_parsing"
)

// FieldError describes one rejected input location, e.g. Loc ["body","title"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is returned for any input that fails decoding or constraints.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, strings.Join(fe.Loc, ".")+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newError(typ, msg string, loc ...string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Loc: loc, Msg: msg, Type: typ}}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeCreate reads and validates a ticket creation body.
func DecodeCreate(r io.Reader) (models.TicketCreate, error) {
	var in models.TicketCreate
	obj, err := decodeObject(r)
	if err != nil {
		return in, err
	}
	verr := &ValidationError{}
	in.Title = stringField(obj, "title", verr)
	in.Description = stringField(obj, "description", verr)
	if len(verr.Errors) > 0 {
		return in, verr
	}
	if err := Struct(in); err != nil {
		return in, err
	}
	return in, nil
}

// DecodeUpdate reads a ticket update body. Fields are optional and carry no
// length constraint; only their JSON type is checked.
func DecodeUpdate(r io.Reader) (models.TicketUpdate, error) {
	var in models.TicketUpdate
	obj, err := decodeObject(r)
	if err != nil {
		return in, err
	}
	verr := &ValidationError{}
	in.Title = stringField(obj, "title", verr)
	in.Description = stringField(obj, "description", verr)
	in.Status = stringField(obj, "status", verr)
	if len(verr.Errors) > 0 {
		return in, verr
	}
	return in, nil
}

// TicketID parses the {id} path segment.
func TicketID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, newError(TypeIntParsing,
			"Input should be a valid integer, unable to parse string as an integer",
			"path", "ticket_id")
	}
	return id, nil
}

// Struct runs the `validate` tags of v.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, fieldError(fe))
	}
	return out
}

func fieldError(fe validator.FieldError) FieldError {
	loc := []string{"body", fe.Field()}
	switch fe.Tag() {
	case "required":
		return FieldError{Loc: loc, Msg: "Field required", Type: TypeMissing}
	case "min":
		return FieldError{
			Loc:  loc,
			Msg:  fmt.Sprintf("String should have at least %s character", fe.Param()),
			Type: TypeStringTooShort,
		}
	default:
		return FieldError{Loc: loc, Msg: fe.Error(), Type: fe.Tag()}
	}
}

// decodeObject reads exactly one JSON object from r. Keys are kept verbatim so
// lookups are case-sensitive.
func decodeObject(r io.Reader) (map[string]json.RawMessage, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, newError(TypeJSONInvalid, "could not read body", "body")
	}
	if !utf8.Valid(raw) {
		return nil, newError(TypeJSONInvalid, "JSON decode error", "body")
	}

	var obj map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(raw))
	err = dec.Decode(&obj)

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return nil, newError(TypeMissing, "Field required", "body")
	case errors.As(err, &typeErr):
		return nil, newError(TypeObjectType, "Input should be a valid object", "body")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return nil, newError(TypeJSONInvalid, "JSON decode error", "body")
	default:
		return nil, newError(TypeJSONInvalid, err.Error(), "body")
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, newError(TypeJSONInvalid, "JSON decode error", "body")
	}
	// a literal null leaves the map nil
	if obj == nil {
		return nil, newError(TypeObjectType, "Input should be a valid object", "body")
	}
	return obj, nil
}

// stringField returns obj[key] as a string. An absent key or a null value
// yields nil; any other non-string value is recorded in verr.
func stringField(obj map[string]json.RawMessage, key string, verr *ValidationError) *string {
	v, ok := obj[key]
	if !ok || string(v) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		verr.Errors = append(verr.Errors, FieldError{
			Loc:  []string{"body", key},
			Msg:  "Input should be a valid string",
			Type: TypeStringType,
		})
		return nil
	}
	return &s
}
