package assignment

import (
	"encoding/json"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/schoolos/schoolos/core"
)

// Assignment is one graded task of a course section.
type Assignment struct {
	ID             int       `json:"id"`
	CourseID       int       `json:"course_id"`
	SectionID      int       `json:"section_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	DueDate        core.Date `json:"due_date"`
	PointsPossible int       `json:"points_possible"`
	Category       string    `json:"category"`
}

// Payload contains the information a client may send to create or modify an Assignment.
// Fields are pointers so that a missing field can be told apart from its zero value.
type Payload struct {
	CourseID       *int    `json:"course_id" validate:"required"`
	SectionID      *int    `json:"section_id" validate:"required"`
	Title          *string `json:"title" validate:"required,notblank,max=255"`
	Description    *string `json:"description" validate:"required"`
	DueDate        *string `json:"due_date" validate:"required,isodate"`
	PointsPossible *int    `json:"points_possible" validate:"required,min=0"`
	Category       *string `json:"category" validate:"required,notblank,max=128"`

	// fields sent as null or with the wrong JSON type
	decodeErrs []core.FieldError
}

var (
	nullText       = "this field may not be null"
	invalidIntText = "a valid integer is required"
	invalidStrText = "not a valid string"
)

// UnmarshalJSON decodes the payload field by field so that every null or mistyped field is
// reported, not only the first one. Integers may also be sent as numeric strings.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.decodeErrs = nil
	p.CourseID = p.decodeInt(raw, "course_id")
	p.SectionID = p.decodeInt(raw, "section_id")
	p.Title = p.decodeString(raw, "title")
	p.Description = p.decodeString(raw, "description")
	p.DueDate = p.decodeString(raw, "due_date")
	p.PointsPossible = p.decodeInt(raw, "points_possible")
	p.Category = p.decodeString(raw, "category")
	return nil
}

func (p *Payload) fail(field, text string) {
	p.decodeErrs = append(p.decodeErrs, core.FieldError{Field: field, Error: text})
}

// lookup returns the raw value of key, reporting it if it is null.
func (p *Payload) lookup(raw map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	val, ok := raw[key]
	if !ok {
		return nil, false
	}
	if string(val) == "null" {
		p.fail(key, nullText)
		return nil, false
	}
	return val, true
}

func (p *Payload) decodeInt(raw map[string]json.RawMessage, key string) *int {
	val, ok := p.lookup(raw, key)
	if !ok {
		return nil
	}
	var i int
	if err := json.Unmarshal(val, &i); err == nil {
		return &i
	}
	var s string
	if err := json.Unmarshal(val, &s); err == nil {
		if i, err = strconv.Atoi(core.CleanString(s)); err == nil {
			return &i
		}
	}
	p.fail(key, invalidIntText)
	return nil
}

func (p *Payload) decodeString(raw map[string]json.RawMessage, key string) *string {
	val, ok := p.lookup(raw, key)
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(val, &s); err != nil {
		p.fail(key, invalidStrText)
		return nil
	}
	return &s
}

func (p *Payload) clean() {
	if p.Title != nil {
		title := core.CleanString(*p.Title)
		p.Title = &title
	}
	if p.Description != nil {
		description := core.CleanString(*p.Description)
		p.Description = &description
	}
	if p.Category != nil {
		category := core.CleanString(*p.Category)
		p.Category = &category
	}
	if p.DueDate != nil {
		dueDate := core.CleanString(*p.DueDate)
		p.DueDate = &dueDate
	}
}

// Validate checks every field of a create/full-update payload.
func (p *Payload) Validate(validate *validator.Validate) error {
	p.clean()
	return p.withDecodeErrors(validate.Struct(p))
}

// ValidatePartial checks only the fields present in the payload; missing fields are never required.
func (p *Payload) ValidatePartial(validate *validator.Validate) error {
	p.clean()
	return p.withDecodeErrors(validate.StructPartial(p, p.suppliedFields()...))
}

// withDecodeErrors merges the decoding errors into the validation result.
// A decoding error takes precedence over a rule failure on the same field.
func (p *Payload) withDecodeErrors(err error) error {
	if len(p.decodeErrs) == 0 {
		return err
	}
	return core.NewValidationError(err, p.decodeErrs...)
}

func (p *Payload) suppliedFields() []string {
	flds := make([]string, 0, 7)
	if p.CourseID != nil {
		flds = append(flds, "CourseID")
	}
	if p.SectionID != nil {
		flds = append(flds, "SectionID")
	}
	if p.Title != nil {
		flds = append(flds, "Title")
	}
	if p.Description != nil {
		flds = append(flds, "Description")
	}
	if p.DueDate != nil {
		flds = append(flds, "DueDate")
	}
	if p.PointsPossible != nil {
		flds = append(flds, "PointsPossible")
	}
	if p.Category != nil {
		flds = append(flds, "Category")
	}
	return flds
}

// Apply returns a copy of `a` where every supplied field of the payload overwrites the
// corresponding field; missing fields are kept from `a`. The payload must be validated first.
func (p *Payload) Apply(a Assignment) (Assignment, error) {
	if p.CourseID != nil {
		a.CourseID = *p.CourseID
	}
	if p.SectionID != nil {
		a.SectionID = *p.SectionID
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.DueDate != nil {
		dueDate, err := core.ParseDate(*p.DueDate)
		if err != nil {
			return Assignment{}, core.NewValidationError(err, core.FieldError{Field: "due_date", Error: err.Error()})
		}
		a.DueDate = dueDate
	}
	if p.PointsPossible != nil {
		a.PointsPossible = *p.PointsPossible
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	return a, nil
}

// Assignment builds a new record out of a fully validated payload.
func (p *Payload) Assignment() (Assignment, error) {
	return p.Apply(Assignment{})
}
