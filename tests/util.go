package testutil

import (
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/schoolos/schoolos/core"
	"github.com/schoolos/schoolos/core/assignment"
)

// NewValidate returns a validator with the app's custom validations and english translations.
func NewValidate() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	return validate, translator
}

// Project returns the assignment used throughout the tests, with the given id.
func Project(id int) assignment.Assignment {
	return assignment.Assignment{
		ID:             id,
		CourseID:       101,
		SectionID:      301,
		Title:          "Project",
		Description:    "",
		DueDate:        core.NewDate(2024, time.October, 10),
		PointsPossible: 50,
		Category:       "Project",
	}
}

// CreateAssignments stores n copies of Project and returns them.
func CreateAssignments(t *testing.T, store assignment.Store, n int) []assignment.Assignment {
	t.Helper()
	created := make([]assignment.Assignment, 0, n)
	for i := 0; i < n; i++ {
		a := store.Create(Project(0))
		if a.ID == 0 {
			t.Fatalf("CreateAssignments() failed: no id issued")
		}
		created = append(created, a)
	}
	return created
}
