package assignment

import (
	"errors"
	"time"

	"github.com/schoolos/schoolos/core"
)

var (
	// errors
	ErrNotFound = errors.New("assignment not found")
)

// Store owns the authoritative set of assignments.
// Every Assignment it hands out is a copy; ids are never reused within the Store's lifetime.
type Store interface {
	// Reset replaces the whole content with Fixtures.
	Reset()
	// All returns every assignment ordered by ascending ID.
	All() []Assignment
	Get(id int) (Assignment, error)
	// Create ignores a.ID and assigns the next available ID.
	Create(a Assignment) Assignment
	// Update fully replaces the assignment stored under id.
	Update(id int, a Assignment) (Assignment, error)
	// Delete reports whether an assignment was actually removed.
	Delete(id int) bool
}

// Fixtures returns the seed assignments restored by Store.Reset.
func Fixtures() []Assignment {
	return []Assignment{
		{
			ID:             1,
			CourseID:       101,
			SectionID:      301,
			Title:          "Quiz: Linear Functions",
			Description:    "Assess understanding of slope-intercept form.",
			DueDate:        core.NewDate(2024, time.September, 20),
			PointsPossible: 20,
			Category:       "Quiz",
		},
		{
			ID:             2,
			CourseID:       101,
			SectionID:      301,
			Title:          "Homework Set 3",
			Description:    "Practice problems on systems of equations.",
			DueDate:        core.NewDate(2024, time.September, 25),
			PointsPossible: 15,
			Category:       "Homework",
		},
	}
}
