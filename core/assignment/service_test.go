package assignment_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolos/schoolos/core"
	"github.com/schoolos/schoolos/core/assignment"
	inmemdb "github.com/schoolos/schoolos/storage/database/inmem"
	"github.com/schoolos/schoolos/tests"
)

func setup(t *testing.T) *assignment.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return assignment.NewService(inmemdb.NewAssignmentStore(db))
}

func intPtr(i int) *int { return &i }
func strPtr(s string) *string { return &s }

func projectPayload() assignment.Payload {
	return assignment.Payload{
		CourseID:       intPtr(101),
		SectionID:      intPtr(301),
		Title:          strPtr("Project"),
		Description:    strPtr(""),
		DueDate:        strPtr("2024-10-10"),
		PointsPossible: intPtr(50),
		Category:       strPtr("Project"),
	}
}

func TestService_CreateUpdate(t *testing.T) {
	svc := setup(t)

	created, err := svc.Create(projectPayload())
	require.NoError(t, err)
	assert.Equal(t, testutil.Project(3), created)

	p := projectPayload()
	p.Title = strPtr("Updated Project")
	updated, err := svc.Update(created.ID, p)
	require.NoError(t, err)
	want := testutil.Project(3)
	want.Title = "Updated Project"
	assert.Equal(t, want, updated)

	_, err = svc.Update(42, projectPayload())
	assert.Equal(t, assignment.ErrNotFound, errors.Cause(err))
}

func TestService_PartialUpdate(t *testing.T) {
	svc := setup(t)
	existing, err := svc.GetByID(2)
	require.NoError(t, err)

	updated, err := svc.PartialUpdate(existing, assignment.Payload{Category: strPtr("Practice")})
	require.NoError(t, err)
	want := existing
	want.Category = "Practice"
	assert.Equal(t, want, updated)

	_, err = svc.PartialUpdate(existing, assignment.Payload{DueDate: strPtr("soon")})
	assert.IsType(t, &core.ValidationError{}, errors.Cause(err))

	gone := existing
	gone.ID = 42
	_, err = svc.PartialUpdate(gone, assignment.Payload{})
	assert.Equal(t, assignment.ErrNotFound, errors.Cause(err))
}

func TestService_Reset(t *testing.T) {
	svc := setup(t)
	_, err := svc.Create(projectPayload())
	require.NoError(t, err)
	assert.True(t, svc.Delete(1))

	svc.Reset()
	assert.Equal(t, assignment.Fixtures(), svc.QueryAll())
	created, err := svc.Create(projectPayload())
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
}
