package school

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_SectionRoster(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name      string
		sectionID int
		wantLen   int
		wantErr   error
	}{
		{name: "301", sectionID: 301, wantLen: 3},
		{name: "303", sectionID: 303, wantLen: 2},
		{name: "unknown", sectionID: 999, wantErr: ErrSectionNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster, err := svc.SectionRoster(tt.sectionID)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sectionID, roster.SectionID)
			assert.Len(t, roster.Students, tt.wantLen)
		})
	}
}

func TestService_SectionGradebook(t *testing.T) {
	svc := NewService()

	gb, err := svc.SectionGradebook(301)
	require.NoError(t, err)
	assert.Equal(t, "Fall 2024", gb.GradingPeriod)
	assert.Len(t, gb.Assignments, 2)
	assert.Equal(t, 18, gb.Students[0].Grades[1])

	_, err = svc.SectionGradebook(302)
	assert.Equal(t, ErrSectionNotFound, err)
}

func TestService_returnsCopies(t *testing.T) {
	svc := NewService()

	me := svc.Me()
	me.Permissions[0] = "everything"
	assert.Equal(t, "courses:view", svc.Me().Permissions[0])

	courses := svc.Courses()
	courses[0].Sections[0].Enrollment = 0
	assert.Equal(t, 26, svc.Courses()[0].Sections[0].Enrollment)

	roster, _ := svc.SectionRoster(301)
	roster.Students[0].FirstName = "Mallory"
	roster, _ = svc.SectionRoster(301)
	assert.Equal(t, "Alice", roster.Students[0].FirstName)

	gb, _ := svc.SectionGradebook(301)
	gb.Students[0].Grades[1] = 0
	gb.Assignments[0].PointsPossible = 0
	gb, _ = svc.SectionGradebook(301)
	assert.Equal(t, 18, gb.Students[0].Grades[1])
	assert.Equal(t, 20, gb.Assignments[0].PointsPossible)
}
