package school

import "errors"

var (
	// errors
	ErrSectionNotFound = errors.New("section not found")
)

// Service serves the read-only school catalog. Every value returned is a copy of the fixtures.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (svc *Service) Me() Profile {
	return meFixture.clone()
}

func (svc *Service) DashboardStats() DashboardStats {
	return dashboardStatsFixture
}

func (svc *Service) Courses() []Course {
	courses := make([]Course, 0, len(coursesFixture))
	for _, c := range coursesFixture {
		courses = append(courses, c.clone())
	}
	return courses
}

func (svc *Service) SectionRoster(sectionID int) (Roster, error) {
	roster, ok := rostersFixture[sectionID]
	if !ok {
		return Roster{}, ErrSectionNotFound
	}
	return roster.clone(), nil
}

func (svc *Service) SectionGradebook(sectionID int) (Gradebook, error) {
	gradebook, ok := gradebooksFixture[sectionID]
	if !ok {
		return Gradebook{}, ErrSectionNotFound
	}
	return gradebook.clone(), nil
}
