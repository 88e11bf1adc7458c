package school

// mock fixtures served while the mock data feature flag is enabled

var (
	meFixture = Profile{
		ID:          1,
		FirstName:   "Jordan",
		LastName:    "Rivera",
		Email:       "jordan.rivera@example.edu",
		Role:        "teacher",
		Permissions: []string{"courses:view", "assignments:grade", "reports:generate"},
	}

	dashboardStatsFixture = DashboardStats{
		Sections:           3,
		Students:           74,
		AssignmentsDue:     5,
		AssignmentsToGrade: 12,
		AttendanceRate:     0.96,
	}

	coursesFixture = []Course{
		{
			ID:   101,
			Name: "Algebra II",
			Code: "MATH-201",
			Term: "2024-2025",
			Sections: []Section{
				{ID: 301, Name: "Period 1", Enrollment: 26},
				{ID: 302, Name: "Period 3", Enrollment: 24},
			},
		},
		{
			ID:   102,
			Name: "Physics",
			Code: "SCI-110",
			Term: "2024-2025",
			Sections: []Section{
				{ID: 303, Name: "Period 4", Enrollment: 24},
			},
		},
	}

	rostersFixture = map[int]Roster{
		301: {
			SectionID: 301,
			Students: []Student{
				{ID: 501, FirstName: "Alice", LastName: "Nguyen"},
				{ID: 502, FirstName: "Miguel", LastName: "Lopez"},
				{ID: 503, FirstName: "Priya", LastName: "Singh"},
			},
		},
		302: {
			SectionID: 302,
			Students: []Student{
				{ID: 504, FirstName: "Jon", LastName: "Martinez"},
				{ID: 505, FirstName: "Keisha", LastName: "Wright"},
			},
		},
		303: {
			SectionID: 303,
			Students: []Student{
				{ID: 506, FirstName: "Cam", LastName: "Davis"},
				{ID: 507, FirstName: "Noah", LastName: "Kim"},
			},
		},
	}

	gradebooksFixture = map[int]Gradebook{
		301: {
			SectionID:     301,
			GradingPeriod: "Fall 2024",
			Assignments: []GradebookColumn{
				{ID: 1, Title: "Quiz: Linear Functions", PointsPossible: 20},
				{ID: 2, Title: "Homework Set 3", PointsPossible: 15},
			},
			Students: []GradebookRow{
				{StudentID: 501, Name: "Alice Nguyen", Grades: map[int]int{1: 18, 2: 15}},
				{StudentID: 502, Name: "Miguel Lopez", Grades: map[int]int{1: 15, 2: 12}},
				{StudentID: 503, Name: "Priya Singh", Grades: map[int]int{1: 19, 2: 15}},
			},
		},
	}
)
