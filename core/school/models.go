package school

type (
	// Profile is the acting user's profile.
	Profile struct {
		ID          int      `json:"id"`
		FirstName   string   `json:"first_name"`
		LastName    string   `json:"last_name"`
		Email       string   `json:"email"`
		Role        string   `json:"role"`
		Permissions []string `json:"permissions"`
	}

	DashboardStats struct {
		Sections           int     `json:"sections"`
		Students           int     `json:"students"`
		AssignmentsDue     int     `json:"assignments_due"`
		AssignmentsToGrade int     `json:"assignments_to_grade"`
		AttendanceRate     float64 `json:"attendance_rate"`
	}

	Course struct {
		ID       int       `json:"id"`
		Name     string    `json:"name"`
		Code     string    `json:"code"`
		Term     string    `json:"term"`
		Sections []Section `json:"sections"`
	}

	Section struct {
		ID         int    `json:"id"`
		Name       string `json:"name"`
		Enrollment int    `json:"enrollment"`
	}

	Student struct {
		ID        int    `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	Roster struct {
		SectionID int       `json:"section_id"`
		Students  []Student `json:"students"`
	}

	// GradebookColumn is one graded assignment of a Gradebook.
	GradebookColumn struct {
		ID             int    `json:"id"`
		Title          string `json:"title"`
		PointsPossible int    `json:"points_possible"`
	}

	GradebookRow struct {
		StudentID int    `json:"student_id"`
		Name      string `json:"name"`
		// Grades maps an assignment ID to the points earned.
		Grades map[int]int `json:"grades"`
	}

	Gradebook struct {
		SectionID     int               `json:"section_id"`
		GradingPeriod string            `json:"grading_period"`
		Assignments   []GradebookColumn `json:"assignments"`
		Students      []GradebookRow    `json:"students"`
	}
)

func (p Profile) clone() Profile {
	p.Permissions = append([]string(nil), p.Permissions...)
	return p
}

func (c Course) clone() Course {
	c.Sections = append([]Section(nil), c.Sections...)
	return c
}

func (r Roster) clone() Roster {
	r.Students = append([]Student(nil), r.Students...)
	return r
}

func (g Gradebook) clone() Gradebook {
	g.Assignments = append([]GradebookColumn(nil), g.Assignments...)
	rows := make([]GradebookRow, 0, len(g.Students))
	for _, row := range g.Students {
		grades := make(map[int]int, len(row.Grades))
		for k, v := range row.Grades {
			grades[k] = v
		}
		row.Grades = grades
		rows = append(rows, row)
	}
	g.Students = rows
	return g
}
