package models

type CourseCategory string

const (
	CategoryITSoftware      CourseCategory = "IT & Software"
	CategoryFinance         CourseCategory = "Finance & Accounting"
	CategoryPersonalDevelop CourseCategory = "Personal Development"
)

func (c CourseCategory) Valid() bool {
	switch c {
	case CategoryITSoftware, CategoryFinance, CategoryPersonalDevelop:
		return true
	}
	return false
}

// Section belongs to exactly one course and is immutable once the course is
// created. VideoURL is a file name placeholder, not a real media locator.
type Section struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
}

type Course struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Educator           string         `json:"educator"`
	Price              float64        `json:"price"`
	Category           CourseCategory `json:"category"`
	Sections           []Section      `json:"sections"`
	EnrolledStudentIDs []string       `json:"enrolledStudentIds"`
	TeacherID          string         `json:"teacherId"`
}
