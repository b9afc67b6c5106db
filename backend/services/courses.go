package services

import (
	"time"

	"github.com/google/uuid"

	"learnhub/backend/models"
)

// Courses returns the full collection in insertion order, unfiltered.
func (a *API) Courses() ([]models.Course, error) {
	a.wait(500 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.Courses()
}

func (a *API) CourseByID(id string) (models.Course, error) {
	a.wait(300 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()

	courses, err := a.store.Courses()
	if err != nil {
		return models.Course{}, err
	}
	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Course{}, ErrCourseNotFound
}

type AddCourseInput struct {
	Title       string
	Description string
	Educator    string
	Price       float64
	Category    models.CourseCategory
	Sections    []models.Section
	TeacherID   string
}

// AddCourse assigns ids to the course and to any section missing one, starts
// the roster empty, and appends the course to the collection.
func (a *API) AddCourse(in AddCourseInput) (models.Course, error) {
	a.wait(1000 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()

	courses, err := a.store.Courses()
	if err != nil {
		return models.Course{}, err
	}

	sections := make([]models.Section, len(in.Sections))
	copy(sections, in.Sections)
	for i := range sections {
		if sections[i].ID == "" {
			sections[i].ID = uuid.NewString()
		}
	}

	course := models.Course{
		ID:                 uuid.NewString(),
		Title:              in.Title,
		Description:        in.Description,
		Educator:           in.Educator,
		Price:              in.Price,
		Category:           in.Category,
		Sections:           sections,
		EnrolledStudentIDs: []string{},
		TeacherID:          in.TeacherID,
	}
	courses = append(courses, course)
	if err := a.store.SetCourses(courses); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// DeleteCourse removes the course and every enrollment record that points at
// it. Deleting an absent id is a no-op.
func (a *API) DeleteCourse(id string) error {
	a.wait(500 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()

	courses, err := a.store.Courses()
	if err != nil {
		return err
	}
	kept := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(courses) {
		return nil
	}
	if err := a.store.SetCourses(kept); err != nil {
		return err
	}

	enrolled, err := a.store.Enrollments()
	if err != nil {
		return err
	}
	changed := false
	for userID, records := range enrolled {
		keptRecords := make([]models.Enrollment, 0, len(records))
		for _, rec := range records {
			if rec.CourseID != id {
				keptRecords = append(keptRecords, rec)
			}
		}
		if len(keptRecords) != len(records) {
			enrolled[userID] = keptRecords
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return a.store.SetEnrollments(enrolled)
}
