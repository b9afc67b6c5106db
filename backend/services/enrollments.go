package services

import (
	"slices"
	"time"

	"learnhub/backend/models"
)

// EnrollInCourse adds the user to the course roster and creates an enrollment
// record with every current section marked incomplete. Both steps are guarded
// by membership checks, so enrolling twice is a no-op.
func (a *API) EnrollInCourse(userID, courseID string) error {
	a.wait(1000 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()

	courses, err := a.store.Courses()
	if err != nil {
		return err
	}
	var course *models.Course
	for i := range courses {
		if courses[i].ID == courseID {
			course = &courses[i]
			break
		}
	}
	if course == nil {
		return ErrCourseNotFound
	}

	if !slices.Contains(course.EnrolledStudentIDs, userID) {
		course.EnrolledStudentIDs = append(course.EnrolledStudentIDs, userID)
		if err := a.store.SetCourses(courses); err != nil {
			return err
		}
	}

	enrolled, err := a.store.Enrollments()
	if err != nil {
		return err
	}
	for _, rec := range enrolled[userID] {
		if rec.CourseID == courseID {
			return nil
		}
	}
	progress := make(map[string]bool, len(course.Sections))
	for _, section := range course.Sections {
		progress[section.ID] = false
	}
	enrolled[userID] = append(enrolled[userID], models.Enrollment{
		CourseID: courseID,
		Progress: progress,
	})
	return a.store.SetEnrollments(enrolled)
}

// StudentEnrolledCourses joins the user's enrollment records with the current
// course detail. A record whose course no longer exists is skipped.
func (a *API) StudentEnrolledCourses(userID string) ([]models.EnrolledCourse, error) {
	a.wait(500 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()

	courses, err := a.store.Courses()
	if err != nil {
		return nil, err
	}
	enrolled, err := a.store.Enrollments()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	records := enrolled[userID]
	out := make([]models.EnrolledCourse, 0, len(records))
	for _, rec := range records {
		course, ok := byID[rec.CourseID]
		if !ok {
			continue
		}
		out = append(out, models.EnrolledCourse{
			Course:         course,
			Progress:       rec.Progress,
			CompletionRate: completionRate(course.Sections, rec.Progress),
		})
	}
	return out, nil
}

// UpdateSectionProgress sets the completion flag for one section of the
// user's enrollment record.
func (a *API) UpdateSectionProgress(userID, courseID, sectionID string, completed bool) error {
	a.wait(200 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()

	enrolled, err := a.store.Enrollments()
	if err != nil {
		return err
	}
	records := enrolled[userID]
	for i := range records {
		if records[i].CourseID != courseID {
			continue
		}
		if _, ok := records[i].Progress[sectionID]; !ok {
			return ErrSectionNotFound
		}
		records[i].Progress[sectionID] = completed
		return a.store.SetEnrollments(enrolled)
	}
	return ErrEnrollmentNotFound
}

// Certificate returns completion certificate data once every section of the
// enrolled course is marked complete.
func (a *API) Certificate(userID, courseID string) (models.Certificate, error) {
	a.wait(300 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.store.Users()
	if err != nil {
		return models.Certificate{}, err
	}
	var student *models.User
	for i := range users {
		if users[i].ID == userID {
			student = &users[i]
			break
		}
	}
	if student == nil {
		return models.Certificate{}, ErrUserNotFound
	}

	courses, err := a.store.Courses()
	if err != nil {
		return models.Certificate{}, err
	}
	var course *models.Course
	for i := range courses {
		if courses[i].ID == courseID {
			course = &courses[i]
			break
		}
	}
	if course == nil {
		return models.Certificate{}, ErrCourseNotFound
	}

	enrolled, err := a.store.Enrollments()
	if err != nil {
		return models.Certificate{}, err
	}
	var record *models.Enrollment
	for i, rec := range enrolled[userID] {
		if rec.CourseID == courseID {
			record = &enrolled[userID][i]
			break
		}
	}
	if record == nil {
		return models.Certificate{}, ErrEnrollmentNotFound
	}

	if len(course.Sections) == 0 || completionRate(course.Sections, record.Progress) < 100 {
		return models.Certificate{}, ErrCourseNotCompleted
	}
	return models.Certificate{
		StudentName: student.FullName,
		CourseTitle: course.Title,
		Educator:    course.Educator,
		IssuedAt:    time.Now().UTC(),
	}, nil
}

func completionRate(sections []models.Section, progress map[string]bool) float64 {
	if len(sections) == 0 {
		return 0
	}
	done := 0
	for _, section := range sections {
		if progress[section.ID] {
			done++
		}
	}
	return float64(done) / float64(len(sections)) * 100
}
