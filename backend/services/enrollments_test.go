package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/backend/models"
)

func seedCourse(t *testing.T, api *API, sections ...string) models.Course {
	t.Helper()
	in := AddCourseInput{
		Title:     "Go Basics",
		Educator:  "Bob",
		Category:  models.CategoryITSoftware,
		TeacherID: "teacher-1",
	}
	for _, title := range sections {
		in.Sections = append(in.Sections, models.Section{Title: title, VideoURL: title + ".mp4"})
	}
	course, err := api.AddCourse(in)
	require.NoError(t, err)
	return course
}

func TestEnrollTwiceIsNoOp(t *testing.T) {
	api, _ := newTestAPI(t)
	course := seedCourse(t, api, "Intro")

	require.NoError(t, api.EnrollInCourse("student-1", course.ID))
	require.NoError(t, api.EnrollInCourse("student-1", course.ID))

	fetched, err := api.CourseByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"student-1"}, fetched.EnrolledStudentIDs)

	enrolled, err := api.StudentEnrolledCourses("student-1")
	require.NoError(t, err)
	assert.Len(t, enrolled, 1)
}

func TestEnrollMissingCourse(t *testing.T) {
	api, _ := newTestAPI(t)

	err := api.EnrollInCourse("student-1", "missing")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestEnrollmentProgressDefaults(t *testing.T) {
	api, _ := newTestAPI(t)
	course := seedCourse(t, api, "Intro", "Types", "Concurrency")

	require.NoError(t, api.EnrollInCourse("student-1", course.ID))

	enrolled, err := api.StudentEnrolledCourses("student-1")
	require.NoError(t, err)
	require.Len(t, enrolled, 1)

	require.Len(t, enrolled[0].Progress, 3)
	for _, section := range course.Sections {
		completed, ok := enrolled[0].Progress[section.ID]
		assert.True(t, ok)
		assert.False(t, completed)
	}
	assert.Zero(t, enrolled[0].CompletionRate)
}

func TestDoubleToggleRestoresProgress(t *testing.T) {
	api, _ := newTestAPI(t)
	course := seedCourse(t, api, "Intro")
	sectionID := course.Sections[0].ID

	require.NoError(t, api.EnrollInCourse("student-1", course.ID))

	require.NoError(t, api.UpdateSectionProgress("student-1", course.ID, sectionID, true))
	require.NoError(t, api.UpdateSectionProgress("student-1", course.ID, sectionID, false))

	enrolled, err := api.StudentEnrolledCourses("student-1")
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.False(t, enrolled[0].Progress[sectionID])
}

func TestUpdateProgressSurfacesMisses(t *testing.T) {
	api, _ := newTestAPI(t)
	course := seedCourse(t, api, "Intro")

	err := api.UpdateSectionProgress("student-1", course.ID, course.Sections[0].ID, true)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)

	require.NoError(t, api.EnrollInCourse("student-1", course.ID))
	err = api.UpdateSectionProgress("student-1", course.ID, "missing-section", true)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestDeleteCourseRemovesEnrollmentRecords(t *testing.T) {
	api, st := newTestAPI(t)
	course := seedCourse(t, api, "Intro")

	require.NoError(t, api.EnrollInCourse("student-1", course.ID))
	require.NoError(t, api.DeleteCourse(course.ID))

	enrolled, err := api.StudentEnrolledCourses("student-1")
	require.NoError(t, err)
	assert.Empty(t, enrolled)

	records, err := st.Enrollments()
	require.NoError(t, err)
	assert.Empty(t, records["student-1"])
}

func TestCertificate(t *testing.T) {
	api, _ := newTestAPI(t)
	student, err := api.Register(RegisterInput{FullName: "Ann", Email: "ann@x.com", Password: "p", Role: models.RoleStudent})
	require.NoError(t, err)
	course := seedCourse(t, api, "Intro", "Types")

	require.NoError(t, api.EnrollInCourse(student.ID, course.ID))

	_, err = api.Certificate(student.ID, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotCompleted)

	require.NoError(t, api.UpdateSectionProgress(student.ID, course.ID, course.Sections[0].ID, true))
	_, err = api.Certificate(student.ID, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotCompleted)

	require.NoError(t, api.UpdateSectionProgress(student.ID, course.ID, course.Sections[1].ID, true))
	certificate, err := api.Certificate(student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", certificate.StudentName)
	assert.Equal(t, "Go Basics", certificate.CourseTitle)
	assert.Equal(t, "Bob", certificate.Educator)
	assert.False(t, certificate.IssuedAt.IsZero())
}

func TestCertificateLookupMisses(t *testing.T) {
	api, _ := newTestAPI(t)
	student, err := api.Register(RegisterInput{FullName: "Ann", Email: "ann@x.com", Password: "p", Role: models.RoleStudent})
	require.NoError(t, err)
	course := seedCourse(t, api, "Intro")

	_, err = api.Certificate("missing", course.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = api.Certificate(student.ID, "missing")
	assert.ErrorIs(t, err, ErrCourseNotFound)

	_, err = api.Certificate(student.ID, course.ID)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestStudentJourney(t *testing.T) {
	api, _ := newTestAPI(t)

	ann, err := api.Register(RegisterInput{FullName: "Ann", Email: "ann@x.com", Password: "p", Role: models.RoleStudent})
	require.NoError(t, err)

	loggedIn, err := api.Login("ann@x.com", "p")
	require.NoError(t, err)
	assert.Equal(t, ann.ID, loggedIn.ID)

	course := seedCourse(t, api, "Intro")
	sectionID := course.Sections[0].ID

	require.NoError(t, api.EnrollInCourse(ann.ID, course.ID))

	enrolled, err := api.StudentEnrolledCourses(ann.ID)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, course.ID, enrolled[0].ID)
	assert.Equal(t, map[string]bool{sectionID: false}, enrolled[0].Progress)

	require.NoError(t, api.UpdateSectionProgress(ann.ID, course.ID, sectionID, true))

	enrolled, err = api.StudentEnrolledCourses(ann.ID)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.True(t, enrolled[0].Progress[sectionID])
	assert.Equal(t, float64(100), enrolled[0].CompletionRate)
}
