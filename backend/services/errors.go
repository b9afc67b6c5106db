package services

import "errors"

var (
	// ErrDuplicateEmail is returned when registering with an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("user with this email already exists")
	// ErrInvalidCredentials is returned on a login miss, for both unknown
	// email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotLoggedIn is returned when no user occupies the session slot.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrCourseNotFound is returned when a course lookup misses.
	ErrCourseNotFound = errors.New("course not found")
	// ErrEnrollmentNotFound is returned when the user has no enrollment
	// record for the course.
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	// ErrSectionNotFound is returned when a progress update names a section
	// outside the enrollment's progress mapping.
	ErrSectionNotFound = errors.New("section not found")
	// ErrCourseNotCompleted is returned when a certificate is requested
	// before every section is complete.
	ErrCourseNotCompleted = errors.New("course not completed")
)
