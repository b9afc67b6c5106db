package store

import (
	"encoding/json"
	"fmt"

	"learnhub/backend/models"
)

// Fixed keys of the persisted state layout.
const (
	keyUsers       = "users"
	keyCourses     = "courses"
	keyEnrollments = "enrolledCourses"
	keyCurrentUser = "currentUser"
)

// KV is the storage primitive underneath the store: whole-value read and
// whole-value overwrite, no partial updates.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Store serializes the named collections as JSON documents over a KV backend.
type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Init seeds each absent collection with its empty value. Safe to call
// repeatedly; existing data is never touched.
func (s *Store) Init() error {
	seeds := []struct {
		key   string
		empty any
	}{
		{keyUsers, []models.User{}},
		{keyCourses, []models.Course{}},
		{keyEnrollments, map[string][]models.Enrollment{}},
	}
	for _, seed := range seeds {
		_, ok, err := s.kv.Get(seed.key)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if err := s.write(seed.key, seed.empty); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Users() ([]models.User, error) {
	var users []models.User
	err := s.read(keyUsers, &users)
	return users, err
}

func (s *Store) SetUsers(users []models.User) error {
	return s.write(keyUsers, users)
}

func (s *Store) Courses() ([]models.Course, error) {
	var courses []models.Course
	err := s.read(keyCourses, &courses)
	return courses, err
}

func (s *Store) SetCourses(courses []models.Course) error {
	return s.write(keyCourses, courses)
}

// Enrollments returns the mapping from user id to that user's enrollment
// records. Never nil.
func (s *Store) Enrollments() (map[string][]models.Enrollment, error) {
	enrolled := map[string][]models.Enrollment{}
	err := s.read(keyEnrollments, &enrolled)
	return enrolled, err
}

func (s *Store) SetEnrollments(enrolled map[string][]models.Enrollment) error {
	return s.write(keyEnrollments, enrolled)
}

// CurrentUser returns nil without error when the slot is empty.
func (s *Store) CurrentUser() (*models.User, error) {
	data, ok, err := s.kv.Get(keyCurrentUser)
	if err != nil || !ok {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keyCurrentUser, err)
	}
	return &user, nil
}

func (s *Store) SetCurrentUser(user models.User) error {
	return s.write(keyCurrentUser, user)
}

func (s *Store) ClearCurrentUser() error {
	return s.kv.Delete(keyCurrentUser)
}

func (s *Store) read(key string, out any) error {
	data, ok, err := s.kv.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Set(key, data)
}
