package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"learnhub/backend/models"
)

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     models.UserRole
}

// Register creates a user with a fresh id and a bcrypt hash of the password.
// The returned record is redacted.
func (a *API) Register(in RegisterInput) (models.User, error) {
	a.wait(500 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.store.Users()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == in.Email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		FullName:     in.FullName,
		Email:        in.Email,
		Role:         in.Role,
		PasswordHash: string(hash),
	}
	users = append(users, user)
	if err := a.store.SetUsers(users); err != nil {
		return models.User{}, err
	}
	return user.Redacted(), nil
}

// Login matches email and password against the users collection and, on
// success, writes the user into the session slot.
func (a *API) Login(email, password string) (models.User, error) {
	a.wait(500 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.store.Users()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}
		if err := a.store.SetCurrentUser(u); err != nil {
			return models.User{}, err
		}
		return u.Redacted(), nil
	}
	return models.User{}, ErrInvalidCredentials
}

// Logout clears the session slot. Idempotent.
func (a *API) Logout() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.ClearCurrentUser()
}

// CurrentUser returns the user occupying the session slot.
func (a *API) CurrentUser() (models.User, error) {
	a.wait(100 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()

	user, err := a.store.CurrentUser()
	if err != nil {
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, ErrNotLoggedIn
	}
	return user.Redacted(), nil
}

func (a *API) UserByID(id string) (models.User, error) {
	a.wait(100 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()

	users, err := a.store.Users()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u.Redacted(), nil
		}
	}
	return models.User{}, ErrUserNotFound
}
