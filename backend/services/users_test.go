package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/backend/models"
	"learnhub/backend/store"
)

func newTestAPI(t *testing.T) (*API, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemory())
	require.NoError(t, st.Init())
	return New(st, 0), st
}

func TestRegisterDuplicateEmail(t *testing.T) {
	api, st := newTestAPI(t)

	_, err := api.Register(RegisterInput{FullName: "Ann", Email: "ann@x.com", Password: "p", Role: models.RoleStudent})
	require.NoError(t, err)

	_, err = api.Register(RegisterInput{FullName: "Other Ann", Email: "ann@x.com", Password: "q", Role: models.RoleTeacher})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	users, err := st.Users()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterRedactsPassword(t *testing.T) {
	api, st := newTestAPI(t)

	user, err := api.Register(RegisterInput{FullName: "Ann", Email: "ann@x.com", Password: "p", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.NotEmpty(t, user.ID)

	users, err := st.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotEmpty(t, users[0].PasswordHash)
	assert.NotEqual(t, "p", users[0].PasswordHash)
}

func TestLoginInvalidCredentials(t *testing.T) {
	api, st := newTestAPI(t)

	_, err := api.Register(RegisterInput{FullName: "Ann", Email: "ann@x.com", Password: "p", Role: models.RoleStudent})
	require.NoError(t, err)

	_, err = api.Login("ann@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = api.Login("nobody@x.com", "p")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Failed logins must leave the session slot untouched.
	current, err := st.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestLoginSetsCurrentUser(t *testing.T) {
	api, _ := newTestAPI(t)

	registered, err := api.Register(RegisterInput{FullName: "Ann", Email: "ann@x.com", Password: "p", Role: models.RoleStudent})
	require.NoError(t, err)

	loggedIn, err := api.Login("ann@x.com", "p")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)

	current, err := api.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, registered.ID, current.ID)
	assert.Empty(t, current.PasswordHash)
}

func TestLogoutIdempotent(t *testing.T) {
	api, _ := newTestAPI(t)

	_, err := api.Register(RegisterInput{FullName: "Ann", Email: "ann@x.com", Password: "p", Role: models.RoleStudent})
	require.NoError(t, err)
	_, err = api.Login("ann@x.com", "p")
	require.NoError(t, err)

	require.NoError(t, api.Logout())
	require.NoError(t, api.Logout())

	_, err = api.CurrentUser()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestUserByID(t *testing.T) {
	api, _ := newTestAPI(t)

	registered, err := api.Register(RegisterInput{FullName: "Ann", Email: "ann@x.com", Password: "p", Role: models.RoleStudent})
	require.NoError(t, err)

	user, err := api.UserByID(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.FullName)
	assert.Empty(t, user.PasswordHash)

	_, err = api.UserByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
