package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/YasserDalali/compaire/domain"
	"github.com/YasserDalali/compaire/entities"
	"github.com/YasserDalali/compaire/pkg/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUserRepository replaces the Postgres-backed gateway so handlers can be
// exercised through a real Fiber app.
type fakeUserRepository struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{nextID: 1, users: map[uint]entities.User{}}
}

func (f *fakeUserRepository) GetUsers(ctx context.Context) ([]*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []*entities.User
	for id := uint(1); id < f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			copied := u
			users = append(users, &copied)
		}
	}
	return users, nil
}

func (f *fakeUserRepository) GetUserByKey(ctx context.Context, key domain.UserKey) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if (key.ByID() && u.ID == key.ID) || (!key.ByID() && u.Email == key.Email) {
			copied := u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, u *entities.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return errors.New("duplicate key value violates unique constraint \"idx_users_email\"")
		}
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, u *entities.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepository) DeleteUser(ctx context.Context, u *entities.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, u.ID)
	return nil
}

func newTestApp() *fiber.App {
	userService := user.NewUserService(newFakeUserRepository())
	v := validator.New()
	userHandler := NewUserHandler(userService, v)
	authHandler := NewAuthHandler(userService, v)

	app := fiber.New()
	app.Get("/users", userHandler.GetUsers)
	app.Post("/users", userHandler.CreateUser)
	app.Get("/users/:id", userHandler.GetUser)
	app.Patch("/users/:id", userHandler.UpdateUser)
	app.Delete("/users/:id", userHandler.DeleteUser)
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/logout", authHandler.Logout)
	return app
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, envelope) {
	t.Helper()

	var req *http.Request
	if body != nil {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
		req = httptest.NewRequest(method, target, &buf)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, http.NoBody)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func decodeUser(t *testing.T, data json.RawMessage) domain.UserResponse {
	t.Helper()
	var res domain.UserResponse
	require.NoError(t, json.Unmarshal(data, &res))
	return res
}

func TestCreateUser(t *testing.T) {
	app := newTestApp()

	resp, env := doRequest(t, app, fiber.MethodPost, "/users", fiber.Map{
		"email":    "a@b.com",
		"password": "secret1",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	created := decodeUser(t, env.Data)
	assert.Equal(t, "a@b.com", created.Email)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "secret1", created.Password)
}

func TestCreateUserShortPassword(t *testing.T) {
	app := newTestApp()

	resp, env := doRequest(t, app, fiber.MethodPost, "/users", fiber.Map{
		"email":    "a@b.com",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, env.Error)
}

func TestCreateUserInvalidEmail(t *testing.T) {
	app := newTestApp()

	resp, _ := doRequest(t, app, fiber.MethodPost, "/users", fiber.Map{
		"email":    "not-an-email",
		"password": "secret1",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	app := newTestApp()

	resp, _ := doRequest(t, app, fiber.MethodPost, "/users", fiber.Map{
		"email":    "a@b.com",
		"password": "secret1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, fiber.MethodPost, "/users", fiber.Map{
		"email":    "a@b.com",
		"password": "secret2",
	})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestGetUserByIDAndEmail(t *testing.T) {
	app := newTestApp()

	_, env := doRequest(t, app, fiber.MethodPost, "/users", fiber.Map{
		"email":    "a@b.com",
		"password": "secret1",
	})
	created := decodeUser(t, env.Data)

	resp, env := doRequest(t, app, fiber.MethodGet, "/users/1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, created.Email, decodeUser(t, env.Data).Email)

	resp, env = doRequest(t, app, fiber.MethodGet, "/users/a@b.com", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, decodeUser(t, env.Data).ID)
}

func TestGetUserNotFound(t *testing.T) {
	app := newTestApp()

	resp, _ := doRequest(t, app, fiber.MethodGet, "/users/999999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateUserByEmail(t *testing.T) {
	app := newTestApp()

	_, env := doRequest(t, app, fiber.MethodPost, "/users", fiber.Map{
		"email":    "a@b.com",
		"password": "secret1",
	})
	created := decodeUser(t, env.Data)

	resp, env := doRequest(t, app, fiber.MethodPatch, "/users/a@b.com", fiber.Map{
		"name": "New Name",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	updated := decodeUser(t, env.Data)
	require.NotNil(t, updated.Name)
	assert.Equal(t, "New Name", *updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Password, updated.Password)
}

func TestUpdateUserNotFound(t *testing.T) {
	app := newTestApp()

	resp, _ := doRequest(t, app, fiber.MethodPatch, "/users/999999", fiber.Map{
		"name": "New Name",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteUserReturnsDeletedRecord(t *testing.T) {
	app := newTestApp()

	_, _ = doRequest(t, app, fiber.MethodPost, "/users", fiber.Map{
		"email":    "a@b.com",
		"password": "secret1",
	})

	resp, env := doRequest(t, app, fiber.MethodDelete, "/users/a@b.com", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "a@b.com", decodeUser(t, env.Data).Email)

	resp, _ = doRequest(t, app, fiber.MethodGet, "/users/a@b.com", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app := newTestApp()

	_, _ = doRequest(t, app, fiber.MethodPost, "/users", fiber.Map{
		"email":    "a@b.com",
		"password": "secret1",
	})

	resp, _ := doRequest(t, app, fiber.MethodPost, "/auth/login", fiber.Map{
		"email":    "a@b.com",
		"password": "secret1",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, fiber.MethodPost, "/auth/login", fiber.Map{
		"email":    "a@b.com",
		"password": "wrongpass",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, app, fiber.MethodPost, "/auth/login", fiber.Map{
		"email":    "nobody@b.com",
		"password": "secret1",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, app, fiber.MethodPost, "/auth/login", fiber.Map{
		"email":    "a@b.com",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterAndLogoutAreStubs(t *testing.T) {
	app := newTestApp()

	resp, _ := doRequest(t, app, fiber.MethodPost, "/auth/register", nil)
	assert.Equal(t, fiber.StatusNotImplemented, resp.StatusCode)

	resp, _ = doRequest(t, app, fiber.MethodPost, "/auth/logout", nil)
	assert.Equal(t, fiber.StatusNotImplemented, resp.StatusCode)
}
