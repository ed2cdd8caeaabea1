package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/application"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/domain/entity"
	repo "github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/domain/repository"
)

type memRepo struct {
	accounts []*entity.Account
}

func (m *memRepo) Create(a *entity.Account) error {
	a.ID = "acc-1"
	m.accounts = append(m.accounts, a)
	return nil
}

func (m *memRepo) GetByID(id string) (*entity.Account, error) {
	return m.find(func(a *entity.Account) bool { return a.ID == id })
}

func (m *memRepo) GetByEmail(email string) (*entity.Account, error) {
	return m.find(func(a *entity.Account) bool { return a.Email == email })
}

func (m *memRepo) GetByUsername(username string) (*entity.Account, error) {
	return m.find(func(a *entity.Account) bool { return a.Username == username })
}

func (m *memRepo) find(match func(*entity.Account) bool) (*entity.Account, error) {
	for _, a := range m.accounts {
		if match(a) {
			return a, nil
		}
	}
	return nil, repo.ErrNotFound
}

type envelope struct {
	Status  int               `json:"status"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    map[string]any    `json:"data"`
	Error   map[string]string `json:"error"`
}

func newTestRouter(r repo.AccountRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := application.NewService(r, nil, nil, nil, nil, "")
	h := NewRegistrationHandler(svc, nil)

	e := gin.New()
	api := e.Group("/api")
	api.POST("/register", h.Register)
	api.POST("/register/validate", h.Validate)
	return e
}

func doJSON(t *testing.T, e *gin.Engine, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return w, env
}

const validBody = `{
	"username": "johndoe",
	"phoneNumber": "1234567890",
	"email": "a@b.com",
	"password": "Abcdef12",
	"confirmPassword": "Abcdef12"
}`

func TestRegisterCreated(t *testing.T) {
	m := &memRepo{}
	e := newTestRouter(m)

	w, env := doJSON(t, e, "/api/register", validBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !env.Success {
		t.Fatalf("expected success envelope, got %+v", env)
	}
	if env.Data["title"] != "Account created" {
		t.Fatalf("expected confirmation title, got %v", env.Data)
	}
	if env.Data["description"] == "" {
		t.Fatalf("expected confirmation description, got %v", env.Data)
	}
	if len(m.accounts) != 1 {
		t.Fatalf("expected one stored account, got %d", len(m.accounts))
	}
}

func TestRegisterMalformedJSON(t *testing.T) {
	e := newTestRouter(&memRepo{})

	w, env := doJSON(t, e, "/api/register", `{"username": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env.Error["payload"] == "" {
		t.Fatalf("expected payload detail, got %+v", env)
	}
}

func TestRegisterValidationRejected(t *testing.T) {
	m := &memRepo{}
	e := newTestRouter(m)

	body := `{
		"username": "jo",
		"phoneNumber": "1234567890",
		"email": "a@b.com",
		"password": "Abcdef12",
		"confirmPassword": "Abcdef12"
	}`
	w, env := doJSON(t, e, "/api/register", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
	if env.Error["username"] != "must be at least 3 characters long" {
		t.Fatalf("expected username detail, got %v", env.Error)
	}
	if len(env.Error) != 1 {
		t.Fatalf("expected a single field error, got %v", env.Error)
	}
	if len(m.accounts) != 0 {
		t.Fatal("rejected submission must not be persisted")
	}
}

func TestRegisterDuplicateConflict(t *testing.T) {
	m := &memRepo{accounts: []*entity.Account{{ID: "a1", Username: "johndoe", Email: "taken@b.com"}}}
	e := newTestRouter(m)

	w, env := doJSON(t, e, "/api/register", validBody)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	if env.Error["username"] != "already registered" {
		t.Fatalf("expected username conflict detail, got %v", env.Error)
	}
}

func TestValidateDryRunAccepted(t *testing.T) {
	m := &memRepo{}
	e := newTestRouter(m)

	w, env := doJSON(t, e, "/api/register/validate", validBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if env.Data["accepted"] != true {
		t.Fatalf("expected accepted data, got %v", env.Data)
	}
	if len(m.accounts) != 0 {
		t.Fatal("dry-run validation must have no side effect")
	}
}

func TestValidateDryRunRejected(t *testing.T) {
	e := newTestRouter(&memRepo{})

	body := `{
		"username": "johndoe",
		"phoneNumber": "1234567890",
		"email": "a@b.com",
		"password": "Abcdef12",
		"confirmPassword": "Abcdef13"
	}`
	w, env := doJSON(t, e, "/api/register/validate", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if env.Error["confirmPassword"] != "must match the password" {
		t.Fatalf("expected confirmPassword detail, got %v", env.Error)
	}
	if _, ok := env.Error["password"]; ok {
		t.Fatalf("mismatch must never blame password, got %v", env.Error)
	}
}
