package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Shozab-N18/StreamingServiceAPI/internal/user/models"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/user/service"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/user/store"
	"github.com/Shozab-N18/StreamingServiceAPI/pkg/testutil"
)

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (stubHasher) Verify(password, cred string) bool { return cred == "hashed:"+password }

func newUserRouter(t *testing.T) http.Handler {
	t.Helper()
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	svc := service.New(store.NewInMemory(), stubHasher{},
		service.WithClock(func() time.Time { return now }))
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	h := New(svc, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func registrationPayload() map[string]any {
	return map[string]any{
		"id":               1,
		"username":         "johndoe",
		"password":         "Password1",
		"email":            "johndoe@example.org",
		"dateOfBirth":      "2003-01-01",
		"creditCardNumber": 1234567812345678,
	}
}

func TestRegisterUser(t *testing.T) {
	router := newUserRouter(t)

	rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/register", registrationPayload()))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 registering user, got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Message == "" {
		t.Fatalf("expected success message in response")
	}
}

func TestRegisterUserStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(payload map[string]any)
		wantStatus int
	}{
		{
			name:       "invalid field maps to 400",
			mutate:     func(p map[string]any) { p["password"] = "weak" },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid card maps to 400",
			mutate:     func(p map[string]any) { p["creditCardNumber"] = 12345 },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "underage maps to 403",
			mutate:     func(p map[string]any) { p["dateOfBirth"] = "2020-01-01" },
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newUserRouter(t)
			payload := registrationPayload()
			tt.mutate(payload)

			rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/register", payload))
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d (%s)", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRegisterUserConflicts(t *testing.T) {
	router := newUserRouter(t)

	rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/register", registrationPayload()))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first registration, got %d", rec.Code)
	}

	// Same username, different email.
	dupUsername := registrationPayload()
	dupUsername["email"] = "johndoe2@example.org"
	rec = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/register", dupUsername))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", rec.Code)
	}

	// Same email, different username.
	dupEmail := registrationPayload()
	dupEmail["username"] = "otherdoe"
	rec = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/register", dupEmail))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rec.Code)
	}
}

func TestRegisterUserMalformedBody(t *testing.T) {
	router := newUserRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/users/register", nil)
	req.Body = http.NoBody
	rec := testutil.DoRequest(router, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty body, got %d", rec.Code)
	}
}

func TestListUsersFilter(t *testing.T) {
	router := newUserRouter(t)

	withCard := registrationPayload()
	rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/register", withCard))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	noCard := registrationPayload()
	noCard["username"] = "janedoe"
	noCard["email"] = "janedoe@example.org"
	delete(noCard, "creditCardNumber")
	rec = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/register", noCard))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{"no filter returns everyone", "", 2},
		{"yes returns card holders", "?hasCreditCard=yes", 1},
		{"no returns the complement", "?hasCreditCard=no", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/users"+tt.query, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			var users []models.User
			testutil.DecodeJSON(t, rec, &users)
			if len(users) != tt.wantCount {
				t.Fatalf("expected %d users, got %d", tt.wantCount, len(users))
			}
			for _, u := range users {
				if u.Credential != "" {
					t.Fatalf("credential must never be serialized")
				}
			}
		})
	}
}

func TestListUsersUnknownFilterToken(t *testing.T) {
	router := newUserRouter(t)

	rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/users?hasCreditCard=maybe", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown filter token, got %d", rec.Code)
	}
	var users []models.User
	testutil.DecodeJSON(t, rec, &users)
	if len(users) != 0 {
		t.Fatalf("expected empty result with the bad-request status, got %d users", len(users))
	}
}
