package app

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/ekinsoyer/theatre-reservation-system/api"
	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
	"github.com/ekinsoyer/theatre-reservation-system/internal/mocks"
)

func TestLogin(t *testing.T) {
	activatedUser := func() *domain.User {
		user := &domain.User{ID: 1, Email: "freddie@example.com", Activated: true}
		if err := user.Password.Set("Sup3rSecret!"); err != nil {
			t.Fatal(err)
		}

		return user
	}

	tests := []struct {
		name           string
		body           api.LoginRequest
		getByEmailFunc func(context.Context, string) (*domain.User, error)
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "malformed email",
			body:           api.LoginRequest{Email: "not-an-email", Password: "whatever"},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name: "unknown user",
			body: api.LoginRequest{Email: "ghost@example.com", Password: "Sup3rSecret!"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			body: api.LoginRequest{Email: "freddie@example.com", Password: "WrongPass1!"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return activatedUser(), nil
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name: "database error",
			body: api.LoginRequest{Email: "freddie@example.com", Password: "Sup3rSecret!"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, fmt.Errorf("database error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "successful login",
			body: api.LoginRequest{Email: "freddie@example.com", Password: "Sup3rSecret!"},
			getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return activatedUser(), nil
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.userRepo = &mocks.MockUserRepo{
					GetByEmailFunc: tt.getByEmailFunc,
				}
				a.sessionManager = scs.New()
			})

			w, r := executeRequest(t, http.MethodPost, "/sessions", tt.body)

			handler := app.sessionManager.LoadAndSave(http.HandlerFunc(app.Login))
			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestLogout(t *testing.T) {
	tests := []struct {
		name           string
		setupSession   bool
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "no session",
			setupSession:   false,
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:         "successful logout",
			setupSession: true,
			wantStatus:   http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.sessionManager = scs.New()
			})

			w, r := executeRequest(t, http.MethodDelete, "/sessions", nil)

			if tt.setupSession {
				r = setupTestSession(t, app, r, 1)
			}

			handler := app.sessionManager.LoadAndSave(http.HandlerFunc(app.Logout))
			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
