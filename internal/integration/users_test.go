package integration_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UserTestSuite struct {
	BaseSuite
}

func TestUserSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(UserTestSuite))
}

func (s *UserTestSuite) TestRegisterUser() {
	scenarios := []Scenario{
		{
			Name:           "returns 400 for request with malformed JSON",
			Method:         "POST",
			URL:            "/users",
			Body:           strings.NewReader(`{"bad":"json"`),
			ExpectedStatus: http.StatusBadRequest,
			ExpectedResponse: `{
				"message": "body contains badly-formed JSON"
			}`,
		},
		{
			Name:   "returns 422 for invalid input data",
			Method: "POST",
			URL:    "/users",
			Body: strings.NewReader(`{
				"email": "invalid-email",
				"firstName": "John",
				"lastName": "Doe",
				"password": "123"
			}`),
			ExpectedStatus: http.StatusUnprocessableEntity,
			ExpectedResponse: `{
				"message": "One or more fields failed validation",
				"validationErrors": [
					{"field": "Email", "issue": "must be a valid email address"},
					{"field": "Password", "issue": "must be 8-25 characters long and include at least one uppercase letter, one lowercase letter, one number, and one special character (!@#$%^&*)"}
				]
			}`,
		},
		{
			Name:   "returns 400 when email already exists",
			Method: "POST",
			URL:    "/users",
			Body: strings.NewReader(fmt.Sprintf(`{
				"email": %q,
				"firstName": %q,
				"lastName": %q,
				"password": %q
			}`, TestUserEmail, TestUserFirstName, TestUserLastName, TestUserPassword)),
			ExpectedStatus: http.StatusBadRequest,
			ExpectedResponse: `{
				"message": "invalid input data"
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				truncateUsersAndTokens(t, app.DB)
				insertTestUser(t, app.DB, false)
				app.Mailer.Reset()
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, _ *http.Response) {
				var userCount int
				err := app.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM users WHERE email = $1", TestUserEmail).Scan(&userCount)
				require.NoError(t, err)
				require.Equal(t, 1, userCount, "should not create a new user")

				var tokenCount int
				err = app.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM tokens").Scan(&tokenCount)
				require.NoError(t, err)
				require.Zero(t, tokenCount, "should not create an activation token")

				require.Empty(t, app.Mailer.SentMails(), "should not send any emails")
			},
		},
		{
			Name:   "successfully registers a new user",
			Method: "POST",
			URL:    "/users",
			Body: strings.NewReader(fmt.Sprintf(`{
				"email": %q,
				"firstName": %q,
				"lastName": %q,
				"password": %q
			}`, TestUserEmail, TestUserFirstName, TestUserLastName, TestUserPassword)),
			ExpectedStatus: http.StatusAccepted,
			ExpectedResponse: fmt.Sprintf(`{
				"id": 1,
				"firstName": %q,
				"lastName": %q,
				"email": %q,
				"activated": false,
				"version": 1
			}`, TestUserFirstName, TestUserLastName, TestUserEmail),
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				truncateUsersAndTokens(t, app.DB)
				app.Mailer.Reset()
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, _ *http.Response) {
				var tokenCount int
				err := app.DB.QueryRow(context.Background(), `
					SELECT COUNT(*) FROM tokens WHERE user_id = 1 AND scope = 'user_activation'
				`).Scan(&tokenCount)
				require.NoError(t, err)
				require.Equal(t, 1, tokenCount, "an activation token must be stored")

				// the welcome mail goes out asynchronously
				require.Eventually(t, func() bool {
					return len(app.Mailer.SentMails()) == 1
				}, 2*time.Second, 50*time.Millisecond, "a welcome mail must be sent")

				mail := app.Mailer.SentMails()[0]
				require.Equal(t, TestUserEmail, mail.Recipient)
				require.Equal(t, "user_welcome.tmpl", mail.TemplateFile)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *UserTestSuite) TestActivationFlow() {
	t := s.T()

	truncateUsersAndTokens(t, s.app.DB)
	s.app.Mailer.Reset()

	// register
	body := strings.NewReader(fmt.Sprintf(`{
		"email": %q,
		"firstName": %q,
		"lastName": %q,
		"password": %q
	}`, TestUserEmail, TestUserFirstName, TestUserLastName, TestUserPassword))

	req, err := prepareRequest("POST", "/users", body, nil, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.app.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Eventually(t, func() bool {
		return len(s.app.Mailer.SentMails()) == 1
	}, 2*time.Second, 50*time.Millisecond)

	data, ok := s.app.Mailer.SentMails()[0].Data.(map[string]any)
	require.True(t, ok, "mail data must carry the activation token")

	token, ok := data["activationToken"].(string)
	require.True(t, ok)

	// activate with the mailed token
	activation := Scenario{
		Name:           "activates the user with the mailed token",
		Method:         "PUT",
		URL:            "/users/activated",
		Body:           strings.NewReader(fmt.Sprintf(`{"token": %q}`, token)),
		ExpectedStatus: http.StatusOK,
		ExpectedResponse: `{
			"activated": true
		}`,
		AfterTestFunc: func(t testing.TB, app *TestApp, _ *http.Response) {
			var activated bool
			err := app.DB.QueryRow(context.Background(), "SELECT activated FROM users WHERE id = 1").Scan(&activated)
			require.NoError(t, err)
			require.True(t, activated)

			var tokenCount int
			err = app.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM tokens WHERE user_id = 1").Scan(&tokenCount)
			require.NoError(t, err)
			require.Zero(t, tokenCount, "used activation tokens must be deleted")
		},
	}
	activation.Run(t, s.app)

	// reusing the token must fail
	reuse := Scenario{
		Name:           "rejects a second activation with the same token",
		Method:         "PUT",
		URL:            "/users/activated",
		Body:           strings.NewReader(fmt.Sprintf(`{"token": %q}`, token)),
		ExpectedStatus: http.StatusNotFound,
		ExpectedResponse: `{
			"message": "The requested resource not found"
		}`,
	}
	reuse.Run(t, s.app)
}
