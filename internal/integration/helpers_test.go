package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanValue(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanValue(v any) {
	switch value := v.(type) {
	case map[string]any:
		for k := range value {
			if _, ok := keysToIgnore[k]; ok {
				delete(value, k)
				continue
			}
			cleanValue(value[k])
		}
	case []any:
		for _, item := range value {
			cleanValue(item)
		}
	}
}

func truncateUsersAndTokens(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE tokens CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(context.Background(), "TRUNCATE users RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func truncateCatalog(t testing.TB, db *pgxpool.Pool) {
	for _, table := range []string{"tickets", "reservations", "performance_props", "props", "performances", "play_genres", "play_actors", "plays", "genres", "actors", "theatre_halls"} {
		_, err := db.Exec(context.Background(), fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", table))
		require.NoError(t, err)
	}
}

func insertTestUser(t testing.TB, db *pgxpool.Pool, activated bool) int {
	var user domain.User
	require.NoError(t, user.Password.Set(TestUserPassword))

	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (first_name, last_name, email, password_hash, activated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, TestUserFirstName, TestUserLastName, TestUserEmail, user.Password.Hash, activated).Scan(&id)
	require.NoError(t, err)

	return id
}

// authenticatedUserCookies resets the users table, inserts the default test
// user and logs in, returning the session cookies.
func (app *TestApp) authenticatedUserCookies(t testing.TB) []*http.Cookie {
	truncateUsersAndTokens(t, app.DB)
	insertTestUser(t, app.DB, true)

	body := strings.NewReader(fmt.Sprintf(`{"email": %q, "password": %q}`, TestUserEmail, TestUserPassword))

	req := httptest.NewRequest(http.MethodPost, "/sessions", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code, "login for test user failed")

	return rec.Result().Cookies()
}

// seedPerformance creates a hall, a play and one performance and returns the
// performance id.
func seedPerformance(t testing.TB, db *pgxpool.Pool, rows, seatsInRow int) int {
	ctx := context.Background()

	var hallID int
	err := db.QueryRow(ctx, `
		INSERT INTO theatre_halls (name, seat_rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id
	`, TestHallName, rows, seatsInRow).Scan(&hallID)
	require.NoError(t, err)

	var playID int
	err = db.QueryRow(ctx, `
		INSERT INTO plays (title, description)
		VALUES ($1, $2)
		RETURNING id
	`, TestPlayTitle, TestPlayDescription).Scan(&playID)
	require.NoError(t, err)

	var performanceID int
	err = db.QueryRow(ctx, `
		INSERT INTO performances (play_id, theatre_hall_id, show_time)
		VALUES ($1, $2, '2095-06-01 19:00:00+00')
		RETURNING id
	`, playID, hallID).Scan(&performanceID)
	require.NoError(t, err)

	return performanceID
}

func countRows(t testing.TB, db *pgxpool.Pool, table string) int {
	var count int
	err := db.QueryRow(context.Background(), fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	require.NoError(t, err)

	return count
}

func ticketsAvailable(t testing.TB, app *TestApp, performanceID int) int {
	req := httptest.NewRequest(http.MethodGet, "/performances", nil)
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Performances []struct {
			Id               int `json:"id"`
			TicketsAvailable int `json:"ticketsAvailable"`
		} `json:"performances"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	for _, p := range resp.Performances {
		if p.Id == performanceID {
			return p.TicketsAvailable
		}
	}

	t.Fatalf("performance %d not found in listing", performanceID)

	return 0
}
