package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"mergington-activities/config"
	"mergington-activities/internal/api"
	"mergington-activities/internal/repository/memory"
	"mergington-activities/internal/seed"
	handlers_fiber "mergington-activities/internal/transport/http/server/handlers-fiber"
	"mergington-activities/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, staticDir string) *fiber.App {
	t.Helper()

	log := zap.NewNop().Sugar()
	repo := memory.New(log, seed.Activities())
	require.NoError(t, repo.OnStart(context.Background()))

	uc := usecase.New(log, repo, nil, time.Second)
	h := handlers_fiber.NewHandler(log, uc)
	return New(log, config.HTTPConfig{RequestTimeout: 5 * time.Second, StaticDir: staticDir}, h)
}

func signupURL(activity, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
}

func do(t *testing.T, app *fiber.App, method, target string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestRootRedirect(t *testing.T) {
	app := newTestApp(t, "")

	resp := do(t, app, http.MethodGet, "/")
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	require.Equal(t, IndexPath, resp.Header.Get("Location"))
}

func TestGetActivities(t *testing.T) {
	app := newTestApp(t, "")

	resp := do(t, app, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	require.Len(t, raw, len(seed.Activities()))
	for name, activity := range raw {
		require.NotEmpty(t, name)
		require.Contains(t, activity, "description")
		require.Contains(t, activity, "schedule")
		maxParticipants, ok := activity["max_participants"].(float64)
		require.True(t, ok, name)
		require.Equal(t, float64(int(maxParticipants)), maxParticipants)
		_, ok = activity["participants"].([]any)
		require.True(t, ok, name)
	}
}

func TestSignupForActivity(t *testing.T) {
	app := newTestApp(t, "")
	email := "test@mergington.edu"

	resp := do(t, app, http.MethodPost, signupURL("Chess Club", email))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[api.SignupResponse](t, resp)
	require.Equal(t, "Signed up test@mergington.edu for Chess Club", body.Message)
	require.Contains(t, body.Activity.Participants, email)

	list := decode[api.Activities](t, do(t, app, http.MethodGet, "/activities"))
	require.Contains(t, list["Chess Club"].Participants, email)
}

func TestSignupDuplicate(t *testing.T) {
	app := newTestApp(t, "")
	email := "test@mergington.edu"

	first := do(t, app, http.MethodPost, signupURL("Chess Club", email))
	require.Equal(t, http.StatusOK, first.StatusCode)

	second := do(t, app, http.MethodPost, signupURL("Chess Club", email))
	require.Equal(t, http.StatusBadRequest, second.StatusCode)
	body := decode[api.ErrorResponse](t, second)
	require.Contains(t, strings.ToLower(body.Detail), "already signed up")
}

func TestSignupNonexistentActivity(t *testing.T) {
	app := newTestApp(t, "")

	resp := do(t, app, http.MethodPost, signupURL("NonexistentActivity", "test@mergington.edu"))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, api.NOTFOUND, decode[api.ErrorResponse](t, resp).Code)
}

func TestSignupInvalidEmail(t *testing.T) {
	app := newTestApp(t, "")

	resp := do(t, app, http.MethodPost, "/activities/Chess%20Club/signup")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, api.INVALIDARGUMENT, decode[api.ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodPost, "/activities/NonexistentActivity/signup")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRemoveParticipant(t *testing.T) {
	app := newTestApp(t, "")
	email := "test@mergington.edu"

	do(t, app, http.MethodPost, signupURL("Chess Club", email))

	resp := do(t, app, http.MethodDelete, signupURL("Chess Club", email))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[api.SignupResponse](t, resp)
	require.Equal(t, "Unregistered test@mergington.edu from Chess Club", body.Message)
	require.NotContains(t, body.Activity.Participants, email)

	list := decode[api.Activities](t, do(t, app, http.MethodGet, "/activities"))
	require.NotContains(t, list["Chess Club"].Participants, email)
}

func TestRemoveNonexistentParticipant(t *testing.T) {
	app := newTestApp(t, "")

	resp := do(t, app, http.MethodDelete, signupURL("Chess Club", "nonexistent@mergington.edu"))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Student is not signed up for this activity", decode[api.ErrorResponse](t, resp).Detail)

	resp = do(t, app, http.MethodDelete, signupURL("NonexistentActivity", "nonexistent@mergington.edu"))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Activity not found", decode[api.ErrorResponse](t, resp).Detail)
}

func TestSignupOrderPreserved(t *testing.T) {
	app := newTestApp(t, "")

	do(t, app, http.MethodPost, signupURL("Debate Team", "e1@mergington.edu"))
	resp := do(t, app, http.MethodPost, signupURL("Debate Team", "e2@mergington.edu"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[api.SignupResponse](t, resp)
	require.Equal(t, []string{"e1@mergington.edu", "e2@mergington.edu"}, body.Activity.Participants)
}

func TestHealthzAndMetrics(t *testing.T) {
	app := newTestApp(t, "")

	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/healthz").StatusCode)

	do(t, app, http.MethodPost, signupURL("Chess Club", "metrics@mergington.edu"))
	resp := do(t, app, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(raw), "activities_service_roster_operations_total")
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Mergington</h1>"), 0o644))
	app := newTestApp(t, dir)

	resp := do(t, app, http.MethodGet, IndexPath)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSignupEmailSurvivesLaterRequests(t *testing.T) {
	app := newTestApp(t, "")

	resp := do(t, app, http.MethodPost, signupURL("Chess Club", "aaaa@mergington.edu"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for i := 0; i < 20; i++ {
		resp := do(t, app, http.MethodPost, signupURL("Unknown Club", "zzzz@mergington.edu"))
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	}
	do(t, app, http.MethodDelete, signupURL("Gym Class", "yyyy@mergington.edu"))

	list := decode[api.Activities](t, do(t, app, http.MethodGet, "/activities"))
	require.Equal(t,
		[]string{"michael@mergington.edu", "daniel@mergington.edu", "aaaa@mergington.edu"},
		list["Chess Club"].Participants,
	)
}

func TestSignupActivityNameMatchesExactly(t *testing.T) {
	app := newTestApp(t, "")

	resp := do(t, app, http.MethodPost, "/activities/%20Chess%20Club%20/signup?email=t%40mergington.edu")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	list := decode[api.Activities](t, do(t, app, http.MethodGet, "/activities"))
	require.NotContains(t, list["Chess Club"].Participants, "t@mergington.edu")
}

func TestConcurrentSignupAndList(t *testing.T) {
	app := newTestApp(t, "")

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			resp, err := app.Test(httptest.NewRequest(http.MethodPost, signupURL("Debate Team", fmt.Sprintf("s%02d@mergington.edu", i)), nil), -1)
			if err == nil {
				_ = resp.Body.Close()
			}
		}(i)
		go func() {
			defer wg.Done()
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/activities", nil), -1)
			if err == nil {
				_ = resp.Body.Close()
			}
		}()
	}
	wg.Wait()

	list := decode[api.Activities](t, do(t, app, http.MethodGet, "/activities"))
	got := list["Debate Team"].Participants
	require.Len(t, got, workers)
	for i := 0; i < workers; i++ {
		require.Contains(t, got, fmt.Sprintf("s%02d@mergington.edu", i))
	}
}
