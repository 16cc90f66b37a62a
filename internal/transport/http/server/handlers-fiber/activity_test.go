package handlers_fiber

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mergington-activities/internal/api"
	"mergington-activities/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUsecase struct {
	list      map[string]entities.Activity
	listErr   error
	gotName   string
	gotEmail  string
	seen      []string
	mutateErr error
}

func (s *stubUsecase) ListActivities(context.Context) (map[string]entities.Activity, error) {
	return s.list, s.listErr
}

func (s *stubUsecase) SignUp(_ context.Context, name, email string) (*entities.Activity, error) {
	return s.mutate(name, email)
}

func (s *stubUsecase) Unregister(_ context.Context, name, email string) (*entities.Activity, error) {
	return s.mutate(name, email)
}

func (s *stubUsecase) mutate(name, email string) (*entities.Activity, error) {
	s.gotName, s.gotEmail = name, email
	s.seen = append(s.seen, email)
	if s.mutateErr != nil {
		return nil, s.mutateErr
	}
	return &entities.Activity{Name: name, Participants: []string{email}}, nil
}

func newApp(uc *stubUsecase) *fiber.App {
	app := fiber.New(fiber.Config{UnescapePath: true})
	api.RegisterHandlers(app, NewHandler(zap.NewNop().Sugar(), uc))
	return app
}

func TestGetActivitiesBackendError(t *testing.T) {
	app := newApp(&stubUsecase{listErr: errors.New("db down")})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/activities", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestSignupPassesDecodedParams(t *testing.T) {
	uc := &stubUsecase{}
	app := newApp(uc)

	req := httptest.NewRequest(http.MethodPost, "/activities/Programming%20Class/signup?email=emma%40mergington.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Programming Class", uc.gotName)
	require.Equal(t, "emma@mergington.edu", uc.gotEmail)

	var body api.SignupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Signed up emma@mergington.edu for Programming Class", body.Message)
}

func TestUnregisterMapsNotFound(t *testing.T) {
	app := newApp(&stubUsecase{mutateErr: entities.ErrParticipantNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/activities/Chess%20Club/signup?email=x%40mergington.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSignupParamsDetachedFromRequestBuffer(t *testing.T) {
	uc := &stubUsecase{}
	app := newApp(uc)

	for _, target := range []string{
		"/activities/Chess%20Club/signup?email=aaaa%40mergington.edu",
		"/activities/Gym%20Class/signup?email=zzzz%40mergington.edu",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, target, nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	require.Equal(t, []string{"aaaa@mergington.edu", "zzzz@mergington.edu"}, uc.seen)
}
