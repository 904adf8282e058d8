package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/aircnc-api/internal/api"
	apiMiddleware "github.com/phrazzld/aircnc-api/internal/api/middleware"
	"github.com/phrazzld/aircnc-api/internal/config"
	"github.com/phrazzld/aircnc-api/internal/domain"
	"github.com/phrazzld/aircnc-api/internal/mocks"
	"github.com/phrazzld/aircnc-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*application
	users    *mocks.MockUserStore
	homes    *mocks.MockHomeStore
	bookings *mocks.MockBookingStore
	emitter  *mocks.MockEventEmitter
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	users := mocks.NewMockUserStore(
		domain.Document{"email": "admin@x.io", "role": "admin"},
		domain.Document{"email": "guest@x.io", "role": "guest"},
	)
	tokens := &mocks.MockTokenService{
		Token: "signed.jwt.token",
		ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
			switch token {
			case "admin-token":
				return &auth.Claims{Email: "admin@x.io"}, nil
			case "guest-token":
				return &auth.Claims{Email: "guest@x.io"}, nil
			default:
				return nil, auth.ErrInvalidToken
			}
		},
	}

	ta := &testApp{
		users:    users,
		homes:    &mocks.MockHomeStore{Homes: []domain.Document{{"title": "Cabin"}}},
		bookings: &mocks.MockBookingStore{Bookings: []domain.Document{}},
		emitter:  &mocks.MockEventEmitter{},
	}
	ta.application = &application{
		config:       &config.Config{Server: config.ServerConfig{Port: 5000, LogLevel: "info"}},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		pinger:       &mocks.MockPinger{},
		userStore:    users,
		homeStore:    ta.homes,
		bookingStore: ta.bookings,
		tokens:       tokens,
		intents:      &mocks.MockIntentService{ClientSecret: "pi_1_secret_2"},
		eventEmitter: ta.emitter,
	}
	return ta
}

func serve(h http.Handler, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func TestRouter_Liveness(t *testing.T) {
	t.Parallel()
	router := newTestApp(t).setupRouter()

	rr := serve(router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, api.LivenessMessage, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(apiMiddleware.TraceIDHeader))

	rr = serve(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_UsersRequiresAdmin(t *testing.T) {
	t.Parallel()
	router := newTestApp(t).setupRouter()

	tests := []struct {
		name   string
		header http.Header
		want   int
	}{
		{"no token", nil, http.StatusUnauthorized},
		{"invalid token", bearer("garbage"), http.StatusForbidden},
		{"non-admin", bearer("guest-token"), http.StatusForbidden},
		{"admin", bearer("admin-token"), http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(router, http.MethodGet, "/users", "", tc.header)
			assert.Equal(t, tc.want, rr.Code)
		})
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	t.Parallel()
	ta := newTestApp(t)
	ta.homes.InsertResult = &domain.InsertResult{Acknowledged: true, InsertedID: "652f1c2e9d1a4b3c8e7f6a5b"}
	ta.homes.UpdateResult = &domain.UpdateResult{Acknowledged: true, MatchedCount: 1}
	ta.homes.DeleteResult = &domain.DeleteResult{Acknowledged: true}
	ta.bookings.InsertResult = &domain.InsertResult{Acknowledged: true, InsertedID: "652f1c2e9d1a4b3c8e7f6a5c"}
	ta.bookings.DeleteResult = &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}
	router := ta.setupRouter()

	tests := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodPut, "/user/a@x.io", `{"name":"A"}`},
		{http.MethodGet, "/user/a@x.io", ""},
		{http.MethodPost, "/homes", `{"title":"Cabin"}`},
		{http.MethodGet, "/homes", ""},
		{http.MethodGet, "/homes/host@x.io", ""},
		{http.MethodGet, "/homes/652f1c2e9d1a4b3c8e7f6a5b", ""},
		{http.MethodPut, "/homes", `{"title":"Renamed"}`},
		{http.MethodDelete, "/home/652f1c2e9d1a4b3c8e7f6a5b", ""},
		{http.MethodGet, "/search-result?location=Dhaka", ""},
		{http.MethodPost, "/bookings", `{"guestEmail":"g@x.io"}`},
		{http.MethodGet, "/bookings?email=g@x.io", ""},
		{http.MethodDelete, "/bookings/652f1c2e9d1a4b3c8e7f6a5c", ""},
		{http.MethodPost, "/create-payment-intent", `{"price":10}`},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rr := serve(router, tc.method, tc.target, tc.body, nil)
			assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		})
	}

	require.Len(t, ta.emitter.Emitted(), 1)
}

func TestRouter_WritesWithUnconfiguredStores(t *testing.T) {
	t.Parallel()
	ta := newTestApp(t)
	ta.homes.Homes = nil
	ta.bookings.Bookings = []domain.Document{{"_id": "652f1c2e9d1a4b3c8e7f6a5c"}}
	router := ta.setupRouter()

	rr := serve(router, http.MethodPost, "/homes", `{"title":"Cabin"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var inserted domain.InsertResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &inserted))
	assert.Len(t, inserted.InsertedID, 24)

	rr = serve(router, http.MethodPut, "/homes", `{"title":"Renamed"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var updated domain.UpdateResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, int64(1), updated.UpsertedCount)
	assert.NotNil(t, updated.UpsertedID)

	rr = serve(router, http.MethodDelete, "/home/652f1c2e9d1a4b3c8e7f6a5b", "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var deleted domain.DeleteResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &deleted))
	assert.Equal(t, int64(0), deleted.DeletedCount)

	rr = serve(router, http.MethodPost, "/bookings", `{"guestEmail":"g@x.io","_id":"booking-1"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &inserted))
	assert.Equal(t, "booking-1", inserted.InsertedID)

	rr = serve(router, http.MethodDelete, "/bookings/652f1c2e9d1a4b3c8e7f6a5c", "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &deleted))
	assert.Equal(t, int64(1), deleted.DeletedCount)
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()
	router := newTestApp(t).setupRouter()

	header := http.Header{
		"Origin":                        []string{"http://localhost:3000"},
		"Access-Control-Request-Method": []string{http.MethodPost},
	}
	rr := serve(router, http.MethodOptions, "/bookings", "", header)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()
	router := newTestApp(t).setupRouter()

	rr := serve(router, http.MethodGet, "/cards", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
