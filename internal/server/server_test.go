package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/handler"
	"github.com/osse101/PackOpenSim_Go/mocks"
)

const testAPIKey = "test-key"

type fakePool struct{ err error }

func (p fakePool) Ping(ctx context.Context) error { return p.err }
func (p fakePool) Close()                         {}

type routerFixture struct {
	players      *mocks.MockPlayerService
	events       *mocks.MockEventlogService
	shop         *mocks.MockShopService
	achievements *mocks.MockAchievementService
	catalog      *mocks.MockCatalogService
	router       http.Handler
}

func newRouterFixture(t *testing.T) *routerFixture {
	f := &routerFixture{
		players:      mocks.NewMockPlayerService(t),
		events:       mocks.NewMockEventlogService(t),
		shop:         mocks.NewMockShopService(t),
		achievements: mocks.NewMockAchievementService(t),
		catalog:      mocks.NewMockCatalogService(t),
	}
	f.router = NewRouter(
		Options{APIKey: testAPIKey, Tracker: NewClientTracker(time.Minute, 1000, 5)},
		fakePool{},
		Handlers{
			Players:      handler.NewPlayerHandlers(f.players, f.events),
			Shop:         handler.NewShopHandlers(f.shop),
			Achievements: handler.NewAchievementHandlers(f.achievements),
			Catalog:      handler.NewCatalogHandlers(f.catalog, "base1"),
		},
	)
	return f
}

func (f *routerFixture) do(method, path string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authed {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := f.do(http.MethodGet, path, false)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/shop/packs", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ShopPacks(t *testing.T) {
	f := newRouterFixture(t)
	f.shop.On("PackTypes").Return([]domain.PackType{{Key: "charizard", Price: 500}})

	rec := f.do(http.MethodGet, "/api/v1/shop/packs", true)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.PackType
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "charizard", got[0].Key)
	assert.Equal(t, "nosniff", rec.Header().Get(HeaderContentType))
}

func TestRouter_PlayerRoutes(t *testing.T) {
	f := newRouterFixture(t)
	f.players.On("GetPlayer", mock.Anything, "p1").
		Return(&domain.Player{ID: "p1", Username: "ash", Money: 2000}, nil)
	f.players.On("ListPacks", mock.Anything, "p1").Return([]domain.BoosterPack{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/players/p1", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/players/p1/packs", true)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_OpenPackNotFound(t *testing.T) {
	f := newRouterFixture(t)
	f.players.On("OpenPack", mock.Anything, "p1", int64(7)).Return(nil, domain.ErrPackNotFound)

	rec := f.do(http.MethodPost, "/api/v1/players/p1/packs/7/open", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/nope", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
