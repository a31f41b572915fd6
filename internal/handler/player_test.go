package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/pack"
	"github.com/osse101/PackOpenSim_Go/internal/player"
	"github.com/osse101/PackOpenSim_Go/internal/repository"
	"github.com/osse101/PackOpenSim_Go/mocks"
)

func TestHandleRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockPlayerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: RegisterPlayerRequest{Username: "misty"},
			setupMocks: func(m *mocks.MockPlayerService) {
				m.On("Register", mock.Anything, "misty").Return(&domain.Player{ID: testPlayerID, Username: "misty", Money: 2000}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   testPlayerID,
		},
		{
			name:           "Invalid JSON",
			body:           "{not json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing Username",
			body:           RegisterPlayerRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required",
		},
		{
			name: "Username Taken",
			body: RegisterPlayerRequest{Username: "brock"},
			setupMocks: func(m *mocks.MockPlayerService) {
				m.On("Register", mock.Anything, "brock").Return(nil, domain.ErrUsernameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgUsernameTakenError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := mocks.NewMockPlayerService(t)
			if tt.setupMocks != nil {
				tt.setupMocks(players)
			}
			h := NewPlayerHandlers(players, mocks.NewMockEventlogService(t))

			rec := serve(t, http.MethodPost, "/players", "/players", h.HandleRegister(), tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetPlayer_HidesPackContents(t *testing.T) {
	players := mocks.NewMockPlayerService(t)
	players.On("GetPlayer", mock.Anything, testPlayerID).Return(&domain.Player{
		ID: testPlayerID,
		PackInventory: []domain.BoosterPack{{
			ID:    7,
			Name:  "Booster-Pack-Charizard",
			Cards: []domain.Card{{ID: "base1-4", Name: "Charizard"}},
		}},
	}, nil)
	h := NewPlayerHandlers(players, mocks.NewMockEventlogService(t))

	rec := serve(t, http.MethodGet, "/players/{playerID}", "/players/"+testPlayerID, h.HandleGetPlayer(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	p := decodeBody[domain.Player](t, rec)
	assert.Equal(t, int64(7), p.PackInventory[0].ID)
	assert.Empty(t, p.PackInventory[0].Cards)
}

func TestHandleGetPlayer_NotFound(t *testing.T) {
	players := mocks.NewMockPlayerService(t)
	players.On("GetPlayer", mock.Anything, "missing").Return(nil, domain.ErrPlayerNotFound)
	h := NewPlayerHandlers(players, mocks.NewMockEventlogService(t))

	rec := serve(t, http.MethodGet, "/players/{playerID}", "/players/missing", h.HandleGetPlayer(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgPlayerNotFoundError)
}

func TestHandleListPacks(t *testing.T) {
	players := mocks.NewMockPlayerService(t)
	players.On("ListPacks", mock.Anything, testPlayerID).Return([]domain.BoosterPack{{ID: 1}, {ID: 2}}, nil)
	h := NewPlayerHandlers(players, mocks.NewMockEventlogService(t))

	rec := serve(t, http.MethodGet, "/players/{playerID}/packs", "/players/"+testPlayerID+"/packs", h.HandleListPacks(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]domain.BoosterPack](t, rec), 2)
}

func TestHandleOpenPack(t *testing.T) {
	const pattern = "/players/{playerID}/packs/{packID}/open"

	tests := []struct {
		name           string
		packID         string
		setupMocks     func(*mocks.MockPlayerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			packID: "42",
			setupMocks: func(m *mocks.MockPlayerService) {
				m.On("OpenPack", mock.Anything, testPlayerID, int64(42)).Return(&pack.OpenResult{
					Pack:   domain.BoosterPack{ID: 42, IsOpened: true},
					Cards:  []domain.Card{{ID: "base1-4", Name: "Charizard", Holo: true}},
					Counts: domain.RarityTotals{HoloRare: 1},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"holoRare":1`,
		},
		{
			name:           "Invalid Pack ID",
			packID:         "abc",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidPackID,
		},
		{
			name:   "Pack Not Found",
			packID: "99",
			setupMocks: func(m *mocks.MockPlayerService) {
				m.On("OpenPack", mock.Anything, testPlayerID, int64(99)).Return(nil, domain.ErrPackNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgPackNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := mocks.NewMockPlayerService(t)
			if tt.setupMocks != nil {
				tt.setupMocks(players)
			}
			h := NewPlayerHandlers(players, mocks.NewMockEventlogService(t))

			path := "/players/" + testPlayerID + "/packs/" + tt.packID + "/open"
			rec := serve(t, http.MethodPost, pattern, path, h.HandleOpenPack(), nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetCollection(t *testing.T) {
	players := mocks.NewMockPlayerService(t)
	players.On("GetCollection", mock.Anything, testPlayerID).Return(&player.Collection{
		PlayerID:   testPlayerID,
		SetID:      "base1",
		Cards:      []player.OwnedCard{{Card: domain.Card{ID: "base1-4"}, Count: 2}},
		TotalCards: 2,
	}, nil)
	h := NewPlayerHandlers(players, mocks.NewMockEventlogService(t))

	rec := serve(t, http.MethodGet, "/players/{playerID}/cards", "/players/"+testPlayerID+"/cards", h.HandleGetCollection(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	c := decodeBody[player.Collection](t, rec)
	assert.Equal(t, 2, c.TotalCards)
}

func TestHandleGetHistory(t *testing.T) {
	const pattern = "/players/{playerID}/history"

	t.Run("DefaultLimit", func(t *testing.T) {
		events := mocks.NewMockEventlogService(t)
		events.On("History", mock.Anything, testPlayerID, 0).Return([]repository.EventLogEntry{{ID: 1, EventType: domain.EventTypePackBought}}, nil)
		h := NewPlayerHandlers(mocks.NewMockPlayerService(t), events)

		rec := serve(t, http.MethodGet, pattern, "/players/"+testPlayerID+"/history", h.HandleGetHistory(), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.EventTypePackBought)
	})

	t.Run("ExplicitLimit", func(t *testing.T) {
		events := mocks.NewMockEventlogService(t)
		events.On("History", mock.Anything, testPlayerID, 5).Return([]repository.EventLogEntry{}, nil)
		h := NewPlayerHandlers(mocks.NewMockPlayerService(t), events)

		rec := serve(t, http.MethodGet, pattern, "/players/"+testPlayerID+"/history?limit=5", h.HandleGetHistory(), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("BadLimit", func(t *testing.T) {
		h := NewPlayerHandlers(mocks.NewMockPlayerService(t), mocks.NewMockEventlogService(t))

		rec := serve(t, http.MethodGet, pattern, "/players/"+testPlayerID+"/history?limit=-3", h.HandleGetHistory(), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidLimit)
	})
}
