package achievement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackOpenSim_Go/internal/achievement"
	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/event"
	"github.com/osse101/PackOpenSim_Go/internal/player"
	"github.com/osse101/PackOpenSim_Go/mocks"
)

const playerID = "0b6f3a2e-1c4d-4e5f-8a9b-7c6d5e4f3a2b"

func newService(t *testing.T) (achievement.Service, *mocks.MockRepositoryPlayer, *mocks.MockRepositoryPlayerTx, *mocks.MockEventBus) {
	repo := mocks.NewMockRepositoryPlayer(t)
	tx := mocks.NewMockRepositoryPlayerTx(t)
	bus := mocks.NewMockEventBus(t)
	svc := achievement.NewService(repo, player.NewWriter(repo, nil), event.NewAsyncPublisher(bus))
	return svc, repo, tx, bus
}

func TestCatalog(t *testing.T) {
	svc, _, _, _ := newService(t)
	catalog := svc.Catalog()
	require.Len(t, catalog, 9)

	byID := make(map[string]domain.Achievement, len(catalog))
	for _, a := range catalog {
		byID[a.ID] = a
	}

	tests := []struct {
		id        string
		title     string
		metric    domain.AchievementMetric
		threshold int
		reward    int
	}{
		{domain.AchievementPackOpener1, "Pack Opener I", domain.MetricOpenedPacks, 5, 500},
		{domain.AchievementPackOpener3, "Pack Opener III", domain.MetricOpenedPacks, 25, 2500},
		{domain.AchievementPackOpener5, "Pack Opener V", domain.MetricOpenedPacks, 100, 10000},
		{domain.AchievementHoloCollector1, "Holo Rare Collector I", domain.MetricHoloRares, 1, 500},
		{domain.AchievementHoloCollector4, "Holo Rare Collector IV", domain.MetricHoloRares, 20, 2000},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			a, ok := byID[tt.id]
			require.True(t, ok)
			assert.Equal(t, tt.title, a.Title)
			assert.Equal(t, tt.metric, a.Metric)
			assert.Equal(t, tt.threshold, a.Threshold)
			assert.Equal(t, tt.reward, a.Reward)
		})
	}

	assert.Equal(t, "Pull a holo rare", byID[domain.AchievementHoloCollector1].Subtitle)
	assert.Equal(t, "Open 5 booster packs", byID[domain.AchievementPackOpener1].Subtitle)
}

func TestList(t *testing.T) {
	svc, repo, _, _ := newService(t)
	p := &domain.Player{
		ID:                    playerID,
		OpenedPacks:           12,
		ObtainedRaritiesTotal: domain.RarityTotals{HoloRare: 1},
		Achievements:          []string{domain.AchievementPackOpener1},
	}
	repo.On("GetPlayerByID", mock.Anything, playerID).Return(p, nil)

	statuses, err := svc.List(context.Background(), playerID)
	require.NoError(t, err)

	byID := make(map[string]achievement.Status, len(statuses))
	for _, s := range statuses {
		byID[s.ID] = s
	}
	assert.True(t, byID[domain.AchievementPackOpener1].Claimed)
	assert.True(t, byID[domain.AchievementPackOpener2].Unlocked)
	assert.False(t, byID[domain.AchievementPackOpener2].Claimed)
	assert.False(t, byID[domain.AchievementPackOpener3].Unlocked)
	assert.Equal(t, 12, byID[domain.AchievementPackOpener3].Progress)
	assert.True(t, byID[domain.AchievementHoloCollector1].Unlocked)
	assert.False(t, byID[domain.AchievementHoloCollector2].Unlocked)
}

func TestClaim(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		id        string
		player    domain.Player
		expectErr error
		wantMoney int
	}{
		{
			name:      "Success",
			id:        domain.AchievementPackOpener1,
			player:    domain.Player{ID: playerID, Money: 100, OpenedPacks: 5},
			wantMoney: 600,
		},
		{
			name:      "HoloCollector",
			id:        domain.AchievementHoloCollector2,
			player:    domain.Player{ID: playerID, Money: 0, ObtainedRaritiesTotal: domain.RarityTotals{HoloRare: 7}},
			wantMoney: 1000,
		},
		{
			name:      "Locked",
			id:        domain.AchievementPackOpener2,
			player:    domain.Player{ID: playerID, OpenedPacks: 9},
			expectErr: domain.ErrAchievementLocked,
		},
		{
			name:      "AlreadyClaimed",
			id:        domain.AchievementPackOpener1,
			player:    domain.Player{ID: playerID, OpenedPacks: 50, Achievements: []string{domain.AchievementPackOpener1}},
			expectErr: domain.ErrAchievementClaimed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, tx, bus := newService(t)
			current := tt.player
			repo.On("BeginTx", mock.Anything).Return(tx, nil)
			tx.On("GetPlayerForUpdate", mock.Anything, playerID).Return(&current, nil)
			tx.On("Rollback", mock.Anything).Return(nil).Maybe()

			if tt.expectErr == nil {
				tx.On("SavePlayer", mock.Anything, mock.MatchedBy(func(p domain.Player) bool {
					return p.Money == tt.wantMoney && p.HasAchievement(tt.id)
				})).Return(nil)
				tx.On("Commit", mock.Anything).Return(nil)
				bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
					payload, ok := e.Payload.(domain.AchievementClaimedPayload)
					return e.Type == event.AchievementClaimed && ok && payload.AchievementID == tt.id
				})).Return(nil)
			}

			res, err := svc.Claim(ctx, playerID, tt.id)
			require.NoError(t, svc.Shutdown(ctx))

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				tx.AssertNotCalled(t, "SavePlayer", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMoney, res.Money)
			assert.Equal(t, tt.id, res.Achievement.ID)
		})
	}
}

func TestClaim_UnknownAchievement(t *testing.T) {
	svc, _, _, _ := newService(t)

	_, err := svc.Claim(context.Background(), playerID, "pack-opener-99")
	assert.ErrorIs(t, err, domain.ErrAchievementNotFound)

	_, err = svc.Claim(context.Background(), playerID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
