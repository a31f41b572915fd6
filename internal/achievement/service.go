package achievement

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/event"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
	"github.com/osse101/PackOpenSim_Go/internal/player"
	"github.com/osse101/PackOpenSim_Go/internal/repository"
)

// Status is an achievement as seen by one player
type Status struct {
	domain.Achievement
	Progress int  `json:"progress"`
	Unlocked bool `json:"unlocked"`
	Claimed  bool `json:"claimed"`
}

// ClaimResult is returned after a successful claim
type ClaimResult struct {
	Achievement domain.Achievement `json:"achievement"`
	Money       int                `json:"money"`
}

// Service defines achievement listing and claiming
type Service interface {
	Catalog() []domain.Achievement
	List(ctx context.Context, playerID string) ([]Status, error)
	Claim(ctx context.Context, playerID, achievementID string) (*ClaimResult, error)
	Shutdown(ctx context.Context) error
}

type service struct {
	repo      repository.Player
	writer    *player.Writer
	publisher *event.AsyncPublisher
	catalog   []domain.Achievement
}

// NewService creates a new achievement service using the built-in catalog
func NewService(repo repository.Player, writer *player.Writer, publisher *event.AsyncPublisher) Service {
	return &service{
		repo:      repo,
		writer:    writer,
		publisher: publisher,
		catalog:   DefaultCatalog(),
	}
}

func (s *service) Catalog() []domain.Achievement {
	out := make([]domain.Achievement, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *service) List(ctx context.Context, playerID string) ([]Status, error) {
	logger.FromContext(ctx).Debug(LogMsgListCalled, LogFieldPlayerID, playerID)

	p, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}

	out := make([]Status, 0, len(s.catalog))
	for _, a := range s.catalog {
		out = append(out, Status{
			Achievement: a,
			Progress:    a.Progress(*p),
			Unlocked:    a.Reached(*p),
			Claimed:     p.HasAchievement(a.ID),
		})
	}
	return out, nil
}

// Claim pays the reward once. The condition and the claimed set are checked
// against the locked snapshot, so concurrent claims pay at most once.
func (s *service) Claim(ctx context.Context, playerID, achievementID string) (*ClaimResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgClaimCalled, LogFieldPlayerID, playerID, LogFieldAchievementID, achievementID)

	achievementID = strings.TrimSpace(achievementID)
	if achievementID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgAchievementIDRequired)
	}
	a, ok := find(s.catalog, achievementID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAchievementNotFound, achievementID)
	}

	updated, err := s.writer.Update(ctx, playerID, func(current domain.Player) (domain.PlayerUpdate, error) {
		if current.HasAchievement(a.ID) {
			return domain.PlayerUpdate{}, fmt.Errorf("%w: %s", domain.ErrAchievementClaimed, a.ID)
		}
		if !a.Reached(current) {
			return domain.PlayerUpdate{}, fmt.Errorf("%w: "+ErrMsgProgressFmt, domain.ErrAchievementLocked, a.ID, a.Progress(current), a.Threshold)
		}

		claimed := make([]string, 0, len(current.Achievements)+1)
		claimed = append(claimed, current.Achievements...)
		claimed = append(claimed, a.ID)
		money := current.Money + a.Reward

		return domain.PlayerUpdate{Money: &money, Achievements: &claimed}, nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgAchievementClaimed, LogFieldPlayerID, playerID, LogFieldAchievementID, a.ID, LogFieldReward, a.Reward, LogFieldMoney, updated.Money)
	s.publisher.PublishAsync(ctx, event.NewAchievementClaimedEvent(playerID, a.ID, a.Reward))

	return &ClaimResult{Achievement: a, Money: updated.Money}, nil
}

func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)
	return s.publisher.Wait(ctx)
}
