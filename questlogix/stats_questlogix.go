package questlogix

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/robfig/cron/v3"
)

const defaultStreakResetCronexpr = "0 0 * * *"

// QuestStatsSystem implements the StatsSystem interface using Nakama storage
// as the backend for player saves.
type QuestStatsSystem struct {
	config     *StatsConfig
	questforge Questforge
	cronParser cron.Parser
}

// NewQuestStatsSystem creates a new instance of the stats system with the
// given configuration.
func NewQuestStatsSystem(config *StatsConfig) *QuestStatsSystem {
	if config == nil {
		config = &StatsConfig{}
	}
	return &QuestStatsSystem{
		config:     config,
		cronParser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
	}
}

// SetQuestforge sets the Questforge instance for this stats system.
func (s *QuestStatsSystem) SetQuestforge(qf Questforge) {
	s.questforge = qf
}

// GetType returns the system type for the stats system.
func (s *QuestStatsSystem) GetType() SystemType {
	return SystemTypeStats
}

// GetConfig returns the configuration for the stats system.
func (s *QuestStatsSystem) GetConfig() any {
	return s.config
}

// Apply folds a progress update into the player's save, runs a full
// achievement pass over the result, and persists the new state.
func (s *QuestStatsSystem) Apply(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, update *PlayerProgressUpdate) (*PlayerState, []*AchievementDefinition, error) {
	state, version, err := getPlayerState(ctx, logger, nk, userID)
	if err != nil {
		logger.Error("Failed to get player state for user %s: %v", userID, err)
		return nil, nil, err
	}

	if update != nil {
		for _, upd := range update.Stats {
			if upd == nil {
				continue
			}
			applyStatUpdate(state, upd)
		}
		if update.Level != nil && *update.Level >= 1 {
			state.Level = *update.Level
		}
		if update.Married != nil {
			state.Married = *update.Married
		}
		if update.HasTeam != nil {
			state.HasTeam = *update.HasTeam
		}
		if update.King != nil {
			state.King = *update.King
		}
		if update.Mode != nil && *update.Mode != "" {
			state.Mode = *update.Mode
		}
	}

	var unlocked []*AchievementDefinition
	if achievements := s.achievementsSystem(); achievements != nil {
		unlocked = achievements.CheckAchievements(ctx, logger, nk, state)
	}

	if err := savePlayerState(ctx, logger, nk, userID, state, version); err != nil {
		logger.Error("Failed to save player state for user %s: %v", userID, err)
		return nil, nil, err
	}
	return state, unlocked, nil
}

// RecordCombatOutcome records a fight the player survived, awarding the
// combat performance achievements before the usual threshold pass.
func (s *QuestStatsSystem) RecordCombatOutcome(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, tookDamage bool, hpFractionRemaining float64) (*PlayerState, []*AchievementDefinition, error) {
	state, version, err := getPlayerState(ctx, logger, nk, userID)
	if err != nil {
		logger.Error("Failed to get player state for user %s: %v", userID, err)
		return nil, nil, err
	}

	var unlocked []*AchievementDefinition
	if achievements := s.achievementsSystem(); achievements != nil {
		unlocked = achievements.CheckCombatOutcome(ctx, logger, nk, state, tookDamage, hpFractionRemaining)
	}

	if err := savePlayerState(ctx, logger, nk, userID, state, version); err != nil {
		logger.Error("Failed to save player state for user %s: %v", userID, err)
		return nil, nil, err
	}
	return state, unlocked, nil
}

// RecordPlaySession advances the player's daily play streak, runs an
// achievement pass, and reports the session to any publishers.
func (s *QuestStatsSystem) RecordPlaySession(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (*PlayerState, []*AchievementDefinition, error) {
	state, version, err := getPlayerState(ctx, logger, nk, userID)
	if err != nil {
		logger.Error("Failed to get player state for user %s: %v", userID, err)
		return nil, nil, err
	}

	advancePlayStreak(state.Statistics, s.streakSchedule(logger), time.Now().UTC())

	var unlocked []*AchievementDefinition
	if achievements := s.achievementsSystem(); achievements != nil {
		unlocked = achievements.CheckAchievements(ctx, logger, nk, state)
	}

	if err := savePlayerState(ctx, logger, nk, userID, state, version); err != nil {
		logger.Error("Failed to save player state for user %s: %v", userID, err)
		return nil, nil, err
	}

	if s.questforge != nil {
		s.questforge.SendPublisherEvents(ctx, logger, nk, userID, []*PublisherEvent{{
			Name:      "play_session_recorded",
			Id:        uuid.NewString(),
			Timestamp: time.Now().Unix(),
			Metadata: map[string]string{
				"current_streak": strconv.FormatInt(state.Statistics.CurrentPlayStreak, 10),
				"best_streak":    strconv.FormatInt(state.Statistics.BestPlayStreak, 10),
			},
			System: s,
		}})
	}

	return state, unlocked, nil
}

func (s *QuestStatsSystem) achievementsSystem() AchievementsSystem {
	if s.questforge == nil {
		return nil
	}
	return s.questforge.GetAchievementsSystem()
}

// streakSchedule parses the configured day boundary, falling back to
// midnight UTC when the expression is missing or invalid.
func (s *QuestStatsSystem) streakSchedule(logger runtime.Logger) cron.Schedule {
	expr := s.config.StreakResetCronexpr
	if expr == "" {
		expr = defaultStreakResetCronexpr
	}
	sched, err := s.cronParser.Parse(expr)
	if err != nil {
		logger.Error("Failed to parse CRON expression for play streak: %v", err)
		sched, _ = s.cronParser.Parse(defaultStreakResetCronexpr)
	}
	return sched
}

// applyStatUpdate folds one counter change into the player's save. Gold and
// experience route through the PlayerState helpers so balances, earned
// totals, and high water marks stay consistent. Unknown names are ignored.
func applyStatUpdate(state *PlayerState, upd *StatUpdate) {
	stats := state.Statistics
	switch upd.Name {
	case StatMonstersKilled:
		stats.MonstersKilled = addClamped(stats.MonstersKilled, upd.Value)
	case StatBossesKilled:
		stats.BossesKilled = addClamped(stats.BossesKilled, upd.Value)
	case StatUniquesKilled:
		stats.UniquesKilled = addClamped(stats.UniquesKilled, upd.Value)
	case StatCriticalHits:
		stats.CriticalHits = addClamped(stats.CriticalHits, upd.Value)
	case StatDamageDealt:
		stats.DamageDealt = addClamped(stats.DamageDealt, upd.Value)
	case StatPlayerKills:
		stats.PlayerKills = addClamped(stats.PlayerKills, upd.Value)
	case StatDeathsToMonsters:
		stats.DeathsToMonsters = addClamped(stats.DeathsToMonsters, upd.Value)
	case StatDeathsToPlayers:
		stats.DeathsToPlayers = addClamped(stats.DeathsToPlayers, upd.Value)
	case StatGoldEarned:
		state.AddGold(upd.Value)
	case StatGoldSpent:
		state.SpendGold(upd.Value)
	case StatExperienceEarned:
		state.AddExperience(upd.Value)
	case StatItemsPurchased:
		stats.ItemsPurchased = addClamped(stats.ItemsPurchased, upd.Value)
	case StatDungeonDepth:
		if upd.Value > stats.DeepestDungeonLevel {
			stats.DeepestDungeonLevel = upd.Value
		}
	case StatChestsOpened:
		stats.ChestsOpened = addClamped(stats.ChestsOpened, upd.Value)
	case StatSecretsFound:
		stats.SecretsFound = addClamped(stats.SecretsFound, upd.Value)
	case StatFriendsGained:
		stats.FriendsGained = addClamped(stats.FriendsGained, upd.Value)
	}
}

func addClamped(current, delta int64) int64 {
	v := current + delta
	if v < 0 {
		return 0
	}
	return v
}

// advancePlayStreak folds one play session at now into the streak counters.
// A session before the next day boundary is part of the same streak day, the
// first session after exactly one boundary extends the streak, and any
// longer gap restarts it at one.
func advancePlayStreak(stats *PlayerStatistics, schedule cron.Schedule, now time.Time) {
	now = now.UTC()
	if stats.LastPlayedAtUnix > 0 {
		last := time.Unix(stats.LastPlayedAtUnix, 0).UTC()
		if last.After(now) {
			// Clock went backwards, keep the newer timestamp and leave
			// the streak alone.
			return
		}
		boundary := schedule.Next(last)
		switch {
		case now.Before(boundary):
			// Same streak day.
		case now.Before(schedule.Next(boundary)):
			stats.CurrentPlayStreak++
		default:
			stats.CurrentPlayStreak = 1
		}
	} else {
		stats.CurrentPlayStreak = 1
	}
	if stats.CurrentPlayStreak < 1 {
		stats.CurrentPlayStreak = 1
	}
	if stats.CurrentPlayStreak > stats.BestPlayStreak {
		stats.BestPlayStreak = stats.CurrentPlayStreak
	}
	stats.LastPlayedAtUnix = now.Unix()
}
