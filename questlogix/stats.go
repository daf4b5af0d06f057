package questlogix

import (
	"context"

	"github.com/heroiclabs/nakama-common/runtime"
)

// StatsConfig is the data definition for a StatsSystem type.
type StatsConfig struct {
	// StreakResetCronexpr marks the day boundary for play streaks as a
	// CRON expression. Empty means the default of midnight UTC.
	StreakResetCronexpr string `json:"streak_reset_cronexpr,omitempty"`
}

// StatName identifies one cumulative gameplay counter in a progress update.
type StatName string

const (
	StatMonstersKilled   StatName = "monsters_killed"
	StatBossesKilled     StatName = "bosses_killed"
	StatUniquesKilled    StatName = "uniques_killed"
	StatCriticalHits     StatName = "critical_hits"
	StatDamageDealt      StatName = "damage_dealt"
	StatPlayerKills      StatName = "player_kills"
	StatDeathsToMonsters StatName = "deaths_to_monsters"
	StatDeathsToPlayers  StatName = "deaths_to_players"
	StatGoldEarned       StatName = "gold_earned"
	StatGoldSpent        StatName = "gold_spent"
	StatExperienceEarned StatName = "experience_earned"
	StatItemsPurchased   StatName = "items_purchased"
	StatDungeonDepth     StatName = "dungeon_depth"
	StatChestsOpened     StatName = "chests_opened"
	StatSecretsFound     StatName = "secrets_found"
	StatFriendsGained    StatName = "friends_gained"
)

// StatUpdate carries one counter change. Most stats treat Value as a delta,
// dungeon_depth treats it as a new depth that only counts when deeper than
// the best so far.
type StatUpdate struct {
	Name  StatName `json:"name,omitempty"`
	Value int64    `json:"value,omitempty"`
}

// PlayerProgressUpdate describes everything a gameplay moment can change on
// a player's save. Nil fields leave the current value in place.
type PlayerProgressUpdate struct {
	Stats   []*StatUpdate   `json:"stats,omitempty"`
	Level   *int64          `json:"level,omitempty"`
	Married *bool           `json:"married,omitempty"`
	HasTeam *bool           `json:"has_team,omitempty"`
	King    *bool           `json:"king,omitempty"`
	Mode    *DifficultyMode `json:"mode,omitempty"`
}

type StatsSystem interface {
	System

	// Apply folds a progress update into the player's save, unlocks every
	// achievement the new state satisfies, and persists the result.
	Apply(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, update *PlayerProgressUpdate) (*PlayerState, []*AchievementDefinition, error)

	// RecordCombatOutcome records a fight the player survived and awards
	// the combat performance achievements it earned.
	RecordCombatOutcome(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, tookDamage bool, hpFractionRemaining float64) (*PlayerState, []*AchievementDefinition, error)

	// RecordPlaySession advances the player's daily play streak and
	// unlocks any streak achievements it reaches.
	RecordPlaySession(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (*PlayerState, []*AchievementDefinition, error)
}
