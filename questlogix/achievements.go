package questlogix

import (
	"context"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"
)

// AchievementTier grades how rare an achievement is. Higher tiers outrank
// lower ones when a notification batch picks which unlocks to list first.
type AchievementTier string

const (
	TierBronze   AchievementTier = "bronze"
	TierSilver   AchievementTier = "silver"
	TierGold     AchievementTier = "gold"
	TierPlatinum AchievementTier = "platinum"
	TierDiamond  AchievementTier = "diamond"
)

var tierRanks = map[AchievementTier]int{
	TierBronze:   1,
	TierSilver:   2,
	TierGold:     3,
	TierPlatinum: 4,
	TierDiamond:  5,
}

// Rank returns the ordering weight of the tier, higher is rarer. Unknown
// tiers rank below bronze.
func (t AchievementTier) Rank() int {
	return tierRanks[t]
}

// Badge returns the tier label used in player-facing notification lines.
func (t AchievementTier) Badge() string {
	return strings.ToUpper(string(t))
}

// AchievementCategory groups achievements by the part of the game they
// belong to.
type AchievementCategory string

const (
	CategoryCombat      AchievementCategory = "combat"
	CategoryExploration AchievementCategory = "exploration"
	CategoryEconomy     AchievementCategory = "economy"
	CategorySocial      AchievementCategory = "social"
	CategoryProgression AchievementCategory = "progression"
	CategoryChallenge   AchievementCategory = "challenge"
	CategorySecret      AchievementCategory = "secret"
)

// AchievementDefinition is one immutable entry of the achievement catalog.
// Definitions carry no player progress, all of that lives in the
// PlayerAchievementRecord inside each player's save data.
type AchievementDefinition struct {
	Id               string              `json:"id,omitempty"`
	Name             string              `json:"name,omitempty"`
	Description      string              `json:"description,omitempty"`
	SecretHint       string              `json:"secret_hint,omitempty"`
	Category         AchievementCategory `json:"category,omitempty"`
	Tier             AchievementTier     `json:"tier,omitempty"`
	IsSecret         bool                `json:"is_secret,omitempty"`
	Meta             bool                `json:"meta,omitempty"`
	PointValue       int64               `json:"point_value,omitempty"`
	GoldReward       int64               `json:"gold_reward,omitempty"`
	ExperienceReward int64               `json:"experience_reward,omitempty"`
	UnlockMessage    string              `json:"unlock_message,omitempty"`

	// Condition reports whether the player's current state satisfies the
	// achievement. Nil for achievements granted only through direct events
	// and for the meta achievement, the evaluator handles those itself.
	Condition func(*PlayerState) bool `json:"-"`
}

// AchievementsConfig is the data definition for an AchievementsSystem type.
type AchievementsConfig struct {
	// RewardMultiplier scales the gold and experience reward of every
	// unlock. Values at or below zero are treated as 1.
	RewardMultiplier float64 `json:"reward_multiplier,omitempty"`
}

// AchievementEntry is one catalog entry as presented to a player. Secret
// achievements show their hint in place of the description until unlocked.
type AchievementEntry struct {
	Id               string              `json:"id,omitempty"`
	Name             string              `json:"name,omitempty"`
	Description      string              `json:"description,omitempty"`
	Category         AchievementCategory `json:"category,omitempty"`
	Tier             AchievementTier     `json:"tier,omitempty"`
	IsSecret         bool                `json:"is_secret,omitempty"`
	PointValue       int64               `json:"point_value,omitempty"`
	GoldReward       int64               `json:"gold_reward,omitempty"`
	ExperienceReward int64               `json:"experience_reward,omitempty"`
	Unlocked         bool                `json:"unlocked,omitempty"`
	UnlockedAtUnix   int64               `json:"unlocked_at,omitempty"`
}

// AchievementList is the player-facing view of the whole catalog together
// with the player's overall completion.
type AchievementList struct {
	Achievements         []*AchievementEntry `json:"achievements,omitempty"`
	UnlockedCount        int64               `json:"unlocked_count,omitempty"`
	TotalCount           int64               `json:"total_count,omitempty"`
	CompletionPercentage float64             `json:"completion_percentage,omitempty"`
	Score                int64               `json:"score,omitempty"`
}

type AchievementsSystem interface {
	System

	// Registry returns the catalog of achievement definitions this system
	// evaluates against.
	Registry() *AchievementRegistry

	// TryUnlock attempts to unlock a single achievement for the player. It
	// returns true only when this call performed the unlock, in which case
	// rewards have been applied and a notification enqueued. Unknown IDs
	// and repeat unlocks return false and leave the player untouched.
	TryUnlock(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, player *PlayerState, achievementID string) bool

	// CheckAchievements evaluates every threshold achievement against the
	// player's current state and unlocks all that are newly satisfied,
	// returning them in catalog order.
	CheckAchievements(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, player *PlayerState) []*AchievementDefinition

	// CheckCombatOutcome awards the combat performance achievements for a
	// single fight the player survived, then re-checks thresholds.
	CheckCombatOutcome(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, player *PlayerState, tookDamage bool, hpFractionRemaining float64) []*AchievementDefinition

	// CompletionPercentage returns how much of the catalog the player has
	// unlocked, in percent.
	CompletionPercentage(player *PlayerState) float64

	// AchievementScore returns the summed point value of the player's
	// unlocked achievements.
	AchievementScore(player *PlayerState) int64

	// List returns the catalog merged with the given user's unlock state,
	// loaded from storage.
	List(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (*AchievementList, error)

	// SetOnAchievementReward registers a hook to modify or replace the
	// reward of an unlock before it is applied.
	SetOnAchievementReward(fn OnReward[*AchievementDefinition])
}
