package questlogix

import (
	"context"
	"encoding/json"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	playerStorageCollection = "player"
	playerStateStorageKey   = "player_state"
)

// DifficultyMode identifies the ruleset a player character was created under.
type DifficultyMode string

const (
	ModeNormal   DifficultyMode = "normal"
	ModeHardcore DifficultyMode = "hardcore"
)

// PlayerStatistics holds the cumulative gameplay counters achievements are
// evaluated against. All counters only ever grow, except where a field is
// explicitly a high water mark of a value that can also shrink elsewhere.
type PlayerStatistics struct {
	MonstersKilled      int64 `json:"monsters_killed,omitempty"`
	BossesKilled        int64 `json:"bosses_killed,omitempty"`
	UniquesKilled       int64 `json:"uniques_killed,omitempty"`
	CriticalHits        int64 `json:"critical_hits,omitempty"`
	DamageDealt         int64 `json:"damage_dealt,omitempty"`
	PlayerKills         int64 `json:"player_kills,omitempty"`
	DeathsToMonsters    int64 `json:"deaths_to_monsters,omitempty"`
	DeathsToPlayers     int64 `json:"deaths_to_players,omitempty"`
	GoldEarned          int64 `json:"gold_earned,omitempty"`
	GoldSpent           int64 `json:"gold_spent,omitempty"`
	HighestGoldHeld     int64 `json:"highest_gold_held,omitempty"`
	ExperienceEarned    int64 `json:"experience_earned,omitempty"`
	ItemsPurchased      int64 `json:"items_purchased,omitempty"`
	DeepestDungeonLevel int64 `json:"deepest_dungeon_level,omitempty"`
	ChestsOpened        int64 `json:"chests_opened,omitempty"`
	SecretsFound        int64 `json:"secrets_found,omitempty"`
	FriendsGained       int64 `json:"friends_gained,omitempty"`
	CurrentPlayStreak   int64 `json:"current_play_streak,omitempty"`
	BestPlayStreak      int64 `json:"best_play_streak,omitempty"`
	LastPlayedAtUnix    int64 `json:"last_played_at,omitempty"`
}

// PlayerAchievementRecord tracks which achievements a player has unlocked and
// when. An achievement is unlocked if and only if its ID is a key of the map,
// so the unlocked set and the timestamp set cannot drift apart. Unlocks are
// permanent, nothing ever removes an entry.
type PlayerAchievementRecord struct {
	UnlockedAtUnix map[string]int64 `json:"unlocked,omitempty"`
}

// Unlock marks the achievement as unlocked at the given time. It returns true
// only the first time an ID is unlocked, repeat calls leave the original
// timestamp untouched and return false.
func (r *PlayerAchievementRecord) Unlock(id string, now time.Time) bool {
	if r.UnlockedAtUnix == nil {
		r.UnlockedAtUnix = make(map[string]int64)
	}
	if _, ok := r.UnlockedAtUnix[id]; ok {
		return false
	}
	r.UnlockedAtUnix[id] = now.UTC().Unix()
	return true
}

// IsUnlocked reports whether the achievement has been unlocked.
func (r *PlayerAchievementRecord) IsUnlocked(id string) bool {
	_, ok := r.UnlockedAtUnix[id]
	return ok
}

// UnlockedAt returns the UTC time the achievement was unlocked, if it was.
func (r *PlayerAchievementRecord) UnlockedAt(id string) (time.Time, bool) {
	sec, ok := r.UnlockedAtUnix[id]
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(sec, 0).UTC(), true
}

// Count returns the number of unlocked achievements.
func (r *PlayerAchievementRecord) Count() int {
	return len(r.UnlockedAtUnix)
}

// PlayerState is the persistent save data for one player character. It is
// stored as a single JSON object so achievements, statistics, and progress
// always travel together and are saved or loaded in one storage operation.
type PlayerState struct {
	UserID       string                   `json:"user_id,omitempty"`
	Gold         int64                    `json:"gold,omitempty"`
	Experience   int64                    `json:"experience,omitempty"`
	Level        int64                    `json:"level,omitempty"`
	Married      bool                     `json:"married,omitempty"`
	HasTeam      bool                     `json:"has_team,omitempty"`
	King         bool                     `json:"king,omitempty"`
	Mode         DifficultyMode           `json:"mode,omitempty"`
	Statistics   *PlayerStatistics        `json:"statistics,omitempty"`
	Achievements *PlayerAchievementRecord `json:"achievements,omitempty"`
}

// NewPlayerState creates the initial save data for a fresh player character.
func NewPlayerState(userID string) *PlayerState {
	return &PlayerState{
		UserID:       userID,
		Level:        1,
		Mode:         ModeNormal,
		Statistics:   &PlayerStatistics{},
		Achievements: &PlayerAchievementRecord{},
	}
}

// normalize backfills nested structures and defaults that may be absent from
// older or partial saves.
func (p *PlayerState) normalize() {
	if p.Statistics == nil {
		p.Statistics = &PlayerStatistics{}
	}
	if p.Achievements == nil {
		p.Achievements = &PlayerAchievementRecord{}
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Mode == "" {
		p.Mode = ModeNormal
	}
}

// AddGold grants gold to the player, folding the amount into the earned total
// and raising the held gold high water mark when crossed.
func (p *PlayerState) AddGold(amount int64) {
	if amount <= 0 {
		return
	}
	p.Gold += amount
	p.Statistics.GoldEarned += amount
	if p.Gold > p.Statistics.HighestGoldHeld {
		p.Statistics.HighestGoldHeld = p.Gold
	}
}

// SpendGold removes up to amount gold from the player, never going below
// zero, and returns how much was actually spent.
func (p *PlayerState) SpendGold(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	spent := amount
	if spent > p.Gold {
		spent = p.Gold
	}
	p.Gold -= spent
	p.Statistics.GoldSpent += spent
	return spent
}

// AddExperience grants experience to the player and folds the amount into the
// earned total.
func (p *PlayerState) AddExperience(amount int64) {
	if amount <= 0 {
		return
	}
	p.Experience += amount
	p.Statistics.ExperienceEarned += amount
}

// getPlayerState fetches the stored save data for a user from Nakama storage.
// A user with no save yet gets a fresh state and an empty version so the
// first write creates the object.
func getPlayerState(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (*PlayerState, string, error) {
	objects, err := nk.StorageRead(ctx, []*runtime.StorageRead{{
		Collection: playerStorageCollection,
		Key:        playerStateStorageKey,
		UserID:     userID,
	}})
	if err != nil {
		logger.Error("Failed to read player state: %v", err)
		return nil, "", err
	}
	if len(objects) == 0 || objects[0] == nil || objects[0].Value == "" {
		return NewPlayerState(userID), "", nil
	}
	state := &PlayerState{}
	if err := json.Unmarshal([]byte(objects[0].Value), state); err != nil {
		logger.Error("Failed to unmarshal player state: %v", err)
		return nil, "", err
	}
	state.UserID = userID
	state.normalize()
	return state, objects[0].Version, nil
}

// savePlayerState stores the updated save data for a user in Nakama storage.
// The version from the preceding read is passed through so concurrent writers
// conflict instead of overwriting each other.
func savePlayerState(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, state *PlayerState, version string) error {
	data, err := json.Marshal(state)
	if err != nil {
		logger.Error("Failed to marshal player state: %v", err)
		return err
	}
	if _, err := nk.StorageWrite(ctx, []*runtime.StorageWrite{{
		Collection:      playerStorageCollection,
		Key:             playerStateStorageKey,
		UserID:          userID,
		Value:           string(data),
		Version:         version,
		PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_OWNER_WRITE,
	}}); err != nil {
		logger.Error("Failed to write player state: %v", err)
		return err
	}
	return nil
}
