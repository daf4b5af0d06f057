package questlogix

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerAchievementRecordUnlockIdempotent(t *testing.T) {
	record := &PlayerAchievementRecord{}
	first := time.Date(2025, 3, 1, 12, 30, 45, 500000000, time.UTC)

	assert.True(t, record.Unlock("first_blood", first))
	assert.False(t, record.Unlock("first_blood", first.Add(time.Hour)))

	assert.True(t, record.IsUnlocked("first_blood"))
	assert.False(t, record.IsUnlocked("survivor"))
	assert.Equal(t, 1, record.Count())

	unlockedAt, ok := record.UnlockedAt("first_blood")
	require.True(t, ok)
	// The original timestamp survives the repeat unlock, at second precision.
	assert.Equal(t, first.Truncate(time.Second), unlockedAt)

	_, ok = record.UnlockedAt("survivor")
	assert.False(t, ok)
}

func TestNewPlayerStateDefaults(t *testing.T) {
	state := NewPlayerState("user1")

	assert.Equal(t, "user1", state.UserID)
	assert.EqualValues(t, 1, state.Level)
	assert.Equal(t, ModeNormal, state.Mode)
	require.NotNil(t, state.Statistics)
	require.NotNil(t, state.Achievements)
	assert.Equal(t, 0, state.Achievements.Count())
}

func TestPlayerStateNormalize(t *testing.T) {
	state := &PlayerState{}
	state.normalize()

	assert.NotNil(t, state.Statistics)
	assert.NotNil(t, state.Achievements)
	assert.EqualValues(t, 1, state.Level)
	assert.Equal(t, ModeNormal, state.Mode)

	// Existing values survive normalization.
	state.Level = 42
	state.Mode = ModeHardcore
	state.normalize()
	assert.EqualValues(t, 42, state.Level)
	assert.Equal(t, ModeHardcore, state.Mode)
}

func TestPlayerStateGoldHelpers(t *testing.T) {
	state := NewPlayerState("user1")

	state.AddGold(100)
	state.AddGold(50)
	assert.EqualValues(t, 150, state.Gold)
	assert.EqualValues(t, 150, state.Statistics.GoldEarned)
	assert.EqualValues(t, 150, state.Statistics.HighestGoldHeld)

	// Zero and negative grants are no-ops.
	state.AddGold(0)
	state.AddGold(-25)
	assert.EqualValues(t, 150, state.Gold)
	assert.EqualValues(t, 150, state.Statistics.GoldEarned)

	// Spending clamps at zero and only counts what was actually spent.
	spent := state.SpendGold(200)
	assert.EqualValues(t, 150, spent)
	assert.EqualValues(t, 0, state.Gold)
	assert.EqualValues(t, 150, state.Statistics.GoldSpent)

	// The high water mark tracks the best balance ever held, not the current.
	state.AddGold(60)
	assert.EqualValues(t, 150, state.Statistics.HighestGoldHeld)
	state.AddGold(200)
	assert.EqualValues(t, 260, state.Statistics.HighestGoldHeld)
}

func TestPlayerStateSerializationRoundTrip(t *testing.T) {
	state := NewPlayerState("user1")
	state.Level = 12
	state.Mode = ModeHardcore
	state.Married = true
	state.Statistics.MonstersKilled = 37
	state.Statistics.DeepestDungeonLevel = 9
	state.Achievements.Unlock("first_blood", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	state.Achievements.Unlock("delver", time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC))

	data, err := json.Marshal(state)
	require.NoError(t, err)

	restored := &PlayerState{}
	require.NoError(t, json.Unmarshal(data, restored))
	restored.normalize()

	assert.Equal(t, state.UserID, restored.UserID)
	assert.Equal(t, state.Level, restored.Level)
	assert.Equal(t, state.Mode, restored.Mode)
	assert.True(t, restored.Married)
	assert.EqualValues(t, 37, restored.Statistics.MonstersKilled)
	assert.EqualValues(t, 9, restored.Statistics.DeepestDungeonLevel)
	assert.Equal(t, 2, restored.Achievements.Count())
	assert.True(t, restored.Achievements.IsUnlocked("first_blood"))
	assert.True(t, restored.Achievements.IsUnlocked("delver"))
}

func TestGetPlayerStateMissingReturnsFresh(t *testing.T) {
	ctx := context.Background()
	logger := &testLoggerImpl{t}
	nk := NewMockNakama()

	state, version, err := getPlayerState(ctx, logger, nk, "user1")
	require.NoError(t, err)
	assert.Equal(t, "", version)
	assert.Equal(t, "user1", state.UserID)
	assert.EqualValues(t, 1, state.Level)
	assert.NotNil(t, state.Statistics)
	assert.NotNil(t, state.Achievements)
}

func TestSavePlayerStateVersioning(t *testing.T) {
	ctx := context.Background()
	logger := &testLoggerImpl{t}
	nk := NewMockNakama()
	userID := "user1"

	state := NewPlayerState(userID)
	state.Gold = 10
	require.NoError(t, savePlayerState(ctx, logger, nk, userID, state, ""))

	loaded, version, err := getPlayerState(ctx, logger, nk, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 10, loaded.Gold)
	require.NotEqual(t, "", version)

	loaded.Gold = 20
	require.NoError(t, savePlayerState(ctx, logger, nk, userID, loaded, version))

	// A second write with the now stale version must conflict.
	err = savePlayerState(ctx, logger, nk, userID, loaded, version)
	assert.Error(t, err)

	final, _, err := getPlayerState(ctx, logger, nk, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 20, final.Gold)
}

func TestGetPlayerStateReadError(t *testing.T) {
	ctx := context.Background()
	logger := &testLoggerImpl{t}
	nk := NewMockNakama()
	nk.failRead = true

	_, _, err := getPlayerState(ctx, logger, nk, "user1")
	assert.Error(t, err)
}
