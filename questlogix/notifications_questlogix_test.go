package questlogix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPresenter captures presented lines and pacing delays.
type recordingPresenter struct {
	lines  []string
	delays []int64
}

func (p *recordingPresenter) Print(line string)  { p.lines = append(p.lines, line) }
func (p *recordingPresenter) Delay(millis int64) { p.delays = append(p.delays, millis) }

func catalogDef(t *testing.T, qf Questforge, id string) *AchievementDefinition {
	def, ok := qf.GetAchievementsSystem().Registry().Get(id)
	require.True(t, ok, "unknown achievement %s", id)
	return def
}

func TestDrainEmptyQueue(t *testing.T) {
	qf, _ := newTestQuestforge(t)
	notifications := qf.GetNotificationsSystem()

	assert.Nil(t, notifications.Drain("user1"))

	presenter := &recordingPresenter{}
	notifications.DrainAndPresent("user1", presenter)
	assert.Empty(t, presenter.lines)
	assert.Empty(t, presenter.delays)
}

func TestSingleUnlockNotification(t *testing.T) {
	qf, _ := newTestQuestforge(t)
	notifications := qf.GetNotificationsSystem()

	notifications.Enqueue("user1", catalogDef(t, qf, "first_blood"))
	assert.Equal(t, 1, notifications.Pending("user1"))

	notif := notifications.Drain("user1")
	require.NotNil(t, notif)
	assert.Equal(t, 1, notif.Count)
	assert.Zero(t, notif.More)
	assert.EqualValues(t, 25, notif.TotalGold)
	assert.EqualValues(t, 50, notif.TotalExperience)
	assert.EqualValues(t, 10, notif.TotalPoints)
	assert.EqualValues(t, 1800, notif.DisplayMillis)

	assert.Equal(t, []string{
		"Achievement Unlocked!",
		"First Blood [BRONZE]",
		"Slay your first monster.",
		"+25 gold, +50 XP",
		"The hunt begins.",
	}, notif.Lines())

	// Draining removed the queue.
	assert.Equal(t, 0, notifications.Pending("user1"))
	assert.Nil(t, notifications.Drain("user1"))
}

func TestBatchNotificationConsolidates(t *testing.T) {
	qf, _ := newTestQuestforge(t)
	notifications := qf.GetNotificationsSystem()

	notifications.Enqueue("user1",
		catalogDef(t, qf, "monster_slayer_10"),
		catalogDef(t, qf, "flawless_victory"),
		catalogDef(t, qf, "monster_slayer_500"),
	)

	notif := notifications.Drain("user1")
	require.NotNil(t, notif)
	assert.Equal(t, 3, notif.Count)
	assert.Zero(t, notif.More)
	assert.EqualValues(t, 1550, notif.TotalGold)
	assert.EqualValues(t, 3100, notif.TotalExperience)
	assert.EqualValues(t, 3200, notif.DisplayMillis)

	// Higher tiers first, catalog order within a tier.
	assert.Equal(t,
		[]string{"monster_slayer_500", "flawless_victory", "monster_slayer_10"},
		definitionIds(notif.Listed))

	assert.Equal(t, []string{
		"3 Achievements Unlocked!",
		"- Scourge of Monsters [GOLD]",
		"- Flawless Victory [GOLD]",
		"- Monster Slayer [BRONZE]",
		"+1550 gold, +3100 XP",
	}, notif.Lines())
}

func TestBatchNotificationCapsListed(t *testing.T) {
	qf, _ := newTestQuestforge(t)
	notifications := qf.GetNotificationsSystem()

	// Enqueue in scrambled order across four tiers.
	for _, id := range []string{
		"patron", "crowned", "critical_eye", "first_blood", "abyss_walker",
		"living_legend", "gilded", "delver", "boss_bane", "master",
	} {
		notifications.Enqueue("user1", catalogDef(t, qf, id))
	}

	notif := notifications.Drain("user1")
	require.NotNil(t, notif)
	assert.Equal(t, 10, notif.Count)
	assert.Equal(t, 2, notif.More)
	require.Len(t, notif.Listed, 8)

	assert.Equal(t, []string{
		"living_legend", "crowned",
		"boss_bane", "abyss_walker", "master",
		"critical_eye", "gilded",
		"first_blood",
	}, definitionIds(notif.Listed))

	lines := notif.Lines()
	assert.Equal(t, "10 Achievements Unlocked!", lines[0])
	assert.Contains(t, lines, "...and 2 more")
}

func TestNotificationTierTieBreakUsesCatalogOrder(t *testing.T) {
	qf, _ := newTestQuestforge(t)
	notifications := qf.GetNotificationsSystem()

	// Both silver, enqueued in reverse catalog order.
	notifications.Enqueue("user1",
		catalogDef(t, qf, "gilded"),
		catalogDef(t, qf, "boss_breaker"),
	)

	notif := notifications.Drain("user1")
	require.NotNil(t, notif)
	assert.Equal(t, []string{"boss_breaker", "gilded"}, definitionIds(notif.Listed))
}

func TestNotificationQueuesAreIsolatedPerUser(t *testing.T) {
	qf, _ := newTestQuestforge(t)
	notifications := qf.GetNotificationsSystem()

	notifications.Enqueue("user1", catalogDef(t, qf, "first_blood"))
	notifications.Enqueue("user2", catalogDef(t, qf, "delver"))

	notif := notifications.Drain("user1")
	require.NotNil(t, notif)
	assert.Equal(t, []string{"first_blood"}, definitionIds(notif.Listed))

	assert.Equal(t, 1, notifications.Pending("user2"))
}

func TestEnqueueGuards(t *testing.T) {
	qf, _ := newTestQuestforge(t)
	notifications := qf.GetNotificationsSystem()

	notifications.Enqueue("", catalogDef(t, qf, "first_blood"))
	notifications.Enqueue("user1")
	notifications.Enqueue("user1", nil)

	assert.Equal(t, 0, notifications.Pending(""))
	assert.Equal(t, 0, notifications.Pending("user1"))
}

func TestNotificationsConfigOverrides(t *testing.T) {
	system := NewQuestNotificationsSystem(&NotificationsConfig{
		MaxListed:           2,
		SingleDisplayMillis: 500,
		BatchDisplayMillis:  900,
	})

	single := &AchievementDefinition{Id: "solo", Name: "Solo", Tier: TierBronze}
	system.Enqueue("user1", single)
	notif := system.Drain("user1")
	require.NotNil(t, notif)
	assert.EqualValues(t, 500, notif.DisplayMillis)

	system.Enqueue("user1",
		&AchievementDefinition{Id: "a", Name: "A", Tier: TierBronze},
		&AchievementDefinition{Id: "b", Name: "B", Tier: TierBronze},
		&AchievementDefinition{Id: "c", Name: "C", Tier: TierBronze},
	)
	notif = system.Drain("user1")
	require.NotNil(t, notif)
	assert.EqualValues(t, 900, notif.DisplayMillis)
	assert.Len(t, notif.Listed, 2)
	assert.Equal(t, 1, notif.More)
}

func TestNotificationLinesOmitEmptyParts(t *testing.T) {
	system := NewQuestNotificationsSystem(nil)

	// No description, no rewards, no unlock message.
	system.Enqueue("user1", &AchievementDefinition{Id: "bare", Name: "Bare", Tier: TierBronze})

	notif := system.Drain("user1")
	require.NotNil(t, notif)
	assert.Equal(t, []string{
		"Achievement Unlocked!",
		"Bare [BRONZE]",
	}, notif.Lines())
}

func TestDrainAndPresent(t *testing.T) {
	qf, _ := newTestQuestforge(t)
	notifications := qf.GetNotificationsSystem()

	notifications.Enqueue("user1", catalogDef(t, qf, "death_march"))

	presenter := &recordingPresenter{}
	notifications.DrainAndPresent("user1", presenter)

	// death_march rewards experience only, the summary line skips gold.
	assert.Equal(t, []string{
		"Achievement Unlocked!",
		"Death March [BRONZE]",
		"Die 10 times and keep coming back.",
		"+500 XP",
		"Still standing.",
	}, presenter.lines)
	assert.Equal(t, []int64{1800}, presenter.delays)

	assert.Equal(t, 0, notifications.Pending("user1"))
}
