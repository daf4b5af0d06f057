package questlogix

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// QuestAchievementsSystem implements the AchievementsSystem interface. It
// evaluates the catalog against in-memory player state only, callers own
// loading and saving the state around each call.
type QuestAchievementsSystem struct {
	config              *AchievementsConfig
	registry            *AchievementRegistry
	questforge          Questforge
	onAchievementReward OnReward[*AchievementDefinition]
}

// NewQuestAchievementsSystem creates a new instance of the achievements
// system with the given configuration and the built-in catalog.
func NewQuestAchievementsSystem(config *AchievementsConfig) *QuestAchievementsSystem {
	return NewQuestAchievementsSystemWithRegistry(config, nil)
}

// NewQuestAchievementsSystemWithRegistry creates the achievements system
// around a custom catalog. A nil registry gets the built-in catalog.
func NewQuestAchievementsSystemWithRegistry(config *AchievementsConfig, registry *AchievementRegistry) *QuestAchievementsSystem {
	if config == nil {
		config = &AchievementsConfig{}
	}
	if registry == nil {
		registry = NewAchievementRegistry()
	}
	return &QuestAchievementsSystem{
		config:   config,
		registry: registry,
	}
}

// SetQuestforge sets the Questforge instance for this achievements system.
func (s *QuestAchievementsSystem) SetQuestforge(qf Questforge) {
	s.questforge = qf
}

// GetType returns the system type for the achievements system.
func (s *QuestAchievementsSystem) GetType() SystemType {
	return SystemTypeAchievements
}

// GetConfig returns the configuration for the achievements system.
func (s *QuestAchievementsSystem) GetConfig() any {
	return s.config
}

// Registry returns the catalog this system evaluates against.
func (s *QuestAchievementsSystem) Registry() *AchievementRegistry {
	return s.registry
}

// SetOnAchievementReward registers a hook to modify or replace the reward of
// an unlock before it is applied.
func (s *QuestAchievementsSystem) SetOnAchievementReward(fn OnReward[*AchievementDefinition]) {
	s.onAchievementReward = fn
}

// TryUnlock attempts to unlock a single achievement for the player. Unknown
// IDs and already unlocked achievements return false without touching the
// player. A first unlock applies the reward exactly once, enqueues a
// notification, and reports the unlock to publishers and the platform
// bridge, neither of which can fail the unlock.
func (s *QuestAchievementsSystem) TryUnlock(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, player *PlayerState, achievementID string) bool {
	if player == nil {
		return false
	}
	def, ok := s.registry.Get(achievementID)
	if !ok {
		return false
	}
	player.normalize()
	if !player.Achievements.Unlock(def.Id, time.Now().UTC()) {
		return false
	}

	s.applyReward(ctx, logger, nk, player, def)

	if s.questforge != nil {
		if notifications := s.questforge.GetNotificationsSystem(); notifications != nil {
			notifications.Enqueue(player.UserID, def)
		}
		s.publishUnlock(ctx, logger, nk, player, def)
		if bridge := s.questforge.PlatformBridge(); bridge != nil {
			bridge.Unlock(ctx, logger, nk, player.UserID, def.Id)
		}
	}
	return true
}

// CheckAchievements evaluates every threshold achievement against the
// player's current state and unlocks all that are newly satisfied. The whole
// catalog is re-scanned on every call, so missed unlocks from older sessions
// or migrated saves are picked up the next time anything changes. The meta
// achievement is evaluated after the scan so closing out the catalog and
// earning the meta can happen in one pass.
func (s *QuestAchievementsSystem) CheckAchievements(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, player *PlayerState) []*AchievementDefinition {
	if player == nil {
		return nil
	}
	player.normalize()

	var unlocked []*AchievementDefinition
	for _, def := range s.registry.All() {
		if def.Condition == nil || player.Achievements.IsUnlocked(def.Id) {
			continue
		}
		if def.Condition(player) && s.TryUnlock(ctx, logger, nk, player, def.Id) {
			unlocked = append(unlocked, def)
		}
	}

	for _, def := range s.registry.All() {
		if !def.Meta || player.Achievements.IsUnlocked(def.Id) {
			continue
		}
		if s.standardComplete(player) && s.TryUnlock(ctx, logger, nk, player, def.Id) {
			unlocked = append(unlocked, def)
		}
	}
	return unlocked
}

// CheckCombatOutcome awards the combat performance achievements for a single
// fight the player survived, then runs the usual threshold pass. A fight
// without a scratch earns one, finishing below a tenth of health earns the
// other, both can come from the same desperate fight.
func (s *QuestAchievementsSystem) CheckCombatOutcome(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, player *PlayerState, tookDamage bool, hpFractionRemaining float64) []*AchievementDefinition {
	if player == nil {
		return nil
	}
	player.normalize()

	var unlocked []*AchievementDefinition
	if !tookDamage && s.TryUnlock(ctx, logger, nk, player, AchievementFlawlessVictory) {
		if def, ok := s.registry.Get(AchievementFlawlessVictory); ok {
			unlocked = append(unlocked, def)
		}
	}
	if hpFractionRemaining < 0.1 && s.TryUnlock(ctx, logger, nk, player, AchievementSurvivor) {
		if def, ok := s.registry.Get(AchievementSurvivor); ok {
			unlocked = append(unlocked, def)
		}
	}
	return append(unlocked, s.CheckAchievements(ctx, logger, nk, player)...)
}

// CompletionPercentage returns how much of the catalog the player has
// unlocked, in percent of all registered definitions.
func (s *QuestAchievementsSystem) CompletionPercentage(player *PlayerState) float64 {
	total := s.registry.Count()
	if player == nil || total == 0 {
		return 0
	}
	player.normalize()
	unlocked := 0
	for _, def := range s.registry.All() {
		if player.Achievements.IsUnlocked(def.Id) {
			unlocked++
		}
	}
	return float64(unlocked) * 100 / float64(total)
}

// AchievementScore returns the summed point value of the player's unlocked
// achievements.
func (s *QuestAchievementsSystem) AchievementScore(player *PlayerState) int64 {
	if player == nil {
		return 0
	}
	player.normalize()
	var score int64
	for _, def := range s.registry.All() {
		if player.Achievements.IsUnlocked(def.Id) {
			score += def.PointValue
		}
	}
	return score
}

// List returns the catalog merged with the given user's unlock state.
func (s *QuestAchievementsSystem) List(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (*AchievementList, error) {
	if userID == "" {
		return nil, ErrNoSessionUser
	}
	state, _, err := getPlayerState(ctx, logger, nk, userID)
	if err != nil {
		logger.Error("Failed to get player state for user %s: %v", userID, err)
		return nil, err
	}

	defs := s.registry.All()
	list := &AchievementList{
		Achievements: make([]*AchievementEntry, 0, len(defs)),
		TotalCount:   int64(len(defs)),
	}
	for _, def := range defs {
		entry := &AchievementEntry{
			Id:               def.Id,
			Name:             def.Name,
			Description:      def.Description,
			Category:         def.Category,
			Tier:             def.Tier,
			IsSecret:         def.IsSecret,
			PointValue:       def.PointValue,
			GoldReward:       def.GoldReward,
			ExperienceReward: def.ExperienceReward,
		}
		if at, ok := state.Achievements.UnlockedAt(def.Id); ok {
			entry.Unlocked = true
			entry.UnlockedAtUnix = at.Unix()
			list.UnlockedCount++
		} else if def.IsSecret {
			entry.Description = def.SecretHint
		}
		list.Achievements = append(list.Achievements, entry)
	}
	list.CompletionPercentage = s.CompletionPercentage(state)
	list.Score = s.AchievementScore(state)
	return list, nil
}

// standardComplete reports whether every non-secret, non-meta achievement is
// unlocked. This is the bar the meta achievement requires, secrets stay
// optional so a completed catalog does not force hunting hidden entries.
func (s *QuestAchievementsSystem) standardComplete(player *PlayerState) bool {
	total, unlocked := 0, 0
	for _, def := range s.registry.All() {
		if def.IsSecret || def.Meta {
			continue
		}
		total++
		if player.Achievements.IsUnlocked(def.Id) {
			unlocked++
		}
	}
	return total > 0 && unlocked == total
}

// applyReward grants the achievement's gold and experience to the player,
// scaled by the configured multiplier and subject to the reward hook. Hook
// failures keep the default reward so an unlock never loses its payout.
func (s *QuestAchievementsSystem) applyReward(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, player *PlayerState, def *AchievementDefinition) {
	reward := &Reward{
		Gold:       def.GoldReward,
		Experience: def.ExperienceReward,
	}
	if m := s.config.RewardMultiplier; m > 0 && m != 1 {
		reward.Gold = int64(math.Round(float64(reward.Gold) * m))
		reward.Experience = int64(math.Round(float64(reward.Experience) * m))
	}
	if s.onAchievementReward != nil {
		custom, err := s.onAchievementReward(ctx, logger, nk, player.UserID, def.Id, def, reward)
		if err != nil {
			logger.Error("Error in achievement reward hook for %s: %v", def.Id, err)
		} else if custom != nil {
			reward = custom
		}
	}
	player.AddGold(reward.Gold)
	player.AddExperience(reward.Experience)
}

// publishUnlock reports a first-time unlock to the registered publishers.
func (s *QuestAchievementsSystem) publishUnlock(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, player *PlayerState, def *AchievementDefinition) {
	s.questforge.SendPublisherEvents(ctx, logger, nk, player.UserID, []*PublisherEvent{{
		Name:      "achievement_unlocked",
		Id:        uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Metadata: map[string]string{
			"achievement_id":   def.Id,
			"achievement_name": def.Name,
			"player_level":     strconv.FormatInt(player.Level, 10),
			"category":         string(def.Category),
			"tier":             string(def.Tier),
		},
		System:   s,
		SourceId: def.Id,
		Source:   def,
	}})
}
