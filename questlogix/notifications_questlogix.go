package questlogix

import (
	"sort"
	"sync"
)

const (
	defaultMaxListed           = 8
	defaultSingleDisplayMillis = 1800
	defaultBatchDisplayMillis  = 3200
)

// QuestNotificationsSystem implements the NotificationsSystem interface with
// in-memory per-player queues. One mutex guards all queues, enqueues from an
// evaluation pass are fully visible to any later drain.
type QuestNotificationsSystem struct {
	config     *NotificationsConfig
	questforge Questforge

	mu      sync.Mutex
	pending map[string][]*AchievementDefinition
}

// NewQuestNotificationsSystem creates a new instance of the notifications
// system with the given configuration.
func NewQuestNotificationsSystem(config *NotificationsConfig) *QuestNotificationsSystem {
	if config == nil {
		config = &NotificationsConfig{}
	}
	return &QuestNotificationsSystem{
		config:  config,
		pending: make(map[string][]*AchievementDefinition),
	}
}

// SetQuestforge sets the Questforge instance for this notifications system.
func (n *QuestNotificationsSystem) SetQuestforge(qf Questforge) {
	n.questforge = qf
}

// GetType returns the system type for the notifications system.
func (n *QuestNotificationsSystem) GetType() SystemType {
	return SystemTypeNotifications
}

// GetConfig returns the configuration for the notifications system.
func (n *QuestNotificationsSystem) GetConfig() any {
	return n.config
}

// Enqueue appends newly unlocked achievements to the player's pending queue
// in unlock order.
func (n *QuestNotificationsSystem) Enqueue(userID string, defs ...*AchievementDefinition) {
	if userID == "" || len(defs) == 0 {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, def := range defs {
		if def == nil {
			continue
		}
		n.pending[userID] = append(n.pending[userID], def)
	}
}

// Pending returns how many unlocks are queued for the player.
func (n *QuestNotificationsSystem) Pending(userID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.pending[userID])
}

// Drain removes every queued unlock for the player and consolidates them
// into one notification. Returns nil when the queue is empty.
func (n *QuestNotificationsSystem) Drain(userID string) *UnlockNotification {
	n.mu.Lock()
	defs := n.pending[userID]
	delete(n.pending, userID)
	n.mu.Unlock()

	if len(defs) == 0 {
		return nil
	}

	notif := &UnlockNotification{Count: len(defs)}
	for _, def := range defs {
		notif.TotalGold += def.GoldReward
		notif.TotalExperience += def.ExperienceReward
		notif.TotalPoints += def.PointValue
	}

	listed := make([]*AchievementDefinition, len(defs))
	copy(listed, defs)
	n.sortForDisplay(listed)

	maxListed := n.config.MaxListed
	if maxListed <= 0 {
		maxListed = defaultMaxListed
	}
	if len(listed) > maxListed {
		notif.More = len(listed) - maxListed
		listed = listed[:maxListed]
	}
	notif.Listed = listed

	if notif.Count == 1 {
		notif.DisplayMillis = n.config.SingleDisplayMillis
		if notif.DisplayMillis <= 0 {
			notif.DisplayMillis = defaultSingleDisplayMillis
		}
	} else {
		notif.DisplayMillis = n.config.BatchDisplayMillis
		if notif.DisplayMillis <= 0 {
			notif.DisplayMillis = defaultBatchDisplayMillis
		}
	}
	return notif
}

// sortForDisplay orders unlocks by descending tier. Ties keep catalog order
// when the registry is reachable, otherwise they keep unlock order.
func (n *QuestNotificationsSystem) sortForDisplay(defs []*AchievementDefinition) {
	var registry *AchievementRegistry
	if n.questforge != nil {
		if achievements := n.questforge.GetAchievementsSystem(); achievements != nil {
			registry = achievements.Registry()
		}
	}
	sort.SliceStable(defs, func(i, j int) bool {
		ri, rj := defs[i].Tier.Rank(), defs[j].Tier.Rank()
		if ri != rj {
			return ri > rj
		}
		if registry == nil {
			return false
		}
		pi, pj := registry.IndexOf(defs[i].Id), registry.IndexOf(defs[j].Id)
		if pi < 0 || pj < 0 {
			return false
		}
		return pi < pj
	})
}

// DrainAndPresent drains the player's queue and renders the result on the
// given surface, finishing with the pacing delay so back-to-back
// notifications do not pile on top of each other.
func (n *QuestNotificationsSystem) DrainAndPresent(userID string, presenter NotificationPresenter) {
	if presenter == nil {
		return
	}
	notif := n.Drain(userID)
	if notif == nil {
		return
	}
	for _, line := range notif.Lines() {
		presenter.Print(line)
	}
	presenter.Delay(notif.DisplayMillis)
}
