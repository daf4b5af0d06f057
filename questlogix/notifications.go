package questlogix

import (
	"fmt"
	"strings"
)

// NotificationsConfig is the data definition for a NotificationsSystem type.
type NotificationsConfig struct {
	// MaxListed caps how many achievements a consolidated notification
	// names individually. Zero means the default of 8.
	MaxListed int `json:"max_listed,omitempty"`
	// SingleDisplayMillis is how long a surface should keep a single
	// unlock on screen. Zero means the default of 1800.
	SingleDisplayMillis int64 `json:"single_display_millis,omitempty"`
	// BatchDisplayMillis is how long a surface should keep a consolidated
	// notification on screen. Zero means the default of 3200.
	BatchDisplayMillis int64 `json:"batch_display_millis,omitempty"`
}

// UnlockNotification is one ready-to-present notification covering every
// unlock drained from a player's queue. Listed holds at most the configured
// number of definitions in display order, More counts the rest.
type UnlockNotification struct {
	Count           int                      `json:"count,omitempty"`
	Listed          []*AchievementDefinition `json:"listed,omitempty"`
	More            int                      `json:"more,omitempty"`
	TotalGold       int64                    `json:"total_gold,omitempty"`
	TotalExperience int64                    `json:"total_experience,omitempty"`
	TotalPoints     int64                    `json:"total_points,omitempty"`
	DisplayMillis   int64                    `json:"display_millis,omitempty"`
}

// Lines renders the notification as player-facing text. A single unlock gets
// the full detail treatment, multiple unlocks consolidate into one summary.
func (n *UnlockNotification) Lines() []string {
	if n == nil || n.Count == 0 {
		return nil
	}
	if n.Count == 1 && len(n.Listed) == 1 {
		def := n.Listed[0]
		lines := []string{
			"Achievement Unlocked!",
			fmt.Sprintf("%s [%s]", def.Name, def.Tier.Badge()),
		}
		if def.Description != "" {
			lines = append(lines, def.Description)
		}
		if reward := formatRewardSummary(n.TotalGold, n.TotalExperience); reward != "" {
			lines = append(lines, reward)
		}
		if def.UnlockMessage != "" {
			lines = append(lines, def.UnlockMessage)
		}
		return lines
	}
	lines := []string{fmt.Sprintf("%d Achievements Unlocked!", n.Count)}
	for _, def := range n.Listed {
		lines = append(lines, fmt.Sprintf("- %s [%s]", def.Name, def.Tier.Badge()))
	}
	if n.More > 0 {
		lines = append(lines, fmt.Sprintf("...and %d more", n.More))
	}
	if reward := formatRewardSummary(n.TotalGold, n.TotalExperience); reward != "" {
		lines = append(lines, reward)
	}
	return lines
}

func formatRewardSummary(gold, experience int64) string {
	parts := make([]string, 0, 2)
	if gold > 0 {
		parts = append(parts, fmt.Sprintf("+%d gold", gold))
	}
	if experience > 0 {
		parts = append(parts, fmt.Sprintf("+%d XP", experience))
	}
	return strings.Join(parts, ", ")
}

// NotificationPresenter is the output surface notifications are shown on,
// such as an in-game toast stream, a chat channel, or a terminal.
type NotificationPresenter interface {
	// Print displays one line of notification text.
	Print(line string)
	// Delay pauses the surface for the given pacing interval.
	Delay(millis int64)
}

type NotificationsSystem interface {
	System

	// Enqueue appends newly unlocked achievements to the player's pending
	// notification queue.
	Enqueue(userID string, defs ...*AchievementDefinition)

	// Pending returns how many unlocks are queued for the player.
	Pending(userID string) int

	// Drain removes every queued unlock for the player and consolidates
	// them into a single notification, or nil when nothing is queued.
	Drain(userID string) *UnlockNotification

	// DrainAndPresent drains the player's queue and renders the result on
	// the given surface, finishing with the configured display pacing.
	DrainAndPresent(userID string, presenter NotificationPresenter)
}
