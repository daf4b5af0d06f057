package questlogix

import (
	"context"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Questforge provides a type which combines all gameplay systems.
type Questforge interface {
	GetAchievementsSystem() AchievementsSystem
	GetStatsSystem() StatsSystem
	GetNotificationsSystem() NotificationsSystem

	AddPublisher(publisher Publisher)

	// SetPlatformBridge wires an optional platform achievement service. A nil
	// bridge is a valid state and unlock forwarding becomes a no-op.
	SetPlatformBridge(bridge PlatformAchievementBridge)
	PlatformBridge() PlatformAchievementBridge

	// SendPublisherEvents broadcasts one or more events to every registered
	// publisher. Publishers handle their own errors, callers never retry.
	SendPublisherEvents(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, events []*PublisherEvent)
}

// The SystemType identifies each of the gameplay systems.
type SystemType uint

const (
	SystemTypeUnknown SystemType = iota
	SystemTypeAchievements
	SystemTypeStats
	SystemTypeNotifications
)

// A System is a base type for a gameplay system.
type System interface {
	// GetType provides the runtime type of the gameplay system.
	GetType() SystemType

	// GetConfig returns the configuration type of the gameplay system.
	GetConfig() any
}

// Reward is the outcome of an achievement grant applied to a player.
type Reward struct {
	Gold       int64 `json:"gold,omitempty"`
	Experience int64 `json:"experience,omitempty"`
}

// OnReward is a function which can be used by each gameplay system to apply
// custom logic to the reward about to be granted, such as platform-specific
// bonuses. Returning an error keeps the original reward.
type OnReward[T any] func(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, sourceID string, source T, reward *Reward) (*Reward, error)

// A SystemConfig describes the configuration that drives a gameplay system.
type SystemConfig interface {
	// GetType returns the runtime type of the gameplay system.
	GetType() SystemType

	// GetConfigFile returns the configuration file used for the data
	// definitions in the gameplay system. Empty uses built-in defaults.
	GetConfigFile() string

	// GetRegister returns true if the gameplay system's RPCs should be
	// registered with the game server.
	GetRegister() bool
}

var _ SystemConfig = &systemConfig{}

type systemConfig struct {
	systemType SystemType
	configFile string
	register   bool
}

func (sc *systemConfig) GetType() SystemType {
	return sc.systemType
}

func (sc *systemConfig) GetConfigFile() string {
	return sc.configFile
}

func (sc *systemConfig) GetRegister() bool {
	return sc.register
}

// WithAchievementsSystem configures an AchievementsSystem type and optionally registers its RPCs with the game server.
func WithAchievementsSystem(configFile string, register bool) SystemConfig {
	return &systemConfig{
		systemType: SystemTypeAchievements,
		configFile: configFile,
		register:   register,
	}
}

// WithStatsSystem configures a StatsSystem type and optionally registers its RPCs with the game server.
func WithStatsSystem(configFile string, register bool) SystemConfig {
	return &systemConfig{
		systemType: SystemTypeStats,
		configFile: configFile,
		register:   register,
	}
}

// WithNotificationsSystem configures a NotificationsSystem type and optionally registers its RPCs with the game server.
func WithNotificationsSystem(configFile string, register bool) SystemConfig {
	return &systemConfig{
		systemType: SystemTypeNotifications,
		configFile: configFile,
		register:   register,
	}
}
