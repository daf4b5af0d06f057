package questlogix

import (
	"context"
	"encoding/json"
	"io"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RPC identifiers registered with Nakama when a system config requests
// registration.
const (
	RpcIdAchievementsList   = "achievements_list"
	RpcIdStatsProgress      = "stats_progress"
	RpcIdStatsCombatResult  = "stats_combat_result"
	RpcIdStatsPlaySession   = "stats_play_session"
	RpcIdNotificationsDrain = "notifications_drain"
)

// questforgeImpl implements the Questforge interface.
type questforgeImpl struct {
	publishers     []Publisher
	platformBridge PlatformAchievementBridge

	// Store systems in a map by type
	systems map[SystemType]System
}

// Init initializes a Questforge type with the configurations provided.
func Init(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, initializer runtime.Initializer, configs ...SystemConfig) (Questforge, error) {
	qf := &questforgeImpl{
		publishers: make([]Publisher, 0),
		systems:    make(map[SystemType]System),
	}

	for _, config := range configs {
		if err := qf.initSystem(ctx, logger, nk, initializer, config); err != nil {
			return nil, err
		}
	}

	return qf, nil
}

// initSystem initializes a specific system based on its type.
func (p *questforgeImpl) initSystem(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, initializer runtime.Initializer, config SystemConfig) error {
	logger.Info("Initializing system type: %v, config file: %s", config.GetType(), config.GetConfigFile())

	// An empty config file name means the built-in defaults.
	var configBytes []byte
	if config.GetConfigFile() != "" {
		configData, err := nk.ReadFile(config.GetConfigFile())
		if err != nil {
			logger.Error("Failed to read config file %s: %v", config.GetConfigFile(), err)
			return err
		}
		configBytes, err = io.ReadAll(configData)
		configData.Close()
		if err != nil {
			logger.Error("Failed to read config file contents: %v", err)
			return err
		}
	}

	var system System

	switch config.GetType() {
	case SystemTypeAchievements:
		achievementsConfig := &AchievementsConfig{}
		if len(configBytes) > 0 {
			if err := json.Unmarshal(configBytes, achievementsConfig); err != nil {
				logger.Error("Failed to parse Achievements system config: %v", err)
				return err
			}
		}
		system = NewQuestAchievementsSystem(achievementsConfig)

	case SystemTypeStats:
		statsConfig := &StatsConfig{}
		if len(configBytes) > 0 {
			if err := json.Unmarshal(configBytes, statsConfig); err != nil {
				logger.Error("Failed to parse Stats system config: %v", err)
				return err
			}
		}
		system = NewQuestStatsSystem(statsConfig)

	case SystemTypeNotifications:
		notificationsConfig := &NotificationsConfig{}
		if len(configBytes) > 0 {
			if err := json.Unmarshal(configBytes, notificationsConfig); err != nil {
				logger.Error("Failed to parse Notifications system config: %v", err)
				return err
			}
		}
		system = NewQuestNotificationsSystem(notificationsConfig)

	default:
		logger.Error("Unknown system type: %v", config.GetType())
		return runtime.NewError("unknown system type", 3) // INVALID_ARGUMENT
	}

	p.systems[config.GetType()] = system

	// Hand each system the hub reference for cross-system communication.
	switch sys := system.(type) {
	case *QuestAchievementsSystem:
		sys.SetQuestforge(p)
	case *QuestStatsSystem:
		sys.SetQuestforge(p)
	case *QuestNotificationsSystem:
		sys.SetQuestforge(p)
	}

	if config.GetRegister() {
		if err := p.registerSystemRpcs(initializer, config.GetType()); err != nil {
			return err
		}
	}

	return nil
}

// registerSystemRpcs registers the appropriate RPCs for a given system type.
func (p *questforgeImpl) registerSystemRpcs(initializer runtime.Initializer, systemType SystemType) error {
	switch systemType {
	case SystemTypeAchievements:
		if err := initializer.RegisterRpc(RpcIdAchievementsList, rpcAchievementsList(p)); err != nil {
			return err
		}

	case SystemTypeStats:
		if err := initializer.RegisterRpc(RpcIdStatsProgress, rpcStatsProgress(p)); err != nil {
			return err
		}
		if err := initializer.RegisterRpc(RpcIdStatsCombatResult, rpcStatsCombatResult(p)); err != nil {
			return err
		}
		if err := initializer.RegisterRpc(RpcIdStatsPlaySession, rpcStatsPlaySession(p)); err != nil {
			return err
		}

	case SystemTypeNotifications:
		if err := initializer.RegisterRpc(RpcIdNotificationsDrain, rpcNotificationsDrain(p)); err != nil {
			return err
		}

	default:
		// Unknown system type, no RPCs to register
	}

	return nil
}

func (p *questforgeImpl) GetAchievementsSystem() AchievementsSystem {
	if sys, ok := p.systems[SystemTypeAchievements].(AchievementsSystem); ok {
		return sys
	}
	return nil
}

func (p *questforgeImpl) GetStatsSystem() StatsSystem {
	if sys, ok := p.systems[SystemTypeStats].(StatsSystem); ok {
		return sys
	}
	return nil
}

func (p *questforgeImpl) GetNotificationsSystem() NotificationsSystem {
	if sys, ok := p.systems[SystemTypeNotifications].(NotificationsSystem); ok {
		return sys
	}
	return nil
}

// AddPublisher adds a publisher to the chain.
func (p *questforgeImpl) AddPublisher(publisher Publisher) {
	p.publishers = append(p.publishers, publisher)
}

// SetPlatformBridge sets the external platform achievement bridge.
func (p *questforgeImpl) SetPlatformBridge(bridge PlatformAchievementBridge) {
	p.platformBridge = bridge
}

// PlatformBridge returns the external platform achievement bridge, if set.
func (p *questforgeImpl) PlatformBridge() PlatformAchievementBridge {
	return p.platformBridge
}

// SendPublisherEvents broadcasts events to all registered publishers.
func (p *questforgeImpl) SendPublisherEvents(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, events []*PublisherEvent) {
	if len(p.publishers) == 0 || len(events) == 0 {
		return
	}

	for _, publisher := range p.publishers {
		publisher.Send(ctx, logger, nk, userID, events)
	}
}
