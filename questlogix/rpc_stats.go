package questlogix

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"
)

// rpcStatsProgress handles the RPC to apply a batch of progress updates to
// the caller's player state.
func rpcStatsProgress(p *questforgeImpl) func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		statsSystem := p.GetStatsSystem()
		if statsSystem == nil {
			return "", ErrSystemNotFound
		}

		var request PlayerProgressUpdate
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			logger.Error("Failed to unmarshal progress request: %v", err)
			return "", ErrPayloadDecode
		}

		// Extract user ID from session
		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			logger.Error("No user ID in context")
			return "", ErrNoSessionUser
		}

		state, unlocked, err := statsSystem.Apply(ctx, logger, nk, userID, &request)
		if err != nil {
			logger.Error("Error applying progress update: %v", err)
			return "", err
		}

		response := struct {
			State    *PlayerState             `json:"state"`
			Unlocked []*AchievementDefinition `json:"unlocked,omitempty"`
		}{
			State:    state,
			Unlocked: unlocked,
		}

		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}

		return string(responseData), nil
	}
}

// rpcStatsCombatResult handles the RPC to record the outcome of a single
// combat encounter.
func rpcStatsCombatResult(p *questforgeImpl) func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		statsSystem := p.GetStatsSystem()
		if statsSystem == nil {
			return "", ErrSystemNotFound
		}

		var request struct {
			TookDamage          bool    `json:"took_damage"`
			HpFractionRemaining float64 `json:"hp_fraction_remaining"`
		}
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			logger.Error("Failed to unmarshal combat result request: %v", err)
			return "", ErrPayloadDecode
		}

		// Extract user ID from session
		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			logger.Error("No user ID in context")
			return "", ErrNoSessionUser
		}

		state, unlocked, err := statsSystem.RecordCombatOutcome(ctx, logger, nk, userID, request.TookDamage, request.HpFractionRemaining)
		if err != nil {
			logger.Error("Error recording combat outcome: %v", err)
			return "", err
		}

		response := struct {
			State    *PlayerState             `json:"state"`
			Unlocked []*AchievementDefinition `json:"unlocked,omitempty"`
		}{
			State:    state,
			Unlocked: unlocked,
		}

		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}

		return string(responseData), nil
	}
}

// rpcStatsPlaySession handles the RPC to record a play session for streak
// tracking. No payload is required.
func rpcStatsPlaySession(p *questforgeImpl) func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		statsSystem := p.GetStatsSystem()
		if statsSystem == nil {
			return "", ErrSystemNotFound
		}

		// Extract user ID from session
		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			logger.Error("No user ID in context")
			return "", ErrNoSessionUser
		}

		state, unlocked, err := statsSystem.RecordPlaySession(ctx, logger, nk, userID)
		if err != nil {
			logger.Error("Error recording play session: %v", err)
			return "", err
		}

		response := struct {
			State    *PlayerState             `json:"state"`
			Unlocked []*AchievementDefinition `json:"unlocked,omitempty"`
		}{
			State:    state,
			Unlocked: unlocked,
		}

		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}

		return string(responseData), nil
	}
}
