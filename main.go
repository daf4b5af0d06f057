package main

import (
	"context"
	"database/sql"
	"time"

	"questforge/questlogix"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noinspection GoUnusedExportedFunction
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	initStart := time.Now()

	logger.Info("Loading Questforge Nakama plugin...")

	// Empty config file names select the built-in defaults. Drop JSON files
	// into the Nakama data dir and name them here to override.
	qf, err := questlogix.Init(ctx, logger, nk, initializer,
		questlogix.WithAchievementsSystem("", true),
		questlogix.WithStatsSystem("", true),
		questlogix.WithNotificationsSystem("", true),
	)
	if err != nil {
		logger.Error("Failed to initialize Questforge systems: %v", err)
		return err
	}

	qf.AddPublisher(questlogix.NewEventTelemetryPublisher())

	logger.Info("Questforge Nakama plugin loaded in '%d' msec.", time.Now().Sub(initStart).Milliseconds())
	return nil
}

// main is never called: Nakama loads this package as a plugin and invokes
// InitModule. It exists so the package links under the default buildmode.
func main() {}
