package questlogix

import (
	"context"

	"github.com/heroiclabs/nakama-common/runtime"
)

// PlatformAchievementBridge mirrors achievement unlocks to an external
// platform service, such as a console or storefront achievement API.
//
// Unlock is fire-and-forget: implementations must handle any errors or
// retries internally, callers will not repeat calls in case of errors.
// Implementations must safely handle concurrent calls.
type PlatformAchievementBridge interface {
	// Unlock is called when a player unlocks the given achievement for the first time.
	Unlock(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, achievementID string)
}
