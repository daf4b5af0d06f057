package questlogix

import (
	"github.com/heroiclabs/nakama-common/runtime"
)

var (
	ErrInternal           = runtime.NewError("internal error occurred", 13) // INTERNAL
	ErrBadInput           = runtime.NewError("bad input", 3)                // INVALID_ARGUMENT
	ErrNoSessionUser      = runtime.NewError("no user ID in session", 3)    // INVALID_ARGUMENT
	ErrPayloadDecode      = runtime.NewError("cannot decode json", 13)      // INTERNAL
	ErrPayloadEncode      = runtime.NewError("cannot encode json", 13)      // INTERNAL
	ErrSystemNotAvailable = runtime.NewError("system not available", 13)    // INTERNAL
	ErrSystemNotFound     = runtime.NewError("system not found", 13)        // INTERNAL
)
