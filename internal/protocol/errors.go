package protocol

// Warning codes attached to soft rejections. Simulation-level mistakes never
// disconnect an agent; the worst outcome is a warning plus a no-op.
const (
	ErrBadRequest    = "E_BAD_REQUEST"
	ErrInvalidTarget = "E_INVALID_TARGET"
	ErrNoResource    = "E_NO_RESOURCE"
	ErrLifecycle     = "E_LIFECYCLE"
	ErrRateLimit     = "E_RATE_LIMIT"
	ErrInternal      = "E_INTERNAL"
)

var knownCodes = map[string]struct{}{
	ErrBadRequest:    {},
	ErrInvalidTarget: {},
	ErrNoResource:    {},
	ErrLifecycle:     {},
	ErrRateLimit:     {},
	ErrInternal:      {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}
