//go:build !linux && !darwin && !windows

package clip

// New returns a headless backend; this platform has no supported clipboard.
func New() Backend {
	return &headlessBackend{reason: ErrUnavailable}
}
