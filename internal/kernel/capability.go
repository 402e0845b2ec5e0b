package kernel

import (
	"os"
	"strings"
)

// Impl identifies a kernel implementation.
type Impl uint8

const (
	// Generic is the plain loop implementation. Always available.
	Generic Impl = iota
	// Unrolled processes four elements per iteration.
	Unrolled
)

// String returns the string representation of an Impl.
func (i Impl) String() string {
	switch i {
	case Generic:
		return "generic"
	case Unrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// ParseImpl parses a string into an Impl value.
func ParseImpl(s string) (Impl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "unrolled":
		return Unrolled, true
	default:
		return Generic, false
	}
}

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "PROXGO_KERNEL"

// Set once by init; read-only afterwards.
var (
	activeImpl  Impl
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasAVX2  bool
	hasASIMD bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if impl, ok := ParseImpl(override); ok {
			hasOverride = true
			if isImplAvailable(impl) {
				activeImpl = impl
				return
			}
		}
	}

	activeImpl = selectBestImpl()
}

func isImplAvailable(impl Impl) bool {
	switch impl {
	case Generic, Unrolled:
		// Unrolled is portable Go; it is only preferred, never required.
		return true
	default:
		return false
	}
}

func selectBestImpl() Impl {
	if hasAVX2 || hasASIMD {
		return Unrolled
	}
	return Generic
}

// ActiveImpl returns the implementation selected at init.
func ActiveImpl() Impl {
	return activeImpl
}

// IsOverridden reports whether PROXGO_KERNEL was set to a known value.
func IsOverridden() bool {
	return hasOverride
}

// HasAVX2 reports whether x86-64 AVX2 was detected.
func HasAVX2() bool {
	return hasAVX2
}

// HasASIMD reports whether ARM64 ASIMD (NEON) was detected.
func HasASIMD() bool {
	return hasASIMD
}
