package common

import "github.com/xyproto/env/v2"

// Environment variables consulted by the driver.
const (
	EnvSDKRoot = "LSC_SDK_ROOT"
	EnvVerbose = "LSC_VERBOSE"
)

// EnvOverlay holds the driver settings taken from the environment.
type EnvOverlay struct {
	SDKRoot string
	Verbose bool
}

// LoadEnvOverlay reads the driver's environment variables.  Unset variables
// leave the corresponding field at its zero value.
func LoadEnvOverlay() EnvOverlay {
	return EnvOverlay{
		SDKRoot: env.Str(EnvSDKRoot),
		Verbose: env.Bool(EnvVerbose),
	}
}
