package cmd

import (
	"strings"

	"lsc/common"
	"lsc/toolchain"
)

// detectSDK marks cfg as an SDK build.  An explicit SDK root always wins.
// Otherwise the executable path is checked for an installed SDK location; when
// no marker is present the configuration is left untouched.
func detectSDK(cfg *toolchain.Config, exePath string) {
	if cfg.SDKRoot != "" {
		cfg.SDKBuild = cfg.SDKRoot
		return
	}

	for _, marker := range common.SDKMarkers {
		if strings.Contains(exePath, marker) {
			cfg.SDKBuild = exePath
			return
		}
	}
}
