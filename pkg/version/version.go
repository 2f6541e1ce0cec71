// Package version holds the agetick version injected at build time.
package version

// Version is set at build time via:
//
//	go build -ldflags "-X github.com/agetick/agetick/pkg/version.Version=v1.2.3"
var Version = "0.1.2"
