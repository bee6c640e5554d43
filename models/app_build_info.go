package models

// AppBuildInfo describes the build the running binary was produced from.
// Values are injected via -ldflags at build time and default to "N/A".
type AppBuildInfo struct {
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}
