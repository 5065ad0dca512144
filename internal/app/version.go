package app

import "fmt"

// Version, Commit and BuildTime are stamped at build time, e.g.
// go build -ldflags "-X github.com/promisinganuj/kids-vocabulary-app/internal/app.Version=1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for startup logs and the
// health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
