package version

// Set at build time through -ldflags "-X".
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Summary returns a short build description for diagnostics.
func Summary() string {
	return Version + " (" + CommitHash + ", " + BuildDate + ")"
}
