package version

var (
	// VERSION is the version number displayed by `devworkspace-handler version`
	VERSION = "v0.1.0"

	// GITCOMMIT is the hash of the commit displayed by `devworkspace-handler version`
	// this is overwritten at build time: go build -ldflags="-X github.com/che-incubator/devworkspace-handler/pkg/version.GITCOMMIT=$(GITCOMMIT)"
	// HEAD is the default, indicating that it was not set during build
	GITCOMMIT = "HEAD"
)
