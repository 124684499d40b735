package version

const (
	// SemVer is used as the fallback version of verusrpc
	// when not using git describe. It uses semantic versioning format.
	SemVer = "0.1.0-dev"
)

// GitCommitHash uses git rev-parse HEAD to find commit hash which is helpful
// for the engineering team when working with the verus binary. Set with
// -ldflags "-X github.com/verus-go/verusrpc/version.GitCommitHash=...".
var GitCommitHash = ""

// Version returns SemVer with the commit hash appended when known.
func Version() string {
	if GitCommitHash != "" {
		return SemVer + "+" + GitCommitHash
	}
	return SemVer
}
