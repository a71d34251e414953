// Package misc keeps build time information about the program.
package misc

// Set by the linker: -X docgen/misc.version=... -X docgen/misc.gitHash=...
var (
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return "docgen"
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
