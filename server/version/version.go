// Package version records the build version.
package version

import "fmt"

// Version is the semantic version number.
var Version = "0.3.0"

// DevVersion is the version suffix used outside production.
var DevVersion = "0.3.0"

func GetCurrentVersion(mode string) string {
	if mode == "prod" {
		return Version
	}
	return fmt.Sprintf("%s-%s", DevVersion, mode)
}
