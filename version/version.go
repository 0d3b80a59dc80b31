package version

import "fmt"

var GitCommit string
var GitTag string

// Format is the version of the wire format this build reads and writes.
const Format = 1

func String() string {
	tag := GitTag
	if tag == "" {
		tag = "dev"
	}
	if GitCommit == "" {
		return fmt.Sprintf("nopctl %s (format %d)", tag, Format)
	}
	return fmt.Sprintf("nopctl %s+%s (format %d)", tag, GitCommit, Format)
}
