package issue

import (
	"regexp"
	"strings"
)

// Testcase paths follow the fixed layout
// /lan/fed/etpv5/release/<release>/<platform>/etautotest/<bucket>/...
// A path that does not match carries no metadata; that is not an error.
var (
	testcasePathPattern = regexp.MustCompile(`^/lan/fed/etpv5/release/(\d+)/([^/]+)/etautotest/`)
	bucketNamePattern   = regexp.MustCompile(`^/lan/fed/etpv5/release/\d+/[^/]+/etautotest/([^/]+)`)
)

// ParseTestcasePath extracts the release and platform codes from a testcase
// path. Empty results mean the metadata is unknown.
func ParseTestcasePath(path string) (release, platform string) {
	if path == "" {
		return "", ""
	}

	match := testcasePathPattern.FindStringSubmatch(path)
	if match == nil {
		return "", ""
	}
	return match[1], match[2]
}

// ExtractBucketName returns the first path component after the etautotest
// anchor, uppercased so bucket lookups and tags are case-insensitive.
// Returns the empty string when the path does not match the layout.
func ExtractBucketName(path string) string {
	if path == "" {
		return ""
	}

	match := bucketNamePattern.FindStringSubmatch(path)
	if match == nil {
		return ""
	}
	return strings.ToUpper(match[1])
}
