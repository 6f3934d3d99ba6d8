// Package version parses release tags of the form <package>@<major>.<minor>.<patch>
// and resolves which versions a backport run should target.
package version

import (
	"fmt"
	"regexp"
	"strconv"
)

// versionPattern matches exactly three dot-separated non-negative integers.
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// Version is an ordered (major, minor, patch) triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a version string strictly matching <int>.<int>.<int>.
func Parse(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("invalid version %q: expected <major>.<minor>.<patch>", s)
	}

	// The pattern only admits digit runs, so Atoi cannot fail here.
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// String renders the version as <major>.<minor>.<patch>.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0, or 1 comparing component-wise, most significant first.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, other.Patch)
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// MinorLine identifies the (major, minor) release line a version belongs to.
type MinorLine struct {
	Major int
	Minor int
}

// Line returns the minor line this version belongs to.
func (v Version) Line() MinorLine {
	return MinorLine{Major: v.Major, Minor: v.Minor}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
