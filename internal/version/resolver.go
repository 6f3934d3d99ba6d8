package version

import (
	"sort"
	"strings"
)

// TagPrefix returns the tag prefix for a package, e.g. "lodash@".
func TagPrefix(pkg string) string {
	return pkg + "@"
}

// TagGlob returns the glob used to enumerate a package's release tags.
func TagGlob(pkg string) string {
	return pkg + "@*"
}

// TagName renders the release tag for a package version, e.g. "lodash@4.17.21".
func TagName(pkg string, v Version) string {
	return TagPrefix(pkg) + v.String()
}

// Resolve turns raw repository tags into the ordered list of versions to
// process: the latest patch release of every minor line, ascending, at or
// above the optional inclusive lower bound.
//
// Tags that do not carry the package prefix or whose suffix is not a strict
// <int>.<int>.<int> triple are silently dropped.
func Resolve(tags []string, pkg string, min *Version) []Version {
	prefix := TagPrefix(pkg)

	latest := make(map[MinorLine]Version)
	for _, tag := range tags {
		suffix, ok := strings.CutPrefix(tag, prefix)
		if !ok {
			continue
		}
		v, err := Parse(suffix)
		if err != nil {
			continue
		}
		if current, ok := latest[v.Line()]; !ok || current.Patch < v.Patch {
			latest[v.Line()] = v
		}
	}

	versions := make([]Version, 0, len(latest))
	for _, v := range latest {
		if min != nil && v.Less(*min) {
			continue
		}
		versions = append(versions, v)
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Less(versions[j])
	})

	return versions
}
