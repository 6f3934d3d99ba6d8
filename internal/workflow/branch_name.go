package workflow

import (
	"fmt"
	"strings"

	"backport.dev/backport/internal/version"
)

// BranchName computes the working branch for a version. One branch per
// minor line, reused across runs: backport/<package>-<major>.<minor>.
func BranchName(pkg string, v version.Version) string {
	// Scoped package names may contain characters git refs reject.
	safe := strings.NewReplacer("/", "-", "@", "").Replace(pkg)
	return fmt.Sprintf("backport/%s-%d.%d", safe, v.Major, v.Minor)
}
