package git

import (
	"context"
	"fmt"
)

// ListTags enumerates tags matching a glob such as "lodash@*", in the order
// git reports them.
func (r *CommandRunner) ListTags(ctx context.Context, glob string) ([]string, error) {
	tags, err := r.RunLines(ctx, "tag", "-l", glob)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags matching %s: %w", glob, err)
	}
	return tags, nil
}
