package version_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"backport.dev/backport/internal/version"
)

func TestParse(t *testing.T) {
	t.Run("parses a strict triple", func(t *testing.T) {
		v, err := version.Parse("1.2.3")
		require.NoError(t, err)
		require.Equal(t, version.Version{Major: 1, Minor: 2, Patch: 3}, v)
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		for _, s := range []string{"", "1.2", "1.2.3.4", "v1.2.3", "1.2.x", "1.-2.3", " 1.2.3"} {
			_, err := version.Parse(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})

	t.Run("round-trips through String", func(t *testing.T) {
		v, err := version.Parse("10.0.7")
		require.NoError(t, err)
		require.Equal(t, "10.0.7", v.String())
	})
}

func TestCompare(t *testing.T) {
	t.Run("orders numerically, not lexically", func(t *testing.T) {
		nine, err := version.Parse("1.9.0")
		require.NoError(t, err)
		ten, err := version.Parse("1.10.0")
		require.NoError(t, err)

		require.True(t, nine.Less(ten))
		require.False(t, ten.Less(nine))
	})

	t.Run("is lexicographic on the triple", func(t *testing.T) {
		require.Equal(t, -1, version.Version{Major: 1, Minor: 2, Patch: 9}.Compare(version.Version{Major: 1, Minor: 3, Patch: 0}))
		require.Equal(t, 1, version.Version{Major: 2, Minor: 0, Patch: 0}.Compare(version.Version{Major: 1, Minor: 99, Patch: 99}))
		require.Equal(t, 0, version.Version{Major: 1, Minor: 2, Patch: 3}.Compare(version.Version{Major: 1, Minor: 2, Patch: 3}))
	})
}

func TestTagName(t *testing.T) {
	v := version.Version{Major: 4, Minor: 17, Patch: 21}
	require.Equal(t, "lodash@4.17.21", version.TagName("lodash", v))
	require.Equal(t, "lodash@*", version.TagGlob("lodash"))
}
