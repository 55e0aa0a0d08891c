package content_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sprout/pkg/content"
)

func TestSplitFrontmatter(t *testing.T) {
	t.Parallel()

	t.Run("parses known and extra fields", func(t *testing.T) {
		t.Parallel()

		meta, body, err := content.SplitFrontmatter([]byte("---\ntitle: Routing\ndescription: Files to URLs\norder: 2\nauthor: sam\n---\n# Routing\n"))
		require.NoError(t, err)
		require.Equal(t, "Routing", meta.Title)
		require.Equal(t, "Files to URLs", meta.Description)
		require.Equal(t, 2, meta.Order)
		require.False(t, meta.Draft)
		require.Equal(t, "sam", meta.Extra["author"])
		require.Equal(t, "# Routing\n", string(body))
	})

	t.Run("without frontmatter returns body unchanged", func(t *testing.T) {
		t.Parallel()

		src := []byte("# Plain\n\ntext")
		meta, body, err := content.SplitFrontmatter(src)
		require.NoError(t, err)
		require.Empty(t, meta.Title)
		require.Equal(t, src, body)
	})

	t.Run("empty frontmatter", func(t *testing.T) {
		t.Parallel()

		meta, body, err := content.SplitFrontmatter([]byte("---\n---\nBody"))
		require.NoError(t, err)
		require.Empty(t, meta.Title)
		require.Equal(t, "Body", string(body))
	})

	t.Run("handles CRLF line endings", func(t *testing.T) {
		t.Parallel()

		meta, body, err := content.SplitFrontmatter([]byte("---\r\ntitle: Win\r\n---\r\nBody"))
		require.NoError(t, err)
		require.Equal(t, "Win", meta.Title)
		require.Equal(t, "Body", string(body))
	})

	t.Run("dashes inside body are not a delimiter", func(t *testing.T) {
		t.Parallel()

		meta, body, err := content.SplitFrontmatter([]byte("---\ntitle: a---b\n---\ntext\n\n---\n"))
		require.NoError(t, err)
		require.Equal(t, "a---b", meta.Title)
		require.Equal(t, "text\n\n---\n", string(body))
	})

	t.Run("missing closing delimiter", func(t *testing.T) {
		t.Parallel()

		_, _, err := content.SplitFrontmatter([]byte("---\ntitle: x\n# no end"))
		require.ErrorIs(t, err, content.ErrInvalidFrontmatter)
	})

	t.Run("nothing after opening delimiter", func(t *testing.T) {
		t.Parallel()

		_, _, err := content.SplitFrontmatter([]byte("---\n"))
		require.ErrorIs(t, err, content.ErrInvalidFrontmatter)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, _, err := content.SplitFrontmatter([]byte("---\ntitle: [unclosed\n---\nbody"))
		require.ErrorIs(t, err, content.ErrInvalidFrontmatter)
	})
}
