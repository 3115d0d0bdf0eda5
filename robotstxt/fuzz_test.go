package robotstxt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xmazu/robotsx/robotstxt"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add("User-agent: *\nDisallow: /private/ # note\n")
	f.Add("  # comment\n\nAllow:   /  \n")
	f.Add("garbage\r\n:\r\n#:")
	f.Add("")
	f.Add("\n\n\n")

	f.Fuzz(func(t *testing.T, content string) {
		doc := robotstxt.Parse(content)

		// LF-normalize the way Parse does: CR is dropped only before LF, and
		// a final unterminated line gains a terminator.
		want := strings.ReplaceAll(content, "\r\n", "\n")
		if want != "" && !strings.HasSuffix(want, "\n") {
			want += "\n"
		}
		require.Equal(t, want, robotstxt.Serialize(doc))

		for _, line := range doc {
			if line.HasKeyPair() {
				require.Equal(t, robotstxt.KindDirective, line.Kind())
			}
			require.Equal(t, line.RawText(), line.Text())
		}
	})
}
