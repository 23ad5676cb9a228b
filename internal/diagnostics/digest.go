package diagnostics

import "github.com/rohmanhakim/queryexcerpt/pkg/hashutil"

// ContentDigest stamps the diagnostics trail with a content fingerprint of
// the raw input HTML, so two audit trails can be compared to confirm they
// ran against identical input without embedding the HTML itself in the
// trail.
func ContentDigest(rawHTML string) string {
	return hashutil.HashBytes([]byte(rawHTML))
}
