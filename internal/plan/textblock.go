package plan

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// Marker-delimited block handling. A text target contains at most one
// themectl-owned region bounded by a start and an end marker. Applying a
// theme rewrites the whole region, so repeated applies converge to
// byte-identical output.
//
// Known edge case: the match between markers is non-greedy across line
// boundaries, so a block whose content contains the end-marker text ends
// the region early on the next apply.

// defaultMarkerPrefix is shared by all default start markers, so applying
// theme B replaces the region theme A wrote even though their full marker
// lines differ.
const defaultMarkerPrefix = ">>> themectl"

const defaultEndMarkerSuffix = "<<< themectl <<<"

// defaultMarkers returns the start marker, end marker, and search prefix
// for a target whose config omits them. commentPrefix is the target file's
// line-comment leader ("#" for shell files, "\"" for vimrc).
func defaultMarkers(commentPrefix, themeName string) (marker, endMarker, searchMarker string) {
	marker = fmt.Sprintf("%s %s : %s >>>", commentPrefix, defaultMarkerPrefix, themeName)
	endMarker = fmt.Sprintf("%s %s", commentPrefix, defaultEndMarkerSuffix)
	searchMarker = fmt.Sprintf("%s %s", commentPrefix, defaultMarkerPrefix)
	return marker, endMarker, searchMarker
}

// renderSpan renders the full marker-delimited region.
func renderSpan(marker, block, endMarker string) string {
	return marker + "\n" + block + "\n" + endMarker
}

// upsertBlock returns the file content with the marker region replaced,
// or the rendered span appended when no region exists yet.
//
// searchMarker locates the start of an existing region; it is the full
// start marker for configured markers, or the shared prefix for default
// markers so regions written for other themes are still replaced.
func upsertBlock(existing []byte, searchMarker, marker, endMarker, block string) []byte {
	span := renderSpan(marker, block, endMarker)

	if len(strings.TrimSpace(string(existing))) == 0 {
		return []byte(span)
	}

	re := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(searchMarker) + `.*?` + regexp.QuoteMeta(endMarker))
	if loc := re.FindIndex(existing); loc != nil {
		out := make([]byte, 0, loc[0]+len(span)+len(existing)-loc[1])
		out = append(out, existing[:loc[0]]...)
		out = append(out, span...)
		out = append(out, existing[loc[1]:]...)
		return out
	}

	// No region yet: append a blank line followed by the rendered span.
	out := existing
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	out = append(out, '\n')
	out = append(out, span...)
	return out
}

// textBlockStep writes a marker-delimited block into a free-text file.
type textBlockStep struct {
	name         string
	target       Target
	path         string
	marker       string
	endMarker    string
	searchMarker string
	block        string
}

func (s *textBlockStep) Name() string   { return s.name }
func (s *textBlockStep) Target() Target { return s.target }
func (s *textBlockStep) Path() string   { return s.path }

// Apply rewrites the marker region, creating the file if it is absent.
func (s *textBlockStep) Apply(env *Env) error {
	var existing []byte
	exists, err := env.FS.Exists(s.path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", s.path, err)
	}
	if exists {
		existing, err = env.FS.ReadFile(s.path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", s.path, err)
		}
	}

	updated := upsertBlock(existing, s.searchMarker, s.marker, s.endMarker, s.block)
	if err := env.FS.AtomicWrite(s.path, updated, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	return nil
}
