package extract

import (
	"testing"

	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCandidate(t *testing.T, candidates []Candidate, path string) Candidate {
	t.Helper()
	for _, c := range candidates {
		if c.Path == path {
			return c
		}
	}
	t.Fatalf("no candidate for path %q", path)
	return Candidate{}
}

func hasCandidate(candidates []Candidate, path string) bool {
	for _, c := range candidates {
		if c.Path == path {
			return true
		}
	}
	return false
}

func TestIdentityExtractor_Email(t *testing.T) {
	doc := normalize.Normalize("JANE SMITH\njane.smith@example.com\n")
	candidates := IdentityExtractor{}.Extract(doc)

	email := findCandidate(t, candidates, PathEmail)
	assert.Equal(t, "jane.smith@example.com", email.Value)
	assert.GreaterOrEqual(t, email.Confidence, 0.9)
	assert.Equal(t, 1, email.Span.StartLine)
}

func TestIdentityExtractor_PhoneFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"parenthesized area code", "(415) 555-0100"},
		{"dashed", "415-555-0100"},
		{"dotted", "415.555.0100"},
		{"with country code", "+1 415 555 0100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := normalize.Normalize("Jane Smith\n" + tt.input)
			candidates := IdentityExtractor{}.Extract(doc)
			phone := findCandidate(t, candidates, PathPhone)
			assert.NotEmpty(t, phone.Value)
			assert.InDelta(t, ConfidencePhone, phone.Confidence, 0.001)
		})
	}
}

func TestIdentityExtractor_Location(t *testing.T) {
	doc := normalize.Normalize("Jane Smith\nSan Francisco, CA\n")
	candidates := IdentityExtractor{}.Extract(doc)

	location := findCandidate(t, candidates, PathLocation)
	assert.Equal(t, "San Francisco, CA", location.Value)
	assert.InDelta(t, ConfidenceLocation, location.Confidence, 0.001)
}

func TestIdentityExtractor_LocationNotInBody(t *testing.T) {
	// "City, ST" shapes deep in the document are not contact info.
	lines := "Jane Smith\n"
	for i := 0; i < 10; i++ {
		lines += "filler line of resume text here\n"
	}
	lines += "Austin, TX\n"

	candidates := IdentityExtractor{}.Extract(normalize.Normalize(lines))
	assert.False(t, hasCandidate(candidates, PathLocation))
}

func TestIdentityExtractor_Links(t *testing.T) {
	doc := normalize.Normalize(
		"Jane Smith\nhttps://linkedin.com/in/janesmith\nhttps://github.com/janesmith\nhttps://janesmith.dev\n")
	candidates := IdentityExtractor{}.Extract(doc)

	assert.Equal(t, "https://linkedin.com/in/janesmith", findCandidate(t, candidates, PathLinkedInURL).Value)
	assert.Equal(t, "https://github.com/janesmith", findCandidate(t, candidates, PathGitHubURL).Value)
	assert.Equal(t, "https://janesmith.dev", findCandidate(t, candidates, PathPortfolioURL).Value)
}

func TestIdentityExtractor_NameFirstLine(t *testing.T) {
	doc := normalize.Normalize("JANE SMITH\njane.smith@example.com")
	name := findCandidate(t, IdentityExtractor{}.Extract(doc), PathName)

	assert.Equal(t, "JANE SMITH", name.Value)
	assert.InDelta(t, ConfidenceNameTop, name.Confidence, 0.001)
}

func TestIdentityExtractor_NameConfidenceDecays(t *testing.T) {
	top := findCandidate(t,
		IdentityExtractor{}.Extract(normalize.Normalize("Jane Smith\nrest of resume")), PathName)
	lower := findCandidate(t,
		IdentityExtractor{}.Extract(normalize.Normalize("text that isn't a name because it is long\nalso not a name line here at all\nJane Smith")), PathName)

	require.Equal(t, "Jane Smith", lower.Value)
	assert.Less(t, lower.Confidence, top.Confidence)
}

func TestIdentityExtractor_NameSkipsContactLines(t *testing.T) {
	doc := normalize.Normalize("jane.smith@example.com\n(415) 555-0100\nJane Smith")
	name := findCandidate(t, IdentityExtractor{}.Extract(doc), PathName)
	assert.Equal(t, "Jane Smith", name.Value)
}

func TestIdentityExtractor_NoIdentity(t *testing.T) {
	doc := normalize.Normalize("a resume that is only prose without contact details in it")
	candidates := IdentityExtractor{}.Extract(doc)

	assert.False(t, hasCandidate(candidates, PathEmail))
	assert.False(t, hasCandidate(candidates, PathPhone))
}
