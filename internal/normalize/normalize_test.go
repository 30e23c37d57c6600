package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_EmptyInput(t *testing.T) {
	doc := Normalize("")
	assert.Empty(t, doc.Lines)
	assert.Empty(t, doc.Tokens)
	assert.NotNil(t, doc.Lines)
	assert.NotNil(t, doc.Tokens)
}

func TestNormalize_WhitespaceOnly(t *testing.T) {
	doc := Normalize("   \n\t\n  \n")
	assert.Empty(t, doc.Lines)
	assert.Empty(t, doc.Tokens)
}

func TestNormalize_TrimsAndDropsEmptyLines(t *testing.T) {
	doc := Normalize("  JANE SMITH  \n\n\njane.smith@example.com\n")
	assert.Equal(t, []string{"JANE SMITH", "jane.smith@example.com"}, doc.Lines)
}

func TestNormalize_LinesKeepOriginalCase(t *testing.T) {
	doc := Normalize("Senior Software Engineer")
	assert.Equal(t, "Senior Software Engineer", doc.Lines[0])
	assert.Contains(t, doc.Tokens, "senior")
	assert.Contains(t, doc.Tokens, "engineer")
}

func TestNormalize_TokensPreserveTechPunctuation(t *testing.T) {
	doc := Normalize("Skills: C++, C#, Node.js, Go")
	assert.Contains(t, doc.Tokens, "c++")
	assert.Contains(t, doc.Tokens, "c#")
	assert.Contains(t, doc.Tokens, "node.js")
	assert.Contains(t, doc.Tokens, "go")
}

func TestNormalize_StripsBulletMarkers(t *testing.T) {
	doc := Normalize("- Built distributed caching layer")
	assert.Equal(t, []string{"built", "distributed", "caching", "layer"}, doc.Tokens)
}

func TestNormalizedDoc_LowerLine(t *testing.T) {
	doc := Normalize("EXPERIENCE")
	assert.Equal(t, "experience", doc.LowerLine(0))
}
