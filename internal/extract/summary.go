package extract

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/normalize"
)

// Fallback window for resumes without an explicit summary header: the block
// of early lines after the contact header, 0-based [2, 15).
const (
	fallbackWindowStart = 2
	fallbackWindowEnd   = 15
	fallbackMaxLines    = 3
	fallbackMinWords    = 6
)

// SummaryExtractor proposes the professional summary block.
type SummaryExtractor struct{}

// Name identifies the extractor family.
func (SummaryExtractor) Name() string { return "summary" }

// Extract prefers the text under an explicit "summary"/"profile" header;
// absent one, it falls back to sentence-like early lines at low confidence.
func (SummaryExtractor) Extract(doc normalize.NormalizedDoc) []Candidate {
	if start, end, ok := findSection(doc, "summary"); ok && start < end {
		text := strings.Join(doc.Lines[start:end], " ")
		return []Candidate{{
			Path:       PathSummary,
			Value:      text,
			Confidence: ConfidenceSummaryHeader,
			Span:       Span{StartLine: start, EndLine: end - 1},
		}}
	}

	return extractFallbackSummary(doc)
}

func extractFallbackSummary(doc normalize.NormalizedDoc) []Candidate {
	var lines []string
	startLine := -1
	endLine := -1

	for i := fallbackWindowStart; i < fallbackWindowEnd && i < len(doc.Lines); i++ {
		line := doc.Lines[i]
		if !sentenceLike(line) {
			if len(lines) > 0 {
				break
			}
			continue
		}
		if len(lines) == 0 {
			startLine = i
		}
		lines = append(lines, line)
		endLine = i
		if len(lines) == fallbackMaxLines {
			break
		}
	}

	if len(lines) == 0 {
		return nil
	}
	return []Candidate{{
		Path:       PathSummary,
		Value:      strings.Join(lines, " "),
		Confidence: ConfidenceSummaryFallback,
		Span:       Span{StartLine: startLine, EndLine: endLine},
	}}
}

// sentenceLike filters out contact lines, headers and bullets, keeping
// prose that could plausibly open a summary.
func sentenceLike(line string) bool {
	if strings.Contains(line, "@") {
		return false
	}
	if _, isHeader := headerKey(line); isHeader {
		return false
	}
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") {
		return false
	}
	return len(strings.Fields(line)) >= fallbackMinWords
}
