package dentdown

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// Leading tabs expand to this many spaces so scope indents compare by length.
const tabWidth = 4

// markupPreprocessor defines the contract for source preprocessing.
type markupPreprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// dentPreprocessor applies transformations before line dispatch.
type dentPreprocessor struct{}

// Preprocess applies all transformations to prepare markup for parsing.
func (p *dentPreprocessor) Preprocess(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = expandLeadingTabs(content)
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// expandLeadingTabs rewrites tabs inside leading whitespace as spaces.
// Tabs elsewhere in the line are left alone.
func expandLeadingTabs(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		cut := strings.IndexFunc(line, func(r rune) bool { return r != ' ' && r != '\t' })
		if cut < 0 {
			cut = len(line)
		}
		if !strings.Contains(line[:cut], "\t") {
			continue
		}
		indent := strings.ReplaceAll(line[:cut], "\t", strings.Repeat(" ", tabWidth))
		lines[i] = indent + line[cut:]
	}
	return strings.Join(lines, "\n")
}
