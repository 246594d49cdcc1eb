package service

import (
	"regexp"
	"strings"
)

// SegmentKind distinguishes plain text from inline media in an issue body
type SegmentKind string

const (
	SegmentText  SegmentKind = "text"
	SegmentMedia SegmentKind = "media"
)

// Segment is one renderable piece of an issue body: either a run of plain
// text or an inline media reference. Alt is set only for media.
type Segment struct {
	Kind    SegmentKind `json:"kind"`
	Content string      `json:"content"`
	Alt     string      `json:"alt,omitempty"`
}

var (
	mediaPattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)\)`)

	headingPattern     = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	boldPattern        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnderPattern   = regexp.MustCompile(`__([^_]+)__`)
	italicPattern      = regexp.MustCompile(`\*([^*]+)\*`)
	italicUnderPattern = regexp.MustCompile(`_([^_]+)_`)
	inlineCodePattern  = regexp.MustCompile("`([^`]+)`")
	linkPattern        = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
)

// SplitBodySegments splits a markdown issue body into an ordered sequence
// of text and media segments, preserving interleaving. A body with no
// media references yields a single text segment; an empty body yields an
// empty sequence so the caller can render a placeholder. Text segments
// have common emphasis, heading and link syntax reduced to bare text.
// This is a fixed set of pattern passes, not a markdown parser; nested or
// malformed markdown is passed through untouched.
func SplitBodySegments(body string) []Segment {
	if strings.TrimSpace(body) == "" {
		return nil
	}

	var segments []Segment
	last := 0
	for _, m := range mediaPattern.FindAllStringSubmatchIndex(body, -1) {
		if text := stripMarkdown(body[last:m[0]]); text != "" {
			segments = append(segments, Segment{Kind: SegmentText, Content: text})
		}
		segments = append(segments, Segment{
			Kind:    SegmentMedia,
			Content: body[m[4]:m[5]],
			Alt:     body[m[2]:m[3]],
		})
		last = m[1]
	}

	if text := stripMarkdown(body[last:]); text != "" {
		segments = append(segments, Segment{Kind: SegmentText, Content: text})
	}

	return segments
}

// stripMarkdown reduces a fixed set of markdown constructs to bare text
func stripMarkdown(text string) string {
	text = headingPattern.ReplaceAllString(text, "")
	text = boldPattern.ReplaceAllString(text, "$1")
	text = boldUnderPattern.ReplaceAllString(text, "$1")
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = italicUnderPattern.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
