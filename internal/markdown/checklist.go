// Package markdown parses checklist lines out of markdown text.
package markdown

import (
	"regexp"
	"strings"

	"github.com/rcliao/study-tracker/internal/model"
)

// Item is a parsed checklist entry, not yet materialized as a todo item.
type Item struct {
	Text      string
	Completed bool
	Priority  model.Priority
	Tags      []string
}

var (
	// Optional list marker, a checkbox holding a space or x, then the item
	// text. Lines not matching are skipped.
	checklistRe = regexp.MustCompile(`^[-*+]?\s*\[([ xX])\]\s*(.+)$`)

	highRe   = regexp.MustCompile(`(?i)!!!|\b(high|urgent)\b`)
	mediumRe = regexp.MustCompile(`(?i)!!|\bmedium\b`)

	tagRe = regexp.MustCompile(`#(\w+)`)

	// Priority markers are stripped wherever they occur, word or not,
	// matching the original import behavior.
	markerRe = regexp.MustCompile(`(?i)!!!|!!|high|urgent|medium`)
)

// ParseChecklist scans text line by line and returns the checklist items
// found, in input order. Non-checklist lines are silently ignored.
func ParseChecklist(text string) []Item {
	var items []Item
	for _, line := range strings.Split(text, "\n") {
		m := checklistRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		raw := m[2]
		items = append(items, Item{
			Text:      cleanText(raw),
			Completed: strings.EqualFold(m[1], "x"),
			Priority:  inferPriority(raw),
			Tags:      extractTags(raw),
		})
	}
	return items
}

// inferPriority checks the high signals first: a line carrying both !!!
// and MEDIUM is high.
func inferPriority(text string) model.Priority {
	switch {
	case highRe.MatchString(text):
		return model.PriorityHigh
	case mediumRe.MatchString(text):
		return model.PriorityMedium
	}
	return model.PriorityLow
}

func extractTags(text string) []string {
	var tags []string
	for _, m := range tagRe.FindAllStringSubmatch(text, -1) {
		tags = append(tags, m[1])
	}
	return tags
}

func cleanText(text string) string {
	text = markerRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
