package blog

import (
	"regexp"
	"strings"
)

var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

// CleanExcerpt strips a research report down to the part worth feeding
// to the blog model: thinking tags and the report banner are removed,
// and everything from the competitor summary onward is cut.
func CleanExcerpt(report string) string {
	if strings.Contains(report, "<think>") && strings.Contains(report, "</think>") {
		report = thinkBlock.ReplaceAllString(report, "")
	}
	report = strings.ReplaceAll(report, "=== Research Report ===", "")
	if before, _, found := strings.Cut(report, "--- Competitor Content Analysis Summary ---"); found {
		report = before
	}
	return strings.TrimSpace(report)
}
