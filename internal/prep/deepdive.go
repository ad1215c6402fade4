package prep

import "strings"

// Thresholds for flagging an answer as deep-dive material. Kept as
// variables so deployments can tune them without touching the classifier.
var (
	DeepDiveMinRunes      = 500
	DeepDiveMaxParagraphs = 2
)

// IsDeepTopic reports whether an answer is long or structured enough to
// warrant a full blog-post treatment: over the rune budget, containing a
// fenced code block, or spanning more paragraphs than the threshold.
func IsDeepTopic(answer string) bool {
	if len([]rune(answer)) > DeepDiveMinRunes {
		return true
	}
	if strings.Contains(answer, "```") {
		return true
	}
	return countParagraphs(answer) > DeepDiveMaxParagraphs
}

func countParagraphs(s string) int {
	n := 0
	for _, block := range strings.Split(s, "\n\n") {
		if strings.TrimSpace(block) != "" {
			n++
		}
	}
	return n
}
