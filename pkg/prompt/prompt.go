// Package prompt renders chunker output into LLM prompts with a fixed
// JSON schema instruction. Builders are pure: deterministic given
// input, no wall-clock, no randomness.
package prompt

import (
	"fmt"
	"strings"
)

const chunkTemplate = `You are a meeting summarization assistant. Summarize the following meeting transcript excerpt.

Respond with JSON only, no prose before or after, using exactly these keys:
{
  "summary": "<concise narrative of the excerpt>",
  "decisions": [{"text": "<decision>", "confidence": <0.0-1.0>}],
  "action_items": [{"text": "<task>", "owner": "<name or empty>", "due_date_iso": "<YYYY-MM-DD or empty>", "confidence": <0.0-1.0>}],
  "topics": [{"name": "<topic>", "confidence": <0.0-1.0>}]
}

Use empty arrays when a category has no entries. Do not invent owners or due dates that are not stated in the transcript.

Transcript:
%s`

const annotationTemplate = `You are a meeting summarization assistant. For the action item below, identify the owner and due date if they are stated or clearly implied.

Respond with JSON only, using exactly these keys:
{"owner": "<name or empty string>", "due_date_iso": "<YYYY-MM-DD or empty string>"}

Action item: %s`

// BuildChunkPrompt renders a transcript chunk into a summarization
// prompt instructing JSON-only output.
func BuildChunkPrompt(chunkText string) string {
	return fmt.Sprintf(chunkTemplate, strings.TrimRight(chunkText, "\n"))
}

// BuildAnnotationPrompt asks the model for owner and due date of a
// single action item.
func BuildAnnotationPrompt(actionText string) string {
	return fmt.Sprintf(annotationTemplate, strings.TrimSpace(actionText))
}
