// internal/service/generation/prompts.go

package generation

import (
	"fmt"
	"strings"
)

const scriptSystemPrompt = `You are a scriptwriter for short-form vertical video. You write punchy,
spoken-word scripts that hook viewers in the first two seconds and hold
retention to the end. Plain conversational language, no emojis, no camera
directions.`

const visualsSystemPrompt = `You are a visual director for short-form vertical video. You break a
finished script into concrete, filmable scene prompts.`

const thumbnailSystemPrompt = `You are a thumbnail designer for short-form video. You describe bold,
high-contrast thumbnail concepts that earn clicks without clickbait.`

const seoSystemPrompt = `You are a video SEO specialist. You respond with strict JSON only, no
commentary and no markdown fences.`

const brollSystemPrompt = `You are a footage researcher. You suggest b-roll clips that are easy to
source from stock libraries.`

func buildScriptPrompt(topic string, durationSec, targetWords int, audience, angle string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %d-second short-form video script about: %s\n", durationSec, topic)
	fmt.Fprintf(&b, "Target audience: %s\n", audience)
	fmt.Fprintf(&b, "Aim for roughly %d words of spoken narration.\n", targetWords)
	if angle != "" {
		fmt.Fprintf(&b, "Angle: %s\n", angle)
	}
	b.WriteString("\nRespond in exactly this format:\n")
	b.WriteString("HOOK: <one attention-grabbing opening line>\n")
	b.WriteString("BODY:\n")
	b.WriteString("<2-4 short paragraphs separated by blank lines>\n")
	b.WriteString("CTA: <one closing call to action>\n")
	return b.String()
}

func buildVisualsPrompt(fullScript string, sceneCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Break this script into %d visual scenes for a vertical 9:16 video.\n\n", sceneCount)
	b.WriteString("Script:\n")
	b.WriteString(fullScript)
	b.WriteString("\n\nRespond with one block per scene in exactly this format:\n")
	b.WriteString("SCENE 1:\n")
	b.WriteString("Visual: <what is on screen>\n")
	b.WriteString("Text overlay: <short on-screen text, or none>\n")
	b.WriteString("Duration: <seconds>\n")
	b.WriteString("Notes: <optional production notes>\n")
	return b.String()
}

func buildThumbnailPrompt(topic string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Describe 3 thumbnail concepts for a short-form video about: %s\n", topic)
	b.WriteString("For each concept cover the focal subject, background, text treatment, and color palette.\n")
	return b.String()
}

func buildSEOPrompt(topic, niche, fullScript string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate SEO metadata for a short-form video about %q in the %s niche.\n\n", topic, niche)
	b.WriteString("Script:\n")
	b.WriteString(fullScript)
	b.WriteString("\n\nRespond with strict JSON matching this shape:\n")
	b.WriteString(`{"title": "max 100 chars", "description": "2-3 sentences with a hook", `)
	b.WriteString(`"tags": ["..."], "hashtags": ["..."], "keywords": "comma separated", `)
	b.WriteString(`"chapters": ["0:00 - Intro"]}`)
	b.WriteString("\n")
	return b.String()
}

func buildBRollPrompt(fullScript string) string {
	var b strings.Builder
	b.WriteString("Suggest 8 b-roll clips to cut into this video. One suggestion per line, ")
	b.WriteString("each starting with \"- \", no numbering, no extra commentary.\n\n")
	b.WriteString("Script:\n")
	b.WriteString(fullScript)
	return b.String()
}
