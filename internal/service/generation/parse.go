// internal/service/generation/parse.go

package generation

import (
	"regexp"
	"strconv"
	"strings"

	"clipforge/internal/domain/content"
)

// Model output is free text, parsed with small line-oriented grammars.
// Every field has an explicit fallback: a malformed block degrades to
// defaults instead of failing the step.

// Default scene length when the model omits or mangles the duration line.
const defaultSceneDuration = 10

// parseScript reads the script grammar:
//
//	HOOK: <one line>
//	BODY:
//	<paragraphs separated by blank lines>
//	CTA: <one line>
//
// Fallbacks: a missing HOOK takes the first body paragraph; a missing CTA
// takes the last remaining paragraph when at least two remain.
func parseScript(raw string) *content.Script {
	var hook, cta string
	var bodyLines []string

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case hasPrefixFold(trimmed, "HOOK:"):
			hook = strings.TrimSpace(trimmed[len("HOOK:"):])
		case hasPrefixFold(trimmed, "CTA:"):
			cta = strings.TrimSpace(trimmed[len("CTA:"):])
		case hasPrefixFold(trimmed, "BODY:"):
			// marker line, carries no content
		default:
			bodyLines = append(bodyLines, line)
		}
	}

	segments := splitParagraphs(strings.Join(bodyLines, "\n"))

	if hook == "" && len(segments) > 0 {
		hook = segments[0]
		segments = segments[1:]
	}
	if cta == "" && len(segments) >= 2 {
		cta = segments[len(segments)-1]
		segments = segments[:len(segments)-1]
	}

	return &content.Script{
		Hook:         hook,
		MainContent:  segments,
		CallToAction: cta,
		FullScript:   composeFullScript(hook, segments, cta),
	}
}

func composeFullScript(hook string, segments []string, cta string) string {
	parts := make([]string, 0, len(segments)+2)
	if hook != "" {
		parts = append(parts, hook)
	}
	parts = append(parts, segments...)
	if cta != "" {
		parts = append(parts, cta)
	}
	return strings.Join(parts, "\n\n")
}

var sceneHeaderRe = regexp.MustCompile(`(?im)^\s*SCENE\s+(\d+)\s*:(.*)$`)

// parseScenes reads the scene grammar:
//
//	SCENE <n>:
//	Visual: <what is on screen>
//	Text overlay: <short on-screen text>
//	Duration: <seconds>
//	Notes: <free text>
//
// Fallbacks: no SCENE headers at all turns the whole text into a single
// scene; a missing Visual falls back to the header's trailing text; a
// missing or unparseable Duration becomes defaultSceneDuration; overlay
// and notes default to empty. Continuation lines extend the most recent
// Visual or Notes value.
func parseScenes(raw string) []content.Scene {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	headers := sceneHeaderRe.FindAllStringSubmatchIndex(text, -1)
	if len(headers) == 0 {
		return []content.Scene{{
			Number:      1,
			Description: collapseWhitespace(text),
			Duration:    defaultSceneDuration,
		}}
	}

	scenes := make([]content.Scene, 0, len(headers))
	for i, header := range headers {
		number := 0
		if n, err := strconv.Atoi(text[header[2]:header[3]]); err == nil {
			number = n
		}
		if number == 0 {
			number = i + 1
		}

		trailing := strings.TrimSpace(text[header[4]:header[5]])

		blockEnd := len(text)
		if i+1 < len(headers) {
			blockEnd = headers[i+1][0]
		}
		block := text[header[1]:blockEnd]

		scene := parseSceneBlock(block, trailing)
		scene.Number = number
		scenes = append(scenes, scene)
	}

	return scenes
}

func parseSceneBlock(block, headerTrailing string) content.Scene {
	scene := content.Scene{Duration: defaultSceneDuration}

	// current tracks which multi-line field continuation lines extend
	current := ""

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case hasPrefixFold(trimmed, "Visual:"):
			scene.Description = strings.TrimSpace(trimmed[len("Visual:"):])
			current = "visual"
		case hasPrefixFold(trimmed, "Text overlay:"):
			scene.TextOverlay = strings.TrimSpace(trimmed[len("Text overlay:"):])
			current = ""
		case hasPrefixFold(trimmed, "Duration:"):
			scene.Duration = durationSeconds(trimmed[len("Duration:"):], defaultSceneDuration)
			current = ""
		case hasPrefixFold(trimmed, "Notes:"):
			scene.Notes = strings.TrimSpace(trimmed[len("Notes:"):])
			current = "notes"
		default:
			switch current {
			case "visual":
				scene.Description = joinClause(scene.Description, trimmed)
			case "notes":
				scene.Notes = joinClause(scene.Notes, trimmed)
			}
		}
	}

	if scene.Description == "" {
		scene.Description = headerTrailing
	}
	if strings.EqualFold(scene.TextOverlay, "none") {
		scene.TextOverlay = ""
	}

	return scene
}

var firstIntRe = regexp.MustCompile(`\d+`)

// durationSeconds extracts the first integer from values like "8 seconds"
// or "~10s"; anything unusable keeps the default.
func durationSeconds(value string, fallback int) int {
	match := firstIntRe.FindString(value)
	if match == "" {
		return fallback
	}
	n, err := strconv.Atoi(match)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

var listPrefixRe = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)

// parseList reads bullet or numbered lists, one item per line. Bare prose
// lines count as items too; empty lines and bare headers are skipped.
func parseList(raw string) []string {
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		item := strings.TrimSpace(listPrefixRe.ReplaceAllString(line, ""))
		if item == "" || strings.HasSuffix(item, ":") {
			continue
		}
		items = append(items, item)
	}
	return items
}

var bracketedRe = regexp.MustCompile(`\[[^\]]*\]`)

// VoiceoverText derives TTS-ready narration from a script: structural
// markers and bracketed stage directions are stripped, markdown emphasis
// removed, and whitespace collapsed so the synthesizer reads only spoken
// words.
func VoiceoverText(s *content.Script) string {
	text := s.FullScript
	if text == "" {
		text = composeFullScript(s.Hook, s.MainContent, s.CallToAction)
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, marker := range []string{"HOOK:", "BODY:", "CTA:"} {
			if hasPrefixFold(trimmed, marker) {
				trimmed = strings.TrimSpace(trimmed[len(marker):])
				break
			}
		}
		if sceneHeaderRe.MatchString(trimmed) {
			continue
		}
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	joined := strings.Join(lines, " ")
	joined = bracketedRe.ReplaceAllString(joined, " ")
	joined = strings.NewReplacer("*", "", "#", "").Replace(joined)
	return collapseWhitespace(joined)
}

// cleanJSON strips the markdown code fences models sometimes wrap around
// JSON output.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// joinClause extends a field value with a continuation line.
func joinClause(existing, addition string) string {
	if existing == "" {
		return addition
	}
	return existing + " " + addition
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func splitParagraphs(s string) []string {
	var paragraphs []string
	for _, block := range strings.Split(s, "\n\n") {
		p := collapseWhitespace(block)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
