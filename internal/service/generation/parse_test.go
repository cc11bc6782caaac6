package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipforge/internal/domain/content"
)

func TestParseScriptFullGrammar(t *testing.T) {
	raw := `HOOK: You are using your phone wrong.
BODY:
Most people never change the default settings.

Here are three switches that double your battery life.

CTA: Follow for more one-minute fixes.`

	script := parseScript(raw)

	assert.Equal(t, "You are using your phone wrong.", script.Hook)
	require.Len(t, script.MainContent, 2)
	assert.Equal(t, "Most people never change the default settings.", script.MainContent[0])
	assert.Equal(t, "Follow for more one-minute fixes.", script.CallToAction)
	assert.Contains(t, script.FullScript, script.Hook)
	assert.Contains(t, script.FullScript, script.CallToAction)
}

func TestParseScriptMissingMarkersFallsBack(t *testing.T) {
	raw := `First paragraph acts as the hook.

Middle paragraph carries the content.

Last paragraph becomes the call to action.`

	script := parseScript(raw)

	assert.Equal(t, "First paragraph acts as the hook.", script.Hook)
	assert.Equal(t, []string{"Middle paragraph carries the content."}, script.MainContent)
	assert.Equal(t, "Last paragraph becomes the call to action.", script.CallToAction)
}

func TestParseScenesGrammar(t *testing.T) {
	raw := `SCENE 1:
Visual: Close-up of a phone screen in a dark room
Text overlay: STOP doing this
Duration: 5 seconds
Notes: shoot handheld

SCENE 2:
Visual: Settings menu scrolling
Text overlay: none
Duration: not sure`

	scenes := parseScenes(raw)

	require.Len(t, scenes, 2)
	assert.Equal(t, 1, scenes[0].Number)
	assert.Equal(t, "Close-up of a phone screen in a dark room", scenes[0].Description)
	assert.Equal(t, "STOP doing this", scenes[0].TextOverlay)
	assert.Equal(t, 5, scenes[0].Duration)
	assert.Equal(t, "shoot handheld", scenes[0].Notes)

	// "none" overlay cleared, unparseable duration keeps the default
	assert.Empty(t, scenes[1].TextOverlay)
	assert.Equal(t, defaultSceneDuration, scenes[1].Duration)
}

func TestParseScenesWithoutHeadersBecomesSingleScene(t *testing.T) {
	scenes := parseScenes("Just a wall of descriptive text with no structure at all.")

	require.Len(t, scenes, 1)
	assert.Equal(t, 1, scenes[0].Number)
	assert.Equal(t, defaultSceneDuration, scenes[0].Duration)
	assert.Contains(t, scenes[0].Description, "wall of descriptive text")
}

func TestParseScenesContinuationLines(t *testing.T) {
	raw := `SCENE 1:
Visual: A crowded market street
with vendors on both sides
Duration: 8s`

	scenes := parseScenes(raw)

	require.Len(t, scenes, 1)
	assert.Equal(t, "A crowded market street with vendors on both sides", scenes[0].Description)
	assert.Equal(t, 8, scenes[0].Duration)
}

func TestParseList(t *testing.T) {
	raw := `B-roll ideas:
- drone shot of the coastline
* waves crashing in slow motion
1. a ferry leaving the harbor
2) seagulls against the sunset
plain line counts too
`

	items := parseList(raw)

	assert.Equal(t, []string{
		"drone shot of the coastline",
		"waves crashing in slow motion",
		"a ferry leaving the harbor",
		"seagulls against the sunset",
		"plain line counts too",
	}, items)
}

func TestDurationSeconds(t *testing.T) {
	assert.Equal(t, 8, durationSeconds("8 seconds", 10))
	assert.Equal(t, 12, durationSeconds("~12s", 10))
	assert.Equal(t, 10, durationSeconds("a while", 10))
	assert.Equal(t, 10, durationSeconds("", 10))
}

func TestVoiceoverTextStripsStructure(t *testing.T) {
	script := &content.Script{
		FullScript: `HOOK: Listen up.

This is *important* [dramatic pause] and worth hearing.

CTA: Subscribe now.`,
	}

	text := VoiceoverText(script)

	assert.Equal(t, "Listen up. This is important and worth hearing. Subscribe now.", text)
}

func TestVoiceoverTextComposesFromParts(t *testing.T) {
	script := &content.Script{
		Hook:         "A hook.",
		MainContent:  []string{"The middle."},
		CallToAction: "The end.",
	}

	assert.Equal(t, "A hook. The middle. The end.", VoiceoverText(script))
}

func TestCleanJSONStripsFences(t *testing.T) {
	fenced := "```json\n{\"title\":\"x\"}\n```"
	assert.Equal(t, `{"title":"x"}`, cleanJSON(fenced))
	assert.Equal(t, `{"title":"x"}`, cleanJSON(`{"title":"x"}`))
}
