package respond

import (
	"strings"
	"testing"

	"github.com/sankofa-labs/sankofa/internal/intent"
	"github.com/sankofa-labs/sankofa/internal/search"
)

func result(title, body string) []search.Result {
	return []search.Result{{ID: 1, Title: title, Body: body, Score: 90}}
}

func TestGenerateNoResultsFallsBack(t *testing.T) {
	got := Generate("quantum physics", nil, intent.General, false, "")
	if !strings.HasPrefix(got, "I'm still learning about 'quantum physics'.") {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGenerateRecipeTemplate(t *testing.T) {
	content := "Jollof rice is a beloved West African dish. " +
		"The main ingredients are rice, tomatoes, peppers, and onions. " +
		"Cook the tomato base slowly until the oil separates. " +
		"Steam the rice in the sauce until tender. " +
		"It is served at parties across the region."

	got := Generate("how to cook jollof", result("Jollof Rice", content), intent.Recipe, false, "")

	if !strings.Contains(got, "**Jollof Rice Recipe**") {
		t.Errorf("missing recipe header: %q", got)
	}
	if !strings.Contains(got, "The main ingredients are rice") {
		t.Errorf("expected ingredient sentence in body: %q", got)
	}
	if !strings.Contains(got, "Cook the tomato base") {
		t.Errorf("expected cooking sentence in body: %q", got)
	}
	if !strings.HasSuffix(got, "Need variations or tips?") {
		t.Errorf("missing recipe prompt: %q", got)
	}
}

func TestGenerateDefinitionShortContent(t *testing.T) {
	content := "Ubuntu is a Nguni Bantu term meaning humanity towards others."
	got := Generate("what is ubuntu", result("Ubuntu", content), intent.Definition, false, "")

	want := "**Ubuntu**\n\n" + content + "...\n\nWant the full meaning or usage?"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateGeneralTruncates(t *testing.T) {
	content := strings.Repeat("a", 900)
	got := Generate("amapiano", result("Amapiano", content), intent.General, false, "")

	if !strings.Contains(got, strings.Repeat("a", 800)+"...") {
		t.Errorf("expected body clipped to 800 characters: %q", got[:80])
	}
	if strings.Contains(got, strings.Repeat("a", 801)) {
		t.Error("body not truncated")
	}
	if !strings.HasSuffix(got, "What else would you like to know?") {
		t.Errorf("missing general prompt: %q", got)
	}
}

func TestGenerateFollowUpSectionHeader(t *testing.T) {
	content := "Nelson Mandela was a South African anti-apartheid leader.\n" +
		"== Education ==\n" +
		"He studied law at the University of Fort Hare and later at the University " +
		"of the Witwatersrand, where he earned his degree.\n" +
		"== Presidency ==\n" +
		"He became president in 1994."

	got := Generate("tell me about his education", result("Nelson Mandela", content), intent.General, true, "Nelson Mandela")

	if !strings.HasPrefix(got, "About **Nelson Mandela**'s his education...") {
		t.Errorf("unexpected follow-up prefix: %q", got)
	}
	if !strings.Contains(got, "He studied law at the University of Fort Hare") {
		t.Errorf("expected education section body: %q", got)
	}
	if strings.Contains(got, "president in 1994") {
		t.Errorf("section body leaked into next section: %q", got)
	}
	if !strings.HasSuffix(got, "Want to know more about Nelson Mandela?") {
		t.Errorf("missing follow-up prompt: %q", got)
	}
}

func TestGenerateFollowUpMuseumCanned(t *testing.T) {
	content := "Nelson Mandela was a South African anti-apartheid leader."
	got := Generate("what about the museum", result("Nelson Mandela", content), intent.General, true, "Nelson Mandela")

	if !strings.Contains(got, "Nelson Mandela Museum") {
		t.Errorf("expected museum reply: %q", got)
	}
	if !strings.Contains(got, "Qunu") {
		t.Errorf("expected location detail: %q", got)
	}
}

func TestGenerateFollowUpMoreSlicesDeeper(t *testing.T) {
	content := strings.Repeat("x", 800) + strings.Repeat("y", 800) + strings.Repeat("z", 100)
	got := Generate("tell me more", result("Nelson Mandela", content), intent.General, true, "Nelson Mandela")

	if !strings.HasPrefix(got, "Here's more about **Nelson Mandela**:") {
		t.Errorf("unexpected prefix: %q", got)
	}
	if !strings.Contains(got, strings.Repeat("y", 800)) {
		t.Errorf("expected the deeper content slice: %q", got[:60])
	}
	if strings.Contains(got, "x") || strings.Contains(got, "z") {
		t.Error("slice boundaries wrong: leaked content outside [800:1600)")
	}
}

func TestGenerateFollowUpAspectMenu(t *testing.T) {
	// No section trigger, no keyword hit in the body: the aspect menu is
	// the last resort.
	content := strings.Repeat("q", 200)
	got := Generate("hmm interesting", result("Nelson Mandela", content), intent.General, true, "Nelson Mandela")

	if !strings.Contains(got, "What would you like to explore?") {
		t.Errorf("expected aspect menu: %q", got)
	}
	if !strings.Contains(got, "• Prison years") {
		t.Errorf("expected aspect options: %q", got)
	}
}

func TestGenerateFollowUpWithoutTopicUsesFreshTemplate(t *testing.T) {
	content := "Fufu is a staple food of West and Central Africa made by pounding starchy roots."
	got := Generate("fufu", result("Fufu", content), intent.General, true, "")

	if !strings.HasPrefix(got, "**Fufu**\n\n") {
		t.Errorf("expected fresh-topic template when no topic is set: %q", got)
	}
}

func TestFallbackSuggestionsByIntent(t *testing.T) {
	tests := []struct {
		in   intent.Intent
		want string
	}{
		{intent.Recipe, "• Jollof rice"},
		{intent.History, "• Mansa Musa"},
		{intent.Comparison, "• Ghana vs Nigeria Jollof"},
		{intent.General, "• Adinkra symbols"},
		{intent.Definition, "• Ubuntu"},
	}
	for _, tt := range tests {
		got := Fallback("xyzzy", tt.in)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Fallback(%q): missing %q in %q", tt.in, tt.want, got)
		}
	}
}

func TestExtractSectionTooShortIsNotFound(t *testing.T) {
	text := "Kente is woven. Kente is bright."
	if got := extractSection(text, []string{"kente"}); got != "" {
		t.Errorf("short extraction should be treated as not found, got %q", got)
	}
}

func TestExtractSectionStopsAtFiveSentences(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		b.WriteString("Highlife music blends traditional Akan rhythms with Western instruments and jazz. ")
	}
	got := extractSection(b.String(), []string{"highlife"})
	if n := strings.Count(got, "Highlife"); n != 5 {
		t.Errorf("expected 5 matching sentences, got %d", n)
	}
}

func TestExtractSectionClipsLongResult(t *testing.T) {
	long := "Highlife " + strings.Repeat("w", 300) + "."
	text := long + " " + long + " " + long + " " + long
	got := extractSection(text, []string{"highlife"})
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis on clipped result: %q", got[len(got)-20:])
	}
	if n := len([]rune(got)); n != 803 {
		t.Errorf("expected 800 runes plus ellipsis, got %d", n)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("One two. Three four! Five six? Seven")
	want := []string{"One two.", "Three four!", "Five six?", "Seven"}
	if len(got) != len(want) {
		t.Fatalf("got %d sentences %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
