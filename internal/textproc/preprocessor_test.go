package textproc

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"What is the meaning of Sankofa", []string{"meaning", "sankofa"}},
		{"tell me about jollof rice", []string{"jollof", "rice"}},
		{"", nil},
		{"a an the", nil},
		// Tokens of length <= 2 are dropped.
		{"ga is so up", nil},
		// Capped at five keywords, original order preserved.
		{
			"kente adinkra djembe highlife amapiano sankofa ubuntu",
			[]string{"kente", "adinkra", "djembe", "highlife", "amapiano"},
		},
	}

	for _, tt := range tests {
		got := ExtractKeywords(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

// TestExtractKeywordsDeterministic runs the same input repeatedly and
// verifies identical output every time.
func TestExtractKeywordsDeterministic(t *testing.T) {
	const query = "who started the highlife music tradition in Ghana"
	want := ExtractKeywords(query)
	for i := 0; i < 10; i++ {
		if got := ExtractKeywords(query); !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: got %v, want %v", i, got, want)
		}
	}
}

func TestTopicLabel(t *testing.T) {
	if got := TopicLabel("what is the meaning of sankofa"); got != "Meaning Sankofa" {
		t.Errorf("TopicLabel = %q, want %q", got, "Meaning Sankofa")
	}
	if got := TopicLabel(""); got != "" {
		t.Errorf("TopicLabel(empty) = %q, want empty", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"nelson mandela", "Nelson Mandela"},
		{"JOLLOF RICE", "Jollof Rice"},
		{"ubuntu", "Ubuntu"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContentKeywords(t *testing.T) {
	text := strings.Repeat("kente cloth is woven in Ghana. ", 3) + "The cloth has symbolic colors."
	got := ContentKeywords(text, 3)

	if got == "" {
		t.Fatal("ContentKeywords returned empty string")
	}
	words := strings.Fields(got)
	if len(words) > 3 {
		t.Errorf("got %d keywords, want <= 3", len(words))
	}
	// "cloth" appears four times and must rank first.
	if words[0] != "cloth" {
		t.Errorf("top keyword = %q, want %q", words[0], "cloth")
	}
	for _, w := range words {
		if w == "the" || w == "is" || w == "in" {
			t.Errorf("stopword %q leaked into keywords", w)
		}
	}
}

func TestContentKeywordsEmpty(t *testing.T) {
	if got := ContentKeywords("", 5); got != "" {
		t.Errorf("ContentKeywords(empty) = %q, want empty", got)
	}
	if got := ContentKeywords("some text", 0); got != "" {
		t.Errorf("ContentKeywords(limit 0) = %q, want empty", got)
	}
}
