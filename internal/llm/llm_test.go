package llm

import (
	"context"
	"strings"
	"testing"
)

func TestMockProviderExactMatch(t *testing.T) {
	p := NewMockProvider()

	answer, err := p.Generate(context.Background(), "Where is Star College located?", nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(answer, "20 Kinloch Avenue") {
		t.Errorf("expected the configured location answer, got %q", answer)
	}
}

func TestMockProviderSubstringMatch(t *testing.T) {
	p := NewMockProvider()

	// The question embeds a known key with extra words around it.
	answer, err := p.Generate(context.Background(), "tell me, where is star college located, please", nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(answer, "20 Kinloch Avenue") {
		t.Errorf("expected substring match to find the location answer, got %q", answer)
	}
}

func TestMockProviderAmbiguousQuestionIsStable(t *testing.T) {
	p := NewMockProvider()

	// "star college" is a substring of every table entry; the first one
	// must win, every time.
	var first string
	for i := 0; i < 50; i++ {
		answer, err := p.Generate(context.Background(), "star college", nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if i == 0 {
			first = answer
			continue
		}
		if answer != first {
			t.Fatalf("answer changed between calls:\nfirst: %q\nlater: %q", first, answer)
		}
	}
	if !strings.Contains(first, "About Star College Durban") {
		t.Errorf("ambiguous question should resolve to the first table entry, got %q", first)
	}
}

func TestMockProviderUnknownQuestion(t *testing.T) {
	p := NewMockProvider()

	for _, q := range []string{"What is the airspeed of an unladen swallow?", "", "   "} {
		answer, err := p.Generate(context.Background(), q, nil)
		if err != nil {
			t.Fatalf("Generate(%q): %v", q, err)
		}
		if answer != NoInfoAnswer {
			t.Errorf("Generate(%q) = %q, want the fixed insufficient-information answer", q, answer)
		}
	}
}

func TestMockProviderAlwaysInitialized(t *testing.T) {
	p := NewMockProvider()
	for i := 0; i < 3; i++ {
		if !p.Initialize() {
			t.Fatal("mock provider must always initialize")
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("Where is the school?", []string{"passage one", "passage two"})

	if !strings.Contains(prompt, "passage one\npassage two") {
		t.Errorf("passages not joined by newline:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Where is the school?") {
		t.Errorf("question missing from prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "I don't have enough information to answer that question.") {
		t.Errorf("refusal phrase missing from prompt:\n%s", prompt)
	}
}

func TestBuildPromptEmptyContext(t *testing.T) {
	prompt := buildPrompt("anything", nil)
	if !strings.Contains(prompt, noContextPlaceholder) {
		t.Errorf("empty context should use the placeholder:\n%s", prompt)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"openai", KindOpenAI},
		{"OpenAI", KindOpenAI},
		{"deepseek", KindDeepSeek},
		{"ollama", KindOllama},
		{"mock", KindMock},
		{"", KindMock},
		{"gpt5-ultra", KindMock},
	}
	for _, tt := range tests {
		if got := ParseKind(tt.in); got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenAIProviderFailsWithoutKey(t *testing.T) {
	p := NewOpenAIProvider("", "gpt-3.5-turbo")

	if p.Initialize() {
		t.Fatal("expected Initialize to fail without an API key")
	}
	// A failed provider stays failed.
	if p.Initialize() {
		t.Fatal("failed provider must not initialize on retry")
	}

	if _, err := p.Generate(context.Background(), "anything", nil); err != ErrNotInitialized {
		t.Errorf("Generate on failed provider: got %v, want ErrNotInitialized", err)
	}
}

func TestApology(t *testing.T) {
	if got := Apology(ErrNotInitialized); got != InitFailureApology {
		t.Errorf("Apology(ErrNotInitialized) = %q", got)
	}

	got := Apology(context.DeadlineExceeded)
	if !strings.HasPrefix(got, "I'm sorry, I encountered an error") || !strings.Contains(got, "deadline") {
		t.Errorf("Apology should embed the error detail, got %q", got)
	}
}
