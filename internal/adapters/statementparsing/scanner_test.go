package statementparsing

import "testing"

func TestWordScanner_Scan(t *testing.T) {
	scanner := newWordScanner([]string{";"})

	tests := []struct {
		name        string
		line        string
		wantWord    string
		wantWordEnd int
		wantSepEnd  int
	}{
		{
			name:        "word ended by space",
			line:        "say hi",
			wantWord:    "say",
			wantWordEnd: 3,
			wantSepEnd:  4,
		},
		{
			name:        "word ended by end of input",
			line:        "say",
			wantWord:    "say",
			wantWordEnd: 3,
			wantSepEnd:  3,
		},
		{
			name:        "leading whitespace skipped",
			line:        "  say hi",
			wantWord:    "say",
			wantWordEnd: 5,
			wantSepEnd:  6,
		},
		{
			name:        "word ended by quote",
			line:        `say"hi`,
			wantWord:    "say",
			wantWordEnd: 3,
			wantSepEnd:  4,
		},
		{
			name:        "word ended by redirection",
			line:        "say>out",
			wantWord:    "say",
			wantWordEnd: 3,
			wantSepEnd:  4,
		},
		{
			name:        "word ended by terminator",
			line:        "say;next",
			wantWord:    "say",
			wantWordEnd: 3,
			wantSepEnd:  4,
		},
		{
			name:        "separator at the start means empty word",
			line:        ">out",
			wantWord:    "",
			wantWordEnd: 0,
			wantSepEnd:  1,
		},
		{
			name:        "whitespace only",
			line:        "   ",
			wantWord:    "",
			wantWordEnd: 3,
			wantSepEnd:  3,
		},
		{
			name:        "empty line",
			line:        "",
			wantWord:    "",
			wantWordEnd: 0,
			wantSepEnd:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanner.scan(tt.line)
			if got.word != tt.wantWord || got.wordEnd != tt.wantWordEnd || got.sepEnd != tt.wantSepEnd {
				t.Errorf("scan(%q) = (%q, %d, %d), want (%q, %d, %d)",
					tt.line, got.word, got.wordEnd, got.sepEnd, tt.wantWord, tt.wantWordEnd, tt.wantSepEnd)
			}
		})
	}
}

func TestWordScanner_MultiCharTerminator(t *testing.T) {
	scanner := newWordScanner([]string{"&&"})

	got := scanner.scan("make&&test")
	if got.word != "make" || got.wordEnd != 4 || got.sepEnd != 6 {
		t.Errorf("scan(%q) = (%q, %d, %d), want (%q, %d, %d)",
			"make&&test", got.word, got.wordEnd, got.sepEnd, "make", 4, 6)
	}

	// A single & is not a separator, so it stays part of the word.
	got = scanner.scan("a&b")
	if got.word != "a&b" {
		t.Errorf("scan(%q) word = %q, want %q", "a&b", got.word, "a&b")
	}
}
