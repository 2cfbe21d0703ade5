package domain

import "testing"

func TestWindowsRules(t *testing.T) {
	rules := WindowsRules()

	tests := []struct {
		name       string
		fileName   string
		wantReason string
	}{
		{"plain name", "photo_01.jpg", ""},
		{"empty name", "", "empty name"},
		{"whitespace only", "   ", "empty name"},
		{"colon", "a:b.jpg", "invalid characters"},
		{"question mark", "what?.txt", "invalid characters"},
		{"reserved device", "CON.txt", "reserved name"},
		{"reserved device lowercase", "nul", "reserved name"},
		{"trailing dot", "photo.", "trailing dot or space"},
		{"trailing space", "photo ", "trailing dot or space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.Check(tt.fileName); got != tt.wantReason {
				t.Errorf("Check(%q): expected %q, got %q", tt.fileName, tt.wantReason, got)
			}
		})
	}
}

func TestUnixRules(t *testing.T) {
	rules := UnixRules()

	if got := rules.Check("a:b?.txt"); got != "" {
		t.Errorf("unix rules should allow colons and question marks, got %q", got)
	}
	if got := rules.Check("a/b.txt"); got != "invalid characters" {
		t.Errorf("expected slash to be rejected, got %q", got)
	}
	if got := rules.Check("CON.txt"); got != "" {
		t.Errorf("unix rules have no reserved names, got %q", got)
	}
}

func TestRulesFor(t *testing.T) {
	if RulesFor("windows").Reserved == nil {
		t.Error("windows rules should carry reserved names")
	}
	if RulesFor("linux").Reserved != nil {
		t.Error("linux rules should not carry reserved names")
	}
}
