package tui

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

func TestPagerGlobalKeys_MatchRuneKeys(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
	}{
		{"q matches Quit", tea.KeyPressMsg{Code: 'q', Text: "q"}, PagerGlobalKeys.Quit},
		{"? matches Help", tea.KeyPressMsg{Code: '?', Text: "?"}, PagerGlobalKeys.Help},
		{"m matches Mouse", tea.KeyPressMsg{Code: 'm', Text: "m"}, PagerGlobalKeys.Mouse},
		{"s matches Sidebar", tea.KeyPressMsg{Code: 's', Text: "s"}, PagerGlobalKeys.Sidebar},
		{"/ matches Filter", tea.KeyPressMsg{Code: '/', Text: "/"}, PagerGlobalKeys.Filter},
		{": matches Goto", tea.KeyPressMsg{Code: ':', Text: ":"}, PagerGlobalKeys.Goto},
		{"r matches Reload", tea.KeyPressMsg{Code: 'r', Text: "r"}, PagerGlobalKeys.Reload},
		{"n matches NextFile", tea.KeyPressMsg{Code: 'n', Text: "n"}, PagerGlobalKeys.NextFile},
		{"] matches NextFile", tea.KeyPressMsg{Code: ']', Text: "]"}, PagerGlobalKeys.NextFile},
		{"p matches PrevFile", tea.KeyPressMsg{Code: 'p', Text: "p"}, PagerGlobalKeys.PrevFile},
		{"[ matches PrevFile", tea.KeyPressMsg{Code: '[', Text: "["}, PagerGlobalKeys.PrevFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("expected match for %q", tt.msg.String())
			}
		})
	}
}

func TestPagerGlobalKeys_MatchSpecialKeys(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
	}{
		{"ctrl+c matches Quit", tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, PagerGlobalKeys.Quit},
		{"KeyTab matches Focus", tea.KeyPressMsg{Code: tea.KeyTab}, PagerGlobalKeys.Focus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("expected match for %q", tt.msg.String())
			}
		})
	}
}

func TestPagerPagingKeys_MatchNavigationKeys(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
	}{
		{"KeyPgDown matches PageDown", tea.KeyPressMsg{Code: tea.KeyPgDown}, PagerPagingKeys.PageDown},
		{"KeyPgUp matches PageUp", tea.KeyPressMsg{Code: tea.KeyPgUp}, PagerPagingKeys.PageUp},
		{"KeyHome matches Home", tea.KeyPressMsg{Code: tea.KeyHome}, PagerPagingKeys.Home},
		{"KeyEnd matches End", tea.KeyPressMsg{Code: tea.KeyEnd}, PagerPagingKeys.End},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("expected match for %q", tt.msg.String())
			}
			if _, ok := navigationKey(tt.msg.Key()); !ok {
				t.Errorf("navigationKey(%q) should be a paging key", tt.msg.String())
			}
		})
	}
}

func TestNavigationKeyRejectsModifiedKeys(t *testing.T) {
	msgs := []tea.KeyPressMsg{
		{Code: tea.KeyPgDown, Mod: tea.ModCtrl},
		{Code: tea.KeyHome, Mod: tea.ModShift},
		{Code: 'j', Text: "j"},
	}
	for _, msg := range msgs {
		if _, ok := navigationKey(msg.Key()); ok {
			t.Errorf("navigationKey(%q) should not be a paging key", msg.String())
		}
	}
}

func TestPagerDocumentKeys_Match(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
	}{
		{"j matches Down", tea.KeyPressMsg{Code: 'j', Text: "j"}, PagerDocumentKeys.Down},
		{"k matches Up", tea.KeyPressMsg{Code: 'k', Text: "k"}, PagerDocumentKeys.Up},
		{"KeyDown matches Down", tea.KeyPressMsg{Code: tea.KeyDown}, PagerDocumentKeys.Down},
		{"ctrl+d matches HalfDown", tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}, PagerDocumentKeys.HalfDown},
		{"ctrl+u matches HalfUp", tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}, PagerDocumentKeys.HalfUp},
		{"g matches Top", tea.KeyPressMsg{Code: 'g', Text: "g"}, PagerDocumentKeys.Top},
		{"G matches Bottom", tea.KeyPressMsg{Code: 'G', Text: "G"}, PagerDocumentKeys.Bottom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("expected match for %q", tt.msg.String())
			}
		})
	}
}

func TestPagerDocumentKeys_CaseSensitivity(t *testing.T) {
	gMsg := tea.KeyPressMsg{Code: 'g', Text: "g"}
	bigGMsg := tea.KeyPressMsg{Code: 'G', Text: "G"}

	if key.Matches(gMsg, PagerDocumentKeys.Bottom) {
		t.Error("lowercase g should not match Bottom (capital G)")
	}
	if key.Matches(bigGMsg, PagerDocumentKeys.Top) {
		t.Error("capital G should not match Top")
	}
}

func TestPagerHelpOverlayKeys_MatchAllDismissKeys(t *testing.T) {
	msgs := []tea.KeyPressMsg{
		{Code: '?', Text: "?"},
		{Code: tea.KeyEscape},
		{Code: 'q', Text: "q"},
	}
	for _, msg := range msgs {
		if !key.Matches(msg, PagerHelpOverlayKeys.Close) {
			t.Errorf("expected %q to match PagerHelpOverlayKeys.Close", msg.String())
		}
	}
}

func TestBindingsToHelpEntriesSkipsDisabled(t *testing.T) {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Hidden"))
	disabled.SetEnabled(false)

	entries := bindingsToHelpEntries(PagerGlobalKeys.Quit, disabled, key.NewBinding(key.WithKeys("z")))
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d: %+v", len(entries), entries)
	}
	if entries[0] != (HelpEntry{Key: "q", Desc: "Quit"}) {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}
