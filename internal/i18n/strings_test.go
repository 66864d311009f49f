package i18n

import (
	"strings"
	"testing"
)

func TestNewFallsBackToDefaultLanguage(t *testing.T) {
	t.Parallel()

	for _, lang := range []string{"fr", "de", "", "PT"} {
		p := New(lang)
		if p.Language() != DefaultLanguage {
			t.Errorf("New(%q).Language() = %q, want %q", lang, p.Language(), DefaultLanguage)
		}
	}
	if p := New("en"); p.Language() != "en" {
		t.Errorf("New(en).Language() = %q", p.Language())
	}
}

func TestAllLanguagesCoverAllMessages(t *testing.T) {
	t.Parallel()

	reference := tables[DefaultLanguage]
	for lang, table := range tables {
		for id := range reference {
			if _, ok := table[id]; !ok {
				t.Errorf("language %s missing message %s", lang, id)
			}
		}
		if len(table) != len(reference) {
			t.Errorf("language %s has %d messages, want %d", lang, len(table), len(reference))
		}
	}
}

func TestTf(t *testing.T) {
	t.Parallel()

	p := New("en")
	got := p.Tf(MsgAudioNotFound, "./output")
	if !strings.Contains(got, "./output") {
		t.Errorf("Tf did not interpolate directory: %q", got)
	}
}

func TestMenuTokensPresent(t *testing.T) {
	t.Parallel()

	for lang := range tables {
		p := New(lang)
		menu := p.T(MsgActionSelect)
		for _, token := range []string{"0", "1", "2", "3"} {
			if !strings.Contains(menu, token+".") {
				t.Errorf("%s action menu missing option %s: %q", lang, token, menu)
			}
		}
		mode := p.T(MsgModeSelect)
		if !strings.Contains(mode, "1.") || !strings.Contains(mode, "2.") {
			t.Errorf("%s mode menu missing options: %q", lang, mode)
		}
	}
}
