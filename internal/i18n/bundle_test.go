package i18n

import "testing"

func testBundle() *Bundle {
	return NewBundleFromTables(map[string]Tree{
		"en": {
			"nav": map[string]interface{}{
				"home":    "Home",
				"donate":  "Donate",
				"nested":  map[string]interface{}{"deep": "Deep Value"},
				"blank":   "",
				"numeric": float64(7),
			},
			"footer": map[string]interface{}{
				"programs": "Programs",
			},
		},
		"zh": {
			"nav": map[string]interface{}{
				"home":   "首页",
				"donate": "捐赠",
			},
		},
	}, "en")
}

func TestResolveTargetHit(t *testing.T) {
	b := testBundle()
	if got := b.Resolve("zh", "nav.home"); got != "首页" {
		t.Errorf("got %q", got)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	b := testBundle()
	// zh has no footer branch at all; the walk restarts on the en tree.
	if got := b.Resolve("zh", "footer.programs"); got != "Programs" {
		t.Errorf("got %q, want Programs", got)
	}
}

func TestResolveTotalMissEchoesKey(t *testing.T) {
	b := testBundle()
	if got := b.Resolve("zh", "no.such.key"); got != "no.such.key" {
		t.Errorf("got %q, want the key itself", got)
	}
	if got := b.Resolve("en", "nav.missing"); got != "nav.missing" {
		t.Errorf("got %q, want the key itself", got)
	}
}

func TestResolveUnsupportedLanguageUsesDefault(t *testing.T) {
	b := testBundle()
	if got := b.Resolve("fr", "nav.home"); got != "Home" {
		t.Errorf("got %q, want Home", got)
	}
}

// An empty-string leaf is treated as absent and falls through to the
// default tree, and from there to the key itself.
func TestResolveEmptyLeafFallsThrough(t *testing.T) {
	b := testBundle()
	if got := b.Resolve("en", "nav.blank"); got != "nav.blank" {
		t.Errorf("got %q, want key echo", got)
	}
}

// A non-string, non-tree node is not a resolvable leaf.
func TestResolveNonStringLeaf(t *testing.T) {
	b := testBundle()
	if got := b.Resolve("en", "nav.numeric"); got != "nav.numeric" {
		t.Errorf("got %q, want key echo", got)
	}
}

func TestResolveDeepPath(t *testing.T) {
	b := testBundle()
	if got := b.Resolve("en", "nav.nested.deep"); got != "Deep Value" {
		t.Errorf("got %q", got)
	}
	// A path that stops short of a leaf resolves to nothing.
	if got := b.Resolve("en", "nav.nested"); got != "nav.nested" {
		t.Errorf("got %q, want key echo for subtree path", got)
	}
}

func TestLanguagesDefaultFirst(t *testing.T) {
	b := testBundle()
	langs := b.Languages()
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "zh" {
		t.Errorf("languages = %v", langs)
	}
}

func TestEmbeddedLocalesLoad(t *testing.T) {
	b, err := NewBundle()
	if err != nil {
		t.Fatalf("NewBundle: %v", err)
	}
	if !b.Supported("en") || !b.Supported("es") || !b.Supported("zh") || !b.Supported("tr") {
		t.Errorf("missing expected locales: %v", b.Languages())
	}
	// zh ships without the footer branch and must borrow it from en.
	if got := b.Resolve("zh", "footer.programs"); got == "footer.programs" {
		t.Error("footer.programs did not fall back for zh")
	}
}
