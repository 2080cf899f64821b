package decls_test

import (
	"strings"
	"testing"

	"saveedit/internal/decls"
)

func TestParseGrammarPriority(t *testing.T) {
	text := strings.Join([]string{
		"var cash = 650;",
		"const maxLives = 200,",
		"let debugMode = true;",
		"this.musicVolume = 0.8;",
		"roundNumber = 40;",
		"",
		"// comment line",
		"# another comment",
		"not a declaration at all",
	}, "\n")

	records := decls.Parse(text)
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}

	wantNames := []string{"cash", "maxLives", "debugMode", "musicVolume", "roundNumber"}
	wantValues := []string{"650", "200", "true", "0.8", "40"}
	for i, r := range records {
		if r.Ordinal != i {
			t.Fatalf("record %d: ordinal %d", i, r.Ordinal)
		}
		if r.Name != wantNames[i] {
			t.Fatalf("record %d: name %q, want %q", i, r.Name, wantNames[i])
		}
		if r.Value != wantValues[i] {
			t.Fatalf("record %d: value %q, want %q", i, r.Value, wantValues[i])
		}
	}
}

func TestInferType(t *testing.T) {
	cases := []struct {
		value string
		want  decls.ValueType
	}{
		{"true", decls.TypeBoolean},
		{"FALSE", decls.TypeBoolean},
		{"42", decls.TypeNumber},
		{"-3.5", decls.TypeNumber},
		{"[1,2]", decls.TypeArray},
		{"{}", decls.TypeObject},
		{"hello", decls.TypeString},
		{"\"quoted\"", decls.TypeString},
		{"-", decls.TypeString},
		{"1.2.3", decls.TypeString},
	}
	for _, tc := range cases {
		if got := decls.InferType(tc.value); got != tc.want {
			t.Fatalf("InferType(%q) = %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestInferCategory(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"targetFps", "Performance"},
		{"bloonColor", "Visual"},
		{"musicVolume", "Audio"},
		{"screenWidth", "Layout"},
		{"startingCash", "Game"},
		{"debugOverlay", "Debug"},
		{"somethingElse", "General"},
		// First matching rule wins: "renderLevel" hits the performance
		// rule before the game rule.
		{"renderLevel", "Performance"},
	}
	for _, tc := range cases {
		if got := decls.InferCategory(tc.name); got != tc.want {
			t.Fatalf("InferCategory(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestSerializePreservesDeclarationStyle(t *testing.T) {
	text := strings.Join([]string{
		"var cash = 650;",
		"const maxLives = 200;",
		"this.musicVolume = 0.8;",
		"roundNumber = 40",
	}, "\n")

	records := decls.Parse(text)
	got := decls.Serialize(records)
	want := strings.Join([]string{
		"var cash = 650;",
		"const maxLives = 200;",
		"this.musicVolume = 0.8;",
		"roundNumber = 40;",
	}, "\n")
	if got != want {
		t.Fatalf("serialize mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestSerializeFallsBackToBareForm(t *testing.T) {
	// A record with no style marker in its source line emits the safest
	// form instead of failing.
	records := []*decls.Declaration{{Name: "lives", Value: "100", SourceLine: ""}}
	if got := decls.Serialize(records); got != "lives = 100;" {
		t.Fatalf("unexpected fallback emission: %q", got)
	}
}

func TestSerializeFollowsRecordOrder(t *testing.T) {
	records := decls.Parse("var a = 1;\nvar b = 2;")
	reversed := []*decls.Declaration{records[1], records[0]}
	got := decls.Serialize(reversed)
	if got != "var b = 2;\nvar a = 1;" {
		t.Fatalf("serialize ignored record order: %q", got)
	}
}

func TestParseSkipsUnmatchedLinesSilently(t *testing.T) {
	records := decls.Parse("function setup() {\n}\nreturn;\n")
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
