package github

import (
	"strings"
	"testing"
)

func TestDecodeLanguagesPreservesOrder(t *testing.T) {
	body := `{"TypeScript": 500, "CSS": 200, "HTML": 100, "Shell": 10}`

	langs, err := decodeLanguages(strings.NewReader(body))
	if err != nil {
		t.Fatalf("decodeLanguages: %v", err)
	}

	want := []Language{
		{Name: "TypeScript", Bytes: 500},
		{Name: "CSS", Bytes: 200},
		{Name: "HTML", Bytes: 100},
		{Name: "Shell", Bytes: 10},
	}
	if len(langs) != len(want) {
		t.Fatalf("got %d languages, want %d", len(langs), len(want))
	}
	for i := range want {
		if langs[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, langs[i], want[i])
		}
	}
}

func TestDecodeLanguagesEmptyObject(t *testing.T) {
	langs, err := decodeLanguages(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("decodeLanguages: %v", err)
	}
	if langs == nil {
		t.Fatal("expected empty non-nil slice")
	}
	if len(langs) != 0 {
		t.Errorf("got %v, want empty", langs)
	}
}

func TestDecodeLanguagesRejectsNonObject(t *testing.T) {
	for _, body := range []string{`[]`, `"Go"`, `42`, ``} {
		if _, err := decodeLanguages(strings.NewReader(body)); err == nil {
			t.Errorf("decodeLanguages(%q): expected error", body)
		}
	}
}
