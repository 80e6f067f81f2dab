package readme_test

import (
	"strings"
	"testing"

	"github.com/yousseframy/folio/server/internal/readme"
)

func TestRewriteImageURL(t *testing.T) {
	tests := []struct {
		name   string
		branch string
		src    string
		want   string
	}{
		{
			name:   "relative with dot-slash",
			branch: "main",
			src:    "./assets/demo.png",
			want:   "https://raw.githubusercontent.com/octocat/site/main/assets/demo.png",
		},
		{
			name:   "relative with leading slash",
			branch: "main",
			src:    "/assets/demo.png",
			want:   "https://raw.githubusercontent.com/octocat/site/main/assets/demo.png",
		},
		{
			name:   "bare relative path",
			branch: "develop",
			src:    "assets/shot.gif",
			want:   "https://raw.githubusercontent.com/octocat/site/develop/assets/shot.gif",
		},
		{
			name:   "absolute https untouched",
			branch: "main",
			src:    "https://example.com/pic.png",
			want:   "https://example.com/pic.png",
		},
		{
			name:   "absolute http untouched",
			branch: "main",
			src:    "http://example.com/pic.png",
			want:   "http://example.com/pic.png",
		},
		{
			name:   "empty branch falls back to main",
			branch: "",
			src:    "./assets/demo.png",
			want:   "https://raw.githubusercontent.com/octocat/site/main/assets/demo.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readme.RewriteImageURL("octocat", "site", tt.branch, tt.src)
			if got != tt.want {
				t.Errorf("RewriteImageURL(%q) = %q, want %q", tt.src, got, tt.want)
			}

			// Applying the rewrite to its own output must be a no-op.
			again := readme.RewriteImageURL("octocat", "site", tt.branch, got)
			if again != got {
				t.Errorf("rewrite not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestExtractAssetImagesFiltersAndOrders(t *testing.T) {
	markup := `
<h1>Demo</h1>
<img src="https://img.shields.io/badge/build-passing.svg">
<p><img src="./assets/first.png"></p>
<img src="logo.svg">
<img src="/assets/second.png">
<img src="docs/diagram.png">`

	got, err := readme.ExtractAssetImages(markup, "octocat", "site", "main")
	if err != nil {
		t.Fatalf("ExtractAssetImages: %v", err)
	}

	want := []string{
		"https://raw.githubusercontent.com/octocat/site/main/assets/first.png",
		"https://raw.githubusercontent.com/octocat/site/main/assets/second.png",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d images %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("image %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractAssetImagesNoImages(t *testing.T) {
	got, err := readme.ExtractAssetImages("<p>no pictures here</p>", "o", "r", "main")
	if err != nil {
		t.Fatalf("ExtractAssetImages: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestRewriteAllImages(t *testing.T) {
	markup := `<p>intro</p>
<img src="./assets/a.png">
<img src="badges/ci.svg">
<img src="https://example.com/keep.png">`

	got, err := readme.RewriteAllImages(markup, "octocat", "site", "main")
	if err != nil {
		t.Fatalf("RewriteAllImages: %v", err)
	}

	for _, want := range []string{
		"https://raw.githubusercontent.com/octocat/site/main/assets/a.png",
		"https://raw.githubusercontent.com/octocat/site/main/badges/ci.svg",
		"https://example.com/keep.png",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, `"./assets/a.png"`) || strings.Contains(got, `"badges/ci.svg"`) {
		t.Errorf("relative image reference survived rewrite:\n%s", got)
	}
}

func TestSanitizeStripsScripts(t *testing.T) {
	in := `<p>hello</p><script>alert("x")</script><img src="https://example.com/a.png" onerror="alert(1)">`
	got := readme.Sanitize(in)

	if strings.Contains(got, "script") || strings.Contains(got, "onerror") {
		t.Errorf("sanitized output still contains scriptable markup: %s", got)
	}
	if !strings.Contains(got, "<p>hello</p>") {
		t.Errorf("sanitized output lost benign markup: %s", got)
	}
	if !strings.Contains(got, "https://example.com/a.png") {
		t.Errorf("sanitized output lost image source: %s", got)
	}
}
