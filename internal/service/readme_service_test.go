package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yousseframy/folio/server/internal/service"
)

func TestGetReadmeRewritesAndSanitizes(t *testing.T) {
	gh := &mockGitHub{
		readmes: map[string]string{
			"octocat/site": `<h1>Site</h1><img src="./assets/a.png"><img src="docs/b.png"><script>alert(1)</script>`,
		},
	}
	svc := service.NewReadmeService(gh)

	doc, err := svc.GetReadme(context.Background(), "octocat", "site", "main")
	if err != nil {
		t.Fatalf("GetReadme: %v", err)
	}

	// Every image is rewritten in detail context, not just /assets/ ones.
	for _, want := range []string{
		"https://raw.githubusercontent.com/octocat/site/main/assets/a.png",
		"https://raw.githubusercontent.com/octocat/site/main/docs/b.png",
	} {
		if !strings.Contains(doc.HTML, want) {
			t.Errorf("HTML missing %q:\n%s", want, doc.HTML)
		}
	}
	if strings.Contains(doc.HTML, "script") {
		t.Errorf("HTML not sanitized:\n%s", doc.HTML)
	}
	if !strings.Contains(doc.Raw, "<script>") {
		t.Errorf("Raw should keep the fetched markup:\n%s", doc.Raw)
	}
}

func TestGetReadmePlaceholderOnFailure(t *testing.T) {
	gh := &mockGitHub{
		readmeErrs: map[string]error{"octocat/site": errors.New("connection refused")},
	}
	svc := service.NewReadmeService(gh)

	doc, err := svc.GetReadme(context.Background(), "octocat", "site", "main")
	if err != nil {
		t.Fatalf("GetReadme: %v", err)
	}
	if doc.HTML != service.PlaceholderReadme {
		t.Errorf("HTML = %q, want placeholder", doc.HTML)
	}
}

func TestGetReadmeCancellationPropagates(t *testing.T) {
	gh := &mockGitHub{
		readmes: map[string]string{"octocat/site": "<p>hi</p>"},
	}
	svc := service.NewReadmeService(gh)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A superseded request must surface the cancellation, never the
	// placeholder, so it cannot overwrite a newer selection's result.
	if _, err := svc.GetReadme(ctx, "octocat", "site", "main"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
