package service

import (
	"context"
	"log"

	"github.com/yousseframy/folio/server/internal/models"
	"github.com/yousseframy/folio/server/internal/readme"
)

// PlaceholderReadme is served when a repository's readme cannot be loaded.
const PlaceholderReadme = "<p>No readme could be loaded for this project.</p>"

// ReadmeService serves the full rendered readme of one selected project.
type ReadmeService interface {
	GetReadme(ctx context.Context, owner, name, branch string) (models.ReadmeDocument, error)
}

type readmeService struct {
	gh GitHubClient
}

// NewReadmeService returns a concrete implementation.
func NewReadmeService(gh GitHubClient) ReadmeService {
	return &readmeService{gh: gh}
}

// GetReadme fetches the rendered readme, rewrites every image reference to an
// absolute raw-content URL and sanitizes the markup. An upstream failure
// yields the fixed placeholder document, not an error; a canceled request
// context propagates as an error so a superseded fetch never publishes
// anything.
func (s *readmeService) GetReadme(ctx context.Context, owner, name, branch string) (models.ReadmeDocument, error) {
	markup, err := s.gh.ReadmeHTML(ctx, owner, name)
	if err != nil {
		if ctx.Err() != nil {
			return models.ReadmeDocument{}, ctx.Err()
		}
		log.Printf("readme for %s/%s: %v", owner, name, err)
		return models.ReadmeDocument{HTML: PlaceholderReadme}, nil
	}

	rewritten, err := readme.RewriteAllImages(markup, owner, name, branch)
	if err != nil {
		// Serve the sanitized original rather than fail the whole view.
		log.Printf("rewriting readme for %s/%s: %v", owner, name, err)
		rewritten = markup
	}

	return models.ReadmeDocument{
		Raw:  markup,
		HTML: readme.Sanitize(rewritten),
	}, nil
}
