package service

import (
	"context"
	"log"

	"github.com/yousseframy/folio/server/internal/github"
)

// maxLanguageTags caps how many language tags a project card shows.
const maxLanguageTags = 3

// LanguageService exposes a project's top languages as short tag lists.
// Fetch failures degrade to an empty list; nothing propagates.
type LanguageService interface {
	TopLanguages(ctx context.Context, owner, name string) []string
	TopLanguagesByURL(ctx context.Context, rawURL string) []string
}

type languageService struct {
	gh GitHubClient
}

// NewLanguageService returns a concrete implementation.
func NewLanguageService(gh GitHubClient) LanguageService {
	return &languageService{gh: gh}
}

// TopLanguages returns the first three language names reported for the
// repository, in API response order.
func (s *languageService) TopLanguages(ctx context.Context, owner, name string) []string {
	langs, err := s.gh.Languages(ctx, owner, name)
	if err != nil {
		log.Printf("languages for %s/%s: %v", owner, name, err)
		return []string{}
	}
	return topNames(langs)
}

// TopLanguagesByURL is like TopLanguages but takes the languages_url carried
// on a listed repository record.
func (s *languageService) TopLanguagesByURL(ctx context.Context, rawURL string) []string {
	langs, err := s.gh.LanguagesByURL(ctx, rawURL)
	if err != nil {
		log.Printf("languages at %s: %v", rawURL, err)
		return []string{}
	}
	return topNames(langs)
}

func topNames(langs []github.Language) []string {
	names := []string{}
	for _, l := range langs {
		names = append(names, l.Name)
		if len(names) == maxLanguageTags {
			break
		}
	}
	return names
}
