package service

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/yousseframy/folio/server/internal/github"
	"github.com/yousseframy/folio/server/internal/models"
	"github.com/yousseframy/folio/server/internal/readme"
)

// ---- GitHub contract -------------------------------------------------------

// GitHubClient is the slice of the GitHub API the services consume.
// *github.Client satisfies it; tests substitute hand-written mocks.
type GitHubClient interface {
	ListUserRepos(ctx context.Context, user string, perPage int) ([]github.Repo, error)
	ReadmeHTML(ctx context.Context, owner, repo string) (string, error)
	Languages(ctx context.Context, owner, repo string) ([]github.Language, error)
	LanguagesByURL(ctx context.Context, rawURL string) ([]github.Language, error)
}

// ---- Service interface + implementation ------------------------------------

const (
	// maxProjects is how many cards the portfolio shows.
	maxProjects = 6

	// listPageSize leaves headroom over maxProjects so filtering out forks
	// cannot starve the window.
	listPageSize = 30
)

// ProjectService assembles the portfolio's project list from live GitHub data.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
}

type projectService struct {
	gh   GitHubClient
	user string
}

// NewProjectService returns a concrete implementation for one account.
func NewProjectService(gh GitHubClient, user string) ProjectService {
	return &projectService{gh: gh, user: user}
}

// ListProjects fetches the account's repositories (newest-updated first),
// drops forks, keeps the first six, and decorates each with the /assets/
// images found in its readme. The list is only returned once every readme
// fetch has settled.
func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	// 1. List repositories and apply the fork filter + cap.
	repos, err := s.gh.ListUserRepos(ctx, s.user, listPageSize)
	if err != nil {
		log.Printf("listing repos for %s: %v", s.user, err)
		return nil, err
	}

	projects := make([]models.Project, 0, maxProjects)
	for _, r := range repos {
		if r.Fork {
			continue
		}
		projects = append(projects, toProject(r))
		if len(projects) == maxProjects {
			break
		}
	}

	// 2. Fetch every readme concurrently; each goroutine writes only its own
	// slot, and a failed fetch leaves that project with an empty image list.
	g, gCtx := errgroup.WithContext(ctx)
	for i := range projects {
		i := i
		g.Go(func() error {
			p := &projects[i]
			markup, err := s.gh.ReadmeHTML(gCtx, p.Owner, p.Name)
			if err != nil {
				log.Printf("WARN: readme for %s: %v", p.FullName, err)
				return nil // the project still appears, without images
			}

			urls, err := readme.ExtractAssetImages(markup, p.Owner, p.Name, p.DefaultBranch)
			if err != nil {
				log.Printf("WARN: extracting images for %s: %v", p.FullName, err)
				return nil
			}
			p.ImageURLs = urls
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return projects, nil
}

func toProject(r github.Repo) models.Project {
	return models.Project{
		ID:            r.ID,
		Owner:         r.Owner.Login,
		Name:          r.Name,
		FullName:      r.FullName,
		Description:   r.Description,
		DefaultBranch: r.DefaultBranch,
		Stars:         r.StargazersCount,
		Forks:         r.ForksCount,
		LanguagesURL:  r.LanguagesURL,
		UpdatedAt:     r.UpdatedAt,
		ImageURLs:     []string{},
	}
}
