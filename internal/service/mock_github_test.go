package service_test

import (
	"context"
	"fmt"

	"github.com/yousseframy/folio/server/internal/github"
)

// mockGitHub implements service.GitHubClient for tests. Readmes and errors
// are keyed by "owner/name".
type mockGitHub struct {
	repos      []github.Repo
	listErr    error
	readmes    map[string]string
	readmeErrs map[string]error
	langs      []github.Language
	langErr    error
}

func (m *mockGitHub) ListUserRepos(ctx context.Context, user string, perPage int) ([]github.Repo, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.repos, nil
}

func (m *mockGitHub) ReadmeHTML(ctx context.Context, owner, repo string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := owner + "/" + repo
	if err, ok := m.readmeErrs[key]; ok {
		return "", err
	}
	if md, ok := m.readmes[key]; ok {
		return md, nil
	}
	return "", fmt.Errorf("github: unexpected status 404 Not Found")
}

func (m *mockGitHub) Languages(ctx context.Context, owner, repo string) ([]github.Language, error) {
	if m.langErr != nil {
		return nil, m.langErr
	}
	return m.langs, nil
}

func (m *mockGitHub) LanguagesByURL(ctx context.Context, rawURL string) ([]github.Language, error) {
	return m.Languages(ctx, "", "")
}

func repo(id int64, owner, name, branch string, fork bool) github.Repo {
	r := github.Repo{
		ID:            id,
		Name:          name,
		FullName:      owner + "/" + name,
		DefaultBranch: branch,
		Fork:          fork,
	}
	r.Owner.Login = owner
	return r
}
