// Package readme post-processes rendered readme markup: it locates image
// references, rewrites relative ones to absolute raw-content URLs, and
// sanitizes the result before it is published to clients.
package readme

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// rawBaseURL is the host serving unrendered file content for a
	// repository path at a given branch.
	rawBaseURL = "https://raw.githubusercontent.com"

	// DefaultBranch resolves relative content paths when the repository
	// record carries no default branch.
	DefaultBranch = "main"

	// assetsSegment marks illustrative content; readme images outside it
	// (badges, shields) are dropped in the list context.
	assetsSegment = "/assets/"
)

// ugc is safe for concurrent use once constructed.
var ugc = bluemonday.UGCPolicy()

// RewriteImageURL normalizes one image source to an absolute raw-content URL
// for the given repository coordinates. Already-absolute sources pass through
// unchanged, which also makes the rewrite idempotent.
func RewriteImageURL(owner, repo, branch, src string) string {
	if isAbsolute(src) {
		return src
	}
	path := strings.TrimPrefix(src, "./")
	path = strings.TrimLeft(path, "/")
	return fmt.Sprintf("%s/%s/%s/%s/%s", rawBaseURL, owner, repo, branchOrDefault(branch), path)
}

// ExtractAssetImages returns the rewritten URLs of every image in markup
// whose source contains the /assets/ segment, in document order.
func ExtractAssetImages(markup, owner, repo, branch string) ([]string, error) {
	nodes, err := parseFragment(markup)
	if err != nil {
		return nil, fmt.Errorf("readme: parsing markup: %w", err)
	}

	urls := []string{}
	for _, n := range nodes {
		walkImages(n, func(img *html.Node) {
			src := attr(img, "src")
			if src == "" || !strings.Contains(src, assetsSegment) {
				return
			}
			urls = append(urls, RewriteImageURL(owner, repo, branch, src))
		})
	}
	return urls, nil
}

// RewriteAllImages rewrites the source of every image element in markup
// (no /assets/ filter) and returns the resulting markup.
func RewriteAllImages(markup, owner, repo, branch string) (string, error) {
	nodes, err := parseFragment(markup)
	if err != nil {
		return "", fmt.Errorf("readme: parsing markup: %w", err)
	}

	var sb strings.Builder
	for _, n := range nodes {
		walkImages(n, func(img *html.Node) {
			for i, a := range img.Attr {
				if a.Key == "src" {
					img.Attr[i].Val = RewriteImageURL(owner, repo, branch, a.Val)
				}
			}
		})
		if err := html.Render(&sb, n); err != nil {
			return "", fmt.Errorf("readme: rendering markup: %w", err)
		}
	}
	return sb.String(), nil
}

// Sanitize strips scriptable/unsafe markup with the user-generated-content
// policy. Always the last step before a document is published.
func Sanitize(markup string) string {
	return ugc.Sanitize(markup)
}

func branchOrDefault(branch string) string {
	if branch == "" {
		return DefaultBranch
	}
	return branch
}

func isAbsolute(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// parseFragment parses markup as body content, so readmes (which are HTML
// fragments, not full documents) round-trip without html/head wrappers.
func parseFragment(markup string) ([]*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	return html.ParseFragment(strings.NewReader(markup), body)
}

// walkImages calls fn for every <img> element under n, in document order.
func walkImages(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkImages(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
