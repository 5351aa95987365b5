// Package site discovers the local MOX pages of a site by following
// mox:// links. Starting from one source file, each parsed document is
// scanned for internal link tokens, every target resolved to a sibling
// source file, and the walk continues breadth-first until no new pages
// remain or the page cap is reached.
package site

import (
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/moxdown/core"
)

// maxPages bounds the walk so a malformed link cycle cannot run away.
const maxPages = 100

// LoadFunc loads and parses one source file.
type LoadFunc func(path string) (core.Document, error)

// DiscoverAll returns every source file reachable from startPath
// through mox:// links, in BFS order, startPath first. Files that fail
// to load are kept in the result (the caller reports the failure when
// compiling them) but contribute no further links.
func DiscoverAll(startPath string, load LoadFunc) []string {
	queue := NewQueue()
	queue.Add(filepath.Clean(startPath))

	for queue.HasNext() && queue.Visited() < maxPages {
		current := queue.Next()

		doc, err := load(current)
		if err != nil {
			continue
		}
		for _, target := range LinkTargets(doc, filepath.Dir(current)) {
			queue.Add(target)
		}
	}
	return queue.All()
}

// LinkTargets resolves the mox:// link tokens of a document to source
// file paths relative to dir.
func LinkTargets(doc core.Document, dir string) []string {
	var targets []string
	for _, tok := range doc {
		if tok.Kind != core.KindLink {
			continue
		}
		name, ok := InternalTarget(tok.URL)
		if !ok {
			continue
		}
		targets = append(targets, filepath.Join(dir, name))
	}
	return targets
}

// InternalTarget extracts the local source filename from a mox:// URL.
// External links, empty targets, and targets escaping the site
// directory are rejected.
func InternalTarget(url string) (string, bool) {
	name, ok := strings.CutPrefix(url, "mox://")
	if !ok || name == "" {
		return "", false
	}
	if strings.Contains(name, "..") || strings.HasPrefix(name, "/") {
		return "", false
	}
	return name, true
}
