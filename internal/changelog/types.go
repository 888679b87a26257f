// Package changelog turns a sequence of commit records into a markdown
// changelog document. Rendering is deterministic: the same input sequence
// always produces the same bytes.
package changelog

import (
	"strings"
	"time"
)

// Commit is the normalized representation of one repository commit as
// returned by the fetcher. Records are read-only after creation.
type Commit struct {
	SHA     string
	Author  string
	Date    time.Time
	Message string
}

// Summary returns the first line of the commit message.
func (c Commit) Summary() string {
	if idx := strings.IndexByte(c.Message, '\n'); idx >= 0 {
		return strings.TrimSpace(c.Message[:idx])
	}
	return strings.TrimSpace(c.Message)
}

// ShortSHA returns the abbreviated commit identifier.
func (c Commit) ShortSHA() string {
	if len(c.SHA) > 7 {
		return c.SHA[:7]
	}
	return c.SHA
}

// Document is the full changelog for one run. Commits are kept in the
// fetcher's order (most-recent-first as returned by the API).
type Document struct {
	// Repository is the owner/repo identifier named in the header.
	Repository string
	// Commits is the ordered sequence of records to render.
	Commits []Commit
	// Categorize groups entries into conventional-commit sections instead
	// of a flat dated list. Relative order is preserved within a section.
	Categorize bool
}

// EntryCount returns the number of entries the rendered document will contain.
func (d *Document) EntryCount() int {
	return len(d.Commits)
}
