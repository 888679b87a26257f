package changelog

import (
	"fmt"
	"io"
	"strings"
)

// RenderMarkdown generates the markdown changelog for the given document.
// Entries appear in the same relative order as the document's commit
// sequence; in categorize mode the order is preserved within each section.
//
// The function is idempotent - given the same input, it produces identical output.
func RenderMarkdown(d *Document, w io.Writer) error {
	if err := renderHeader(d, w); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	if d.EntryCount() == 0 {
		return nil
	}

	if d.Categorize {
		return renderCategorized(d, w)
	}
	return renderFlat(d, w)
}

// RenderMarkdownString is a convenience function that renders to a string.
func RenderMarkdownString(d *Document) (string, error) {
	var b strings.Builder
	if err := RenderMarkdown(d, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderHeader writes the document header. An empty commit sequence produces
// this header and nothing else.
func renderHeader(d *Document, w io.Writer) error {
	header := "# Changelog\n\n" +
		"All notable changes to " + d.Repository + " will be documented in this file.\n"
	_, err := io.WriteString(w, header)
	return err
}

// renderFlat writes one dated bullet per commit, in fetch order.
func renderFlat(d *Document, w io.Writer) error {
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for _, c := range d.Commits {
		if _, err := io.WriteString(w, formatEntry(c)); err != nil {
			return err
		}
	}
	return nil
}

// renderCategorized writes conventional-commit sections in their standard
// order, skipping empty sections.
func renderCategorized(d *Document, w io.Writer) error {
	buckets := make(map[Category][]Commit, len(d.Commits))
	for _, c := range d.Commits {
		cat := Classify(c)
		buckets[cat] = append(buckets[cat], c)
	}

	for _, cat := range Categories() {
		commits := buckets[cat]
		if len(commits) == 0 {
			continue
		}
		if _, err := io.WriteString(w, "\n"+cat.Header()+"\n\n"); err != nil {
			return err
		}
		for _, c := range commits {
			if _, err := io.WriteString(w, formatEntry(c)); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatEntry formats a single changelog entry line.
func formatEntry(c Commit) string {
	summary := StripMarkdownLinks(c.Summary())
	return fmt.Sprintf("- **%s** %s (%s, %s)\n",
		c.Date.Format("2006-01-02"), summary, c.ShortSHA(), c.Author)
}
