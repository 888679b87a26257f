package changelog

import (
	"regexp"
	"strings"
)

// Category buckets commits by conventional-commit type for grouped rendering.
type Category string

const (
	CategoryFeature  Category = "feature"
	CategoryBug      Category = "bug"
	CategoryDocs     Category = "docs"
	CategoryRefactor Category = "refactor"
	CategoryTest     Category = "test"
	CategoryChore    Category = "chore"
	CategoryBreaking Category = "breaking"
)

// Categories returns all categories in their rendering order.
func Categories() []Category {
	return []Category{
		CategoryFeature,
		CategoryBug,
		CategoryDocs,
		CategoryRefactor,
		CategoryTest,
		CategoryChore,
		CategoryBreaking,
	}
}

// Header returns the markdown section heading for the category.
func (c Category) Header() string {
	switch c {
	case CategoryFeature:
		return "### ✨ New Features"
	case CategoryBug:
		return "### 🐛 Bug Fixes"
	case CategoryDocs:
		return "### 📚 Documentation"
	case CategoryRefactor:
		return "### ♻️ Code Refactoring"
	case CategoryTest:
		return "### 🧪 Tests"
	case CategoryBreaking:
		return "### ⚠️ Breaking Changes"
	default:
		return "### 🔧 Maintenance"
	}
}

// conventionalPattern matches conventional-commit summaries like
// "feat(parser): add X" or "fix!: correct Y".
var conventionalPattern = regexp.MustCompile(`^(feat|fix|docs|refactor|test|chore|breaking)(\([^)]*\))?!?: `)

// typeMapping maps conventional-commit types to categories.
var typeMapping = map[string]Category{
	"feat":     CategoryFeature,
	"fix":      CategoryBug,
	"docs":     CategoryDocs,
	"refactor": CategoryRefactor,
	"test":     CategoryTest,
	"chore":    CategoryChore,
	"breaking": CategoryBreaking,
}

// Classify buckets a commit by the conventional-commit prefix of its summary.
// A "!" breaking marker wins over the base type. Everything unrecognized
// lands in maintenance.
func Classify(c Commit) Category {
	m := conventionalPattern.FindStringSubmatch(c.Summary())
	if m == nil {
		return CategoryChore
	}
	if strings.Contains(m[0], "!") {
		return CategoryBreaking
	}
	if cat, ok := typeMapping[m[1]]; ok {
		return cat
	}
	return CategoryChore
}

// markdownLinkPattern matches inline markdown links so summaries can be
// flattened to their link text.
var markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)

// StripMarkdownLinks replaces markdown links in s with their link text.
func StripMarkdownLinks(s string) string {
	return markdownLinkPattern.ReplaceAllString(s, "$1")
}
