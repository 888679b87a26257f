package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		message string
		want    Category
	}{
		"feat":                        {"feat: add CSV export", CategoryFeature},
		"feat with scope":             {"feat(export): add CSV export", CategoryFeature},
		"fix":                         {"fix: handle nil pointer", CategoryBug},
		"docs":                        {"docs: update install guide", CategoryDocs},
		"refactor":                    {"refactor(core): split parser", CategoryRefactor},
		"test":                        {"test: cover pagination", CategoryTest},
		"chore":                       {"chore: bump deps", CategoryChore},
		"breaking type":               {"breaking: drop v1 API", CategoryBreaking},
		"breaking marker":             {"feat!: drop v1 API", CategoryBreaking},
		"breaking marker with scope":  {"fix(api)!: change response shape", CategoryBreaking},
		"plain message":               {"Update readme", CategoryChore},
		"type without colon":          {"feat add export", CategoryChore},
		"unknown type":                {"perf: speed up render", CategoryChore},
		"classifies by summary only":  {"Update readme\n\nfix: not a prefix", CategoryChore},
		"summary prefix on multiline": {"fix: crash on empty repo\n\nDetails here", CategoryBug},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Classify(Commit{Message: tt.message})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripMarkdownLinks(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"single link":  {"see [docs](https://example.com)", "see docs"},
		"two links":    {"[a](x) and [b](y)", "a and b"},
		"no links":     {"plain text", "plain text"},
		"bare bracket": {"array[0] access", "array[0] access"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkdownLinks(tt.in))
		})
	}
}

func TestCommit_Summary(t *testing.T) {
	assert.Equal(t, "first line", Commit{Message: "first line\nsecond line"}.Summary())
	assert.Equal(t, "only line", Commit{Message: "only line"}.Summary())
	assert.Equal(t, "trimmed", Commit{Message: "trimmed \nbody"}.Summary())
	assert.Equal(t, "", Commit{}.Summary())
}

func TestCommit_ShortSHA(t *testing.T) {
	assert.Equal(t, "0123456", Commit{SHA: "0123456789abcdef"}.ShortSHA())
	assert.Equal(t, "abc123", Commit{SHA: "abc123"}.ShortSHA())
}
