package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogicalTable(t *testing.T) {
	for _, name := range []string{"books", "history", "plan", "favorites"} {
		got, err := ParseLogicalTable(name)
		assert.NoError(t, err)
		assert.Equal(t, LogicalTable(name), got)
	}

	for _, name := range []string{"", "Books", "book", "notes", "users"} {
		_, err := ParseLogicalTable(name)
		assert.Error(t, err, "expected %q to be rejected", name)
	}
}

func TestParseDeleteTarget(t *testing.T) {
	cases := map[string]DeleteTarget{
		"書籍":   DeleteBook,
		"閱讀歷史": DeleteHistory,
		"閱讀計劃": DeletePlan,
	}
	for label, want := range cases {
		got, err := ParseDeleteTarget(label)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, label := range []string{"", "books", "收藏清單", "筆記"} {
		_, err := ParseDeleteTarget(label)
		assert.Error(t, err, "expected %q to be rejected", label)
	}
}
