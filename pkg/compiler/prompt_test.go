package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPrompt(t *testing.T) {
	t.Run("when and then", func(t *testing.T) {
		rule, err := SplitPrompt("when I get an email from my boss then summarize it")
		require.NoError(t, err)
		assert.Equal(t, "I get an email from my boss", rule.When)
		assert.Empty(t, rule.If)
		assert.Equal(t, "summarize it", rule.Then)
	})

	t.Run("with if clause", func(t *testing.T) {
		rule, err := SplitPrompt("when a lead changes stage if the amount is over 5000 then create a task")
		require.NoError(t, err)
		assert.Equal(t, "a lead changes stage", rule.When)
		assert.Equal(t, "the amount is over 5000", rule.If)
		assert.Equal(t, "create a task", rule.Then)
	})

	t.Run("case insensitive markers", func(t *testing.T) {
		rule, err := SplitPrompt("When a meeting is starting Then draft a reminder")
		require.NoError(t, err)
		assert.Equal(t, "a meeting is starting", rule.When)
		assert.Equal(t, "draft a reminder", rule.Then)
	})

	t.Run("punctuation trimmed", func(t *testing.T) {
		rule, err := SplitPrompt("when an email arrives, then reply to it.")
		require.NoError(t, err)
		assert.Equal(t, "an email arrives", rule.When)
		assert.Equal(t, "reply to it", rule.Then)
	})

	t.Run("missing markers rejected", func(t *testing.T) {
		for _, bad := range []string{
			"summarize my emails",
			"when an email arrives",
			"then summarize it when an email arrives",
			"when then",
		} {
			_, err := SplitPrompt(bad)
			assert.Error(t, err, "expected error for %q", bad)
		}
	})
}
