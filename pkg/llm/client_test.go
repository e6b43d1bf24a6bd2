package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessages struct {
	resp   *sdk.Message
	err    error
	params sdk.MessageNewParams
}

func (f *fakeMessages) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	f.params = body
	return f.resp, f.err
}

func textMessage(parts ...string) *sdk.Message {
	blocks := make([]sdk.ContentBlockUnion, len(parts))
	for i, p := range parts {
		blocks[i] = sdk.ContentBlockUnion{Type: "text", Text: p}
	}
	return &sdk.Message{Content: blocks}
}

func TestNew(t *testing.T) {
	_, err := New(nil, Options{Model: "claude-sonnet-4-5"})
	assert.Error(t, err)

	_, err = New(&fakeMessages{}, Options{})
	assert.Error(t, err)

	c, err := New(&fakeMessages{}, Options{Model: "claude-sonnet-4-5"})
	require.NoError(t, err)
	assert.Equal(t, int64(1024), c.maxTokens)
}

func TestGenerate(t *testing.T) {
	t.Run("library prompt with string input", func(t *testing.T) {
		msg := &fakeMessages{resp: textMessage("a short ", "summary")}
		c, err := New(msg, Options{Model: "claude-sonnet-4-5", MaxTokens: 512})
		require.NoError(t, err)

		out, err := c.Generate(context.Background(), PromptSummarize, "quarterly numbers")
		require.NoError(t, err)
		assert.Equal(t, "a short summary", out)

		assert.Equal(t, sdk.Model("claude-sonnet-4-5"), msg.params.Model)
		assert.Equal(t, int64(512), msg.params.MaxTokens)
		require.Len(t, msg.params.Messages, 1)

		prompt := msg.params.Messages[0].Content[0].OfText.Text
		assert.True(t, strings.HasPrefix(prompt, Instruction(PromptSummarize)))
		assert.Contains(t, prompt, "quarterly numbers")
	})

	t.Run("unknown key is a raw instruction", func(t *testing.T) {
		msg := &fakeMessages{resp: textMessage("done")}
		c, err := New(msg, Options{Model: "m"})
		require.NoError(t, err)

		_, err = c.Generate(context.Background(), "Translate this to French", nil)
		require.NoError(t, err)

		prompt := msg.params.Messages[0].Content[0].OfText.Text
		assert.True(t, strings.HasPrefix(prompt, "Translate this to French"))
	})

	t.Run("structured input is JSON encoded", func(t *testing.T) {
		msg := &fakeMessages{resp: textMessage("ok")}
		c, err := New(msg, Options{Model: "m"})
		require.NoError(t, err)

		_, err = c.Generate(context.Background(), PromptDraftReply, map[string]any{"from": "boss@corp.io"})
		require.NoError(t, err)

		prompt := msg.params.Messages[0].Content[0].OfText.Text
		assert.Contains(t, prompt, `{"from":"boss@corp.io"}`)
	})

	t.Run("api error surfaces", func(t *testing.T) {
		msg := &fakeMessages{err: errors.New("overloaded")}
		c, err := New(msg, Options{Model: "m"})
		require.NoError(t, err)

		_, err = c.Generate(context.Background(), PromptSummarize, "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "overloaded")
	})

	t.Run("non-text blocks skipped", func(t *testing.T) {
		msg := &fakeMessages{resp: &sdk.Message{Content: []sdk.ContentBlockUnion{
			{Type: "tool_use"},
			{Type: "text", Text: "kept"},
		}}}
		c, err := New(msg, Options{Model: "m"})
		require.NoError(t, err)

		out, err := c.Generate(context.Background(), PromptSummarize, "x")
		require.NoError(t, err)
		assert.Equal(t, "kept", out)
	})
}

func TestInstruction(t *testing.T) {
	assert.NotEqual(t, PromptSummarize, Instruction(PromptSummarize))
	assert.Equal(t, "do the thing", Instruction("do the thing"))
}
