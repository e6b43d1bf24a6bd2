package shaper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

func TestParseAddress(t *testing.T) {
	email, name := parseAddress(`"Pat Boss" <boss@corp.io>`)
	assert.Equal(t, "boss@corp.io", email)
	assert.Equal(t, "Pat Boss", name)

	email, name = parseAddress("Pat Boss <boss@corp.io>")
	assert.Equal(t, "boss@corp.io", email)
	assert.Equal(t, "Pat Boss", name)

	email, name = parseAddress("boss@corp.io")
	assert.Equal(t, "boss@corp.io", email)
	assert.Empty(t, name)
}

func TestShapeEmailEvents(t *testing.T) {
	t.Run("plain received", func(t *testing.T) {
		state := map[string]any{}
		events := shapeEmailEvents([]map[string]any{
			{"id": "m1", "from": "boss@corp.io", "thread_id": "t1", "subject": "status?"},
		}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "email_received", events[0].Event)
		assert.Equal(t, "gmail", events[0].Source)
		assert.Equal(t, "u1", events[0].UserID)
		assert.Equal(t, "gmail:m1", events[0].Meta.DedupeKey)
		assert.Equal(t, "boss@corp.io", events[0].Payload["from"])
	})

	t.Run("in_reply_to is a reply", func(t *testing.T) {
		state := map[string]any{}
		events := shapeEmailEvents([]map[string]any{
			{"id": "m2", "from": "boss@corp.io", "thread_id": "t1", "in_reply_to": "m1"},
		}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "email_reply_received", events[0].Event)
	})

	t.Run("known thread is a reply", func(t *testing.T) {
		state := map[string]any{
			"t1": map[string]any{"last_message_id": "m1", "message_count": float64(1)},
		}
		events := shapeEmailEvents([]map[string]any{
			{"id": "m2", "from": "other@corp.io", "thread_id": "t1"},
		}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "email_reply_received", events[0].Event)
	})

	t.Run("second message of batch sees first's thread", func(t *testing.T) {
		state := map[string]any{}
		events := shapeEmailEvents([]map[string]any{
			{"id": "m1", "from": "boss@corp.io", "thread_id": "t9"},
			{"id": "m2", "from": "boss@corp.io", "thread_id": "t9"},
		}, "u1", state, testNow)

		require.Len(t, events, 2)
		assert.Equal(t, "email_received", events[0].Event)
		assert.Equal(t, "email_reply_received", events[1].Event)
	})

	t.Run("automated senders dropped", func(t *testing.T) {
		state := map[string]any{}
		records := []map[string]any{
			{"id": "a1", "from": "noreply@corp.io"},
			{"id": "a2", "from": "no-reply@corp.io"},
			{"id": "a3", "from": "notifications@corp.io"},
			{"id": "a4", "from": "newsletter@corp.io"},
			{"id": "a5", "from": "mailer-daemon@corp.io"},
		}
		events := shapeEmailEvents(records, "u1", state, testNow)
		assert.Empty(t, events)
	})

	t.Run("sent label", func(t *testing.T) {
		state := map[string]any{}
		events := shapeEmailEvents([]map[string]any{
			{"id": "s1", "from": "pat@corp.io", "labels": []any{"SENT"}},
		}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "email_sent", events[0].Event)
	})

	t.Run("from me heuristic", func(t *testing.T) {
		state := map[string]any{}
		events := shapeEmailEvents([]map[string]any{
			{"id": "s2", "from": "me@corp.io"},
		}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "email_sent", events[0].Event)
	})

	t.Run("thread state updated", func(t *testing.T) {
		state := map[string]any{}
		shapeEmailEvents([]map[string]any{
			{"id": "m1", "from": "boss@corp.io", "thread_id": "t1"},
		}, "u1", state, testNow)

		ts := getMap(state, "t1")
		require.NotNil(t, ts)
		assert.Equal(t, "m1", ts["last_message_id"])
		assert.Equal(t, float64(1), ts["message_count"])
	})

	t.Run("record without id skipped", func(t *testing.T) {
		events := shapeEmailEvents([]map[string]any{
			{"from": "boss@corp.io"},
		}, "u1", map[string]any{}, testNow)
		assert.Empty(t, events)
	})
}
