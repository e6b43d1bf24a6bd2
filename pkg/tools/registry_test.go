package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitToolName(t *testing.T) {
	provider, action, err := SplitToolName("gmail.send")
	require.NoError(t, err)
	assert.Equal(t, "gmail", provider)
	assert.Equal(t, "send", action)

	provider, action, err = SplitToolName("salesforce.update_lead")
	require.NoError(t, err)
	assert.Equal(t, "salesforce", provider)
	assert.Equal(t, "update_lead", action)

	for _, bad := range []string{"", "gmail", "gmail.", ".send", "gmail.send.now", "gm ail.send"} {
		_, _, err := SplitToolName(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestExpandPath(t *testing.T) {
	path, body := expandPath("services/data/v58.0/sobjects/Lead/{id}", map[string]any{
		"id":     "L1",
		"Status": "Working",
	})
	assert.Equal(t, "services/data/v58.0/sobjects/Lead/L1", path)
	assert.Equal(t, map[string]any{"Status": "Working"}, body, "consumed path params leave the body")

	path, body = expandPath("gmail/v1/users/me/messages/send", map[string]any{"to": "a@b.c"})
	assert.Equal(t, "gmail/v1/users/me/messages/send", path)
	assert.Equal(t, map[string]any{"to": "a@b.c"}, body)
}

type fakeProxy struct {
	providerConfigKey string
	connectionID      string
	method            string
	path              string
	body              any
	result            any
	err               error
}

func (f *fakeProxy) Proxy(_ context.Context, providerConfigKey, connectionID, method, path string, body any) (any, error) {
	f.providerConfigKey = providerConfigKey
	f.connectionID = connectionID
	f.method = method
	f.path = path
	f.body = body
	return f.result, f.err
}

type fakeResolver struct {
	connections map[string]string // provider → connection id
}

func (f *fakeResolver) ConnectionIDFor(_ context.Context, _, provider string) (string, error) {
	return f.connections[provider], nil
}

func TestExecutorExecute(t *testing.T) {
	proxy := &fakeProxy{result: map[string]any{"id": "sent-1"}}
	resolver := &fakeResolver{connections: map[string]string{"gmail": "conn-1"}}
	exec := NewGatewayExecutor(proxy, resolver)

	result, err := exec.Execute(context.Background(), "gmail.send",
		map[string]any{"to": "a@b.c"}, "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "sent-1"}, result)
	assert.Equal(t, "gmail", proxy.providerConfigKey)
	assert.Equal(t, "conn-1", proxy.connectionID)
	assert.Equal(t, "POST", proxy.method)
	assert.Equal(t, "gmail/v1/users/me/messages/send", proxy.path)
}

func TestExecutorUnknownTool(t *testing.T) {
	exec := NewGatewayExecutor(&fakeProxy{}, &fakeResolver{})

	_, err := exec.Execute(context.Background(), "gmail.explode", nil, "u1")
	require.Error(t, err)
	assert.Equal(t, "Unknown tool: gmail.explode", err.Error())

	_, err = exec.Execute(context.Background(), "not-a-tool", nil, "u1")
	assert.Error(t, err)
}

func TestExecutorMissingConnection(t *testing.T) {
	exec := NewGatewayExecutor(&fakeProxy{}, &fakeResolver{connections: map[string]string{}})

	_, err := exec.Execute(context.Background(), "gmail.send", nil, "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no gmail connection")
}

func TestExecutorPathPlaceholder(t *testing.T) {
	proxy := &fakeProxy{result: "ok"}
	resolver := &fakeResolver{connections: map[string]string{"salesforce": "sf-1"}}
	exec := NewGatewayExecutor(proxy, resolver)

	_, err := exec.Execute(context.Background(), "salesforce.update_lead",
		map[string]any{"id": "L1", "Status": "Working"}, "u1")
	require.NoError(t, err)
	assert.Equal(t, "services/data/v58.0/sobjects/Lead/L1", proxy.path)
	assert.Equal(t, map[string]any{"Status": "Working"}, proxy.body)
}
