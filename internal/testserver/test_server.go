package testserver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"hrboard/internal/domain/tracker"
	"hrboard/internal/mcp"
	"hrboard/internal/persist"
)

// TestServer is an in-process hrboard server plus a connected MCP client
// session, wired over the SDK's in-memory transports.
type TestServer struct {
	Service *tracker.Service
	Gateway *persist.Gateway
	KV      *persist.Memory
	Session *sdkmcp.ClientSession
}

// New builds a server around the given initial records with a short
// debounce window so persistence is observable in tests.
func New(t *testing.T, initial []tracker.Record) *TestServer {
	t.Helper()

	kv := persist.NewMemory()
	gateway := persist.NewGateway(kv, "", 10*time.Millisecond, nil)
	svc := tracker.NewService(tracker.NewStore(initial), tracker.NewHistory(0), gateway, nil)

	server := mcp.NewServer(mcp.Config{Service: svc})

	ctx := context.Background()
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "hrboard-test", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Wait()
	})

	return &TestServer{
		Service: svc,
		Gateway: gateway,
		KV:      kv,
		Session: session,
	}
}

// CallTool invokes a tool and decodes its structured content into out.
func (ts *TestServer) CallTool(t *testing.T, name string, args any, out any) {
	t.Helper()

	res := ts.callTool(t, name, args)
	require.False(t, res.IsError, "tool %s returned an error: %s", name, resultText(res))
	if out == nil {
		return
	}
	payload, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, out))
}

// CallToolExpectError invokes a tool and returns the error text.
func (ts *TestServer) CallToolExpectError(t *testing.T, name string, args any) string {
	t.Helper()

	res := ts.callTool(t, name, args)
	require.True(t, res.IsError, "tool %s unexpectedly succeeded", name)
	return resultText(res)
}

func (ts *TestServer) callTool(t *testing.T, name string, args any) *sdkmcp.CallToolResult {
	t.Helper()

	res, err := ts.Session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	return res
}

func resultText(res *sdkmcp.CallToolResult) string {
	for _, content := range res.Content {
		if text, ok := content.(*sdkmcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}
