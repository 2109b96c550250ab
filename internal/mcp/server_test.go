package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeshsurya/React-Flow-MCP-Server/internal/breaker"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/cache"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/catalog"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/dispatch"
)

// runSession feeds newline-delimited requests through a fresh server and
// returns the decoded responses in order.
func runSession(t *testing.T, requests ...string) []map[string]interface{} {
	t.Helper()

	d := dispatch.New(catalog.New(), breaker.New(breaker.DefaultConfig()), cache.NewQueryCache(0), nil)

	in := strings.NewReader(strings.Join(requests, "\n") + "\n")
	var out bytes.Buffer
	srv := NewServer("reactflow-docs", "test", d, nil, in, &out)

	require.NoError(t, srv.Run(context.Background()))

	var responses []map[string]interface{}
	scanner := bufio.NewScanner(&out)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}
	require.NoError(t, scanner.Err())
	return responses
}

func TestServer_Initialize(t *testing.T) {
	responses := runSession(t,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`,
	)

	require.Len(t, responses, 1)
	resp := responses[0]
	assert.Equal(t, "2.0", resp["jsonrpc"])
	assert.Equal(t, float64(1), resp["id"])

	result := resp["result"].(map[string]interface{})
	assert.Equal(t, "2024-11-05", result["protocolVersion"])

	info := result["serverInfo"].(map[string]interface{})
	assert.Equal(t, "reactflow-docs", info["name"])
	assert.Equal(t, "test", info["version"])

	caps := result["capabilities"].(map[string]interface{})
	assert.Contains(t, caps, "tools")
}

func TestServer_Ping(t *testing.T) {
	responses := runSession(t, `{"jsonrpc":"2.0","id":7,"method":"ping"}`)

	require.Len(t, responses, 1)
	assert.Equal(t, float64(7), responses[0]["id"])
	assert.NotContains(t, responses[0], "error")
}

func TestServer_ToolsList(t *testing.T) {
	responses := runSession(t, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

	require.Len(t, responses, 1)
	result := responses[0]["result"].(map[string]interface{})
	tools := result["tools"].([]interface{})
	require.Len(t, tools, 11)

	byName := make(map[string]map[string]interface{}, len(tools))
	for _, raw := range tools {
		tl := raw.(map[string]interface{})
		byName[tl["name"].(string)] = tl
	}

	getComponent, ok := byName["get_component"]
	require.True(t, ok)
	schema := getComponent["inputSchema"].(map[string]interface{})
	assert.Equal(t, "object", schema["type"])
	assert.Contains(t, schema["required"], "componentName")

	props := schema["properties"].(map[string]interface{})
	nameProp := props["componentName"].(map[string]interface{})
	assert.Equal(t, "string", nameProp["type"])
	assert.Equal(t, float64(1000), nameProp["maxLength"])

	listUtilities, ok := byName["list_utilities"]
	require.True(t, ok)
	listSchema := listUtilities["inputSchema"].(map[string]interface{})
	assert.NotContains(t, listSchema, "required")
}

func TestServer_ToolCall(t *testing.T) {
	t.Run("successful call returns content", func(t *testing.T) {
		responses := runSession(t,
			`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"get_component","arguments":{"componentName":"ReactFlow"}}}`,
		)

		require.Len(t, responses, 1)
		result := responses[0]["result"].(map[string]interface{})
		assert.Nil(t, result["isError"])

		content := result["content"].([]interface{})
		require.Len(t, content, 1)
		block := content[0].(map[string]interface{})
		assert.Equal(t, "text", block["type"])
		assert.Contains(t, block["text"], "ReactFlow")
		assert.Contains(t, block["text"], "## Props")
	})

	t.Run("validation failure is an isError result", func(t *testing.T) {
		responses := runSession(t,
			`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"get_component","arguments":{}}}`,
		)

		require.Len(t, responses, 1)
		resp := responses[0]
		assert.NotContains(t, resp, "error", "tool failures are results, not protocol errors")

		result := resp["result"].(map[string]interface{})
		assert.Equal(t, true, result["isError"])

		content := result["content"].([]interface{})
		block := content[0].(map[string]interface{})
		assert.Contains(t, block["text"], "componentName")
	})

	t.Run("unknown tool name is an isError result", func(t *testing.T) {
		responses := runSession(t,
			`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"no_such_tool","arguments":{}}}`,
		)

		require.Len(t, responses, 1)
		result := responses[0]["result"].(map[string]interface{})
		assert.Equal(t, true, result["isError"])
	})

	t.Run("missing tool name is a protocol error", func(t *testing.T) {
		responses := runSession(t,
			`{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"arguments":{}}}`,
		)

		require.Len(t, responses, 1)
		errObj := responses[0]["error"].(map[string]interface{})
		assert.Equal(t, float64(codeInvalidParams), errObj["code"])
	})
}

func TestServer_Routing(t *testing.T) {
	t.Run("unknown method gets method-not-found", func(t *testing.T) {
		responses := runSession(t, `{"jsonrpc":"2.0","id":9,"method":"resources/list"}`)

		require.Len(t, responses, 1)
		errObj := responses[0]["error"].(map[string]interface{})
		assert.Equal(t, float64(codeMethodNotFound), errObj["code"])
	})

	t.Run("notifications get no response", func(t *testing.T) {
		responses := runSession(t,
			`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
			`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		)

		require.Len(t, responses, 1)
		assert.Equal(t, float64(1), responses[0]["id"])
	})

	t.Run("request without a method is invalid", func(t *testing.T) {
		responses := runSession(t, `{"jsonrpc":"2.0","id":6}`)

		require.Len(t, responses, 1)
		errObj := responses[0]["error"].(map[string]interface{})
		assert.Equal(t, float64(codeInvalidRequest), errObj["code"])
	})

	t.Run("malformed json gets a parse error", func(t *testing.T) {
		responses := runSession(t,
			`{not json`,
			`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		)

		require.Len(t, responses, 2)
		errObj := responses[0]["error"].(map[string]interface{})
		assert.Equal(t, float64(codeParseError), errObj["code"])
		assert.Equal(t, float64(1), responses[1]["id"])
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		responses := runSession(t,
			``,
			`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		)

		require.Len(t, responses, 1)
	})
}

func TestServer_SessionFlow(t *testing.T) {
	responses := runSession(t,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"search_examples","arguments":{"query":"drag drop"}}}`,
	)

	require.Len(t, responses, 3)
	assert.Equal(t, float64(1), responses[0]["id"])
	assert.Equal(t, float64(2), responses[1]["id"])
	assert.Equal(t, float64(3), responses[2]["id"])

	result := responses[2]["result"].(map[string]interface{})
	content := result["content"].([]interface{})
	block := content[0].(map[string]interface{})
	assert.Contains(t, block["text"], "drag-and-drop")
}

func TestToolList_MatchesRuleTable(t *testing.T) {
	tools := toolList()
	require.Len(t, tools, 11)

	seen := make(map[string]bool)
	for _, tl := range tools {
		assert.NotEmpty(t, tl.Description, tl.Name)
		assert.Equal(t, "object", tl.InputSchema.Type)
		seen[tl.Name] = true
	}
	for _, name := range []string{
		"get_component", "list_components", "get_hook", "list_hooks",
		"get_type", "list_types", "get_utility", "list_utilities",
		"get_example", "search_examples", "get_docs",
	} {
		assert.True(t, seen[name], name)
	}
}
