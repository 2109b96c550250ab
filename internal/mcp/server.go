package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/yeshsurya/React-Flow-MCP-Server/internal/dispatch"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/logging"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/validation"
)

// maxLineBytes bounds a single JSON-RPC message on stdin.
const maxLineBytes = 1 << 20

// Server reads line-delimited JSON-RPC requests from in and writes responses
// to out. Requests are handled sequentially in arrival order, but the
// dispatcher and everything behind it stay safe under concurrent use.
type Server struct {
	name       string
	version    string
	dispatcher *dispatch.Dispatcher
	logger     logging.Logger

	in  io.Reader
	out io.Writer
	// guards out; responses must not interleave
	writeMu sync.Mutex
}

// NewServer creates an MCP server over the given streams.
func NewServer(name, version string, d *dispatch.Dispatcher, logger logging.Logger, in io.Reader, out io.Writer) *Server {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Server{
		name:       name,
		version:    version,
		dispatcher: d,
		logger:     logger.WithComponent("mcp"),
		in:         in,
		out:        out,
	}
}

// Run processes requests until the input stream closes or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	s.logger.Info(ctx, "MCP server listening on stdio", "server", s.name, "version", s.version)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn(ctx, err, "Failed to parse request")
			s.writeError(nil, codeParseError, "parse error")
			continue
		}

		s.handle(ctx, &req)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stdin read failed: %w", err)
	}

	s.logger.Info(ctx, "MCP client disconnected")
	return nil
}

// handle routes a single request. Requests without an id are notifications
// and never get a response.
func (s *Server) handle(ctx context.Context, req *request) {
	if req.ID == nil {
		// The only notification we care about is initialized; everything
		// else is ignored per the protocol.
		s.logger.Debug(ctx, "Notification received", "method", req.Method)
		return
	}

	if req.Method == "" {
		s.writeError(req.ID, codeInvalidRequest, "method is required")
		return
	}

	switch req.Method {
	case "initialize":
		s.writeResult(req.ID, initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    serverCapabilities{Tools: toolsCapability{ListChanged: false}},
			ServerInfo:      serverInfo{Name: s.name, Version: s.version},
		})
	case "ping":
		s.writeResult(req.ID, struct{}{})
	case "tools/list":
		s.writeResult(req.ID, listToolsResult{Tools: toolList()})
	case "tools/call":
		s.handleToolCall(ctx, req)
	default:
		s.writeError(req.ID, codeMethodNotFound, fmt.Sprintf("method %q not found", req.Method))
	}
}

func (s *Server) handleToolCall(ctx context.Context, req *request) {
	var params callToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.writeError(req.ID, codeInvalidParams, "invalid tools/call params")
		return
	}
	if params.Name == "" {
		s.writeError(req.ID, codeInvalidParams, "tool name is required")
		return
	}

	result, err := s.dispatcher.Dispatch(ctx, params.Name, params.Arguments)
	if err != nil {
		// Tool-level failures (validation, circuit open, handler faults)
		// come back as isError results, not protocol errors, so the client
		// can show them to the model.
		s.writeResult(req.ID, callToolResult{
			Content: []contentBlock{{Type: "text", Text: err.Error()}},
			IsError: true,
		})
		return
	}

	blocks := make([]contentBlock, 0, len(result.Content))
	for _, c := range result.Content {
		blocks = append(blocks, contentBlock{Type: c.Type, Text: c.Text})
	}
	s.writeResult(req.ID, callToolResult{Content: blocks})
}

// toolList derives the advertised tools from the validation rule table, so
// the schemas can never drift from what the validator enforces.
func toolList() []tool {
	rules := validation.Rules()
	tools := make([]tool, 0, len(rules))

	for _, r := range rules {
		schema := inputSchema{
			Type:       "object",
			Properties: make(map[string]schemaProperty, len(r.Params)),
		}
		for _, p := range r.Params {
			schema.Properties[p.Name] = schemaProperty{
				Type:        "string",
				Description: p.Description,
				MaxLength:   validation.MaxParamLength,
			}
			if p.Required {
				schema.Required = append(schema.Required, p.Name)
			}
		}
		tools = append(tools, tool{
			Name:        r.Operation,
			Description: r.Description,
			InputSchema: schema,
		})
	}
	return tools
}

func (s *Server) writeResult(id json.RawMessage, result interface{}) {
	s.write(response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) writeError(id json.RawMessage, code int, message string) {
	if id == nil {
		id = json.RawMessage("null")
	}
	s.write(response{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}})
}

func (s *Server) write(resp response) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	enc := json.NewEncoder(s.out)
	if err := enc.Encode(resp); err != nil {
		s.logger.Error(context.Background(), err, "Failed to write response")
	}
}
