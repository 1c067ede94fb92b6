package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/motion-mcp/internal/logging"
)

const ServiceName = "Motion.ai MCP Server"

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP        *server.MCPServer
	HTTP       *server.StreamableHTTPServer
	Dispatcher *Dispatcher
	Handler    http.Handler

	jsonrpcPath string
	log         logging.Logger
}

func New(cfg Config) *Server {
	log := cfg.Logger.WithName("mcp")

	mcpServer := server.NewMCPServer(
		"motion-mcp-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	for _, tool := range catalog() {
		adapter, ok := cfg.ToolAdapters[tool.Name]
		if !ok {
			log.Info("tool has no adapter; not registered", "tool", tool.Name)
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	s := &Server{
		MCP:         mcpServer,
		HTTP:        httpServer,
		Dispatcher:  NewDispatcher(cfg.ToolAdapters, log),
		jsonrpcPath: cfg.JSONRPCPath,
		log:         log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /mcp", s.handleMCP)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)
	if s.jsonrpcPath != "" {
		mux.Handle(s.jsonrpcPath, httpServer)
	}

	s.Handler = withRequestID(withCORS(withAccessLog(log, mux)))
	return s
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	log := s.log.WithValues("requestID", RequestIDFrom(r.Context()))

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, log, "", &BadRequestError{Err: err})
		return
	}

	result, err := s.Dispatcher.Dispatch(r.Context(), req)
	if err != nil {
		s.writeError(w, log, req.Method, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) writeError(w http.ResponseWriter, log logging.Logger, method string, err error) {
	status, message := StatusFor(err)
	log.Error(err, "MCP Error", "method", method, "status", status)
	writeJSON(w, status, errorBody{Error: message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": ServiceName,
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	endpoints := map[string]string{
		"mcp":    "/mcp",
		"health": "/health",
	}
	if s.jsonrpcPath != "" {
		endpoints["jsonrpc"] = s.jsonrpcPath
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   ServiceName,
		"endpoints": endpoints,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
