// Package mcp exposes the palintape engine as a Model Context Protocol
// server so agent hosts can check palindromes and inspect traces as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/palintape"
	"github.com/aretw0/palintape/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CheckResponse is the structured output of the check_palindrome tool.
type CheckResponse struct {
	Input   string             `json:"input" jsonschema_description:"The candidate string"`
	Output  string             `json:"output" jsonschema_description:"The final decoded tape content"`
	Verdict domain.Verdict     `json:"verdict" jsonschema_description:"yes, no or malformed"`
	Steps   uint64             `json:"steps" jsonschema_description:"Number of machine steps executed"`
	Outcome domain.StepOutcome `json:"outcome" jsonschema_description:"Terminal step outcome"`
}

// TraceResponse is the structured output of the trace_run tool.
type TraceResponse struct {
	CheckResponse
	Trace []domain.StepRecord `json:"trace" jsonschema_description:"One record per executed step"`
}

// Engine defines the interface required by the MCP server.
type Engine interface {
	Execute(ctx context.Context, input string, onStep func(domain.StepRecord)) (*domain.RunResult, []domain.StepRecord, error)
	Rules() []domain.TableEntry
}

// Server wraps the palintape Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("palintape-mcp", strings.TrimSpace(palintape.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: check_palindrome
	checkTool := mcp.NewTool("check_palindrome",
		mcp.WithDescription("Decide whether a string over the alphabet {a, b} is a palindrome by running the Turing machine to completion."),
		mcp.WithString("input", mcp.Required(), mcp.Description("The candidate string; only 'a' and 'b' are accepted")),
		mcp.WithOutputSchema[CheckResponse](),
	)
	s.mcpServer.AddTool(checkTool, mcp.NewStructuredToolHandler(s.handleCheck))

	// TOOL: trace_run
	traceTool := mcp.NewTool("trace_run",
		mcp.WithDescription("Run the palindrome machine and return the full structured step trace."),
		mcp.WithString("input", mcp.Required(), mcp.Description("The candidate string; only 'a' and 'b' are accepted")),
		mcp.WithOutputSchema[TraceResponse](),
	)
	s.mcpServer.AddTool(traceTool, mcp.NewStructuredToolHandler(s.handleTrace))

	// TOOL: get_machine
	s.mcpServer.AddTool(mcp.NewTool("get_machine",
		mcp.WithDescription("Get the fixed transition table of the palindrome machine."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(s.engine.Rules())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) run(ctx context.Context, args map[string]interface{}) (*domain.RunResult, []domain.StepRecord, error) {
	input, _ := args["input"].(string)

	result, trace, err := s.engine.Execute(ctx, input, nil)
	if err != nil {
		slog.Warn("MCP: execution failed", "err", err, "input_size", len(input))
		return nil, nil, fmt.Errorf("execution failed: %w", err)
	}
	return result, trace, nil
}

func (s *Server) handleCheck(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CheckResponse, error) {
	result, _, err := s.run(ctx, args)
	if err != nil {
		return CheckResponse{}, err
	}
	return CheckResponse{
		Input:   result.Input,
		Output:  result.Output,
		Verdict: result.Verdict,
		Steps:   result.Steps,
		Outcome: result.Outcome,
	}, nil
}

func (s *Server) handleTrace(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TraceResponse, error) {
	result, trace, err := s.run(ctx, args)
	if err != nil {
		return TraceResponse{}, err
	}
	return TraceResponse{
		CheckResponse: CheckResponse{
			Input:   result.Input,
			Output:  result.Output,
			Verdict: result.Verdict,
			Steps:   result.Steps,
			Outcome: result.Outcome,
		},
		Trace: trace,
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: palintape://machine
	s.mcpServer.AddResource(mcp.NewResource("palintape://machine", "Palindrome Machine Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Rules())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal machine definition: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "palintape://machine",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
