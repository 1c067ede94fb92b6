package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/motion-mcp/internal/mcp/tools/types"
	"github.com/roivaz/motion-mcp/internal/motion"
)

// bind decodes the request into the variant T, failing if the request was
// routed to the wrong handler.
func bind[T types.Arguments](req mcp.CallToolRequest) (T, error) {
	var zero T
	args, err := types.ParseArguments(req)
	if err != nil {
		return zero, err
	}
	typed, ok := args.(T)
	if !ok {
		return zero, fmt.Errorf("tool %s routed to %s handler", args.Tool(), zero.Tool())
	}
	return typed, nil
}

func indentedResult(raw string) (*mcp.CallToolResult, error) {
	text, err := motion.Indent(raw)
	if err != nil {
		return nil, fmt.Errorf("format response: %w", err)
	}
	return mcp.NewToolResultText(text), nil
}
