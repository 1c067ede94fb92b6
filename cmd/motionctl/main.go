package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/go-logr/logr"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/motion-mcp/internal/config"
	"github.com/roivaz/motion-mcp/internal/logging"
	"github.com/roivaz/motion-mcp/internal/mcp"
	"github.com/roivaz/motion-mcp/internal/motion"
)

func main() {
	root := newRootCmd()
	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("motionctl: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "motionctl",
		Short:         "Inspect and invoke the Motion MCP tools from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("motion-api-key", "", "Motion API key (overrides MOTION_API_KEY)")
	root.PersistentFlags().String("motion-base-url", config.DefaultMotionBaseURL, "Motion API base URL")
	root.PersistentFlags().Bool("verbose", false, "Log Motion API calls to stderr")

	root.AddCommand(newToolsCmd(), newCallCmd())
	return root
}

func newToolsCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCatalog(cmd.OutOrStdout(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format (json or yaml)")
	return cmd
}

func newCallCmd() *cobra.Command {
	var rawArgs []string
	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Invoke one tool against the Motion API and print its text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments, err := parseArgs(rawArgs)
			if err != nil {
				return err
			}
			settings, err := config.Load()
			if err != nil {
				return err
			}

			base := logr.Discard()
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				base = logging.DefaultLogger()
			}
			logger := logging.New(base)

			client := motion.NewClient(motion.Config{
				BaseURL: settings.MotionBaseURL,
				APIKey:  settings.MotionAPIKey,
				Timeout: settings.MotionTimeout,
				Logger:  logger,
			})
			dispatcher := mcp.NewDispatcher(mcp.Adapters(client), logger)

			params, err := json.Marshal(map[string]any{"name": args[0], "arguments": arguments})
			if err != nil {
				return err
			}
			out, err := dispatcher.Dispatch(cmd.Context(), mcp.Request{Method: mcp.MethodToolsCall, Params: params})
			if err != nil {
				_, message := mcp.StatusFor(err)
				return fmt.Errorf("%s", message)
			}
			return writeText(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringArrayVar(&rawArgs, "arg", nil, "Tool argument as key=value (repeatable)")
	return cmd
}

func writeCatalog(w io.Writer, output string) error {
	data, err := json.MarshalIndent(mcp.Catalog(), "", "  ")
	if err != nil {
		return err
	}
	switch strings.ToLower(output) {
	case "json":
	case "yaml":
		if data, err = yaml.JSONToYAML(data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output %q (want json or yaml)", output)
	}
	_, err = fmt.Fprintln(w, strings.TrimRight(string(data), "\n"))
	return err
}

func parseArgs(raw []string) (map[string]any, error) {
	out := make(map[string]any, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("--arg %q must be key=value", kv)
		}
		out[key] = value
	}
	return out, nil
}

func writeText(w io.Writer, out any) error {
	result, ok := out.(*mcpgo.CallToolResult)
	if !ok {
		return fmt.Errorf("unexpected tool result %T", out)
	}
	for _, block := range result.Content {
		if text, ok := block.(mcpgo.TextContent); ok {
			if _, err := fmt.Fprintln(w, text.Text); err != nil {
				return err
			}
		}
	}
	return nil
}
