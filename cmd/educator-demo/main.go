// educator-demo generates canned educational text from templates without
// loading any model. It exists for offline experimentation with the content
// formats served by educatord.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"educatord/internal/demo"
	"educatord/pkg/types"
)

func buildRootCmd() *cobra.Command {
	var (
		contentType string
		context     string
	)
	root := &cobra.Command{
		Use:           "educator-demo [prompt]",
		Short:         "Generate template-based educational content (no model)",
		Example:       "  educator-demo --type quiz \"What is photosynthesis?\"",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.TrimSpace(strings.Join(args, " "))
			if prompt == "" {
				return fmt.Errorf("prompt must not be empty")
			}
			ct := types.ContentType(contentType)
			if !ct.Valid() {
				return fmt.Errorf("unknown content type %q (one of: %s)", contentType, joinContentTypes())
			}
			res := demo.Generate(prompt, ct, strings.TrimSpace(context))
			fmt.Fprintf(cmd.OutOrStdout(), "Topic: %s\nType: %s\n\n%s\n", res.Topic, res.ContentType, res.GeneratedText)
			return nil
		},
	}
	root.Flags().StringVarP(&contentType, "type", "t", string(types.ContentExplanation), "Content type: "+joinContentTypes())
	root.Flags().StringVarP(&context, "context", "c", "", "Additional context appended to the output")

	listCmd := &cobra.Command{
		Use:   "types",
		Short: "List available content types",
		Run: func(cmd *cobra.Command, args []string) {
			for _, ct := range types.AllContentTypes {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", ct, ct.Description())
			}
		},
	}
	root.AddCommand(listCmd)
	return root
}

func joinContentTypes() string {
	parts := make([]string, 0, len(types.AllContentTypes))
	for _, ct := range types.AllContentTypes {
		parts = append(parts, string(ct))
	}
	return strings.Join(parts, "|")
}

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
