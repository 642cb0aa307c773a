package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doeshing/healthdesk-go/internal/app"
	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/cli/helpers"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/tools"
)

// NewToolsCommand creates the tools command with all subcommands
func NewToolsCommand(container *app.Container) *cobra.Command {
	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect and invoke the assessment tools",
	}

	toolsCmd.AddCommand(
		newToolsListCommand(container),
		newToolsRunCommand(container),
	)

	return toolsCmd
}

func newToolsListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Tools == nil {
				return errors.New(ErrAssessmentUnavailable)
			}
			return listTools(cmd.OutOrStdout(), helpers.ResolveFormat(cmd, container), container.Tools)
		},
	}
}

func newToolsRunCommand(container *app.Container) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "run <name> --data '{\"key\":\"value\"}'",
		Short: "Invoke a tool with JSON arguments and print its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Tools == nil {
				return errors.New(ErrAssessmentUnavailable)
			}
			input := &tools.Input{Name: args[0], Data: map[string]interface{}{}}
			if data != "" {
				if err := json.Unmarshal([]byte(data), &input.Data); err != nil {
					return fmt.Errorf("%w: --data must be a JSON object: %v", domain.ErrInvalidInput, err)
				}
			}
			result, err := container.Tools.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			if err := helpers.WriteJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("tool %s failed: %s", input.Name, result.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "Tool arguments as a JSON object")
	return cmd
}

func listTools(out io.Writer, format string, registry *tools.Registry) error {
	registered := registry.List()
	if format == domain.OutputJSON {
		type descriptor struct {
			Name        string        `json:"name"`
			Description string        `json:"description"`
			Schema      *tools.Schema `json:"schema"`
		}
		list := make([]descriptor, 0, len(registered))
		for _, tool := range registered {
			list = append(list, descriptor{Name: tool.Name(), Description: tool.Description(), Schema: tool.Schema()})
		}
		return helpers.WriteJSON(out, list)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, tool := range registered {
		fmt.Fprintf(tw, "%s\t%s\n", tool.Name(), tool.Description())
	}
	return tw.Flush()
}
