// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"

	"guppi-cli/internal/scaffold"

	"github.com/spf13/cobra"
)

// newToolInitCommand creates the `guppi tool init` command.
func newToolInitCommand() *cobra.Command {
	var (
		description string
		template    string
	)

	cmd := &cobra.Command{
		Use:   "init <dir> <name>",
		Short: "Scaffold a new GUPPI tool",
		Long: `Scaffold a new GUPPI tool directory inside <dir>.

The name is sanitized to lowercase alphanumerics and dashes. The generated
directory carries a pyproject.toml with [tool.guppi] metadata, so it is
immediately discoverable once <dir> is a registered source.`,
		Example: `  guppi tool init . my-tool --description "My test tool"
  guppi tool init ~/dev/my-tools demo --template example`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runToolInit(cmd.OutOrStdout(), args[0], args[1], description, template)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "tool description")
	cmd.Flags().StringVarP(&template, "template", "t", string(scaffold.TemplateMinimal), "template to use (minimal or example)")

	return cmd
}

func runToolInit(stdout io.Writer, parentDir, rawName, description, template string) error {
	tmpl := scaffold.Template(template)
	if tmpl != scaffold.TemplateMinimal && tmpl != scaffold.TemplateExample {
		return &ExitError{Code: 1, Err: fmt.Errorf("unknown template '%s' (expected minimal or example)", template)}
	}

	name := scaffold.SanitizeName(rawName)
	if name != rawName && name != "" {
		fmt.Fprintf(stdout, "Tool name sanitized: '%s' → '%s'\n", rawName, name)
	}

	toolDir, err := scaffold.InitTool(parentDir, scaffold.ToolOptions{
		Name:        rawName,
		Description: description,
		Template:    tmpl,
	})
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Fprintln(stdout, SuccessStyle.Render(successIcon)+fmt.Sprintf(" Initialized GUPPI tool '%s'", name))
	fmt.Fprintf(stdout, "  Path: %s\n", DimStyle.Render(toolDir))
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Next steps:")
	fmt.Fprintf(stdout, "  1. Edit %s to implement your tool\n", DimStyle.Render("src/"+scaffold.PackageName(name)+"/cli.py"))
	fmt.Fprintf(stdout, "  2. Install it with %s\n", CmdStyle.Render("guppi tool install "+name+" --from "+toolDir))
	return nil
}
