// SPDX-License-Identifier: MPL-2.0

// Package scaffold generates new tool and source directories from embedded
// templates. Rendering is plain placeholder substitution; there is no
// templating language.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

//go:embed templates
var templates embed.FS

// Template selects the tool CLI flavor to generate.
type Template string

const (
	// TemplateMinimal generates a single hello command.
	TemplateMinimal Template = "minimal"
	// TemplateExample generates a fuller CLI with options and a second command.
	TemplateExample Template = "example"
)

// DefaultToolDescription substitutes for a missing tool description.
const DefaultToolDescription = "A GUPPI tool"

// DefaultSourceDescription substitutes for a missing source description.
const DefaultSourceDescription = "A GUPPI tool source"

var nonNameRun = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeName normalizes a raw name into the form tool and source names
// use: lowercase, alphanumeric runs joined by single dashes.
// "My Tool Name!" becomes "my-tool-name".
func SanitizeName(raw string) string {
	name := nonNameRun.ReplaceAllString(strings.ToLower(raw), "-")
	return strings.Trim(name, "-")
}

// PackageName derives the Python package name for a tool
// ("my-tool" becomes "guppi_my_tool").
func PackageName(toolName string) string {
	return "guppi_" + strings.ReplaceAll(toolName, "-", "_")
}

// render loads an embedded template and applies the substitutions.
func render(path string, subs map[string]string) (string, error) {
	data, err := templates.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("template %s: %w", path, err)
	}

	out := string(data)
	for key, value := range subs {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out, nil
}

// ToolOptions configures InitTool.
type ToolOptions struct {
	// Name is the tool name; it is sanitized before use.
	Name string
	// Description defaults to DefaultToolDescription.
	Description string
	// Template selects the CLI flavor (TemplateMinimal when empty).
	Template Template
}

// InitTool scaffolds a new tool directory under parentDir and returns its
// path. The target directory must not already exist; a partial failure
// removes what was created.
func InitTool(parentDir string, opts ToolOptions) (string, error) {
	name := SanitizeName(opts.Name)
	if name == "" {
		return "", fmt.Errorf("tool name '%s' has no usable characters", opts.Name)
	}

	description := opts.Description
	if description == "" {
		description = DefaultToolDescription
	}

	tmpl := opts.Template
	if tmpl == "" {
		tmpl = TemplateMinimal
	}
	cliTemplate := "templates/tool/cli_minimal.py"
	if tmpl == TemplateExample {
		cliTemplate = "templates/tool/cli_example.py"
	}

	toolDir := filepath.Join(parentDir, name)
	if _, err := os.Stat(toolDir); err == nil {
		return "", fmt.Errorf("directory already exists: %s", toolDir)
	}

	pkg := PackageName(name)
	subs := map[string]string{
		"tool_name":    name,
		"description":  description,
		"package_name": pkg,
	}

	pkgDir := filepath.Join(toolDir, "src", pkg)
	if err := os.MkdirAll(pkgDir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", pkgDir, err)
	}

	files := map[string]string{
		filepath.Join(toolDir, "pyproject.toml"): "templates/tool/pyproject.toml",
		filepath.Join(toolDir, "README.md"):      "templates/tool/README.md",
		filepath.Join(toolDir, ".gitignore"):     "templates/tool/gitignore",
		filepath.Join(pkgDir, "__init__.py"):     "templates/tool/init.py",
		filepath.Join(pkgDir, "cli.py"):          cliTemplate,
	}

	for dest, src := range files {
		content, err := render(src, subs)
		if err != nil {
			_ = os.RemoveAll(toolDir)
			return "", err
		}
		if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
			_ = os.RemoveAll(toolDir)
			return "", fmt.Errorf("writing %s: %w", dest, err)
		}
	}

	return toolDir, nil
}

// SourceOptions configures InitSource.
type SourceOptions struct {
	// Name defaults to the target directory's base name; it is sanitized
	// before use.
	Name string
	// Description defaults to DefaultSourceDescription.
	Description string
}

// InitSource writes source metadata files into dir, which must already
// exist. Existing files in the directory are left alone; the caller is
// responsible for confirming overwrites of the manifest itself.
func InitSource(dir string, opts SourceOptions) error {
	name := opts.Name
	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", dir, err)
		}
		name = filepath.Base(abs)
	}
	name = SanitizeName(name)
	if name == "" {
		return fmt.Errorf("source name '%s' has no usable characters", opts.Name)
	}

	description := opts.Description
	if description == "" {
		description = DefaultSourceDescription
	}

	subs := map[string]string{
		"name":        name,
		"description": description,
	}

	files := map[string]string{
		filepath.Join(dir, "pyproject.toml"): "templates/source/pyproject.toml",
		filepath.Join(dir, "README.md"):      "templates/source/README.md",
		filepath.Join(dir, ".gitignore"):     "templates/source/gitignore",
	}

	for dest, src := range files {
		content, err := render(src, subs)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
	}

	return nil
}
