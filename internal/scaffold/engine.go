package scaffold

import (
	"fmt"

	"github.com/aymerick/raymond"

	oerrors "github.com/modernstack/cli/internal/errors"
)

// renderText evaluates a Handlebars template against vars.
// Unresolved placeholders render as empty strings; malformed syntax is an ErrRender.
func renderText(name, src string, vars map[string]any) (string, error) {
	tpl, err := raymond.Parse(src)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w: %w", name, oerrors.ErrRender, err)
	}
	out, err := tpl.Exec(vars)
	if err != nil {
		return "", fmt.Errorf("executing %s: %w: %w", name, oerrors.ErrRender, err)
	}
	return out, nil
}
