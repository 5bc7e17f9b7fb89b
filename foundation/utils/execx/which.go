// File: which.go
// Title: Executable Lookup
// Description: Locates programs by asking the system `which` command, the
//              way an interactive shell resolves an editor or pager. Lookup
//              failures are reported as absence rather than as errors by the
//              convenience helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package execx

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	kiterror "github.com/msto63/cmdkit/foundation/core/error"
	kiterrors "github.com/msto63/cmdkit/foundation/core/errors"
	kitlog "github.com/msto63/cmdkit/foundation/core/log"
	"github.com/msto63/cmdkit/foundation/utils/stringx"
)

// WhichCommand is the program used to resolve names.
const WhichCommand = "which"

// DefaultEditors are tried in order by FindEditor when $EDITOR is unset.
var DefaultEditors = []string{"vim", "vi", "emacs", "nano", "pico", "gedit", "kate", "subl", "geany", "atom"}

// Which returns the full path of name, or "", false if it cannot be found.
func Which(name string) (string, bool) {
	return WhichContext(context.Background(), name)
}

// WhichContext is Which bound to ctx.
func WhichContext(ctx context.Context, name string) (string, bool) {
	path, err := LookPath(ctx, name)
	if err != nil {
		kitlog.GetDefault().DebugWithErr("lookup failed", err, kitlog.Fields{
			"module": kiterrors.ModuleExecx,
			"name":   name,
		})
		return "", false
	}
	return path, true
}

// LookPath runs `which name` and returns its trimmed output. A non-zero exit
// or empty output yields a NOT_FOUND error; failing to run `which` at all
// yields EXTERNAL_COMMAND_ERROR.
func LookPath(ctx context.Context, name string) (string, error) {
	if stringx.IsBlank(name) {
		return "", kiterrors.InputError(kiterrors.ModuleExecx, "which", name, "a program name")
	}

	output, err := exec.CommandContext(ctx, WhichCommand, name).CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return "", kiterrors.NotFoundError(kiterrors.ModuleExecx, "which", "program", name).
				WithDetail("exit_code", exitErr.ExitCode())
		}
		return "", kiterrors.OperationError(kiterrors.ModuleExecx, "which",
			kiterror.CodeExternalCommandError, err, map[string]interface{}{
				"command": WhichCommand,
				"name":    name,
			})
	}

	path := strings.TrimSpace(string(output))
	if path == "" {
		return "", kiterrors.NotFoundError(kiterrors.ModuleExecx, "which", "program", name)
	}
	return path, nil
}

// FindEditor returns $EDITOR when set, otherwise the path of the first
// candidate that Which resolves. Without candidates DefaultEditors is used.
func FindEditor(candidates ...string) (string, bool) {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor, true
	}
	if len(candidates) == 0 {
		candidates = DefaultEditors
	}
	for _, candidate := range candidates {
		if path, ok := Which(candidate); ok {
			return path, true
		}
	}
	return "", false
}
