package runner

import (
	"context"
	"fmt"
	"strings"
)

// clipboardTools lists platform clipboard commands in probe order.
var clipboardTools = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
	{"clip"},
}

// CopyToClipboard pipes text into the first available platform clipboard
// tool. Callers treat failure as non-fatal; there may simply be no
// clipboard on this system.
func (r *Runner) CopyToClipboard(ctx context.Context, text string) error {
	for _, tool := range clipboardTools {
		path, err := r.commandRunner.LookPath(tool[0])
		if err != nil {
			continue
		}

		cmd := r.commandRunner.CommandContext(ctx, path, tool[1:]...)
		cmd.SetStdin(strings.NewReader(text))
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("clipboard copy via %s failed: %w", tool[0], err)
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("clipboard copy via %s failed: %w", tool[0], err)
		}
		return nil
	}
	return fmt.Errorf("no clipboard tool found")
}
