package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hance08/accrue/internal/service"
	"github.com/hance08/accrue/internal/ui"
	"github.com/hance08/accrue/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type replayFlags struct {
	strict bool
	quiet  bool
}

type replayRunner struct {
	actions *actions
	flags   *replayFlags
}

func NewReplayCmd(d *deps) *cobra.Command {
	flags := &replayFlags{}

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Run menu actions from a file",
		Long: `Run menu actions from a file, one per line. Each line starts with the
menu letter followed by the detail line:

  I 20230505|AC001|D|100.00
  D 20230101|RULE01|1.95
  P AC001|202306

Blank lines and lines starting with # are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open replay file: %w", err)
			}
			defer func() {
				_ = f.Close()
			}()

			runner := newReplayRunner(d.app.Service, flags)
			return runner.Run(f)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "stop at the first failing line")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "only print statements")

	return cmd
}

func newReplayRunner(svc *service.Service, flags *replayFlags) *replayRunner {
	a := newActions(svc)
	a.quiet = flags.quiet
	return &replayRunner{actions: a, flags: flags}
}

func (r *replayRunner) Run(in io.Reader) error {
	if !r.flags.quiet {
		ui.PrintHeading("Replaying menu actions")
	}

	scanner := bufio.NewScanner(in)
	lineNo, failed, total := 0, 0, 0

	for scanner.Scan() {
		lineNo++
		action, detail, ok := parseReplayLine(scanner.Text())
		if !ok {
			continue
		}
		total++

		if err := r.run(action, detail); err != nil {
			if r.flags.strict {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			failed++
			pterm.Error.Printf("Line %d: %v\n", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read replay file: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed", failed, total)
	}
	if !r.flags.quiet {
		pterm.Success.Printf("Replayed %d lines\n", total)
	}
	return nil
}

func (r *replayRunner) run(action, detail string) error {
	switch action {
	case prompts.ActionInput:
		return r.actions.inputTransaction(detail)
	case prompts.ActionDefine:
		return r.actions.defineRule(detail)
	case prompts.ActionPrint:
		return r.actions.printStatement(detail)
	default:
		return fmt.Errorf("unknown action %q, use I, D or P", action)
	}
}

// parseReplayLine splits "I 20230505|AC001|D|100.00" into its menu letter
// and detail. ok is false for blank lines and comments.
func parseReplayLine(raw string) (action, detail string, ok bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	action, detail, _ = strings.Cut(line, " ")
	return strings.ToUpper(action), strings.TrimSpace(detail), true
}
