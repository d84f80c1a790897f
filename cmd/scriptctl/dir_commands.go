package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scriptctl/internal/roundtrip"
)

type dirRunner func(context.Context, string, func(roundtrip.Outcome)) (roundtrip.Summary, error)

func newExtractDirCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "extract-dir <directory>",
		Short: "Extract scripts from XML files in directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, runCtx, err := ctx.service(cmd)
			if err != nil {
				return err
			}
			defer ctx.closeLogger()
			return runDirCommand(runCtx, cmd, args[0], dirCommandOptions{
				ext:  svc.Mapper().DocumentExt,
				verb: "extracted",
				json: jsonOut,
			}, svc.ExtractDir)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output summary as JSON")
	return cmd
}

func newUpdateDirCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "update-dir <directory>",
		Short: "Update XML files from CTL files in directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, runCtx, err := ctx.service(cmd)
			if err != nil {
				return err
			}
			defer ctx.closeLogger()
			return runDirCommand(runCtx, cmd, args[0], dirCommandOptions{
				ext:  svc.Mapper().SidecarExt,
				verb: "updated",
				json: jsonOut,
			}, svc.UpdateDir)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output summary as JSON")
	return cmd
}

type dirCommandOptions struct {
	ext  string
	verb string
	json bool
}

// runDirCommand reports each outcome as it happens, then the totals. It
// fails when any file failed so scripts can rely on the exit status.
func runDirCommand(ctx context.Context, cmd *cobra.Command, dir string, opts dirCommandOptions, run dirRunner) error {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	var onFile func(roundtrip.Outcome)
	if !opts.json {
		onFile = func(o roundtrip.Outcome) {
			fmt.Fprintln(out, outcomeLine(dir, o, opts.verb, colorize))
		}
	}

	summary, err := run(ctx, dir, onFile)
	if err != nil {
		return fmt.Errorf("process %s: %w", dir, err)
	}

	if opts.json {
		if err := writeJSON(cmd, summary); err != nil {
			return err
		}
	} else {
		if summary.Total == 0 {
			label := strings.ToUpper(strings.TrimPrefix(opts.ext, "."))
			fmt.Fprintf(out, "No %s files found in %s\n", label, dir)
			return nil
		}
		fmt.Fprintln(out)
		for _, line := range renderSectionHeader("Summary", colorize) {
			fmt.Fprintln(out, line)
		}
		fmt.Fprintln(out, renderSummaryTable(summary))
	}

	if !summary.OK() {
		return fmt.Errorf("%d of %d files failed", summary.Failed, summary.Total)
	}
	return nil
}
