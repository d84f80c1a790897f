package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "extract <xml-file>",
		Short: "Extract scripts from XML to CTL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, runCtx, err := ctx.service(cmd)
			if err != nil {
				return err
			}
			defer ctx.closeLogger()
			res, err := svc.Extract(runCtx, args[0])
			if err != nil {
				return fmt.Errorf("extract %s: %w", args[0], err)
			}
			if jsonOut {
				return writeJSON(cmd, res)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Found %d scripts in %s\n", len(res.Keys), filepath.Base(res.Document))
			fmt.Fprintf(out, "Created .ctl file: %s\n", res.Sidecar)
			if len(res.Keys) > 0 {
				fmt.Fprintln(out, "Extracted scripts:")
				for _, key := range res.Keys {
					fmt.Fprintf(out, "- %s\n", key)
				}
			}
			if len(res.Collisions) > 0 {
				fmt.Fprintf(out, "Duplicate keys, last occurrence kept: %s\n", strings.Join(res.Collisions, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "update <ctl-file>",
		Short: "Update XML with scripts from CTL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, runCtx, err := ctx.service(cmd)
			if err != nil {
				return err
			}
			defer ctx.closeLogger()
			res, err := svc.Update(runCtx, args[0])
			if err != nil {
				return fmt.Errorf("update %s: %w", args[0], err)
			}
			if jsonOut {
				return writeJSON(cmd, res)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Updated %d scripts in %s\n", res.Updated, filepath.Base(res.Document))
			if res.Backup != "" {
				fmt.Fprintf(out, "Backup written to %s\n", res.Backup)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
