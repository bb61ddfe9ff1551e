package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/countdown/internal/compare"
	"github.com/rgehrsitz/countdown/internal/copytext"
	"github.com/rgehrsitz/countdown/internal/scheduler"
)

func snapshotCmd() *cobra.Command {
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save and compare snapshots of the counters",
		Long: `Snapshots freeze the four counters at a moment in time. The history keeps
the newest entries first, bounded by snapshots.limit in the configuration.`,
	}

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Snapshot the stored assumptions",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			snap := a.compare.Snapshot(a.repo.LoadAssumptions(ctx))
			history, err := a.repo.AppendSnapshot(ctx, snap)
			if err != nil {
				return fmt.Errorf("failed to save snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d stored)\n", copytext.SnapshotLine(snap), len(history))
			return nil
		}),
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			snapshots := a.repo.LoadSnapshots(cmd.Context())
			if len(snapshots) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), copytext.NoSnapshots)
				return nil
			}
			for _, s := range snapshots {
				fmt.Fprintf(cmd.OutOrStdout(), "• %s\n", copytext.SnapshotLine(s))
			}
			return nil
		}),
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the stored assumptions with every snapshot",
		Long: `Compare the current counters against the stored snapshots.

Examples:
  countdown snapshot compare
  countdown snapshot compare --format csv`,
		Args: cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			snapshots := a.repo.LoadSnapshots(ctx)
			if len(snapshots) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), copytext.NoSnapshots)
				return nil
			}

			comparisonSet, err := a.compare.Compare(ctx, a.repo.LoadAssumptions(ctx), snapshots)
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			outputFormat, _ := cmd.Flags().GetString("format")
			return writeComparison(cmd, comparisonSet, outputFormat)
		}),
	}
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored snapshot",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			if err := a.repo.ClearSnapshots(cmd.Context()); err != nil {
				return fmt.Errorf("failed to clear snapshots: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Snapshots cleared.")
			return nil
		}),
	}

	snapshotCmd.AddCommand(saveCmd)
	snapshotCmd.AddCommand(listCmd)
	snapshotCmd.AddCommand(compareCmd)
	snapshotCmd.AddCommand(clearCmd)
	return snapshotCmd
}

// writeComparison renders compSet in the requested format
func writeComparison(cmd *cobra.Command, compSet *compare.ComparisonSet, outputFormat string) error {
	w := cmd.OutOrStdout()

	switch strings.ToLower(outputFormat) {
	case "csv":
		formatter := &compare.CSVFormatter{}
		out, err := formatter.Format(compSet)
		if err != nil {
			return fmt.Errorf("failed to format CSV: %w", err)
		}
		fmt.Fprint(w, out)

	case "json":
		formatter := &compare.JSONFormatter{Pretty: true}
		out, err := formatter.Format(compSet)
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		fmt.Fprint(w, out)

	case "compact":
		formatter := &compare.TableFormatter{}
		fmt.Fprint(w, formatter.FormatCompact(compSet))

	case "table", "console", "":
		formatter := &compare.TableFormatter{}
		fmt.Fprint(w, formatter.Format(compSet))

	default:
		return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", outputFormat)
	}
	return nil
}

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule [cron-spec]",
		Short: "Take snapshots on a cron schedule until interrupted",
		Long: `Run in the foreground and snapshot the stored assumptions on every tick of a
standard five-field cron spec. Without an argument the spec comes from the
schedule key of the configuration.

Examples:
  countdown schedule "0 9 * * 0"     # every Sunday at nine
  countdown schedule --once          # one snapshot, then exit`,
		Args: cobra.MaximumNArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			snapshotter := scheduler.NewAutoSnapshotter(a.repo, a.compare)
			snapshotter.SetLogger(a.logger)

			once, _ := cmd.Flags().GetBool("once")
			if once {
				snap, err := snapshotter.Tick(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", copytext.SnapshotLine(snap))
				return nil
			}

			spec := a.cfg.Schedule
			if len(args) == 1 {
				spec = args[0]
			}
			if spec == "" {
				return fmt.Errorf("cron spec required (argument or schedule in the configuration)")
			}
			if err := snapshotter.Schedule(spec); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			snapshotter.Start()
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %q; next snapshot at %s. Press Ctrl+C to stop.\n",
				spec, snapshotter.Next().Format("2006-01-02 15:04"))
			<-ctx.Done()
			snapshotter.Stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Stopped after %d snapshots.\n", snapshotter.Taken())
			return nil
		}),
	}
	cmd.Flags().Bool("once", false, "Take a single snapshot now and exit")
	return cmd
}
