package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Quant-link/QLK-Contract-Quard/internal/engine"
	"github.com/Quant-link/QLK-Contract-Quard/internal/model"
	"github.com/Quant-link/QLK-Contract-Quard/internal/report"
	"github.com/Quant-link/QLK-Contract-Quard/internal/rust"
	"github.com/Quant-link/QLK-Contract-Quard/internal/tui"
)

func AddCommands(root *cobra.Command) {
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newScanCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newFrameworksCmd())
}

func newAnalyzeCmd() *cobra.Command {
	var (
		format     string
		outputFile string
		useTUI     bool
	)
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Extract the declaration inventory of one Rust contract file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			rep := rust.Analyze(cmd.Context(), string(b))

			if useTUI {
				// TUI mode ignores format flags
				return tui.Run(rep, string(b))
			}
			switch format {
			case "json":
				data, err := report.ToJSON(rep)
				if err != nil {
					return err
				}
				if outputFile != "" {
					if err := os.WriteFile(outputFile, data, 0o644); err != nil {
						return fmt.Errorf("write report: %w", err)
					}
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				report.WriteTable(cmd.OutOrStdout(), rep)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json|table")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write report to file (with --format json)")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Browse the inventory interactively")
	return cmd
}

func newScanCmd() *cobra.Command {
	var (
		format     string
		outputFile string
		noCache    bool
	)
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Analyze every Rust contract file under a directory",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			eng := engine.New()
			result, err := eng.Scan(cmd.Context(), model.ScanRequest{Path: path, NoCache: noCache})
			if err != nil {
				return err
			}

			switch format {
			case "json":
				data, err := report.ToJSON(result)
				if err != nil {
					return err
				}
				if outputFile != "" {
					if err := os.WriteFile(outputFile, data, 0o644); err != nil {
						return fmt.Errorf("write report: %w", err)
					}
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Files: %d (elapsed %s)\n", len(result.Reports), result.Elapsed)
				for _, fr := range result.Reports {
					s := report.Summarize(fr.Report)
					fmt.Fprintf(cmd.OutOrStdout(), "- %s [%s] fns=%d structs=%d traits=%d impls=%d errors=%d\n",
						fr.File, s.ContractType, s.Functions, s.Structs, s.Traits, s.ImplBlocks, len(s.Errors))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|json")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write report to file (with --format json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the report cache")
	return cmd
}

func newFrameworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frameworks",
		Short: "List recognized contract framework signatures",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, sig := range rust.Signatures {
				for _, m := range sig.Markers {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", sig.Label, m)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t(fallback)\n", model.ContractGeneric)
			return nil
		},
	}
}
