package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stfelty/connect-team-hr-formatter/config"
	"github.com/stfelty/connect-team-hr-formatter/output"
	"github.com/stfelty/connect-team-hr-formatter/storage"
	"github.com/stfelty/connect-team-hr-formatter/timeclock"
)

var (
	exportRunID  int64
	exportMode   string
	exportFormat string
	exportOutput string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Re-export a recorded run from SQLite to CSV/Excel",
	Long: `Re-export a recorded report run from the local SQLite database.

Modes:
- totals: rebuild the per-employee daily totals of the run
- shifts: export each accepted shift row of the run

The run defaults to the most recent one; pass --run to pick an earlier run.
Output format can be selected explicitly via --format or inferred from the
--output extension.`,
	Example: `
  # Re-export the latest run's totals to CSV
  hrformatter export --mode totals --output ./totals.csv

  # Export the accepted shifts of run 3 to Excel
  hrformatter export --run 3 --mode shifts --output ./shifts.xlsx

  # Force Excel format independent of extension
  hrformatter export --mode totals --format excel --output ./totals.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		log := newLogger(cfg.Log)

		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		store, err := storage.Open(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		var (
			run   storage.Run
			found bool
		)
		if exportRunID > 0 {
			run, found, err = store.GetRun(exportRunID)
		} else {
			run, found, err = store.LatestRun()
		}
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrRunNotFound
		}

		shifts, err := store.ListShifts(run.ID)
		if err != nil {
			return err
		}

		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "totals":
			_, summaries, err := timeclock.BuildDailyTotals(shifts, run.ReportDate, log)
			if err != nil {
				return err
			}
			if err := output.WriteSummaries(exportOutput, format, summaries, run.StartDate, run.EndDate); err != nil {
				return err
			}
			fmt.Printf("Export completed. Run: %d, Employees: %d, Mode: totals, Format: %s, File: %s\n", run.ID, len(summaries), format, exportOutput)
		case "shifts":
			if err := output.WriteShifts(exportOutput, format, shifts); err != nil {
				return err
			}
			fmt.Printf("Export completed. Run: %d, Shifts: %d, Mode: shifts, Format: %s, File: %s\n", run.ID, len(shifts), format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: totals, shifts)", exportMode)
		}
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Int64Var(&exportRunID, "run", 0, "Run ID to export (defaults to the most recent run)")
	exportCmd.Flags().StringVar(&exportMode, "mode", "totals", "Export mode: totals|shifts")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "./hrformatter.db", "Path to local SQLite database")

	_ = exportCmd.MarkFlagRequired("output")
}
