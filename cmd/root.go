package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stfelty/connect-team-hr-formatter/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hrformatter",
	Short: "Turn raw time-clock exports into the fixed-layout HR hours summary workbook.",
	Long: `
This CLI reads time-clock punch exports (Excel, CSV), validates each row,
aggregates hours per employee for a single report date, and renders the
"Hours Summary Report" workbook the HR import expects.

Rows with overnight shifts, unparseable timestamps, or non-positive durations
are skipped and reported; every run is recorded in a local SQLite database so
past reports can be re-exported or browsed.

Supported input formats:
- Excel: .xlsx, .xlsm, .xls
- CSV: .csv
`,
	Example: `
  # Create configuration file
  hrformatter config create

  # Build the report for the most recent date in the export
  hrformatter run -i ./clock_export.csv

  # Build the report for an explicit date, without uploading
  hrformatter run -i ./clock_export.xlsx --date 2026-01-21 --skip-upload

  # Re-export the totals of the latest run
  hrformatter export --mode totals --output ./totals.csv

  # Browse recorded runs in the local web UI
  hrformatter serve --port 8080
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.hrformatter.yaml, then ./.hrformatter.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hrformatter")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Defaults cover every value, so a missing file is not fatal.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: hrformatter config create")
	}
}
