package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stfelty/connect-team-hr-formatter/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  hrformatter config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use, showing defaults.")
		}

		fmt.Println("Configuration:")
		fmt.Printf("source.path: %s\n", cfg.Source.Path)
		fmt.Printf("source.format: %s\n", cfg.Source.Format)
		fmt.Printf("report.output_dir: %s\n", cfg.Report.OutputDir)
		fmt.Printf("report.filename_prefix: %s\n", cfg.Report.FilenamePrefix)
		fmt.Printf("upload.url: %s\n", cfg.Upload.URL)
		fmt.Printf("upload.prefix: %s\n", cfg.Upload.Prefix)
		fmt.Printf("upload.token set: %t\n", cfg.Upload.Token != "")
		fmt.Printf("log.level: %s\n", cfg.Log.Level)
		fmt.Printf("log.format: %s\n", cfg.Log.Format)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
