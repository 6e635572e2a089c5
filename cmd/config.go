package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage hrformatter configuration file values.",
	Long: `Create, edit, and display the hrformatter configuration file.

The configuration stores application-wide values:
- source.path / source.format
- report.output_dir / report.filename_prefix
- upload.url / upload.prefix / upload.token
- log.level / log.format`,
	Example: `
  # Create default config in $HOME/.hrformatter.yaml
  hrformatter config create

  # Show active config and source file
  hrformatter config show

  # Open active config in editor (creates example if missing)
  hrformatter config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
