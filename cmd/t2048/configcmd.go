package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after --config and --difficulty are applied.

Save the output to ~/.t2048/configs/t2048.yaml or ./configs/t2048.yaml to
customize the game; keys left out keep their defaults.

Examples:
  t2048 config
  t2048 config --difficulty hard
  t2048 config --default > ~/.t2048/configs/t2048.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data := config.DefaultYAML()
		if !flagDefaultConfig {
			var err error
			if data, err = config.Marshal(appConfig); err != nil {
				return err
			}
		}
		_, err := cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default file instead")
}
