package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration (credentials redacted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadWith(v, cfgFile)
		if err != nil {
			return err
		}
		return config.Dump(cmd.OutOrStdout(), cfg)
	},
}
