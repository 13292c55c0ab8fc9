package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [findings]",
	Short: "Restructure research findings into an outline for writing",
	Long: `Summarize turns free-form research findings into a structured outline:
word count and date, the key points a scientific document should cover,
writing recommendations, and the original findings (capped at 2000
characters).

Findings are read from --file, the arguments, or stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		kit, cleanup, err := newToolkit(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		printResult(cmd.OutOrStdout(), kit.SummarizeFindings(cmd.Context(), text))
		return nil
	},
}

func init() {
	summarizeCmd.Flags().StringP("file", "f", "", "read findings from a file")

	rootCmd.AddCommand(summarizeCmd)
}
