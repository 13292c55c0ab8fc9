package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var citeCmd = &cobra.Command{
	Use:   "cite [text]",
	Short: "Audit a draft for source attribution and citation practice",
	Long: `Cite scans a draft for attribution phrases such as "according to" or
"research shows", reports which were found, and appends citation best
practices with example formats.

Text is read from --file, the arguments, or stdin.`,
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

		printResult(cmd.OutOrStdout(), kit.AuditCitations(cmd.Context(), text))
		return nil
	},
}

func init() {
	citeCmd.Flags().StringP("file", "f", "", "read text from a file")

	rootCmd.AddCommand(citeCmd)
}
