package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rockstardevs/gostmt"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gostmt",
		Short: "Parse bank and credit card statement exports",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newFormatsCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newParseCommand() *cobra.Command {
	var format string
	var compact bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a statement file and print its transactions as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			builder := gostmt.NewParserBuilder().
				Content(string(data)).
				Filename(args[0])
			if format != "" {
				builder = builder.Format(gostmt.FileFormat(format))
			}

			txns, err := builder.ParseTransactions()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(txns)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "statement format (qfx); detected from the content when empty")
	cmd.Flags().BoolVar(&compact, "compact", false, "emit compact JSON")

	return cmd
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the registered statement formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range gostmt.DefaultRegistry().Formats() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}
