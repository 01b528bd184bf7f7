package main

import (
	"github.com/spf13/cobra"
)

// NewParamsCommand .
func NewParamsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective parameters as YAML",
		Long: `Print the effective parameters and sweep as YAML.

Without --config this is the reference driver and can be used as a starting
point for a parameter file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			return c.Encode(cmd.OutOrStdout())
		},
	}
}
