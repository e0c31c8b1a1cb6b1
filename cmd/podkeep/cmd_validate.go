package main

import (
	"github.com/spf13/cobra"

	"github.com/podkeep/podkeep/internal/config"
)

var validateCmd = &cobra.Command{
	Use:     "validate <config-file>",
	Short:   "Validate a podkeep configuration file",
	Example: `  podkeep validate podkeep.yaml`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}
		cmd.Printf("%s: OK (%d feeds, destination %s, %d workers)\n",
			args[0], len(cfg.Feeds), cfg.Destination, cfg.Workers)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
