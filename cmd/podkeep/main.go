package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "podkeep",
	Short: "Podcast feed archiver",
	Long: `podkeep downloads podcast episodes and archives them into a local
directory, stamping each file with the episode's published date.

Configuration lives in a YAML file (see the archive command for the
format). The PODKEEP_BASE_URL, PODKEEP_DESTINATION and PODKEEP_WORKERS
environment variables override file values.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
