package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/podkeep/podkeep"
)

var configPath string

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive every configured feed",
	Long: `Archive fetches each configured feed, downloads its episodes and
moves them into the destination directory. Each archived file carries
the episode's published date as its creation date.

Config file:

  feeds:
    - https://some.podcast/feed.json
  destination: /Users/gui/Podcasts
  workers: 4
  http:
    timeout: 30s`,
	Example: `  podkeep archive --config podkeep.yaml
  PODKEEP_CONFIG=podkeep.yaml podkeep archive`,
	Args: cobra.NoArgs,
	RunE: runArchive,
}

func init() {
	archiveCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the config file (default $PODKEEP_CONFIG)")
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, _ []string) error {
	path, err := resolvePath()
	if err != nil {
		return err
	}
	return podkeep.Run(path)
}

func resolvePath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	if path := os.Getenv(podkeep.EnvConfig); path != "" {
		return path, nil
	}
	return "", fmt.Errorf("no config file: pass --config or set %s", podkeep.EnvConfig)
}
