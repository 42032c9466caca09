package cmd

import (
	"fmt"
	"os"

	"github.com/AravDharnikota/Civora.AI/internal/config"
	"github.com/AravDharnikota/Civora.AI/internal/dataset"
	"github.com/AravDharnikota/Civora.AI/internal/logging"
	"github.com/AravDharnikota/Civora.AI/internal/share"
	"github.com/AravDharnikota/Civora.AI/internal/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "civora",
	Short: "Terminal client for Civora, the bias-transparent news reader",
	Long: "civora browses news with per-article and per-source bias scores.\n" +
		"Articles, sources, and synthesized digests render in a clean terminal dashboard.",
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(scoreCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("civora %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(config.LogPath(), flagVerbose)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	return tui.Run(tui.RunOpts{
		Cfg:      cfg,
		Logger:   logger,
		Provider: dataset.NewStatic(),
		Sharer:   share.Clipboard{},
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
