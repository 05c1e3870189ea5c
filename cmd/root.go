package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/wechat-image-archiver/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configFile string
	rootDir    string
	layout     string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"

	// appConfig is loaded before every subcommand runs
	appConfig *internal.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wximg",
	Short: "Archive images received in WeChat chats",
	Long: `Watches a logged-in WeChat desktop client through the WeChatFerry SDK and
saves every image you receive into a folder per sender.

Layout on disk:
  <root>/<sender>/<name>.jpg                  (layout: sender)
  <root>/<sender>/<YYYY-MM-DD>/<name>.jpg     (layout: sender-day)
  <root>/<name>.jpg                           (layout: flat)

Existing files are never overwritten; a _1, _2, ... suffix is added instead.

Quick Start:
  wximg healthcheck                # Check WeChat, the SDK and the output folder
  wximg run                        # Start archiving (Ctrl+C to stop)
  wximg list                       # Images archived per sender
  wximg export --format md         # Dump the archive index

Configuration is read from config.yaml, WXIMG_* environment variables and a
.env file in the working directory.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		internal.SetVerbose(verbose)

		if err := internal.LoadDotEnv(".env"); err != nil {
			internal.LogWarn("%v", err)
		}

		v := internal.NewViper()
		if f := cmd.Flags().Lookup("root"); f != nil {
			_ = v.BindPFlag("root", f)
		}
		if f := cmd.Flags().Lookup("layout"); f != nil {
			_ = v.BindPFlag("layout", f)
		}

		cfg, err := internal.LoadConfig(v, configFile)
		if err != nil {
			return err
		}
		if cfg.File != "" {
			internal.LogDebug("Using config file %s", cfg.File)
		}
		appConfig = cfg
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./config.yaml or <user config dir>/wximg/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Archive root directory")
	rootCmd.PersistentFlags().StringVar(&layout, "layout", "", "Folder layout: sender, sender-day or flat")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
