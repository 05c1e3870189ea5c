package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/iksnae/wechat-image-archiver/internal"
	"github.com/spf13/cobra"
)

var healthcheckTimeout time.Duration

// findWeChat is swapped out in tests
var findWeChat = internal.FindWeChatProcess

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that images can be archived",
	Long: `Check the archiving setup by verifying:
  • The configuration is valid
  • The archive root exists and is writable
  • A WeChat process is running on this machine (warning only)
  • The SDK answers and WeChat is logged in
  • The archive index can be read (warning only)

Exits with a non-zero status when a required check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig
		out := cmd.OutOrStdout()

		var handle internal.Handle
		defer func() {
			if handle != nil {
				_ = handle.Close()
			}
		}()

		checks := []internal.Check{
			{
				Name: "Configuration",
				Fn: func(ctx context.Context) (string, error) {
					if err := cfg.Validate(); err != nil {
						return "", err
					}
					if cfg.File != "" {
						return cfg.File, nil
					}
					return "defaults", nil
				},
			},
			{
				Name: "Archive root",
				Fn: func(ctx context.Context) (string, error) {
					r := internal.NewDirectoryResolver(cfg.Root, cfg.ParsedLayout(), nil)
					if err := r.EnsureRoot(); err != nil {
						return "", err
					}
					return cfg.Root, nil
				},
			},
			{
				Name:     "WeChat process",
				Optional: true,
				Fn: func(ctx context.Context) (string, error) {
					p, ok, err := findWeChat(ctx)
					if err != nil {
						return "", err
					}
					if !ok {
						return "", errors.New("no WeChat process found on this machine")
					}
					return fmt.Sprintf("%s (pid %d)", p.Name, p.PID), nil
				},
			},
			{
				Name: "SDK reachable",
				Fn: func(ctx context.Context) (string, error) {
					ctx, cancel := context.WithTimeout(ctx, healthcheckTimeout)
					defer cancel()
					h, err := dialerFactory(cfg).Dial(ctx)
					if err != nil {
						return "", err
					}
					handle = h
					return cfg.SDKAddress(), nil
				},
			},
			{
				Name: "Logged in",
				Fn: func(ctx context.Context) (string, error) {
					ok, err := handle.IsLoggedIn(ctx)
					if err != nil {
						return "", err
					}
					if !ok {
						return "", internal.ErrNotLoggedIn
					}
					return "", nil
				},
			},
			{
				Name: "Account",
				Fn: func(ctx context.Context) (string, error) {
					self, err := handle.SelfID(ctx)
					if err != nil {
						return "", err
					}
					if self == "" {
						return "", internal.ErrNoSelfID
					}
					return self, nil
				},
			},
			{
				Name:     "Archive index",
				Optional: true,
				Fn: func(ctx context.Context) (string, error) {
					if _, err := os.Stat(cfg.IndexPath); errors.Is(err, os.ErrNotExist) {
						return "not created yet", nil
					}
					ix, err := internal.OpenIndexReadOnly(cfg.IndexPath)
					if err != nil {
						return "", err
					}
					defer ix.Close()
					summaries, err := ix.Summaries()
					if err != nil {
						return "", err
					}
					images := 0
					for _, s := range summaries {
						images += s.Images
					}
					return fmt.Sprintf("%d image(s) from %d sender(s)", images, len(summaries)), nil
				},
			},
		}

		fmt.Fprintln(out, "WeChat image archiver health check")
		if failed := internal.RunChecks(cmd.Context(), out, checks, true); failed > 0 {
			return fmt.Errorf("%d required check(s) failed", failed)
		}
		fmt.Fprintln(out, "All required checks passed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().DurationVar(&healthcheckTimeout, "timeout", 5*time.Second, "How long to wait for the SDK to answer")
}
