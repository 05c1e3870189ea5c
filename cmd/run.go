package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iksnae/wechat-image-archiver/internal"
	"github.com/iksnae/wechat-image-archiver/internal/wcf"
	"github.com/spf13/cobra"
)

// dialerFactory builds the SDK dialer; tests swap in a fake
var dialerFactory = func(cfg *internal.Config) internal.Dialer {
	return wcf.NewDialer(cfg.SDK.Host, cfg.SDK.Port, cfg.SDK.RecvTimeout)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Archive incoming images until interrupted",
	Long: `Connects to WeChat through the SDK and saves every received image under the
archive root. Runs until Ctrl+C (or SIGTERM); an image being saved when the
signal arrives is finished first.

Fails with a non-zero exit status when the SDK cannot be reached after the
configured number of attempts or the archive root is not writable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig
		diag := internal.OpenDiagnosticLog(cfg.DiagnosticLog)
		defer diag.Close()
		fatal := func(err error) error {
			diag.Record(err)
			return err
		}

		if err := cfg.Validate(); err != nil {
			return fatal(fmt.Errorf("invalid configuration: %w", err))
		}

		// the index lives under the root by default, so a blocked root
		// already fails here
		index, err := internal.OpenIndex(cfg.IndexPath)
		if err != nil {
			return fatal(fmt.Errorf("archive index is not usable: %w", err))
		}
		defer index.Close()

		resolver := internal.NewDirectoryResolver(cfg.Root, cfg.ParsedLayout(), index)
		if err := resolver.EnsureRoot(); err != nil {
			return fatal(fmt.Errorf("archive root is not usable: %w", err))
		}
		if err := os.MkdirAll(cfg.ScratchDir, 0700); err != nil {
			return fatal(&internal.DirectoryError{Path: cfg.ScratchDir, Op: "mkdir", Err: err})
		}

		conn := internal.NewConnectionManager(dialerFactory(cfg), cfg.ConnectPolicy(), nil)
		conn.SetDiagnosticLog(diag)

		var notifier internal.Notifier = internal.NopNotifier{}
		if cfg.Notify.AMQPURL != "" {
			n, err := internal.DialAMQPNotifier(cfg.Notify.AMQPURL, cfg.Notify.Exchange, cfg.Notify.RoutingKey)
			if err != nil {
				internal.LogWarn("Image notifications disabled: %v", err)
			} else {
				notifier = n
				defer n.Close()
			}
		}

		monitor := internal.NewMonitor(internal.MonitorDeps{
			Connection: conn,
			Resolver:   resolver,
			Persister:  internal.NewImagePersister(cfg.ScratchDir, cfg.PersistPolicy(), nil),
			Index:      index,
			Notifier:   notifier,
			Diag:       diag,
		}, cfg.MonitorConfig())

		if cfg.MetricsAddr != "" {
			srv := internal.StartStatusServer(cfg.MetricsAddr, monitor)
			defer func() { _ = srv.Shutdown() }()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		internal.PrintInfo(fmt.Sprintf("Archiving images to %s (layout: %s)", cfg.Root, cfg.ParsedLayout()))
		runErr := monitor.Run(ctx)

		stats := monitor.Stats()
		internal.PrintInfo(fmt.Sprintf("Stored %d image(s), %d duplicate(s), %d failure(s) from %d message(s)",
			stats.Stored, stats.Duplicates, stats.Failed, stats.Received))
		if runErr != nil {
			internal.PrintError(runErr.Error())
			return runErr
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
