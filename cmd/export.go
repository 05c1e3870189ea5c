package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iksnae/wechat-image-archiver/internal"
	"github.com/iksnae/wechat-image-archiver/internal/export"
	"github.com/spf13/cobra"
)

var (
	format       string
	outputDir    string
	exportSender string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the archive index to a file",
	Long: `Export the records of archived images to jsonl, md, yaml or json.

Use --sender to export one sender only (see 'wximg list' for sender ids) and
--out - to write to standard output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		ix, err := internal.OpenIndexReadOnly(appConfig.IndexPath)
		if err != nil {
			return fmt.Errorf("no archive index at %s: %w", appConfig.IndexPath, err)
		}
		defer ix.Close()

		images, err := ix.Images(exportSender)
		if err != nil {
			return fmt.Errorf("failed to read archive index: %w", err)
		}
		if len(images) == 0 && exportSender != "" {
			return fmt.Errorf("no images archived for sender %s", exportSender)
		}

		archive := &export.Archive{
			Root:        appConfig.Root,
			GeneratedAt: time.Now().UTC(),
			Images:      images,
		}

		if outputDir == "-" {
			return exporter.Export(archive, cmd.OutOrStdout())
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(outputDir, exportFileName(exportSender, exporter.Extension()))

		err = internal.ShowProgress(cmd.Context(), fmt.Sprintf("Exporting %d image record(s) to %s", len(images), path), func() error {
			return writeExport(exporter, archive, path)
		})
		if err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf("Export complete: %d image record(s) written to %s", len(images), path))
		return nil
	},
}

func exportFileName(sender, ext string) string {
	if sender == "" {
		return "archive." + ext
	}
	return "archive-" + internal.SanitizeFolderName(sender) + "." + ext
}

func writeExport(exporter export.Exporter, archive *export.Archive, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := exporter.Export(archive, f); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "jsonl", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", "./exports", "Output directory, or - for standard output")
	exportCmd.Flags().StringVar(&exportSender, "sender", "", "Only export images from this sender id")
}
