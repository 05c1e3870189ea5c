package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/wechat-image-archiver/internal"
	"github.com/spf13/cobra"
)

var (
	limit int
	since string
)

var (
	senderHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	senderMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginBottom(1)

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <sender-id>",
	Short: "Show the images archived for one sender",
	Long: `Display every archived image from one sender, oldest first, and flag files
that were removed from disk since they were stored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		senderKey := args[0]

		var sinceTime time.Time
		if since != "" {
			t, err := time.ParseInLocation("2006-01-02", since, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --since date %q (want YYYY-MM-DD): %w", since, err)
			}
			sinceTime = t
		}

		ix, err := internal.OpenIndexReadOnly(appConfig.IndexPath)
		if err != nil {
			return fmt.Errorf("no archive index at %s: %w", appConfig.IndexPath, err)
		}
		defer ix.Close()

		images, err := ix.Images(senderKey)
		if err != nil {
			return fmt.Errorf("failed to read archive index: %w", err)
		}
		if len(images) == 0 {
			return fmt.Errorf("no images archived for sender %s", senderKey)
		}

		var filtered []internal.ImageRecord
		for _, img := range images {
			if img.StoredAt.Before(sinceTime) {
				continue
			}
			filtered = append(filtered, img)
		}
		if limit > 0 && len(filtered) > limit {
			filtered = filtered[len(filtered)-limit:]
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, senderHeaderStyle.Render(fmt.Sprintf("%s (%s)", images[0].Folder, senderKey)))
		fmt.Fprintln(out, senderMetaStyle.Render(fmt.Sprintf("Showing %d of %d image(s)", len(filtered), len(images))))

		for _, img := range filtered {
			line := fmt.Sprintf("%s  %s  %s", timestampStyle.Render(img.StoredAt.Format("2006-01-02 15:04:05")), img.Path, formatSize(img.Size))
			if _, err := os.Stat(img.Path); err != nil {
				line += "  " + missingStyle.Render("(missing)")
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Only show the N most recent images (0 = all)")
	showCmd.Flags().StringVar(&since, "since", "", "Only show images stored on or after this date (YYYY-MM-DD)")
}
