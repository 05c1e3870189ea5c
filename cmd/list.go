package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/wechat-image-archiver/internal"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived images per sender",
	Long: `List every sender with archived images, newest activity first, using the
archive index written by 'wximg run'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, err := internal.OpenIndexReadOnly(appConfig.IndexPath)
		if err != nil {
			return fmt.Errorf("no archive index at %s (has 'wximg run' stored anything yet?): %w", appConfig.IndexPath, err)
		}
		defer ix.Close()

		summaries, err := ix.Summaries()
		if err != nil {
			return fmt.Errorf("failed to read archive index: %w", err)
		}

		displaySummaries(cmd.OutOrStdout(), summaries)
		return nil
	},
}

func displaySummaries(out io.Writer, summaries []internal.SenderSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(out, headerStyle.Render("No images archived yet"))
		return
	}

	total := 0
	for _, s := range summaries {
		total += s.Images
	}
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d image(s) from %d sender(s)", total, len(summaries))))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, titleStyle.Render("Folder")+"\t"+titleStyle.Render("Sender")+"\t"+titleStyle.Render("Images")+"\t"+titleStyle.Render("Size")+"\t"+titleStyle.Render("Last stored")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))
	for _, s := range summaries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			s.Folder,
			idStyle.Render(s.SenderKey),
			countStyle.Render(fmt.Sprintf("%d", s.Images)),
			formatSize(s.TotalBytes),
			dateStyle.Render(s.LastStored.Format("2006-01-02 15:04")),
		)
	}
	_ = w.Flush()
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func init() {
	rootCmd.AddCommand(listCmd)
}
