package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/maxviazov/offer-catalog-service/internal/pagination"
	"github.com/maxviazov/offer-catalog-service/internal/service"
)

func newPagesCmd() *cobra.Command {
	var (
		current int
		total   int
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print the page strip for a position in a paginated list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strip, err := service.NewPageStripService().Build(current, total)
			if err != nil {
				return describeInvalid(err)
			}
			if asJSON {
				return writeStripJSON(cmd.OutOrStdout(), strip)
			}
			return RenderStrip(cmd.OutOrStdout(), strip)
		},
	}
	cmd.Flags().IntVar(&current, "current", 1, "current page, 1-based")
	cmd.Flags().IntVar(&total, "total", 0, "number of pages")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of the styled strip")
	_ = cmd.MarkFlagRequired("total")
	return cmd
}

func describeInvalid(err error) error {
	fields := service.FieldErrors(err)
	if len(fields) == 0 {
		return err
	}
	parts := make([]string, 0, len(fields))
	for _, fe := range fields {
		parts = append(parts, "--"+fe.Field+" "+fe.Message)
	}
	return fmt.Errorf("%w: %s", service.ErrInvalidInput, strings.Join(parts, ", "))
}

func writeStripJSON(w io.Writer, strip pagination.Strip) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		pagination.Strip
		Label string `json:"label"`
	}{strip, strip.Label()})
}

// RenderStrip prints the strip on one line and the "Page x/y" label on the
// next. The current page is bracketed so it stands out without color too.
func RenderStrip(w io.Writer, strip pagination.Strip) error {
	if len(strip.Entries) == 0 {
		return errors.New("empty page strip")
	}
	r := lipgloss.NewRenderer(w)
	currentStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	mutedStyle := r.NewStyle().Faint(true)

	parts := make([]string, 0, len(strip.Entries)+2)
	parts = append(parts, arrow("<", strip.HasPrevious, mutedStyle))
	for _, e := range strip.Entries {
		switch {
		case e.IsEllipsis():
			parts = append(parts, mutedStyle.Render(pagination.EllipsisToken))
		case e.Number() == strip.Current:
			parts = append(parts, currentStyle.Render("["+e.String()+"]"))
		default:
			parts = append(parts, e.String())
		}
	}
	parts = append(parts, arrow(">", strip.HasNext, mutedStyle))

	_, err := fmt.Fprintf(w, "%s\n%s\n", strings.Join(parts, " "), strip.Label())
	return err
}

func arrow(s string, enabled bool, muted lipgloss.Style) string {
	if enabled {
		return s
	}
	return muted.Render(s)
}
