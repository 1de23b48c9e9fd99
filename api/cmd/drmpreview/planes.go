package drmpreview

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/helixml/helix-preview/api/pkg/drm"
)

func newPlanesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "planes",
		Aliases: []string{"ls"},
		Short:   "List the display planes and their formats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := openManager()
			if err != nil {
				return err
			}
			defer closeManager(m)

			planes, err := m.Planes()
			if err != nil {
				return fmt.Errorf("failed to list planes: %w", err)
			}

			target := m.Display()
			fmt.Fprintf(cmd.OutOrStdout(), "Connector %d, CRTC %d (index %d), %dx%d\n\n",
				target.ConnectorID, target.CrtcID, target.CrtcIndex, target.Width, target.Height)

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithRendition(tw.Rendition{
					Borders: tw.BorderNone,
					Settings: tw.Settings{
						Separators: tw.Separators{BetweenColumns: tw.Off},
						Lines:      tw.Lines{ShowHeaderLine: tw.Off},
					},
				}),
				tablewriter.WithHeaderAlignment(tw.AlignLeft),
				tablewriter.WithRowAlignment(tw.AlignLeft),
			)

			table.Header([]string{"Plane ID", "CRTC", "FB", "Possible CRTCs", "Usable", "Formats"})

			for _, p := range planes {
				row := []string{
					fmt.Sprint(p.ID),
					fmt.Sprint(p.CrtcID),
					fmt.Sprint(p.FramebufferID),
					fmt.Sprintf("%#b", p.PossibleCrtcs),
					fmt.Sprint(p.SupportsCrtc(target.CrtcIndex)),
					formatList(p.Formats),
				}

				if err := table.Append(row); err != nil {
					return err
				}
			}

			return table.Render()
		},
	}
}

func formatList(formats []drm.Format) string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, f.String())
	}
	return strings.Join(names, " ")
}
