package drmpreview

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/helixml/helix-preview/api/pkg/config"
	"github.com/helixml/helix-preview/api/pkg/drm"
	"github.com/helixml/helix-preview/api/pkg/preview"
	"github.com/helixml/helix-preview/api/pkg/surface"
)

func newLayoutCmd() *cobra.Command {
	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the surfaces described by a layout file",
		Long: `Binds one dumb buffer per surface of a YAML layout file and shows them until
interrupted. Surfaces that find no free plane are skipped.`,
		Example: `  drm-preview layout -f scene.yaml`,
		RunE:    runLayout,
	}

	layoutCmd.Flags().StringP("filename", "f", "", "Layout file")
	_ = layoutCmd.MarkFlagRequired("filename")

	return layoutCmd
}

func runLayout(cmd *cobra.Command, _ []string) error {
	filename, _ := cmd.Flags().GetString("filename")

	layout, err := config.LoadLayoutFile(filename)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	m, err := openManager()
	if err != nil {
		return err
	}
	defer closeManager(m)

	var (
		shown int
		total uint64
	)
	for _, s := range layout.Surfaces {
		buf, err := showSurface(m, s)
		if errors.Is(err, preview.ErrPlanesExhausted) {
			log.Warn().Str("surface", s.Name).Msg("No planes left, skipping remaining surfaces")
			break
		}
		if errors.Is(err, preview.ErrNotFound) {
			log.Warn().Err(err).Str("surface", s.Name).Msg("No plane for surface, skipping")
			continue
		}
		if err != nil {
			return fmt.Errorf("surface %s: %w", s.Name, err)
		}
		shown++
		total += buf.Size()
	}

	log.Info().
		Str("layout", layout.Name).
		Int("surfaces", shown).
		Str("memory", humanize.IBytes(total)).
		Msg("Layout shown, interrupt to exit")

	<-ctx.Done()
	return nil
}

func showSurface(m *preview.Manager, s config.SurfaceLayout) (*preview.Buffer, error) {
	format, err := drm.ParseFormat(s.Format)
	if err != nil {
		return nil, err
	}
	fill := color.RGBA{A: 0xff}
	if s.Color != "" {
		if fill, err = surface.ParseColor(s.Color); err != nil {
			return nil, err
		}
	}

	buf := m.MakeBuffer()
	buf.Width = s.Width
	buf.Height = s.Height
	buf.BPP = 32
	buf.Format = format
	buf.Display = placement(*s.Display)
	buf.ROI = placement(*s.ROI)

	planeID, err := m.AddPlane(buf, preview.DumbBuffer)
	if err != nil {
		return nil, err
	}

	img, err := surface.FromBuffer(buf)
	if err != nil {
		return nil, err
	}
	img.Fill(fill)
	if s.Label != "" {
		img.Label(s.Label, contrast(fill))
	}

	for name, value := range s.Properties {
		// Failures are logged by the manager and leave the plane usable.
		_ = m.SetPlaneProperty(planeID, name, value)
	}

	if err := m.ShowPlane(planeID); err != nil {
		return nil, err
	}

	log.Debug().
		Str("surface", s.Name).
		Uint32("plane_id", planeID).
		Interface("crtc", buf.CRTC()).
		Interface("src", buf.Source()).
		Msg("Surface shown")

	return buf, nil
}

func placement(r config.Rect) preview.Placement {
	return preview.Placement{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// contrast picks black or white text for a background color.
func contrast(c color.RGBA) color.Color {
	luma := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	if luma > 128 {
		return color.Black
	}
	return color.White
}
