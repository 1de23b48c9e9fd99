package drmpreview

import (
	"bufio"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/helixml/helix-preview/api/pkg/drm"
	"github.com/helixml/helix-preview/api/pkg/preview"
	"github.com/helixml/helix-preview/api/pkg/surface"
)

func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show a solid square, then move it to the bottom right corner",
		Long: `Shows a dumb buffer centered at half the display size. Press Enter to move it
to the bottom right quarter of the display, and Enter again to exit. When stdin
is not a terminal each step lasts --dwell instead.`,
		RunE: runShow,
	}

	showCmd.Flags().Uint32("width", 200, "Buffer width in pixels")
	showCmd.Flags().Uint32("height", 200, "Buffer height in pixels")
	showCmd.Flags().String("format", "ARGB8888", "Pixel format name or fourcc")
	showCmd.Flags().String("color", "#ffffff", "Fill color")
	showCmd.Flags().String("label", "", "Text drawn at the center of the buffer")
	showCmd.Flags().Duration("dwell", 5*time.Second, "Time per step when stdin is not a terminal")

	return showCmd
}

func runShow(cmd *cobra.Command, _ []string) error {
	width, _ := cmd.Flags().GetUint32("width")
	height, _ := cmd.Flags().GetUint32("height")
	formatName, _ := cmd.Flags().GetString("format")
	colorValue, _ := cmd.Flags().GetString("color")
	label, _ := cmd.Flags().GetString("label")
	dwell, _ := cmd.Flags().GetDuration("dwell")

	format, err := drm.ParseFormat(formatName)
	if err != nil {
		return err
	}
	fill, err := surface.ParseColor(colorValue)
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

	buf := m.MakeBuffer()
	buf.Width = width
	buf.Height = height
	buf.BPP = 32
	buf.Format = format
	buf.ROI = preview.FullFrame
	buf.Display = preview.Placement{X: 0.25, Y: 0.25, W: 0.5, H: 0.5}

	planeID, err := m.AddPlane(buf, preview.DumbBuffer)
	if err != nil {
		return fmt.Errorf("failed to add plane: %w", err)
	}

	img, err := surface.FromBuffer(buf)
	if err != nil {
		return err
	}
	img.Fill(fill)
	if label != "" {
		img.Label(label, contrast(fill))
	}

	log.Info().
		Uint32("plane_id", planeID).
		Str("format", buf.Format.String()).
		Str("size", humanize.IBytes(buf.Size())).
		Uint32("pitch", buf.Pitch()).
		Msg("Buffer bound")

	if err := m.ShowPlane(planeID); err != nil {
		return err
	}

	in := bufio.NewReader(cmd.InOrStdin())
	if !pause(ctx, cmd, in, "Press Enter to move the buffer to the bottom right corner", dwell) {
		return nil
	}

	buf.Display = preview.Placement{X: 0.75, Y: 0.75, W: 0.25, H: 0.25}
	if err := m.SetPlaneSizes(buf); err != nil {
		return err
	}
	if err := m.ShowPlane(planeID); err != nil {
		return err
	}

	pause(ctx, cmd, in, "Press Enter to exit", dwell)
	return nil
}
