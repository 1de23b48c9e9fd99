package drmpreview

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/helixml/helix-preview/api/pkg/preview"
)

// openManager opens the configured display and logs what was found.
func openManager() (*preview.Manager, error) {
	src := preview.Source{
		DevicePath:  cfg.Device.Path,
		LeaseSocket: cfg.Lease.Socket,
		LeaseWidth:  cfg.Lease.Width,
		LeaseHeight: cfg.Lease.Height,
	}

	m, err := preview.Open(src, preview.Config{
		Logger:          log.Logger,
		ActivateOutput:  cfg.Device.ActivateOutput,
		UniversalPlanes: cfg.Device.UniversalPlanes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open display: %w", err)
	}

	target := m.Display()
	log.Info().
		Uint32("connector_id", target.ConnectorID).
		Uint32("crtc_id", target.CrtcID).
		Uint32("width", target.Width).
		Uint32("height", target.Height).
		Msg("Display opened")

	return m, nil
}

func closeManager(m *preview.Manager) {
	if err := m.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to release display resources")
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
}

// waitForEnter blocks until a line is read from in or ctx is done. It
// reports false when ctx ended the wait.
func waitForEnter(ctx context.Context, in *bufio.Reader) bool {
	lines := make(chan struct{})
	go func() {
		_, _ = in.ReadString('\n')
		close(lines)
	}()

	select {
	case <-lines:
		return true
	case <-ctx.Done():
		return false
	}
}

// interactive reports whether in is a terminal. Readers that are not files
// count as interactive so scripted input still drives the prompts.
func interactive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	return term.IsTerminal(int(f.Fd()))
}

// pause waits for Enter on an interactive input, otherwise for dwell. It
// reports false when ctx ended the wait.
func pause(ctx context.Context, cmd *cobra.Command, in *bufio.Reader, prompt string, dwell time.Duration) bool {
	if interactive(cmd.InOrStdin()) {
		fmt.Fprintln(cmd.OutOrStdout(), prompt)
		return waitForEnter(ctx, in)
	}

	select {
	case <-time.After(dwell):
		return true
	case <-ctx.Done():
		return false
	}
}
