package drmpreview

import (
	"bufio"
	"bytes"
	"context"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/helix-preview/api/pkg/config"
	"github.com/helixml/helix-preview/api/pkg/preview"
)

func TestSetup_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("DRM_DEVICE", "/dev/dri/card1")
	t.Setenv("DRM_LEASE_SOCKET", "/run/helix/drm-lease.sock")
	t.Setenv("LOG_LEVEL", "warn")
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--device", "/dev/dri/card2", "--activate-output=false", "--log-level", "debug"}))
	require.NoError(t, setup(cmd, nil))

	assert.Equal(t, "/dev/dri/card2", cfg.Device.Path)
	assert.Equal(t, "/run/helix/drm-lease.sock", cfg.Lease.Socket)
	assert.False(t, cfg.Device.ActivateOutput)
	assert.False(t, cfg.Device.UniversalPlanes)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetup_EnvironmentDefaults(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))
	require.NoError(t, setup(cmd, nil))

	assert.True(t, cfg.Device.ActivateOutput)
	assert.Equal(t, uint32(1920), cfg.Lease.Width)
}

func TestSetup_InvalidLogLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--log-level", "loud"}))

	err := setup(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"show", "layout", "planes", "set-property"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestLayoutCmd_RequiresFilename(t *testing.T) {
	cmd := newLayoutCmd()

	flag := cmd.Flags().Lookup("filename")
	require.NotNil(t, flag)
	assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag])
	assert.Error(t, cmd.ValidateRequiredFlags())
}

func TestPlacement(t *testing.T) {
	assert.Equal(t,
		preview.Placement{X: 0.75, Y: 0.75, W: 0.25, H: 0.25},
		placement(config.Rect{X: 0.75, Y: 0.75, W: 0.25, H: 0.25}))
}

func TestContrast(t *testing.T) {
	assert.Equal(t, color.Black, contrast(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))
	assert.Equal(t, color.White, contrast(color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}))
}

func TestPause_ScriptedInput(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("\n"))
	cmd.SetOut(&out)

	in := bufio.NewReader(cmd.InOrStdin())
	assert.True(t, pause(context.Background(), cmd, in, "Press Enter", time.Hour))
	assert.Equal(t, "Press Enter\n", out.String())
}

func TestPause_NonTerminalDwells(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	defer f.Close()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetIn(f)
	cmd.SetOut(&out)
	in := bufio.NewReader(f)

	assert.True(t, pause(context.Background(), cmd, in, "Press Enter", time.Millisecond))
	assert.Empty(t, out.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, pause(ctx, cmd, in, "Press Enter", time.Hour))
}
