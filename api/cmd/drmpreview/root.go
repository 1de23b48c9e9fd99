package drmpreview

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/helixml/helix-preview/api/pkg/config"
)

var cfg config.PreviewConfig

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "drm-preview",
		Short: "Show buffers on hardware display planes",
		Long: `drm-preview places pixel buffers on DRM overlay planes of the active display.

The device is opened directly (DRM_DEVICE) or obtained from a lease manager
(DRM_LEASE_SOCKET). Flags override the environment.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("device", "", "DRM device node (env: DRM_DEVICE)")
	flags.String("lease-socket", "", "Lease manager socket (env: DRM_LEASE_SOCKET)")
	flags.Bool("universal-planes", false, "Also use primary and cursor planes (env: DRM_UNIVERSAL_PLANES)")
	flags.Bool("activate-output", true, "Mode-set the display before showing planes (env: DRM_ACTIVATE_OUTPUT)")
	flags.String("log-level", "", "Log level (debug, info, warn, error) (env: LOG_LEVEL)")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newLayoutCmd())
	rootCmd.AddCommand(newPlanesCmd())
	rootCmd.AddCommand(newSetPropertyCmd())

	return rootCmd
}

func Execute() {
	rootCmd := NewRootCmd()
	rootCmd.SetContext(context.Background())
	rootCmd.SetOutput(os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Failed to execute command")
	}
}

// setup loads the environment configuration, applies flag overrides and
// configures the global logger.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.LoadPreviewConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("device") {
		cfg.Device.Path, _ = flags.GetString("device")
	}
	if flags.Changed("lease-socket") {
		cfg.Lease.Socket, _ = flags.GetString("lease-socket")
	}
	if flags.Changed("universal-planes") {
		cfg.Device.UniversalPlanes, _ = flags.GetBool("universal-planes")
	}
	if flags.Changed("activate-output") {
		cfg.Device.ActivateOutput, _ = flags.GetBool("activate-output")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	// Use pretty logging for console output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	return nil
}
