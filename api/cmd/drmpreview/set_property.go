package drmpreview

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSetPropertyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-property <plane-id> <property> <value>",
		Short: "Set an enum property of a plane",
		Long: `Sets an enum property of a plane. Property and value are matched by
substring against the names the driver reports, as in:

  drm-preview set-property 31 COLOR_ENCODING BT.709`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			planeID, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid plane id %q: %w", args[0], err)
			}

			m, err := openManager()
			if err != nil {
				return err
			}
			defer closeManager(m)

			if err := m.SetPlaneProperty(uint32(planeID), args[1], args[2]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s=%s on plane %d\n", args[1], args[2], planeID)
			return nil
		},
	}
}
