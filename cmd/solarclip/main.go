// solarclip: floating clipboard slots with global hotkeys.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

const (
	AppID = "com.ytget.solarclip"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "solarclip",
		Short: "Floating clipboard widget",
		Long: `solarclip shows an always-on-top strip at the right screen edge holding a
few text snippets ("slots"). Click a slot or press its hotkey to copy it.

Clicks pass through the empty parts of the overlay on Windows only. On Linux
and macOS the overlay window captures every click while it is shown.

System-wide hotkeys work on Windows and macOS. On Linux they need an X11
display and a build with -tags x11hotkey; other builds use shortcuts that
work while the overlay window has focus.

Config file search order (first found wins):
  $HOME/.config/solarclip/solarclip.toml
  path supplied via --config

All flags can be set via SOLARCLIP_<SECTION>_<KEY> env vars or config-file keys,
e.g. SOLARCLIP_SLOTS_COUNT=3 or [hotkeys] toggle = "ctrl+alt+space".`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runOverlay,
	}

	addConfigFlag(root)
	addOverlayFlags(root)
	addLoggingFlags(root)

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "solarclip %s\n", Version)
		},
	}
}
