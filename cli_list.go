package main

import (
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"

	"github.com/Kostassoid/lethe/sanitization"
)

func newListCmd(schemesFile *string) *cobra.Command {
	var showDevices bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available sanitization schemes, or candidate devices with --devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showDevices {
				return listDevicesCmd()
			}
			registry, err := resolveRegistry(*schemesFile)
			if err != nil {
				return err
			}
			return listSchemesCmd(registry)
		},
	}

	cmd.Flags().BoolVar(&showDevices, "devices", false, "list candidate wipe targets instead of schemes (shallow, POSIX only)")
	return cmd
}

func listSchemesCmd(registry *sanitization.Registry) error {
	for _, name := range registry.Names() {
		scheme, _ := registry.Find(name)
		fmt.Printf("%-12s %d stage(s) - %s\n", name, len(scheme.Stages), scheme.Description)
	}
	return nil
}

func listDevicesCmd() error {
	devices, err := listDevices()
	if err != nil {
		return err
	}
	for _, d := range devices {
		fmt.Printf("%-24s %10s  block=%d\n", d.ID, bytefmt.ByteSize(d.Size), d.BlockSize)
	}
	return nil
}
