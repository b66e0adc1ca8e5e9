// Command lethe securely erases a block device, partition, or regular file
// by driving the wipe engine (package wipe) against it through one or more
// overwrite/verify passes.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var schemesFile string
	var debug bool

	root := &cobra.Command{
		Use:           "lethe",
		Short:         "Securely and irreversibly erase data on block devices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&schemesFile, "schemes-file", "", "JSONC file of additional named schemes, merged over the built-ins")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newListCmd(&schemesFile))
	root.AddCommand(newWipeCmd(&schemesFile))

	return root
}
