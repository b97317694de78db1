package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		cfgPath  string
		logLevel string
	)

	root := &cobra.Command{
		Use:           "gmshcfd",
		Short:         "Construct CFD domains and mesh size fields around lifting surfaces",
		Long: `gmshcfd builds a watertight computational domain around one or more
lifting surfaces, resolves sharp or blunt trailing edges, composes a
growth-controlled mesh size field and emits the result for the gmsh
meshing engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "geometry and meshing configuration file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		newGenerateCmd(&cfgPath, &logLevel),
		newValidateCmd(&cfgPath, &logLevel),
	)
	return root
}
