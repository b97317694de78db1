package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/acrovato/gmshcfd/internal/mesher"
)

func newGenerateCmd(cfgPath, logLevel *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the pipeline and emit a gmsh script for the domain",
		Long: `Generate runs the full pipeline: geometry build, trailing-edge
resolution, domain construction and size-field composition, then writes
the domain as a gmsh .geo script with physical tags and mesh options.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath, *logLevel)
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.Name + ".geo"
			}

			orch := mesher.New(cfg)
			script := mesher.NewScript(mesher.Options{
				Algorithm2D: cfg.Mesh.Algorithm2D,
				Algorithm3D: cfg.Mesh.Algorithm3D,
				Smoothing:   cfg.Mesh.Smoothing,
				Optimize:    cfg.Mesh.Optimize,
			})
			prep, err := orch.Prepare(script)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, script.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing script: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s (%d surfaces, farfield %s radius %g)\n",
				output, prep.Stats.Surfaces, cfg.Domain.Shape, prep.Domain.Farfield.Radius)
			roles := make([]string, 0, len(prep.Tags))
			for role := range prep.Tags {
				roles = append(roles, role)
			}
			sort.Strings(roles)
			for _, role := range roles {
				fmt.Fprintf(out, "  tag %s\n", role)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output script path (default <name>.geo)")
	return cmd
}
