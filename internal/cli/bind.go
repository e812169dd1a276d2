package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotdm/cdm/internal/cli/render"
	"github.com/dotdm/cdm/internal/usecase"
)

// NewBindCmd creates the bind command
func NewBindCmd() *cobra.Command {
	var (
		all    bool
		outDir string
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "bind [package...]",
		Short: "Generate Go bindings for resolved packages",
		Long: `Resolve packages and write a Go binding for each one.

Every binding is a package named after the last path segment of the package
name, written to <out>/<identifier>/<identifier>.go. It embeds the resolved
target, version and interface description.

Without arguments an interactive session offers the manifest's dependencies
for selection. Suitable for //go:generate.`,
		Example: `  # Bind two packages
  cdm bind @polkadot/reputation counter

  # Bind every dependency into ./gen
  cdm bind --all --out ./gen

  # Print the generated code instead of writing it
  cdm bind counter --stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			packages := args
			if len(packages) == 0 && !all {
				if app.Config.NonInteractive {
					return fmt.Errorf("no packages given; pass package names or --all")
				}
				deps, err := app.ListDependencies.Run(cmd.Context(), usecase.ListDependenciesParams{})
				if err != nil {
					return err
				}
				packages, err = SelectDependencies(deps.Dependencies, "Select packages to bind")
				if err != nil {
					return err
				}
			}

			result, err := app.GenerateBinding.Run(cmd.Context(), usecase.GenerateBindingParams{
				Packages: packages,
				All:      all,
				OutDir:   outDir,
				DryRun:   stdout,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON && !stdout {
				return render.NewJSONRenderer[[]string](cmd.OutOrStdout()).Render(result.Files)
			}
			return render.NewBindingsRenderer(cmd.OutOrStdout(), useColor(), stdout).Render(result)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Bind every dependency declared in the manifest")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config: cdm_bindings)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print generated code instead of writing files")

	return cmd
}
