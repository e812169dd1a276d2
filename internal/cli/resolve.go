package cli

import (
	"github.com/spf13/cobra"

	"github.com/dotdm/cdm/internal/cli/render"
	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/usecase"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <package>",
		Short: "Resolve a package to its target, version and interface description",
		Long: `Resolve a package declared in cdm.json.

The manifest is found by walking up from the working directory (or --dir).
The package must be declared by exactly one target. A "latest" version is read
from the artifact cache's latest pointer; the interface description must exist
in the cache.`,
		Example: `  # Resolve a package from the current project
  cdm resolve @polkadot/reputation

  # Resolve from another directory and print JSON
  cdm resolve counter --dir ./contracts/app --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ResolveReference.Run(cmd.Context(), usecase.ResolveReferenceParams{
				Package: args[0],
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[models.ResolvedReference](cmd.OutOrStdout()).Render(result.Reference)
			}
			return render.NewReferenceRenderer(cmd.OutOrStdout(), useColor()).Render(result)
		},
	}

	return cmd
}
