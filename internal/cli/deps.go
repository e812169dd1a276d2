package cli

import (
	"github.com/spf13/cobra"

	"github.com/dotdm/cdm/internal/cli/render"
	"github.com/dotdm/cdm/internal/usecase"
)

// dependencyView is the JSON shape of one dependency status
type dependencyView struct {
	Target       string  `json:"target"`
	Package      string  `json:"package"`
	Spec         string  `json:"spec"`
	Version      *uint64 `json:"version,omitempty"`
	ArtifactPath string  `json:"artifactPath,omitempty"`
	Error        string  `json:"error,omitempty"`
}

func dependencyViews(deps []usecase.DependencyStatus) []dependencyView {
	views := make([]dependencyView, 0, len(deps))
	for _, dep := range deps {
		view := dependencyView{
			Target:       dep.TargetID,
			Package:      dep.Package,
			Spec:         dep.Spec.String(),
			Version:      dep.Version,
			ArtifactPath: dep.ArtifactPath,
		}
		if dep.Err != nil {
			view.Error = dep.Err.Error()
		}
		views = append(views, view)
	}
	return views
}

// NewDepsCmd creates the deps command
func NewDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deps",
		Aliases: []string{"ls"},
		Short:   "List declared dependencies and how they resolve",
		Long: `List every dependency declared in cdm.json together with the version it
resolves to in the artifact cache. Unlike resolve, a failing package does not
stop the listing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListDependencies.Run(cmd.Context(), usecase.ListDependenciesParams{})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[[]dependencyView](cmd.OutOrStdout()).Render(dependencyViews(result.Dependencies))
			}
			return render.NewDependenciesRenderer(cmd.OutOrStdout(), useColor()).Render(result)
		},
	}

	return cmd
}
