package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotdm/cdm/internal/cli/render"
	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/usecase"
)

// NewTargetsCmd creates the targets command
func NewTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List manifest targets and check their identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListTargets.Run(cmd.Context(), "")
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[[]usecase.TargetStatus](cmd.OutOrStdout()).Render(result.Targets)
			}
			return render.NewTargetsRenderer(cmd.OutOrStdout(), useColor()).Render(result)
		},
	}

	return cmd
}

// NewTargetHashCmd creates the target-hash command
func NewTargetHashCmd() *cobra.Command {
	var target models.Target

	cmd := &cobra.Command{
		Use:   "target-hash",
		Short: "Compute the identifier of a deployment target",
		Long: `Compute the target identifier cdm derives from the endpoints of a
deployment target: the first 8 bytes of blake2b-256 over the newline-joined
asset hub URL, bulletin URL and registry address, hex encoded.`,
		Example: `  cdm target-hash --asset-hub ws://127.0.0.1:10020 --bulletin http://127.0.0.1:8283 \
    --registry 0x0000000000000000000000000000000000000001`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), target.Hash())
			return err
		},
	}

	cmd.Flags().StringVar(&target.AssetHub, "asset-hub", "", "Asset hub endpoint URL")
	cmd.Flags().StringVar(&target.Bulletin, "bulletin", "", "Bulletin endpoint URL")
	cmd.Flags().StringVar(&target.Registry, "registry", "", "Registry contract address")
	_ = cmd.MarkFlagRequired("asset-hub")
	_ = cmd.MarkFlagRequired("bulletin")
	_ = cmd.MarkFlagRequired("registry")

	return cmd
}
