package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotdm/cdm/internal/cli/render"
	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/usecase"
)

// NewCacheCmd creates the cache command group
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and populate the artifact cache",
	}

	cmd.AddCommand(newCacheAddCmd())
	cmd.AddCommand(newCacheListCmd())

	return cmd
}

// parsePackageArg splits "<package>[:<version>]". A version of "latest" or
// none appends after the newest cached version.
func parsePackageArg(arg string) (string, *uint64, error) {
	idx := strings.LastIndex(arg, ":")
	if idx <= 0 {
		return arg, nil, nil
	}
	spec, err := models.ParseVersionSpec(arg[idx+1:])
	if err != nil {
		return "", nil, err
	}
	if v, ok := spec.Pinned(); ok {
		return arg[:idx], &v, nil
	}
	return arg[:idx], nil, nil
}

func newCacheAddCmd() *cobra.Command {
	var (
		params       usecase.AddToCacheParams
		target       models.Target
		metadataPath string
	)

	cmd := &cobra.Command{
		Use:   "add <package>[:version]",
		Short: "Import an interface description into the artifact cache",
		Long: `Copy an interface description into the artifact cache as a new version of a
package, point the package's latest pointer at it when it is the newest, and
record the dependency in cdm.json (creating the manifest when missing).

The target is given either by id (--target) or by its endpoints, from which
the id is computed.`,
		Example: `  # Import the next version of counter for a known target
  cdm cache add counter --abi out/Counter.json --target cde13bf04ccf095c

  # Import version 3, computing the target from its endpoints
  cdm cache add @polkadot/reputation:3 --abi reputation.abi.json \
    --asset-hub ws://127.0.0.1:10020 --bulletin http://127.0.0.1:8283 \
    --registry 0x0000000000000000000000000000000000000001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params.Package, params.Version, err = parsePackageArg(args[0])
			if err != nil {
				return err
			}
			if target != (models.Target{}) {
				params.Target = &target
			}
			if metadataPath != "" {
				if params.Metadata, err = os.ReadFile(metadataPath); err != nil {
					return fmt.Errorf("failed to read metadata: %w", err)
				}
			}

			result, err := app.AddToCache.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[models.CachedContract](cmd.OutOrStdout()).Render(result.Contract)
			}
			return render.NewCacheAddRenderer(cmd.OutOrStdout(), useColor()).Render(result)
		},
	}

	cmd.Flags().StringVar(&params.ABIPath, "abi", "", "Interface description file (ABI array or artifact with an \"abi\" field)")
	cmd.Flags().StringVar(&params.TargetID, "target", "", "Target id")
	cmd.Flags().StringVar(&target.AssetHub, "asset-hub", "", "Asset hub endpoint URL, with --bulletin and --registry")
	cmd.Flags().StringVar(&target.Bulletin, "bulletin", "", "Bulletin endpoint URL")
	cmd.Flags().StringVar(&target.Registry, "registry", "", "Registry contract address")
	cmd.Flags().StringVar(&params.Address, "address", "", "Deployed contract address")
	cmd.Flags().StringVar(&params.MetadataURI, "metadata-uri", "", "Metadata URI")
	cmd.Flags().StringVar(&metadataPath, "metadata", "", "Metadata file stored as metadata.json")
	cmd.Flags().BoolVar(&params.SkipManifest, "no-manifest", false, "Do not record the dependency in cdm.json")
	_ = cmd.MarkFlagRequired("abi")
	cmd.MarkFlagsMutuallyExclusive("target", "asset-hub")
	cmd.MarkFlagsRequiredTogether("asset-hub", "bulletin", "registry")

	return cmd
}

func newCacheListCmd() *cobra.Command {
	var targetID string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List cached packages and versions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			packages, err := app.ListCache.Run(cmd.Context(), targetID)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[[]models.CachedPackage](cmd.OutOrStdout()).Render(packages)
			}
			return render.NewCacheRenderer(cmd.OutOrStdout(), useColor()).Render(packages)
		},
	}

	cmd.Flags().StringVar(&targetID, "target", "", "Only list packages of this target")

	return cmd
}
