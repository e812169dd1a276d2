package cli

import (
	"github.com/spf13/cobra"

	"github.com/dotdm/cdm/internal/cli/render"
	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/usecase"
)

// NewRegistryCmd creates the registry command group
func NewRegistryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Publish and query contract names in the local registry",
		Long: `The registry maps contract names to an owner and an append-only list of
published versions. The first publisher of a name owns it; publishes by anyone
else are ignored.`,
	}

	cmd.AddCommand(newRegistryPublishCmd())
	cmd.AddCommand(newRegistryShowCmd())
	cmd.AddCommand(newRegistryListCmd())
	cmd.AddCommand(newRegistryHistoryCmd())

	return cmd
}

func newRegistryPublishCmd() *cobra.Command {
	var caller string

	cmd := &cobra.Command{
		Use:   "publish <name> <address> <metadata-uri>",
		Short: "Publish a new latest version of a contract name",
		Example: `  cdm registry publish @polkadot/reputation 0x5FbDB2315678afecb367f032d93F642f64180aa3 ipfs://bafy... \
    --caller 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.PublishContract.Run(cmd.Context(), usecase.PublishContractParams{
				Name:        args[0],
				Address:     args[1],
				MetadataURI: args[2],
				Caller:      caller,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[*usecase.PublishContractResult](cmd.OutOrStdout()).Render(result)
			}
			return render.NewPublishRenderer(cmd.OutOrStdout(), useColor()).Render(result)
		},
	}

	cmd.Flags().StringVar(&caller, "caller", "", "Publishing account (default from config)")

	return cmd
}

func newRegistryShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show the latest version of a contract name",
		Long: `Show the owner and latest published version of a contract name. Without a
name, an interactive session offers the registered names for selection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			entry, err := app.ShowContract.Run(cmd.Context(), name)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[*models.RegistryEntry](cmd.OutOrStdout()).Render(entry)
			}
			return render.NewContractRenderer(cmd.OutOrStdout(), useColor()).Render(entry)
		},
	}

	return cmd
}

func newRegistryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered contract names",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			entries, err := app.ListContracts.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[[]*models.RegistryEntry](cmd.OutOrStdout()).Render(entries)
			}
			return render.NewContractsRenderer(cmd.OutOrStdout(), useColor()).Render(entries)
		},
	}

	return cmd
}

func newRegistryHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <name>",
		Short: "List every published version of a contract name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ContractHistory.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[*usecase.ContractHistoryResult](cmd.OutOrStdout()).Render(result)
			}
			return render.NewHistoryRenderer(cmd.OutOrStdout(), useColor()).Render(result)
		},
	}

	return cmd
}
