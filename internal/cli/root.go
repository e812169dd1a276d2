package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dotdm/cdm/internal/app"
	"github.com/dotdm/cdm/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// sessionKey is the context key for the command session
	sessionKey contextKey = "session"
)

// session carries the wired app for the duration of one command
type session struct {
	app     *app.App
	release []func()
}

func (s *session) close() {
	for i := len(s.release) - 1; i >= 0; i-- {
		s.release[i]()
	}
	s.release = nil
}

// Commands that never touch the project
var standalone = map[string]bool{
	"version":     true,
	"help":        true,
	"completion":  true,
	"target-hash": true,
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cdm",
		Short: "Contract dependency manager",
		Long: `cdm resolves contract dependencies declared in cdm.json against the local
artifact cache and generates Go bindings for them.

Packages are resolved to (target, version, interface description). Versions
declared as "latest" follow the cache's latest pointer at resolution time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if standalone[cmd.Name()] {
				return nil
			}

			v := config.SetupViper(cmd)
			appInstance, cleanup, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := cmd.Context()
			s, ok := ctx.Value(sessionKey).(*session)
			if !ok {
				// Not started through Execute; nothing is released
				s = &session{}
				ctx = context.WithValue(ctx, sessionKey, s)
			}
			s.app = appInstance
			s.release = append(s.release, cleanup)
			if stopper, ok := appInstance.Sink.(interface{ Stop() }); ok {
				s.release = append(s.release, stopper.Stop)
			}

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				s.release = append(s.release, cancel)
			}
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("dir", "C", "", "Directory to start manifest discovery from")
	rootCmd.PersistentFlags().String("cache-root", "", "Artifact cache root (default ~/.cdm)")
	rootCmd.PersistentFlags().String("registry-db", "", "Registry database file, or :memory:")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output JSON")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, cmd := range []*cobra.Command{NewResolveCmd(), NewBindCmd(), NewDepsCmd(), NewTargetsCmd()} {
		cmd.GroupID = "main"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{NewCacheCmd(), NewRegistryCmd(), NewTargetHashCmd()} {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the command tree and releases everything the command opened.
func Execute(ctx context.Context, rootCmd *cobra.Command) error {
	s := &session{}
	defer s.close()
	return rootCmd.ExecuteContext(context.WithValue(ctx, sessionKey, s))
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	s, ok := cmd.Context().Value(sessionKey).(*session)
	if !ok || s.app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return s.app, nil
}

// useColor reports whether human output should be colored
func useColor() bool {
	return !color.NoColor
}
