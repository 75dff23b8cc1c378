// ABOUTME: Command line client for the college profile resolver
// ABOUTME: Runs a single lookup without the HTTP server, or prints the effective config

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"

	"college-profile-api/api/dto/mappers"
	"college-profile-api/internal/app"
	"college-profile-api/pkg/config"
	"college-profile-api/pkg/featureflags"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	version = "1.0.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "collegectl",
		Short: "Look up college profiles from the command line",
		Long: `collegectl resolves a college name into a profile:

  • description from web search, improved from the college website
  • official website
  • map link (search, geocoding or a constructed search URL)
  • campus tour video

Configuration is read from the same environment variables as the API server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "collegectl v%s\n", version)
		},
	})

	return rootCmd
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <college name>",
		Short: "Resolve a college profile and print it as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logger, err := app.NewLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			service, err := app.NewProfileService(ctx, cfg, logger)
			if err != nil {
				return err
			}

			profile, err := service.Resolve(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(mappers.ToCollegeProfileResponse(profile))
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out, err := yaml.Marshal(cfg.Redacted())
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))

			flags := featureflags.NewEnvManager("FEATURE_").GetAllFlags()
			names := make([]string, 0, len(flags))
			for flag := range flags {
				names = append(names, string(flag))
			}
			sort.Strings(names)
			fmt.Fprintln(cmd.OutOrStdout(), "features:")
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %t\n", name, flags[featureflags.FeatureFlag(name)])
			}

			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "\nWarning: %v\n", err)
			}
			return nil
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

