// Package cli wires the commands: serve the HTTP API, take the survey
// in the terminal, export the stored data, and load demo data.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"talentlab/internal/catalog"
	"talentlab/internal/config"
	"talentlab/internal/diagnostic"
	"talentlab/internal/navigator"
	"talentlab/internal/seed"
	"talentlab/internal/server"
	"talentlab/internal/store"
	"talentlab/internal/tui"
)

// NewRootCmd builds the command tree. fs receives the export output so
// tests can run against an in-memory filesystem.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "talentlab",
		Short:         "Team diagnostic and work-plan lab",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newSurveyCmd(&configPath))
	root.AddCommand(newExportCmd(&configPath, fs))
	root.AddCommand(newDemoCmd(&configPath))
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			return server.Start(cfg, logger)
		},
	}
}

func newSurveyCmd(configPath *string) *cobra.Command {
	var roleFlag, localeFlag string
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Take the diagnostic in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			role, err := catalog.ParseRole(roleFlag)
			if err != nil {
				return err
			}
			if localeFlag == "" {
				localeFlag = cfg.DefaultLocale
			}
			loc := catalog.MatchLocale(localeFlag)

			st, err := store.New(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.EnsureSchema(cmd.Context()); err != nil {
				return err
			}

			factors := catalog.Factors(loc)
			fields := catalog.ContextFields(role, loc)
			nav, err := navigator.New(navigator.Config{
				Factors:       factors,
				ContextFields: fields,
				Autosave:      cfg.Survey.Autosave,
				Drafts:        st.NavigatorDrafts(),
				DraftKey:      "diagnostic:" + string(role),
				OnComplete: func(res diagnostic.Results) error {
					return st.SaveResults(cmd.Context(), role, res)
				},
			})
			if err != nil {
				return err
			}
			return tui.Run(tui.New(nav, role, factors, fields, catalog.LikertLabels(loc)))
		},
	}
	cmd.Flags().StringVar(&roleFlag, "role", "leader", "survey role (leader or collaborator)")
	cmd.Flags().StringVar(&localeFlag, "locale", "", "survey language (en or es)")
	return cmd
}

func newExportCmd(configPath *string, fs afero.Fs) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write everything stored to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			st, err := store.New(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.EnsureSchema(cmd.Context()); err != nil {
				return err
			}
			snap, err := st.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			payload, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return err
			}
			if err := afero.WriteFile(fs, out, payload, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "talentlab-export.json", "output file")
	return cmd
}

func newDemoCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Load sample data into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			st, err := store.New(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.EnsureSchema(cmd.Context()); err != nil {
				return err
			}
			if err := seed.Demo(cmd.Context(), st); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "demo data loaded")
			return nil
		},
	}
}

// Execute runs the CLI against the real filesystem.
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
