package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zamm-dev/paintboard/internal/config"
	"github.com/zamm-dev/paintboard/internal/models"
	"github.com/zamm-dev/paintboard/internal/resources"
)

// Version is the released version of paintboard
const Version = "v0.1.0"

// createInitCommand creates the init command
func (a *App) createInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write default config, credits and stylesheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return models.NewBoardErrorWithCause(models.ErrTypeValidation, fmt.Sprintf("invalid directory: %s", dir), err)
			}

			configPath, err := config.WriteDefaultConfig(absDir)
			if err != nil {
				return err
			}

			created, err := resources.WriteDefaults(absDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file: %s\n", configPath)
			for _, path := range created {
				fmt.Fprintf(out, "Created %s\n", path)
			}
			if len(created) == 0 {
				fmt.Fprintln(out, "Credits and stylesheet already exist")
			}
			return nil
		},
	}
}

// createVersionCommand creates the version command
func (a *App) createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "PaintBoard %s\n", Version)
		},
	}
}
