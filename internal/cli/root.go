package cli

import (
	"github.com/spf13/cobra"
)

// CreateRootCommand creates the root command for the CLI
func (a *App) CreateRootCommand() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "paintboard",
		Short: "Conway's Game Of Life - Skeleton",
		Long: "PaintBoard shows a 60x60 board of cells in the terminal. Paint cells with the pen, " +
			"clear them with the eraser, and press Space to count generations.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			return a.runBoard(debug)
		},
	}

	rootCmd.Flags().String("credits", "", "Path of the credits text shown by the info dialog")
	rootCmd.Flags().String("stylesheet", "", "Path of the YAML stylesheet")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Dump every UI message to a debug log file")

	_ = a.viper.BindPFlag("resources.credits", rootCmd.Flags().Lookup("credits"))
	_ = a.viper.BindPFlag("resources.stylesheet", rootCmd.Flags().Lookup("stylesheet"))

	rootCmd.AddCommand(a.createInitCommand())
	rootCmd.AddCommand(a.createVersionCommand())

	return rootCmd
}
