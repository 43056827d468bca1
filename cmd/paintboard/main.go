package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zamm-dev/paintboard/internal/cli"
	"github.com/zamm-dev/paintboard/internal/models"
)

func main() {
	app := cli.NewApp()

	rootCmd := app.CreateRootCommand()
	err := rootCmd.Execute()
	if closeErr := app.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", closeErr)
	}
	if err != nil {
		handleError(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

// handleError prints error messages in a user-friendly format
func handleError(w io.Writer, err error) {
	var boardErr *models.BoardError
	if errors.As(err, &boardErr) {
		fmt.Fprintf(w, "Error: %s\n", boardErr.Message)
		if boardErr.Details != "" {
			fmt.Fprintf(w, "Details: %s\n", boardErr.Details)
		}
		if boardErr.Cause != nil {
			fmt.Fprintf(w, "Cause: %s\n", boardErr.Cause)
		}
	} else {
		fmt.Fprintf(w, "Error: %s\n", err.Error())
	}
}
