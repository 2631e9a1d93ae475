// Package main provides the command-line cover letter generator.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "covercli",
	Short: "Cover letter generator CLI",
	Long:  "covercli generates tailored cover letters from a job description and resume highlights supplied interactively, without a file upload.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
