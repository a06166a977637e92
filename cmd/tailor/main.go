// Command tailor runs the resume tailoring toolchain: an HTTP server
// backed by PostgreSQL plus offline commands for extracting skills from
// resume files, analyzing job postings, and composing tailored resumes.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Resume tailoring toolchain",
	Long: `tailor extracts skills and experiences from resume documents,
analyzes job postings against a skill profile, and composes tailored
resume documents. The serve command runs the full HTTP API.`,
}

func main() {
	// Missing .env is fine; environment variables may be set directly.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
