package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careerforge/resume-tailor/internal/analysis"
	"github.com/careerforge/resume-tailor/internal/compose"
	"github.com/careerforge/resume-tailor/internal/config"
)

var (
	composeJobFile    string
	composeJobURL     string
	composeProfile    string
	composeConfigPath string
	composeName       string
	composeEmail      string
	composePhone      string
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose a tailored resume for a job posting",
	Long: `Analyzes a job posting and renders a tailored resume document to
stdout. The candidate header comes from flags or the config file; the
skill profile and experiences come from a local profile JSON file.`,
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().StringVar(&composeJobFile, "job", "", `Job posting text file, or "-" for stdin`)
	composeCmd.Flags().StringVar(&composeJobURL, "url", "", "Job posting URL to fetch")
	composeCmd.Flags().StringVar(&composeProfile, "profile", "", "Local profile JSON file (skills and experiences)")
	composeCmd.Flags().StringVar(&composeConfigPath, "config", "", "Path to JSON config file")
	composeCmd.Flags().StringVar(&composeName, "name", "", "Candidate name for the resume header")
	composeCmd.Flags().StringVar(&composeEmail, "email", "", "Candidate email for the resume header")
	composeCmd.Flags().StringVar(&composePhone, "phone", "", "Candidate phone for the resume header")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	jobText, err := loadJobText(composeJobFile, composeJobURL)
	if err != nil {
		return err
	}
	prof, exps, err := loadLocalProfile(composeProfile)
	if err != nil {
		return err
	}

	header, err := composeHeader()
	if err != nil {
		return err
	}

	result := analysis.Analyze(jobText, prof, exps)
	fmt.Println(compose.Compose(header, result, exps, prof))
	return nil
}

// composeHeader builds the contact block from flags, with the config file
// filling whatever the flags leave empty.
func composeHeader() (compose.Header, error) {
	flags := config.Config{Name: composeName, Email: composeEmail, Phone: composePhone}
	if composeConfigPath != "" {
		loaded, err := config.LoadConfig(composeConfigPath)
		if err != nil {
			return compose.Header{}, err
		}
		flags = flags.MergeWithDefaults(*loaded)
	}

	contact := make([]string, 0, 2)
	if flags.Email != "" {
		contact = append(contact, flags.Email)
	}
	if flags.Phone != "" {
		contact = append(contact, flags.Phone)
	}
	return compose.Header{
		Name:    flags.Name,
		Contact: strings.Join(contact, " | "),
	}, nil
}
