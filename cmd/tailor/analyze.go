package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/careerforge/resume-tailor/internal/analysis"
	"github.com/careerforge/resume-tailor/internal/fetch"
	"github.com/careerforge/resume-tailor/internal/types"
)

var (
	analyzeJobFile string
	analyzeJobURL  string
	analyzeProfile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job posting against a skill profile",
	Long: `Reads a job posting from a file (or "-" for stdin) or fetches it from
a URL, classifies the role and industry, and reports skill coverage and
gaps against an optional local profile. Results are printed as JSON.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", `Job posting text file, or "-" for stdin`)
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "url", "", "Job posting URL to fetch")
	analyzeCmd.Flags().StringVar(&analyzeProfile, "profile", "", "Local profile JSON file (skills and experiences)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	jobText, err := loadJobText(analyzeJobFile, analyzeJobURL)
	if err != nil {
		return err
	}
	prof, exps, err := loadLocalProfile(analyzeProfile)
	if err != nil {
		return err
	}
	return printJSON(analysis.Analyze(jobText, prof, exps))
}

// loadJobText resolves the job posting text from a file path ("-" reads
// stdin) or a URL.
func loadJobText(jobFile, jobURL string) (string, error) {
	switch {
	case jobFile == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	case jobFile != "":
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	case jobURL != "":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		text, err := fetch.JobText(ctx, jobURL, fetch.DefaultOptions())
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("either --job or --url is required")
	}
}

// localProfile is the JSON shape accepted by --profile: a skill profile
// keyed by category plus optional experience blocks.
type localProfile struct {
	Skills      map[types.SkillCategory][]string `json:"skills"`
	Experiences []types.Experience               `json:"experiences"`
}

func loadLocalProfile(path string) (*types.SkillProfile, []types.Experience, error) {
	if path == "" {
		return nil, nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	var lp localProfile
	if err := json.Unmarshal(data, &lp); err != nil {
		return nil, nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	var prof *types.SkillProfile
	if len(lp.Skills) > 0 {
		prof = &types.SkillProfile{Skills: lp.Skills}
	}
	return prof, lp.Experiences, nil
}
