package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/careerforge/resume-tailor/internal/extraction"
	"github.com/careerforge/resume-tailor/internal/segment"
	"github.com/careerforge/resume-tailor/internal/skills"
	"github.com/careerforge/resume-tailor/internal/types"
	"github.com/careerforge/resume-tailor/internal/vocab"
)

var (
	extractFile  string
	extractVocab string
	extractOut   string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills and experiences from a resume file",
	Long: `Reads a resume document (.txt or .docx), extracts its text, matches
skills against the vocabulary, and segments the text into experience
blocks. Results are printed as JSON on stdout.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFile, "file", "", "Resume file to extract (required)")
	extractCmd.Flags().StringVar(&extractVocab, "vocab", "", "Skill vocabulary JSON file (default: built-in)")
	extractCmd.Flags().StringVar(&extractOut, "out", "", "Directory to write results into (default: stdout)")
	_ = extractCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(extractCmd)
}

// extractOutput is the JSON shape printed by the extract command.
type extractOutput struct {
	Filename    string             `json:"filename"`
	Skills      []string           `json:"skills"`
	Experiences []types.Experience `json:"experiences"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(extractFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	text, err := extraction.Extract(filepath.Base(extractFile), data)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	text = extraction.CleanText(text)

	matcher, err := loadMatcher(extractVocab)
	if err != nil {
		return err
	}

	out := extractOutput{
		Filename:    filepath.Base(extractFile),
		Skills:      matcher.MatchNames(text),
		Experiences: segment.NewSegmenter(matcher).Segment(text),
	}
	if extractOut != "" {
		return writeResultFile(extractOut, out.Filename, out)
	}
	return printJSON(out)
}

// writeResultFile writes the extraction result to <dir>/<name>.json,
// creating the directory if needed.
func writeResultFile(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	fmt.Println(path)
	return nil
}

// loadMatcher builds a skill matcher from a vocabulary file, falling back
// to the built-in vocabulary when no path is given.
func loadMatcher(path string) (*skills.Matcher, error) {
	if path == "" {
		return skills.NewMatcher(vocab.Default()), nil
	}
	entries, err := vocab.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	return skills.NewMatcher(entries), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
