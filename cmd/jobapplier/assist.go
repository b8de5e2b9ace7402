package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lee777maker/Job-Applier-sub000/internal/observability"
	"github.com/lee777maker/Job-Applier-sub000/internal/store"
)

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "Analyze a job description against your CV",
	Long:  "Score your CV against a job description, and optionally generate a tailored resume, cover letter, or outreach email.",
	RunE:  runAssist,
}

var (
	assistJobDescription string
	assistJobDescFile    string
	assistCompany        string
	assistTailor         bool
	assistCoverLetter    bool
	assistEmail          bool
	assistStyle          string
	assistTone           string
	assistLength         string
	assistRecipient      string
	assistOutDir         string
)

func init() {
	assistCmd.Flags().StringVarP(&assistJobDescription, "job-description", "j", "", "Job description text")
	assistCmd.Flags().StringVarP(&assistJobDescFile, "job-description-file", "f", "", "Path to a file holding the job description")
	assistCmd.Flags().StringVar(&assistCompany, "company", "", "Company name for the cover letter")
	assistCmd.Flags().BoolVar(&assistTailor, "tailor", false, "Generate a tailored resume")
	assistCmd.Flags().BoolVar(&assistCoverLetter, "cover-letter", false, "Generate a cover letter")
	assistCmd.Flags().BoolVar(&assistEmail, "email", false, "Generate an outreach email")
	assistCmd.Flags().StringVar(&assistStyle, "style", "", "Tailoring style (default professional)")
	assistCmd.Flags().StringVar(&assistTone, "tone", "", "Tailoring tone (default professional)")
	assistCmd.Flags().StringVar(&assistLength, "length", "", "Tailoring length (default standard)")
	assistCmd.Flags().StringVar(&assistRecipient, "recipient", "", "Email recipient type (default recruiter)")
	assistCmd.Flags().StringVarP(&assistOutDir, "out", "o", ".", "Directory for generated text files")

	rootCmd.AddCommand(assistCmd)
}

func runAssist(cmd *cobra.Command, args []string) error {
	st := store.MustFromContext(cmd.Context())

	// Input validation happens before any network call.
	profile := st.Profile()
	if !profile.HasResume() {
		return fmt.Errorf("no CV on file; run upload-cv first")
	}
	jobDescription, err := resolveJobDescription()
	if err != nil {
		return err
	}

	client := newClient()
	score, err := client.GetMatchScore(cmd.Context(), profile, jobDescription, profile.ResumeText)
	if err != nil {
		return fmt.Errorf("match scoring failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintMatchScore(score)

	if assistTailor {
		result, err := client.TailorResume(cmd.Context(), profile.ResumeText, jobDescription, profile,
			assistStyle, assistTone, assistLength)
		if err != nil {
			return fmt.Errorf("resume tailoring failed: %w", err)
		}
		if err := writeArtifact("tailored-resume.txt", result.TailoredResume); err != nil {
			return err
		}
	}
	if assistCoverLetter {
		letter, err := client.GenerateCoverLetter(cmd.Context(), jobDescription, profile, assistCompany)
		if err != nil {
			return fmt.Errorf("cover letter generation failed: %w", err)
		}
		if err := writeArtifact("cover-letter.txt", letter); err != nil {
			return err
		}
	}
	if assistEmail {
		email, err := client.GenerateEmail(cmd.Context(), jobDescription, profile, assistRecipient)
		if err != nil {
			return fmt.Errorf("email generation failed: %w", err)
		}
		if err := writeArtifact("outreach-email.txt", email); err != nil {
			return err
		}
	}
	return nil
}

func resolveJobDescription() (string, error) {
	if assistJobDescription != "" && assistJobDescFile != "" {
		return "", fmt.Errorf("--job-description and --job-description-file are mutually exclusive; provide only one")
	}
	if assistJobDescFile != "" {
		content, err := os.ReadFile(assistJobDescFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		assistJobDescription = string(content)
	}
	if strings.TrimSpace(assistJobDescription) == "" {
		return "", fmt.Errorf("a job description is required; pass --job-description or --job-description-file")
	}
	return assistJobDescription, nil
}

func writeArtifact(name, content string) error {
	path := filepath.Join(assistOutDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	return nil
}
