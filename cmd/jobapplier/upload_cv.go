package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lee777maker/Job-Applier-sub000/internal/onboarding"
	"github.com/lee777maker/Job-Applier-sub000/internal/store"
	"github.com/lee777maker/Job-Applier-sub000/internal/types"
)

var uploadCVCmd = &cobra.Command{
	Use:   "upload-cv <file>",
	Short: "Upload a CV and extract its contents",
	Long:  "Send a resume file to the extraction service and fill your profile from the structured data it returns. With --text the file is treated as pasted plain text and autofilled instead of uploaded.",
	Args:  cobra.ExactArgs(1),
	RunE:  runUploadCV,
}

var uploadAsText bool

func init() {
	uploadCVCmd.Flags().BoolVar(&uploadAsText, "text", false, "Autofill from plain text instead of uploading a file")

	rootCmd.AddCommand(uploadCVCmd)
}

func runUploadCV(cmd *cobra.Command, args []string) error {
	st := store.MustFromContext(cmd.Context())
	if !st.IsAuthenticated() {
		return fmt.Errorf("not logged in; run login first")
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}
	filename := filepath.Base(path)

	client := newClient()
	var extracted *types.CVExtractedData
	if uploadAsText {
		extracted, err = client.AutofillCV(cmd.Context(), string(content))
	} else {
		st.SetUploadedCV(&types.Attachment{
			ID:        uuid.New().String(),
			Name:      filename,
			MimeType:  mime.TypeByExtension(filepath.Ext(filename)),
			SizeBytes: int64(len(content)),
		})
		extracted, err = client.ExtractCV(cmd.Context(), filename, content)
	}
	if err != nil {
		return fmt.Errorf("CV extraction failed: %w", err)
	}
	st.SetExtractedCVData(extracted)

	uploadedAt := time.Now().UTC().Format(time.RFC3339)
	if st.Profile() == nil {
		st.SetProfile(&types.UserProfile{
			ContactInfo:      extracted.ContactInfo,
			Experience:       extracted.Experience,
			Education:        extracted.Education,
			Skills:           extracted.Skills,
			Projects:         extracted.Projects,
			Certifications:   extracted.Certifications,
			ResumeFileName:   filename,
			ResumeText:       extracted.RawText,
			ResumeUploadedAt: uploadedAt,
		})
	} else {
		st.UpdateProfile(types.ProfileUpdate{
			ResumeFileName:   &filename,
			ResumeText:       &extracted.RawText,
			ResumeUploadedAt: &uploadedAt,
		})
	}

	fmt.Fprintf(os.Stdout, "Extracted %d experience entries, %d education entries, %d skills\n",
		len(extracted.Experience), len(extracted.Education), len(extracted.Skills))
	if names := types.SkillNames(extracted.Skills); len(names) > 0 {
		fmt.Fprintf(os.Stdout, "Skills: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(os.Stdout, "Next step: %s\n", onboarding.PostLogin(snapshotOf(st)))
	return nil
}
