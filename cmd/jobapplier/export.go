package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lee777maker/Job-Applier-sub000/internal/document"
	"github.com/lee777maker/Job-Applier-sub000/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <text-file>",
	Short: "Export a generated document as PDF and/or DOCX",
	Long:  "Parse generated resume or cover letter text into sections and render downloadable artifacts. PDF export requires Chrome or Chromium.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var (
	exportKind    string
	exportFormats []string
	exportOutDir  string
)

func init() {
	exportCmd.Flags().StringVarP(&exportKind, "kind", "k", "cv", "Document kind: cv or cover-letter")
	exportCmd.Flags().StringSliceVarP(&exportFormats, "format", "f", []string{"pdf", "docx"}, "Output formats: pdf, docx")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", ".", "Output directory")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	kind := document.Kind(exportKind)
	if kind != document.KindCV && kind != document.KindCoverLetter {
		return fmt.Errorf("unknown kind %q; use cv or cover-letter", exportKind)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document text: %w", err)
	}
	sections := document.Parse(string(raw), kind)

	for _, format := range exportFormats {
		var data []byte
		switch format {
		case "pdf":
			data, err = export.ToPDF(cmd.Context(), sections)
		case "docx":
			data, err = export.ToDocx(sections)
		default:
			return fmt.Errorf("unknown format %q; use pdf or docx", format)
		}
		if err != nil {
			return fmt.Errorf("%s export failed: %w", format, err)
		}

		path := filepath.Join(exportOutDir, export.Filename(exportKind, format))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(os.Stdout, "Wrote %s (%d sections)\n", path, len(sections))
	}
	return nil
}
