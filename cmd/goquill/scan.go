package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillclouds/goquill/internal/store"
	"github.com/quillclouds/goquill/pkg/highlight"
	"github.com/quillclouds/goquill/pkg/response"
)

func newScanCmd() *cobra.Command {
	var filePath string
	var asJSON bool
	var showRelated bool

	cmd := &cobra.Command{
		Use:   "scan [doc-id]",
		Short: "Scan a document for entity mentions",
		Long: `Scan text against the registered entities and print every mention
with its character offsets. Scans a stored document by ID, or a file
with --file. Stored documents honor their ignore list.

Examples:
  goquill scan d1
  goquill scan --file chapter1.txt --json
  goquill scan d1 --related`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docID := ""
			if len(args) > 0 {
				docID = args[0]
			}
			return runScan(docID, filePath, asJSON, showRelated)
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Scan a text file instead of a stored document")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the decoration set as JSON")
	cmd.Flags().BoolVar(&showRelated, "related", false, "Also list the distinct entities mentioned")

	return cmd
}

func runScan(docID, filePath string, asJSON, showRelated bool) error {
	if docID == "" && filePath == "" {
		return fmt.Errorf("a document ID or --file is required")
	}

	return withStore(func(s store.Storer) error {
		var text string
		var ignored []string

		switch {
		case filePath != "":
			content, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", filePath, err)
			}
			text = string(content)
		default:
			doc, err := s.GetDocument(docID)
			if err != nil {
				return fmt.Errorf("loading document: %w", err)
			}
			if doc == nil {
				return fmt.Errorf("document not found: %s", docID)
			}
			text = doc.Content

			ignored, err = s.GetIgnored(docID)
			if err != nil {
				return fmt.Errorf("loading ignore list: %w", err)
			}
		}

		snaps, err := s.EntitySnapshots()
		if err != nil {
			return fmt.Errorf("loading entities: %w", err)
		}

		controller := highlight.NewController(highlight.Events{})
		if err := controller.SetEntities(snaps); err != nil {
			return fmt.Errorf("building index: %w", err)
		}
		if len(ignored) > 0 {
			controller.SetIgnoredEntities(ignored)
		}

		start := time.Now()
		decos := controller.Apply(highlight.Transaction{
			DocChanged: true,
			Leaves:     highlight.LeavesFromText(text),
		})
		duration := time.Since(start).Microseconds()

		if asJSON {
			bytes, err := response.MarshalSlimResponse(decos, duration)
			if err != nil {
				return fmt.Errorf("encoding response: %w", err)
			}
			fmt.Println(string(bytes))
			return nil
		}

		if len(decos) == 0 {
			fmt.Println("No mentions found.")
			return nil
		}

		fmt.Printf("Mentions (%d, %dµs):\n\n", len(decos), duration)
		for _, d := range decos {
			fmt.Printf("  [%4d,%4d) %-9s %s\n", d.Start, d.End, d.EntityType.String(), d.EntityName)
		}

		if showRelated {
			fmt.Println("\nRelated entities:")
			for _, e := range controller.Related() {
				fmt.Printf("  %-9s %s\n", e.Type.String(), e.Name)
			}
		}
		return nil
	})
}
