package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quillclouds/goquill/internal/store"
)

func newDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage stored documents",
	}

	cmd.AddCommand(
		newDocsPutCmd(),
		newDocsListCmd(),
		newDocsRemoveCmd(),
		newDocsIgnoreCmd(),
	)

	return cmd
}

func newDocsPutCmd() *cobra.Command {
	var id string
	var title string

	cmd := &cobra.Command{
		Use:   "put <file>",
		Short: "Store a plain-text document",
		Long: `Store a document's text for scanning.

Examples:
  goquill docs put chapter1.txt --title "Chapter 1"
  goquill docs put chapter1.txt --id d1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocsPut(args[0], id, title)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Document ID (generated when omitted)")
	cmd.Flags().StringVar(&title, "title", "", "Document title (defaults to the file name)")

	return cmd
}

func runDocsPut(path, id, title string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	return withStore(func(s store.Storer) error {
		if id == "" {
			id = uuid.NewString()
		}
		if title == "" {
			title = path
		}

		now := time.Now().Unix()
		doc := &store.Document{
			ID:        id,
			Title:     title,
			Content:   string(content),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.UpsertDocument(doc); err != nil {
			return fmt.Errorf("storing document: %w", err)
		}

		fmt.Printf("Stored %q id=%s (%d bytes)\n", doc.Title, doc.ID, len(doc.Content))
		return nil
	})
}

func newDocsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocsList()
		},
	}
	return cmd
}

func runDocsList() error {
	return withStore(func(s store.Storer) error {
		list, err := s.ListDocuments()
		if err != nil {
			return fmt.Errorf("listing documents: %w", err)
		}

		if len(list) == 0 {
			fmt.Println("No documents found.")
			return nil
		}

		fmt.Printf("Documents (%d total):\n\n", len(list))
		for _, d := range list {
			fmt.Printf("  %-36s %s\n", d.ID, d.Title)
		}
		return nil
	})
}

func newDocsRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(s store.Storer) error {
				if err := s.DeleteDocument(args[0]); err != nil {
					return fmt.Errorf("removing document: %w", err)
				}
				fmt.Println("Removed", args[0])
				return nil
			})
		},
	}
	return cmd
}

func newDocsIgnoreCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "ignore <doc-id> [name...]",
		Short: "Set or show a document's ignored entity names",
		Long: `With names, replaces the document's ignore list. Ignored names
suppress highlighting of the entity and all of its aliases in that
document only. Without names, prints the current list.

Examples:
  goquill docs ignore d1 Alice "The Shire"
  goquill docs ignore d1 --clear
  goquill docs ignore d1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocsIgnore(args[0], args[1:], clear)
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the ignore list")

	return cmd
}

func runDocsIgnore(docID string, names []string, clear bool) error {
	return withStore(func(s store.Storer) error {
		if clear {
			if err := s.SetIgnored(docID, nil); err != nil {
				return fmt.Errorf("clearing ignore list: %w", err)
			}
			fmt.Println("Cleared ignore list for", docID)
			return nil
		}

		if len(names) > 0 {
			if err := s.SetIgnored(docID, names); err != nil {
				return fmt.Errorf("setting ignore list: %w", err)
			}
			fmt.Printf("Ignoring %d names in %s\n", len(names), docID)
			return nil
		}

		current, err := s.GetIgnored(docID)
		if err != nil {
			return fmt.Errorf("reading ignore list: %w", err)
		}
		if len(current) == 0 {
			fmt.Println("No ignored names.")
			return nil
		}
		fmt.Println(strings.Join(current, "\n"))
		return nil
	})
}
