package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quillclouds/goquill/internal/store"
	"github.com/quillclouds/goquill/pkg/mentions"
)

func newEntitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entities",
		Short: "Manage the entity registry",
	}

	cmd.AddCommand(
		newEntitiesAddCmd(),
		newEntitiesListCmd(),
		newEntitiesRemoveCmd(),
		newEntitiesSuggestCmd(),
	)

	return cmd
}

func newEntitiesAddCmd() *cobra.Command {
	var entityType string
	var aliases []string
	var autoAlias bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an entity to the registry",
		Long: `Add an entity with optional aliases.

Examples:
  goquill entities add "Alice Liddell" --type CHARACTER --alias Alice
  goquill entities add "The Shire" --type LOCATION --auto-alias`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntitiesAdd(args[0], entityType, aliases, autoAlias)
		},
	}

	cmd.Flags().StringVar(&entityType, "type", "CHARACTER", "Entity type: CHARACTER, LOCATION or ITEM")
	cmd.Flags().StringArrayVar(&aliases, "alias", nil, "Alias for the entity (repeatable)")
	cmd.Flags().BoolVar(&autoAlias, "auto-alias", false, "Derive aliases from the name")

	return cmd
}

func runEntitiesAdd(name, entityType string, aliases []string, autoAlias bool) error {
	return withStore(func(s store.Storer) error {
		typ := mentions.ParseType(entityType)
		if autoAlias {
			for _, a := range mentions.SuggestAliases(name, typ) {
				dup := false
				for _, existing := range aliases {
					if strings.EqualFold(existing, a) {
						dup = true
						break
					}
				}
				if !dup {
					aliases = append(aliases, a)
				}
			}
		}

		now := time.Now().Unix()
		entity := &store.Entity{
			ID:        uuid.NewString(),
			Name:      name,
			Type:      typ.String(),
			Aliases:   aliases,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.UpsertEntity(entity); err != nil {
			return fmt.Errorf("adding entity: %w", err)
		}

		fmt.Printf("Added %s (%s) id=%s\n", entity.Name, entity.Type, entity.ID)
		if len(entity.Aliases) > 0 {
			fmt.Printf("  aliases: %s\n", strings.Join(entity.Aliases, ", "))
		}
		return nil
	})
}

func newEntitiesListCmd() *cobra.Command {
	var entityType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered entities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntitiesList(entityType)
		},
	}

	cmd.Flags().StringVar(&entityType, "type", "", "Filter by type: CHARACTER, LOCATION or ITEM")

	return cmd
}

func runEntitiesList(entityType string) error {
	return withStore(func(s store.Storer) error {
		entities, err := s.ListEntities(entityType)
		if err != nil {
			return fmt.Errorf("listing entities: %w", err)
		}

		if len(entities) == 0 {
			fmt.Println("No entities found.")
			return nil
		}

		fmt.Printf("Entities (%d total):\n\n", len(entities))
		for _, e := range entities {
			line := fmt.Sprintf("  %-36s %-9s %s", e.ID, e.Type, e.Name)
			if len(e.Aliases) > 0 {
				line += " (" + strings.Join(e.Aliases, ", ") + ")"
			}
			fmt.Println(line)
		}
		return nil
	})
}

func newEntitiesRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id-or-name>",
		Short: "Remove an entity from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntitiesRemove(args[0])
		},
	}
	return cmd
}

func runEntitiesRemove(ref string) error {
	return withStore(func(s store.Storer) error {
		entity, err := s.GetEntity(ref)
		if err != nil {
			return fmt.Errorf("looking up entity: %w", err)
		}
		if entity == nil {
			entity, err = s.GetEntityByName(ref)
			if err != nil {
				return fmt.Errorf("looking up entity by name: %w", err)
			}
		}
		if entity == nil {
			return fmt.Errorf("entity not found: %s", ref)
		}

		if err := s.DeleteEntity(entity.ID); err != nil {
			return fmt.Errorf("removing entity: %w", err)
		}
		fmt.Printf("Removed %s (%s)\n", entity.Name, entity.ID)
		return nil
	})
}

func newEntitiesSuggestCmd() *cobra.Command {
	var entityType string

	cmd := &cobra.Command{
		Use:   "suggest <name>",
		Short: "Show the aliases that would be derived for a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases := mentions.SuggestAliases(args[0], mentions.ParseType(entityType))
			if len(aliases) == 0 {
				fmt.Println("No aliases suggested.")
				return nil
			}
			for _, a := range aliases {
				fmt.Println(a)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&entityType, "type", "CHARACTER", "Entity type: CHARACTER, LOCATION or ITEM")

	return cmd
}
