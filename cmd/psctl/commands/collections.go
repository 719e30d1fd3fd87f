package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skylight-io/psapi-client/internal/constants"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// NewCollectionsCommand creates the collections command group.
func NewCollectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collections",
		Aliases: []string{"collection", "cols"},
		Short:   "Manage collections",
		Long:    "List, create, update, and delete collections",
	}

	cmd.AddCommand(newCollectionsListCommand())
	cmd.AddCommand(newCollectionsGetCommand())
	cmd.AddCommand(newCollectionsCreateCommand())
	cmd.AddCommand(newCollectionsDeleteCommand())
	cmd.AddCommand(newCollectionsChildrenCommand())
	cmd.AddCommand(newCollectionsSetVisibilityCommand())

	return cmd
}

func newCollectionsListCommand() *cobra.Command {
	var (
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			params := psapi.NewQueryParams()
			params.Page = page
			params.PerPage = perPage

			collections, err := client.Collections().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list collections: %w", err)
			}

			return outputCollections(collections.Items, collections.Paging)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func outputCollections(collections []psapi.Collection, paging psapi.Paging) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(collections)
	case OutputFormatYAML:
		return StandardYAMLRenderer(collections)
	default:
		return renderCollectionTable(collections, paging)
	}
}

func renderCollectionTable(collections []psapi.Collection, paging psapi.Paging) error {
	if len(collections) == 0 {
		_, _ = os.Stdout.WriteString("No collections found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Visibility", "Parent")

	for _, collection := range collections {
		_ = table.Append(collection.ID, collection.Name, collection.Visibility, collection.ParentID)
	}

	_ = table.Render()

	if paging.Total > len(collections) {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d collections.\n", len(collections), paging.Total)
	}

	return nil
}

func newCollectionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COLLECTION_ID",
		Short: "Show a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			collection, err := client.Collections().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get collection: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(collection)
			case OutputFormatYAML:
				return StandardYAMLRenderer(collection)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")
				_ = table.Append("ID", collection.ID)
				_ = table.Append("Name", collection.Name)
				_ = table.Append("Description", collection.Description)
				_ = table.Append("Visibility", collection.Visibility)
				_ = table.Append("Parent", collection.ParentID)
				_ = table.Append("Key Image", collection.KeyImageID)
				_ = table.Render()

				return nil
			}
		},
	}
}

func newCollectionsCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		parentID    string
		visibility  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			collection, err := client.Collections().Create(ctx, &psapi.CollectionCreateRequest{
				Name:        name,
				Description: description,
				ParentID:    parentID,
				Visibility:  visibility,
			})
			if err != nil {
				return fmt.Errorf("failed to create collection: %w", err)
			}

			fmt.Printf("Created collection %s (%s)\n", collection.Name, collection.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "collection name (required)")
	cmd.Flags().StringVar(&description, "description", "", "collection description")
	cmd.Flags().StringVar(&parentID, "parent", "", "parent collection")
	cmd.Flags().StringVar(&visibility, "visibility", "", "visibility (everyone, private)")

	return cmd
}

func newCollectionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete COLLECTION_ID",
		Short: "Delete a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Collections().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete collection: %w", err)
			}

			fmt.Printf("Deleted collection %s\n", args[0])

			return nil
		},
	}
}

func newCollectionsChildrenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "children COLLECTION_ID",
		Short: "List the children of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			children, err := client.Collections().Children(ctx, args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to list children: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(children.Items)
			case OutputFormatYAML:
				return StandardYAMLRenderer(children.Items)
			default:
				return renderChildrenTable(children.Items)
			}
		},
	}
}

func renderChildrenTable(children []psapi.CollectionChild) error {
	if len(children) == 0 {
		_, _ = os.Stdout.WriteString("No children found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Type", "ID", "Name")

	for _, child := range children {
		switch {
		case child.Collection != nil:
			_ = table.Append(child.Type, child.Collection.ID, child.Collection.Name)
		case child.Gallery != nil:
			_ = table.Append(child.Type, child.Gallery.ID, child.Gallery.Name)
		}
	}

	_ = table.Render()

	return nil
}

func newCollectionsSetVisibilityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-visibility COLLECTION_ID VISIBILITY",
		Short: "Change who can see a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			collection, err := client.Collections().SetVisibility(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to set visibility: %w", err)
			}

			fmt.Printf("Collection %s visibility is now %s\n", collection.ID, collection.Visibility)

			return nil
		},
	}
}
