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

// NewGalleriesCommand creates the galleries command group.
func NewGalleriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "galleries",
		Aliases: []string{"gallery", "gals"},
		Short:   "Manage galleries",
		Long:    "List, create, update, and delete galleries and their media",
	}

	cmd.AddCommand(newGalleriesListCommand())
	cmd.AddCommand(newGalleriesGetCommand())
	cmd.AddCommand(newGalleriesCreateCommand())
	cmd.AddCommand(newGalleriesDeleteCommand())
	cmd.AddCommand(newGalleriesMediaCommand())
	cmd.AddCommand(newGalleriesAddMediaCommand())
	cmd.AddCommand(newGalleriesRemoveMediaCommand())
	cmd.AddCommand(newGalleriesSetKeyImageCommand())

	return cmd
}

func newGalleriesListCommand() *cobra.Command {
	var (
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List galleries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			params := psapi.NewQueryParams()
			params.Page = page
			params.PerPage = perPage

			galleries, err := client.Galleries().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list galleries: %w", err)
			}

			return outputGalleries(galleries.Items, galleries.Paging)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func outputGalleries(galleries []psapi.Gallery, paging psapi.Paging) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(galleries)
	case OutputFormatYAML:
		return StandardYAMLRenderer(galleries)
	default:
		return renderGalleryTable(galleries, paging)
	}
}

func renderGalleryTable(galleries []psapi.Gallery, paging psapi.Paging) error {
	if len(galleries) == 0 {
		_, _ = os.Stdout.WriteString("No galleries found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Visibility", "Media")

	for _, gallery := range galleries {
		_ = table.Append(gallery.ID, gallery.Name, gallery.Visibility, fmt.Sprintf("%d", gallery.MediaCount))
	}

	_ = table.Render()

	if paging.Total > len(galleries) {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d galleries.\n", len(galleries), paging.Total)
	}

	return nil
}

func newGalleriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get GALLERY_ID",
		Short: "Show a gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			gallery, err := client.Galleries().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get gallery: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(gallery)
			case OutputFormatYAML:
				return StandardYAMLRenderer(gallery)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")
				_ = table.Append("ID", gallery.ID)
				_ = table.Append("Name", gallery.Name)
				_ = table.Append("Description", gallery.Description)
				_ = table.Append("Visibility", gallery.Visibility)
				_ = table.Append("Parent", gallery.ParentID)
				_ = table.Append("Media Count", fmt.Sprintf("%d", gallery.MediaCount))
				_ = table.Append("Key Image", gallery.KeyImageID)
				_ = table.Render()

				return nil
			}
		},
	}
}

func newGalleriesCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		parentID    string
		visibility  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			gallery, err := client.Galleries().Create(ctx, &psapi.GalleryCreateRequest{
				Name:        name,
				Description: description,
				ParentID:    parentID,
				Visibility:  visibility,
			})
			if err != nil {
				return fmt.Errorf("failed to create gallery: %w", err)
			}

			fmt.Printf("Created gallery %s (%s)\n", gallery.Name, gallery.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "gallery name (required)")
	cmd.Flags().StringVar(&description, "description", "", "gallery description")
	cmd.Flags().StringVar(&parentID, "parent", "", "parent collection")
	cmd.Flags().StringVar(&visibility, "visibility", "", "visibility (everyone, private)")

	return cmd
}

func newGalleriesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete GALLERY_ID",
		Short: "Delete a gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Galleries().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete gallery: %w", err)
			}

			fmt.Printf("Deleted gallery %s\n", args[0])

			return nil
		},
	}
}

func newGalleriesMediaCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "media GALLERY_ID",
		Short: "List the media in a gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			params := psapi.NewQueryParams()
			params.PerPage = perPage

			media, err := client.Galleries().ListMedia(ctx, args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list gallery media: %w", err)
			}

			return outputMedia(media.Items, media.Paging)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func newGalleriesAddMediaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-media GALLERY_ID MEDIA_ID",
		Short: "Add a media item to a gallery",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Galleries().AddMedia(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to add media: %w", err)
			}

			fmt.Printf("Added %s to gallery %s\n", args[1], args[0])

			return nil
		},
	}
}

func newGalleriesRemoveMediaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-media GALLERY_ID MEDIA_ID",
		Short: "Remove a media item from a gallery",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Galleries().RemoveMedia(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to remove media: %w", err)
			}

			fmt.Printf("Removed %s from gallery %s\n", args[1], args[0])

			return nil
		},
	}
}

func newGalleriesSetKeyImageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key-image GALLERY_ID MEDIA_ID",
		Short: "Set the key image of a gallery",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			gallery, err := client.Galleries().SetKeyImage(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to set key image: %w", err)
			}

			fmt.Printf("Gallery %s key image is now %s\n", gallery.ID, gallery.KeyImageID)

			return nil
		},
	}
}
