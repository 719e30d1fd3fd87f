package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skylight-io/psapi-client/internal/constants"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// NewMediaCommand creates the media command group.
func NewMediaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage media",
		Long:  "Inspect, download, upload, and move media items",
	}

	cmd.AddCommand(newMediaGetCommand())
	cmd.AddCommand(newMediaDownloadCommand())
	cmd.AddCommand(newMediaUploadCommand())
	cmd.AddCommand(newMediaDeleteCommand())
	cmd.AddCommand(newMediaMetadataCommand())
	cmd.AddCommand(newMediaMoveCommand())

	return cmd
}

func outputMedia(media []psapi.Media, paging psapi.Paging) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(media)
	case OutputFormatYAML:
		return StandardYAMLRenderer(media)
	default:
		return renderMediaTable(media, paging)
	}
}

func renderMediaTable(media []psapi.Media, paging psapi.Paging) error {
	if len(media) == 0 {
		_, _ = os.Stdout.WriteString("No media found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "File Name", "Type", "Size", "Dimensions")

	for _, item := range media {
		dimensions := constants.NotAvailable
		if item.Width > 0 && item.Height > 0 {
			dimensions = fmt.Sprintf("%dx%d", item.Width, item.Height)
		}

		_ = table.Append(item.ID, item.FileName, item.MimeType, formatBytes(item.FileSize), dimensions)
	}

	_ = table.Render()

	if paging.Total > len(media) {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d media items.\n", len(media), paging.Total)
	}

	return nil
}

func newMediaGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MEDIA_ID",
		Short: "Show a media item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			media, err := client.Media().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get media: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(media)
			case OutputFormatYAML:
				return StandardYAMLRenderer(media)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")
				_ = table.Append("ID", media.ID)
				_ = table.Append("File Name", media.FileName)
				_ = table.Append("Gallery", media.GalleryID)
				_ = table.Append("Type", media.MimeType)
				_ = table.Append("Size", formatBytes(media.FileSize))
				_ = table.Render()

				return nil
			}
		},
	}
}

func newMediaDownloadCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "download MEDIA_ID",
		Short: "Download the original file of a media item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			if outPath == "" {
				media, err := client.Media().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get media: %w", err)
				}

				outPath = media.FileName
			}

			if outPath == "" {
				return ErrOutputPathRequired
			}

			content, err := client.Media().Download(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to download media: %w", err)
			}

			err = os.WriteFile(outPath, content, 0o644)
			if err != nil {
				return fmt.Errorf("writing file: %w", err)
			}

			fmt.Printf("Downloaded %s to %s (%s)\n", args[0], outPath, formatBytes(int64(len(content))))

			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (defaults to the remote file name)")

	return cmd
}

func newMediaUploadCommand() *cobra.Command {
	var galleryID string

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a file into a gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if galleryID == "" {
				return ErrGalleryRequired
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			media, err := client.Media().Upload(ctx, galleryID, filepath.Base(args[0]), content)
			if err != nil {
				return fmt.Errorf("failed to upload media: %w", err)
			}

			fmt.Printf("Uploaded %s as %s\n", media.FileName, media.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&galleryID, "gallery", "g", "", "target gallery (required)")

	return cmd
}

func newMediaDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete MEDIA_ID",
		Short: "Delete a media item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Media().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete media: %w", err)
			}

			fmt.Printf("Deleted media %s\n", args[0])

			return nil
		},
	}
}

func newMediaMetadataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "metadata MEDIA_ID",
		Short: "Show the embedded metadata of a media item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			metadata, err := client.Media().GetMetadata(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get metadata: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(metadata)
			default:
				return StandardYAMLRenderer(metadata)
			}
		},
	}
}

func newMediaMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move MEDIA_ID GALLERY_ID",
		Short: "Move a media item to another gallery",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			media, err := client.Media().Move(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to move media: %w", err)
			}

			fmt.Printf("Moved %s to gallery %s\n", media.ID, media.GalleryID)

			return nil
		},
	}
}
