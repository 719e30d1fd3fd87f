package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// NewSearchCommand creates the search command group. Search lives in the
// older API namespace, so these commands go through the v3 client.
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the library",
	}

	cmd.AddCommand(newSearchImagesCommand())
	cmd.AddCommand(newSearchGalleriesCommand())

	return cmd
}

func newSearchImagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "images TERMS...",
		Short: "Search images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateV3Client(ctx)
			if err != nil {
				return err
			}

			results, err := client.Search().Images(ctx, strings.Join(args, " "), nil)
			if err != nil {
				return fmt.Errorf("failed to search images: %w", err)
			}

			return outputSearchResults(results)
		},
	}
}

func newSearchGalleriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "galleries TERMS...",
		Short: "Search galleries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateV3Client(ctx)
			if err != nil {
				return err
			}

			results, err := client.Search().Galleries(ctx, strings.Join(args, " "), nil)
			if err != nil {
				return fmt.Errorf("failed to search galleries: %w", err)
			}

			return outputSearchResults(results)
		},
	}
}

func outputSearchResults(results []psapi.V3SearchResult) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(results)
	case OutputFormatYAML:
		return StandardYAMLRenderer(results)
	default:
		if len(results) == 0 {
			_, _ = os.Stdout.WriteString("No results found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Type", "Name", "Score")

		for _, result := range results {
			name := result.Name
			if name == "" {
				name = result.FileName
			}

			_ = table.Append(result.ID, result.Type, name, fmt.Sprintf("%.2f", result.Score))
		}

		_ = table.Render()

		return nil
	}
}
