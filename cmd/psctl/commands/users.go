package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Inspect accounts",
	}

	cmd.AddCommand(newUsersMeCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersOrgMembersCommand())

	return cmd
}

func newUsersMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			user, err := client.Users().Me(ctx)
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			return outputUser(user)
		},
	}
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			user, err := client.Users().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return outputUser(user)
		},
	}
}

func outputUser(user *psapi.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(user)
	case OutputFormatYAML:
		return StandardYAMLRenderer(user)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Field", "Value")
		_ = table.Append("ID", user.ID)
		_ = table.Append("Email", user.Email)
		_ = table.Append("Name", user.FirstName+" "+user.LastName)
		_ = table.Append("Org", user.OrgID)
		_ = table.Render()

		return nil
	}
}

func newUsersOrgMembersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "org-members ORG_ID",
		Short: "List the members of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			members, err := client.Organizations().ListMembers(ctx, args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(members.Items)
			case OutputFormatYAML:
				return StandardYAMLRenderer(members.Items)
			default:
				if len(members.Items) == 0 {
					_, _ = os.Stdout.WriteString("No members found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("User ID", "Email", "Role")

				for _, member := range members.Items {
					_ = table.Append(member.UserID, member.Email, member.Role)
				}

				_ = table.Render()

				return nil
			}
		},
	}
}
