package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skylight-io/psapi-client/pkg/psapi"
	"github.com/skylight-io/psapi-client/pkg/psclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		email    string
		password string
		orgID    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the API",
		Long:  "Authenticate with the API and store the session token for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := buildClientConfig()
			if err != nil {
				return err
			}

			// A login replaces any stored token.
			config.AuthToken = ""

			if email == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if email == "" {
				return ErrEmailRequired
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			if orgID == "" {
				orgID = loadConfig().OrgID
			}

			ctx := context.Background()

			client, err := psclient.New(ctx, config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			session, err := client.Auth().Login(ctx, email, password, orgID)
			if err != nil {
				if errors.Is(err, psapi.ErrTwoFactorRequired) {
					session, err = completeTwoFactor(ctx, client)
				}

				if err != nil {
					return fmt.Errorf("login failed: %w", err)
				}
			}

			stored := loadConfig()
			stored.Endpoint = config.Endpoint
			stored.APIKey = config.APIKey
			stored.Token = session.Token
			stored.OrgID = session.OrgID

			err = saveConfig(stored)
			if err != nil {
				return err
			}

			fmt.Println("Logged in")

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "u", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted if omitted)")
	cmd.Flags().StringVar(&orgID, "org-id", "", "organization to log in to")

	return cmd
}

// completeTwoFactor prompts for a verification code and finishes a pending
// two-factor login.
func completeTwoFactor(ctx context.Context, client psapi.Client) (*psapi.Session, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Two-factor code: ")

	code, _ := reader.ReadString('\n')
	code = strings.TrimSpace(code)

	session, err := client.Auth().VerifyTwoFactor(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("verifying two-factor code: %w", err)
	}

	return session, nil
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout and discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(context.Background())
			if err == nil {
				// Best effort: the token is discarded locally regardless.
				_ = client.Auth().Logout(context.Background())
			}

			stored := loadConfig()
			stored.Token = ""

			err = saveConfig(stored)
			if err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
