// Package account manages login accounts from the command line.
package account

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/huntlog/huntlog/internal/app"
	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/journal"
)

// Command creates the account command and its subcommands.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage login accounts",
	}

	cmd.AddCommand(
		createCommand(settings),
		listCommand(settings),
		deleteCommand(settings),
		passwdCommand(settings),
	)

	return cmd
}

func createCommand(settings *conf.Settings) *cobra.Command {
	var (
		password string
		admin    bool
	)

	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withJournal(settings, func(svc *journal.Service) error {
				pw, err := resolvePassword(cmd, password)
				if err != nil {
					return err
				}
				return create(cmd.Context(), svc, cmd.OutOrStdout(), args[0], pw, admin)
			})
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Password, prompted for when omitted")
	cmd.Flags().BoolVar(&admin, "admin", false, "Grant administrator rights")

	return cmd
}

func listCommand(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withJournal(settings, func(svc *journal.Service) error {
				return list(cmd.Context(), svc, cmd.OutOrStdout())
			})
		},
	}
}

func deleteCommand(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete an account and all of its hunting data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withJournal(settings, func(svc *journal.Service) error {
				return remove(cmd.Context(), svc, cmd.OutOrStdout(), args[0])
			})
		},
	}
}

func passwdCommand(settings *conf.Settings) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "passwd <username>",
		Short: "Set the password of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withJournal(settings, func(svc *journal.Service) error {
				pw, err := resolvePassword(cmd, password)
				if err != nil {
					return err
				}
				if err := svc.SetPassword(cmd.Context(), args[0], pw); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Password of %s updated\n", args[0])
				return err
			})
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Password, prompted for when omitted")

	return cmd
}

// withJournal opens the application context for the duration of fn.
func withJournal(settings *conf.Settings, fn func(*journal.Service) error) error {
	a, err := app.Open(settings)
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck // best effort on exit

	return fn(a.Journal)
}

func create(ctx context.Context, svc *journal.Service, w io.Writer, username, password string, admin bool) error {
	acct, err := svc.CreateAccount(ctx, journal.SystemActor, journal.AccountInput{
		Username: journal.Some(username),
		Password: journal.Some(password),
		IsAdmin:  journal.Some(admin),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Created account %s (id %d)\n", acct.Username, acct.ID)
	return err
}

func list(ctx context.Context, svc *journal.Service, w io.Writer) error {
	accounts, err := svc.ListAccounts(ctx, journal.SystemActor)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tADMIN\tACTIVE\tLAST LOGIN")
	for i := range accounts {
		a := &accounts[i]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", a.ID, a.Username, yesNo(a.IsAdmin), yesNo(a.Active), lastLogin(a))
	}
	return tw.Flush()
}

func remove(ctx context.Context, svc *journal.Service, w io.Writer, username string) error {
	acct, err := findAccount(ctx, svc, username)
	if err != nil {
		return err
	}
	if err := svc.DeleteAccount(ctx, journal.SystemActor, acct.ID); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Deleted account %s\n", acct.Username)
	return err
}

func findAccount(ctx context.Context, svc *journal.Service, username string) (*entities.Account, error) {
	accounts, err := svc.ListAccounts(ctx, journal.SystemActor)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Username == username {
			return &accounts[i], nil
		}
	}
	return nil, fmt.Errorf("account %q: %w", username, journal.ErrNotFound)
}

// resolvePassword returns flagValue, or reads a password from stdin. A
// terminal gets a prompt without echo.
func resolvePassword(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(pw), nil
	}

	return readLine(cmd.InOrStdin())
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func lastLogin(a *entities.Account) string {
	if a.LastLoginAt == nil {
		return "never"
	}
	return a.LastLoginAt.Local().Format(time.DateTime)
}
