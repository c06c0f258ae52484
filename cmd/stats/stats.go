// Package stats prints the dashboard of one account.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/huntlog/huntlog/internal/app"
	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/journal"
	"github.com/huntlog/huntlog/internal/season"
	statspkg "github.com/huntlog/huntlog/internal/stats"
)

// Command creates the stats command.
func Command(settings *conf.Settings) *cobra.Command {
	var (
		username string
		date     string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard of an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Open(settings)
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck // best effort on exit

			acct, err := a.Repos.Accounts.GetByUsername(cmd.Context(), username)
			if err != nil {
				return fmt.Errorf("account %q: %w", username, err)
			}

			today := a.Journal.Today()
			if date != "" {
				if today, err = time.ParseInLocation(season.DateLayout, date, settings.Location()); err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
			}

			return run(cmd.Context(), a.Journal, acct, today, cmd.OutOrStdout(), asJSON)
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "Account to report on")
	cmd.Flags().StringVar(&date, "date", "", "Reference date as YYYY-MM-DD, defaults to today")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the dashboard as JSON")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func run(ctx context.Context, svc *journal.Service, acct *entities.Account, today time.Time, w io.Writer, asJSON bool) error {
	d, err := svc.Dashboard(ctx, acct, today)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	return render(w, acct.Username, d)
}

func render(w io.Writer, username string, d *journal.Dashboard) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Dashboard of %s on %s\n\n", username, d.Date)
	fmt.Fprintf(tw, "Season %s (%s to %s)\n", d.Season.Label(), d.Season.StartDate(), d.Season.EndDate())
	writeSummary(tw, d.Current)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "All time")
	writeSummary(tw, d.AllTime)

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Trophies\t%d\n", len(d.Trophies))
	for i := range d.Trophies {
		writeEntry(tw, &d.Trophies[i])
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Recent")
	for i := range d.Recent {
		writeEntry(tw, &d.Recent[i])
	}

	return tw.Flush()
}

func writeSummary(w io.Writer, s statspkg.Summary) {
	c := s.Counts
	fmt.Fprintf(w, "  Total\t%d\n", c.Total)
	fmt.Fprintf(w, "  Big game\t%d\n", c.BigGame)
	fmt.Fprintf(w, "  Wild boar\t%d\n", c.WildBoar)
	fmt.Fprintf(w, "  Small game\t%d\n", c.SmallGame)
	fmt.Fprintf(w, "  Predators\t%d\n", c.Predator)
	for _, row := range s.Species {
		fmt.Fprintf(w, "  %s\t%d\n", row.Label, row.Count)
	}
	for _, row := range s.Areas {
		fmt.Fprintf(w, "  Area %s\t%d\n", row.Name, row.Count)
	}
}

func writeEntry(w io.Writer, e *entities.Entry) {
	fmt.Fprintf(w, "  %s\t%s\t%s\n", e.Date, e.DisplayLabel(), e.AreaName())
}
