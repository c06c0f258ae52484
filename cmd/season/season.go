// Package season prints the hunting season for a date.
package season

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/huntlog/huntlog/internal/conf"
	seasonpkg "github.com/huntlog/huntlog/internal/season"
)

// Command creates the season command.
func Command(settings *conf.Settings) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "season",
		Short: "Print the hunting season window",
		Long:  "Print the season containing today, or the date given with --date, in the configured timezone.",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := resolveDay(date, settings.Location(), time.Now())
			if err != nil {
				return err
			}
			return printWindow(cmd.OutOrStdout(), day)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Reference date as YYYY-MM-DD, defaults to today")

	return cmd
}

// resolveDay parses date in loc, or returns now in loc when date is empty.
func resolveDay(date string, loc *time.Location, now time.Time) (time.Time, error) {
	if date == "" {
		return now.In(loc), nil
	}
	day, err := time.ParseInLocation(seasonpkg.DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return day, nil
}

func printWindow(w io.Writer, day time.Time) error {
	window := seasonpkg.Current(day)
	_, err := fmt.Fprintf(w, "Season %s: %s to %s (previous %s)\n",
		window.Label(), window.StartDate(), window.EndDate(), window.Previous().Label())
	return err
}
