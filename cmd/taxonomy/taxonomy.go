// Package taxonomy prints the species table.
package taxonomy

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/huntlog/huntlog/internal/species"
)

var columns = []string{"code", "label", "summary bucket", "trophy rank"}

// Command creates the taxonomy command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the species taxonomy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTable(cmd.OutOrStdout(), species.Groups())
		},
	}
}

func printTable(w io.Writer, groups []species.GroupInfo) error {
	title := cases.Title(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s (%s)\n", g.Label, g.Group)
		for j, col := range columns {
			if j > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, title.String(col))
		}
		fmt.Fprintln(tw)

		for _, info := range g.Species {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Code, info.Label, bucket(info.Bucket), rank(info.Code))
		}
	}

	return tw.Flush()
}

func bucket(b species.Bucket) string {
	if b == species.BucketNone {
		return "-"
	}
	return string(b)
}

func rank(code species.Code) string {
	r, ok := species.TrophyRank(code)
	if !ok {
		return "-"
	}
	return fmt.Sprint(r)
}
