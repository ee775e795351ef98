package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/StinkyLord/pcb-part-matcher/internal/match"
)

// WriteTable renders grouped match results as an aligned console table.
// In verbose mode each unmatched group is followed by its full diagnostic
// block, and alternates and warnings are spelled out under their rows.
func WriteTable(w io.Writer, grouped *match.GroupedResults, verbose bool) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REFS\tQTY\tVALUE\tPACKAGE\tIPN\tSCORE\tNOTES")

	matched, total := 0, 0
	for _, g := range grouped.Groups {
		total++
		refs := strings.Join(g.References, " ")
		if len(g.Results) == 0 {
			note := "no match"
			if g.Diagnostic != nil && !verbose {
				note = g.Diagnostic.Terse()
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t-\t-\t%s\n",
				refs, len(g.References), g.Value, packageColumn(g), note)
			continue
		}
		matched++
		best := g.Results[0]
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%d\t%s\n",
			refs, len(g.References), g.Value, packageColumn(g),
			best.Item.IPN, best.Score, strings.Join(best.Warnings, "; "))
		if verbose {
			for _, r := range g.Results[1:] {
				if r.Alternate {
					fmt.Fprintf(tw, "\t\t\t  alt:\t%s\t%d\t\n", r.Item.IPN, r.Score)
				}
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if verbose {
		for _, g := range grouped.Groups {
			if g.Diagnostic != nil {
				fmt.Fprintln(w)
				fmt.Fprint(w, g.Diagnostic.Verbose())
			}
		}
	}

	fmt.Fprintf(w, "\n%d/%d groups matched\n", matched, total)
	return nil
}
