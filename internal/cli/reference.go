package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/landbridge/michrazim/internal/core/domain"
)

var referenceCmd = &cobra.Command{
	Use:       "reference [types|regions|land-uses|statuses|populations|settlements]",
	Short:     "Print an upstream reference code table",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"types", "regions", "land-uses", "statuses", "populations", "settlements"},
	Run:       runReference,
}

func init() {
	rootCmd.AddCommand(referenceCmd)
}

func runReference(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch args[0] {
	case "types":
		fmt.Fprintln(w, "ID\tHEBREW\tENGLISH")
		for _, t := range domain.TenderTypes() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.NameHebrew, t.NameEnglish)
		}
	case "regions":
		fmt.Fprintln(w, "ID\tHEBREW\tENGLISH")
		for _, r := range domain.Regions() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.ID, r.NameHebrew, r.NameEnglish)
		}
	case "land-uses":
		fmt.Fprintln(w, "ID\tHEBREW\tENGLISH")
		for _, u := range domain.LandUses() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.NameHebrew, u.NameEnglish)
		}
	case "statuses":
		fmt.Fprintln(w, "ID\tHEBREW\tENGLISH")
		for _, s := range domain.TenderStatuses() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.NameHebrew, s.NameEnglish)
		}
	case "populations":
		fmt.Fprintln(w, "ID\tHEBREW\tENGLISH")
		for _, p := range domain.PriorityPopulations() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.NameHebrew, p.NameEnglish)
		}
	case "settlements":
		fmt.Fprintln(w, "CODE\tNAME\tREGION")
		for _, s := range domain.SettlementCatalog() {
			fmt.Fprintf(w, "%d\t%s\t%d\n", s.Code, s.Name, s.Region)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown table %q\n", args[0])
		os.Exit(1)
	}
}
