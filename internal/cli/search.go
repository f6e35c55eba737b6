package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/landbridge/michrazim/internal/core/domain"
	"github.com/landbridge/michrazim/internal/service"
)

var (
	searchSettlement string
	searchTypes      []int
	searchRegions    []int
	searchStatuses   []int
	searchActiveOnly bool
	searchNumber     string
	searchPage       int
	searchPageSize   int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search land tenders",
	Run:   runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchSettlement, "settlement", "", "settlement name in Hebrew (fuzzy matched)")
	searchCmd.Flags().IntSliceVar(&searchTypes, "type", nil, "tender type codes")
	searchCmd.Flags().IntSliceVar(&searchRegions, "region", nil, "region codes")
	searchCmd.Flags().IntSliceVar(&searchStatuses, "status", nil, "status codes")
	searchCmd.Flags().BoolVar(&searchActiveOnly, "active", false, "active tenders only")
	searchCmd.Flags().StringVar(&searchNumber, "number", "", "exact tender number")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "page number")
	searchCmd.Flags().IntVar(&searchPageSize, "page-size", 20, "page size")
}

func runSearch(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	svc, cleanup := buildService(cfg)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	page, err := svc.SearchTenders(ctx, domain.SearchFilter{
		Settlement:   searchSettlement,
		TenderTypes:  searchTypes,
		Regions:      searchRegions,
		Statuses:     searchStatuses,
		ActiveOnly:   searchActiveOnly,
		TenderNumber: searchNumber,
		PageNumber:   searchPage,
		PageSize:     searchPageSize,
	})
	if err != nil {
		if service.IsNotFound(err) {
			fmt.Fprintf(os.Stderr, "settlement not found: %v\n", err)
			os.Exit(1)
		}
		slog.Error("Search failed", "error", err)
		os.Exit(1)
	}

	printPage(page)
}

func printPage(page *domain.Page) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tTYPE\tSTATUS\tSETTLEMENT\tPUBLISHED\tDEADLINE")
	for _, rec := range page.Records {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%s\t%s\n",
			rec.MichrazID,
			rec.MichrazName,
			rec.KodSugMichraz,
			rec.StatusMichraz,
			rec.KodYeshuv,
			formatDate(rec.PirsumDate),
			formatDate(rec.SgiraDate),
		)
	}
	w.Flush()

	fmt.Printf("\npage %d (%d records of %d total", page.PageNumber, len(page.Records), page.TotalCount)
	if page.HasMore {
		fmt.Print(", more available")
	}
	if page.Dropped > 0 {
		fmt.Printf(", %d invalid records dropped", page.Dropped)
	}
	fmt.Println(")")
}

func formatDate(t domain.UpstreamTime) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(domain.IsraelTZ).Format("02/01/2006")
}
