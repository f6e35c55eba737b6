package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/landbridge/michrazim/internal/service"
)

var resolveSuggest int

var resolveCmd = &cobra.Command{
	Use:   "resolve <settlement name>",
	Short: "Resolve a Hebrew settlement name to its Kod Yeshuv code",
	Args:  cobra.ExactArgs(1),
	Run:   runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().IntVar(&resolveSuggest, "suggest", 0, "print the top-N candidates instead of resolving")
}

func runResolve(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	svc, cleanup := buildService(cfg)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := args[0]

	if resolveSuggest > 0 {
		matches, err := svc.SuggestSettlements(ctx, name, resolveSuggest)
		if err != nil {
			slog.Error("Suggestion failed", "error", err)
			os.Exit(1)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCODE\tSCORE")
		for _, m := range matches {
			fmt.Fprintf(w, "%s\t%d\t%.2f\n", m.Name, m.Code, m.Score)
		}
		w.Flush()
		return
	}

	match, err := svc.ResolveSettlement(ctx, name)
	if err != nil {
		if service.IsNotFound(err) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		slog.Error("Resolution failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s -> %d (score %.2f)\n", match.Name, match.Code, match.Score)
}
