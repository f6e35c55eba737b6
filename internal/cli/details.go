package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var detailsMap bool

var detailsCmd = &cobra.Command{
	Use:   "details <tender id>",
	Short: "Fetch full details for one tender",
	Args:  cobra.ExactArgs(1),
	Run:   runDetails,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
	detailsCmd.Flags().BoolVar(&detailsMap, "map", false, "fetch geographic map details instead")
}

func runDetails(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	svc, cleanup := buildService(cfg)
	defer cleanup()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid tender id %q\n", args[0])
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var result any
	if detailsMap {
		result, err = svc.GetTenderMapDetails(ctx, id)
	} else {
		result, err = svc.GetTenderDetails(ctx, id)
	}
	if err != nil {
		slog.Error("Details fetch failed", "id", id, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		slog.Error("Encode failed", "error", err)
		os.Exit(1)
	}
}
