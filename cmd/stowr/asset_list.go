// Asset list command queries all assets.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stowr-project/stowr/pkg/types"
)

var assetListLocation string

var assetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all assets",
	Long: `List fetches all assets and displays them.

Use --location to show only assets assigned to one location.

Example:
  stowr asset list
  stowr asset list --location 0190a6be-1c4e-7000-8000-000000000001
  stowr asset list --json`,
	RunE: runAssetList,
}

func init() {
	assetListCmd.Flags().StringVar(&assetListLocation, "location", "", "filter by location identifier")
}

func runAssetList(cmd *cobra.Command, args []string) error {
	var filter types.Filter[types.Asset]
	if assetListLocation != "" {
		locID, err := types.ParseID[types.Location](assetListLocation)
		if err != nil {
			return fmt.Errorf("invalid location: %w", err)
		}
		filter = func(a types.Asset) bool { return a.Location == locID }
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	assets, err := collectList(store.Assets.List(cliContext(), filter))
	if err != nil {
		return fmt.Errorf("list assets: %w", err)
	}

	if flagJSON {
		return printJSON(assets)
	}
	printAssetTable(assets)
	return nil
}

// printAssetTable prints assets in a human-readable table format.
func printAssetTable(assets []types.Asset) {
	if len(assets) == 0 {
		fmt.Println("No assets found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tQTY\tLOCATION")
	fmt.Fprintln(w, "--\t----\t---\t--------")
	for _, a := range assets {
		name := a.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		location := "-"
		if !a.Location.IsZero() {
			location = shortID(a.Location)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", shortID(a.ID), name, a.Quantity, location)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d asset(s)\n", len(assets))
}
