// Asset get command retrieves an asset by ID.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stowr-project/stowr/pkg/types"
)

var assetGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve an asset by ID",
	Long: `Get retrieves an asset by its identifier.

Example:
  stowr asset get 0190a6be-1c4e-7000-8000-000000000001
  stowr asset get 0190a6be-1c4e-7000-8000-000000000001 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAssetGet,
}

func runAssetGet(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID[types.Asset](args[0])
	if err != nil {
		return fmt.Errorf("invalid asset id %q: %w", args[0], err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	asset, ok, err := store.Assets.Fetch(cliContext(), id)
	if err != nil {
		return fmt.Errorf("fetch asset: %w", err)
	}
	if !ok {
		return fmt.Errorf("asset %q not found", args[0])
	}

	if flagJSON {
		return printJSON(asset)
	}
	printAssetDetails(asset)
	return nil
}

// printAssetDetails prints asset fields in human-readable form.
func printAssetDetails(a types.Asset) {
	fmt.Printf("ID:          %s\n", a.ID)
	fmt.Printf("Name:        %s\n", a.Name)
	if a.Description != "" {
		fmt.Printf("Description: %s\n", a.Description)
	}
	fmt.Printf("Quantity:    %d\n", a.Quantity)
	if !a.Location.IsZero() {
		fmt.Printf("Location:    %s\n", a.Location)
	}
	for _, tag := range a.Tags {
		fmt.Printf("Tag:         %s\n", tag)
	}
	fmt.Printf("Created:     %s\n", a.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:     %s\n", a.UpdatedAt.Format("2006-01-02 15:04:05"))
}
