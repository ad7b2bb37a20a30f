// Asset add command creates a new asset.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stowr-project/stowr/pkg/types"
)

var (
	assetName        string
	assetDescription string
	assetQuantity    int64
	assetLocation    string
)

var assetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new asset",
	Long: `Add creates a new asset with a freshly generated identifier.

Example:
  stowr asset add --name "Microscope"
  stowr asset add --name "Beaker" --quantity 24 --location 0190a6be-1c4e-7000-8000-000000000001
  stowr asset add --name "Flask" --json`,
	RunE: runAssetAdd,
}

func init() {
	assetAddCmd.Flags().StringVar(&assetName, "name", "", "name for the asset (required)")
	assetAddCmd.Flags().StringVar(&assetDescription, "description", "", "free-form description")
	assetAddCmd.Flags().Int64Var(&assetQuantity, "quantity", 0, "on-hand quantity")
	assetAddCmd.Flags().StringVar(&assetLocation, "location", "", "location identifier to assign the asset to")
	_ = assetAddCmd.MarkFlagRequired("name")
}

func runAssetAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	asset := types.NewAsset(types.NewAssetID(), assetName)
	asset.Description = assetDescription
	if err := asset.SetQuantity(assetQuantity); err != nil {
		return fmt.Errorf("invalid quantity %d: %w", assetQuantity, err)
	}
	if assetLocation != "" {
		locID, err := types.ParseID[types.Location](assetLocation)
		if err != nil {
			return fmt.Errorf("invalid location: %w", err)
		}
		asset.SetLocation(locID)
	}

	created, err := store.Assets.Create(cliContext(), asset)
	if err != nil {
		return fmt.Errorf("create asset: %w", err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created asset: %s\n", created.ID)
	return nil
}
