// Asset delete command removes an asset by ID.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stowr-project/stowr/pkg/types"
)

var assetDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an asset by ID",
	Long: `Delete removes an asset by its identifier. The record is
irrecoverably removed; the identifier may be reused afterwards.

Example:
  stowr asset delete 0190a6be-1c4e-7000-8000-000000000001`,
	Args: cobra.ExactArgs(1),
	RunE: runAssetDelete,
}

func runAssetDelete(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID[types.Asset](args[0])
	if err != nil {
		return fmt.Errorf("invalid asset id %q: %w", args[0], err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Assets.Delete(cliContext(), id); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("asset %q not found", args[0])
		}
		return fmt.Errorf("delete asset: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"deleted": args[0], "status": "success"})
	}
	fmt.Printf("Deleted asset: %s\n", args[0])
	return nil
}
