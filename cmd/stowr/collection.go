// Collection command group for the stowr CLI.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stowr-project/stowr/pkg/types"
)

var (
	collectionName        string
	collectionDescription string
)

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage collections",
}

var collectionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new collection",
	Long: `Add creates a new collection with a freshly generated identifier.

Example:
  stowr collection add --name "Field kit"
  stowr collection add --name "Loaners" --description "Equipment out on loan"`,
	RunE: runCollectionAdd,
}

var collectionGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve a collection by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionGet,
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections",
	RunE:  runCollectionList,
}

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a collection by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionDelete,
}

func init() {
	collectionAddCmd.Flags().StringVar(&collectionName, "name", "", "name for the collection (required)")
	collectionAddCmd.Flags().StringVar(&collectionDescription, "description", "", "free-form description")
	_ = collectionAddCmd.MarkFlagRequired("name")

	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionGetCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionDeleteCmd)
}

func runCollectionAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	collection := types.NewCollection(types.NewCollectionID(), collectionName)
	collection.Description = collectionDescription
	created, err := store.Collections.Create(cliContext(), collection)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created collection: %s\n", created.ID)
	return nil
}

func runCollectionGet(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID[types.Collection](args[0])
	if err != nil {
		return fmt.Errorf("invalid collection id %q: %w", args[0], err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	collection, ok, err := store.Collections.Fetch(cliContext(), id)
	if err != nil {
		return fmt.Errorf("fetch collection: %w", err)
	}
	if !ok {
		return fmt.Errorf("collection %q not found", args[0])
	}

	if flagJSON {
		return printJSON(collection)
	}
	fmt.Printf("ID:          %s\n", collection.ID)
	fmt.Printf("Name:        %s\n", collection.Name)
	if collection.Description != "" {
		fmt.Printf("Description: %s\n", collection.Description)
	}
	for _, assetID := range collection.Assets {
		fmt.Printf("Asset:       %s\n", assetID)
	}
	fmt.Printf("Created:     %s\n", collection.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:     %s\n", collection.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runCollectionList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	collections, err := collectList(store.Collections.List(cliContext(), nil))
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	if flagJSON {
		return printJSON(collections)
	}
	if len(collections) == 0 {
		fmt.Println("No collections found.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tASSETS")
	fmt.Fprintln(w, "--\t----\t------")
	for _, c := range collections {
		fmt.Fprintf(w, "%s\t%s\t%d\n", shortID(c.ID), c.Name, len(c.Assets))
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d collection(s)\n", len(collections))
	return nil
}

func runCollectionDelete(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID[types.Collection](args[0])
	if err != nil {
		return fmt.Errorf("invalid collection id %q: %w", args[0], err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Collections.Delete(cliContext(), id); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("collection %q not found", args[0])
		}
		return fmt.Errorf("delete collection: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"deleted": args[0], "status": "success"})
	}
	fmt.Printf("Deleted collection: %s\n", args[0])
	return nil
}
