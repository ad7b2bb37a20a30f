// Location command group for the stowr CLI.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stowr-project/stowr/pkg/types"
)

var locationName string

var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Manage locations",
}

var locationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new location",
	Long: `Add creates a new location with a freshly generated identifier.

Example:
  stowr location add --name "Shelf B3"`,
	RunE: runLocationAdd,
}

var locationGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve a location by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocationGet,
}

var locationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all locations",
	RunE:  runLocationList,
}

var locationDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a location by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocationDelete,
}

func init() {
	locationAddCmd.Flags().StringVar(&locationName, "name", "", "name for the location (required)")
	_ = locationAddCmd.MarkFlagRequired("name")

	locationCmd.AddCommand(locationAddCmd)
	locationCmd.AddCommand(locationGetCmd)
	locationCmd.AddCommand(locationListCmd)
	locationCmd.AddCommand(locationDeleteCmd)
}

func runLocationAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	location := types.NewLocation(types.NewLocationID(), locationName)
	created, err := store.Locations.Create(cliContext(), location)
	if err != nil {
		if isConflict(err) {
			return fmt.Errorf("location already exists")
		}
		return fmt.Errorf("create location: %w", err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created location: %s\n", created.ID)
	return nil
}

func runLocationGet(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID[types.Location](args[0])
	if err != nil {
		return fmt.Errorf("invalid location id %q: %w", args[0], err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	location, ok, err := store.Locations.Fetch(cliContext(), id)
	if err != nil {
		return fmt.Errorf("fetch location: %w", err)
	}
	if !ok {
		return fmt.Errorf("location %q not found", args[0])
	}

	if flagJSON {
		return printJSON(location)
	}
	fmt.Printf("ID:      %s\n", location.ID)
	fmt.Printf("Name:    %s\n", location.Name)
	fmt.Printf("Created: %s\n", location.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated: %s\n", location.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runLocationList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	locations, err := collectList(store.Locations.List(cliContext(), nil))
	if err != nil {
		return fmt.Errorf("list locations: %w", err)
	}

	if flagJSON {
		return printJSON(locations)
	}
	if len(locations) == 0 {
		fmt.Println("No locations found.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	fmt.Fprintln(w, "--\t----")
	for _, l := range locations {
		fmt.Fprintf(w, "%s\t%s\n", shortID(l.ID), l.Name)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d location(s)\n", len(locations))
	return nil
}

func runLocationDelete(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID[types.Location](args[0])
	if err != nil {
		return fmt.Errorf("invalid location id %q: %w", args[0], err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Locations.Delete(cliContext(), id); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("location %q not found", args[0])
		}
		return fmt.Errorf("delete location: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"deleted": args[0], "status": "success"})
	}
	fmt.Printf("Deleted location: %s\n", args[0])
	return nil
}
