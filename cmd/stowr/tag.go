// Tag command group for the stowr CLI.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stowr-project/stowr/pkg/types"
)

var tagName string

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new tag",
	Long: `Add creates a new tag with a freshly generated identifier.

Example:
  stowr tag add --name "fragile"`,
	RunE: runTagAdd,
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	RunE:  runTagList,
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tag by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagDelete,
}

func init() {
	tagAddCmd.Flags().StringVar(&tagName, "name", "", "name for the tag (required)")
	_ = tagAddCmd.MarkFlagRequired("name")

	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagDeleteCmd)
}

func runTagAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tag := types.NewTag(types.NewTagID(), tagName)
	created, err := store.Tags.Create(cliContext(), tag)
	if err != nil {
		return fmt.Errorf("create tag: %w", err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created tag: %s\n", created.ID)
	return nil
}

func runTagList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tags, err := collectList(store.Tags.List(cliContext(), nil))
	if err != nil {
		return fmt.Errorf("list tags: %w", err)
	}

	if flagJSON {
		return printJSON(tags)
	}
	if len(tags) == 0 {
		fmt.Println("No tags found.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	fmt.Fprintln(w, "--\t----")
	for _, tg := range tags {
		fmt.Fprintf(w, "%s\t%s\n", shortID(tg.ID), tg.Name)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d tag(s)\n", len(tags))
	return nil
}

func runTagDelete(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID[types.Tag](args[0])
	if err != nil {
		return fmt.Errorf("invalid tag id %q: %w", args[0], err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Tags.Delete(cliContext(), id); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("tag %q not found", args[0])
		}
		return fmt.Errorf("delete tag: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"deleted": args[0], "status": "success"})
	}
	fmt.Printf("Deleted tag: %s\n", args[0])
	return nil
}
