package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addFlags struct {
	name       string
	authors    []string
	collection string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or update a book, then print the catalog",
	RunE:  runAdd,
}

func init() {
	f := addCmd.Flags()
	f.StringVar(&addFlags.name, "name", "", "Book title (required)")
	f.StringArrayVar(&addFlags.authors, "author", nil, "Author name; repeat for several authors")
	f.StringVar(&addFlags.collection, "collection", "General", "Reserve or General")

	_ = addCmd.MarkFlagRequired("name")
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	collection, err := parseCollectionFlag(addFlags.collection)
	if err != nil {
		return err
	}
	cfg, err := settings()
	if err != nil {
		return err
	}
	lib, err := openLibrary(ctx, cfg)
	if err != nil {
		return err
	}

	if err := lib.AddBook(ctx, addFlags.name, addFlags.authors, collection); err != nil {
		return fmt.Errorf("add %q: %w", addFlags.name, err)
	}

	names, err := lib.GetBookNames(ctx)
	if err != nil {
		return err
	}
	return printListing(ctx, cmd.OutOrStdout(), lib, names)
}
