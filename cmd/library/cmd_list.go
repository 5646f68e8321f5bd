package main

import (
	"github.com/spf13/cobra"
)

var listFlags struct {
	collection string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every book in the catalog",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFlags.collection, "collection", "", "Only list books in this collection")
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := settings()
	if err != nil {
		return err
	}
	lib, err := openLibrary(ctx, cfg)
	if err != nil {
		return err
	}

	var names []string
	if listFlags.collection != "" {
		c, err := parseCollectionFlag(listFlags.collection)
		if err != nil {
			return err
		}
		names, err = lib.GetBookNamesIn(ctx, c)
		if err != nil {
			return err
		}
	} else {
		names, err = lib.GetBookNames(ctx)
		if err != nil {
			return err
		}
	}

	return printListing(ctx, cmd.OutOrStdout(), lib, names)
}
