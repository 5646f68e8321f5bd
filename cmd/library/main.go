// library is a demo CLI over the in-memory book catalog.
//
// Usage:
//
//	library [list] [--backend=list|set] [--seed=<books.yaml>] [--collection=Reserve|General]
//	library add --name=<title> --author=<name> [--author=<name>...] --collection=Reserve|General
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootFlags struct {
	backend  string
	seedFile string
	logLevel string
}

var rootCmd = &cobra.Command{
	Use:   "library",
	Short: "In-memory book catalog",
	Long:  "library seeds an in-memory book catalog and prints its contents.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runList,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.backend, "backend", "", "Storage backend: list or set (default from LIBRARY_BACKEND)")
	f.StringVar(&rootFlags.seedFile, "seed", "", "YAML file with books to load instead of the demo books")
	f.StringVar(&rootFlags.logLevel, "log-level", "", "Log level (default from LOG_LEVEL)")

	rootCmd.Flags().StringVar(&listFlags.collection, "collection", "", "Only list books in this collection")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
