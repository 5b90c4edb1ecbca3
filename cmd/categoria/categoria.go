// Package categoria handles category name management commands
package categoria

import (
	"caixadre/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the categoria command
var Cmd = &cobra.Command{
	Use:   "categoria",
	Short: "Manage category names",
}

var addCmd = &cobra.Command{
	Use:   "add <nome>",
	Short: "Add a category name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !root.Book.AddCategoria(args[0]) {
			root.Log.Fatalf("Category %q already exists or is empty", args[0])
		}
		root.Log.Infof("Added category %q", args[0])
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <nome>",
	Short: "Remove a category name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := root.Book.RemoveCategoria(args[0])
		if err != nil {
			root.Log.Fatalf("Error removing category: %v", err)
		}
		if !ok {
			root.Log.Fatalf("No category named %q", args[0])
		}
		root.Log.Infof("Removed category %q", args[0])
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List category names",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range root.Book.Categorias.All() {
			root.Log.Info(c)
		}
	},
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(listCmd)
}
