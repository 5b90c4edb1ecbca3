// Package banco handles bank name management commands
package banco

import (
	"caixadre/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the banco command
var Cmd = &cobra.Command{
	Use:   "banco",
	Short: "Manage bank names",
}

var addCmd = &cobra.Command{
	Use:   "add <nome>",
	Short: "Add a bank name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !root.Book.AddBanco(args[0]) {
			root.Log.Fatalf("Bank %q already exists or is empty", args[0])
		}
		root.Log.Infof("Added bank %q", args[0])
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <nome>",
	Short: "Remove a bank name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := root.Book.RemoveBanco(args[0])
		if err != nil {
			root.Log.Fatalf("Error removing bank: %v", err)
		}
		if !ok {
			root.Log.Fatalf("No bank named %q", args[0])
		}
		root.Log.Infof("Removed bank %q", args[0])
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bank names",
	Run: func(cmd *cobra.Command, args []string) {
		for _, b := range root.Book.Bancos.All() {
			root.Log.Info(b)
		}
	},
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(listCmd)
}
