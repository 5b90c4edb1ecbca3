// Package main provides the entry point for the caixadre CLI application.
package main

import (
	"fmt"
	"os"

	"caixadre/cmd/banco"
	"caixadre/cmd/categoria"
	"caixadre/cmd/conta"
	"caixadre/cmd/dre"
	"caixadre/cmd/fluxo"
	"caixadre/cmd/lancamento"
	"caixadre/cmd/root"
)

func init() {
	root.Cmd.AddCommand(conta.Cmd)
	root.Cmd.AddCommand(banco.Cmd)
	root.Cmd.AddCommand(categoria.Cmd)
	root.Cmd.AddCommand(lancamento.Cmd)
	root.Cmd.AddCommand(dre.Cmd)
	root.Cmd.AddCommand(fluxo.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
