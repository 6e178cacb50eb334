package app

import (
	"github.com/spf13/cobra"

	"github.com/Quant-link/QLK-Contract-Quard/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{Use: "contractquard", Short: "Structural analyzer for Rust smart contracts"}
	cli.AddCommands(root)
	return root
}
