package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ski/internal/assets"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the built-in sprites",
	Long:  `Loads every sprite named in the built-in manifest and prints its size.`,
	Args:  cobra.NoArgs,
	RunE:  runAssets,
}

func runAssets(cmd *cobra.Command, _ []string) error {
	lib, err := assets.LoadDefault(cmd.Context())
	if err != nil {
		return err
	}

	names := lib.Names()
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		maxNameLen = max(maxNameLen, len(name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Size (px)")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "---------")
	for _, name := range names {
		a := lib.Asset(name)
		fmt.Printf("  %-*s  %gx%g\n", maxNameLen, name, a.Extent.Width, a.Extent.Height)
	}

	fmt.Println()
	fmt.Printf("%d sprites loaded.\n", len(names))
	return nil
}
