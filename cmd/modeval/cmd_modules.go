package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"modeval/internal/catalog"
)

// modulesCmd prints the internal module catalog.
var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the internal module catalog",
	Long: `Prints every module in the internal catalog with its header and the
API surface (functions, types, constants) the analyzer scans for.`,
	RunE: runModules,
}

func runModules(cmd *cobra.Command, args []string) error {
	c := catalog.Default()
	fmt.Printf("Internal module catalog (%d modules):\n\n", c.Len())

	for _, mod := range c.All() {
		fmt.Printf("%s\n", mod.Name)
		fmt.Printf("  Header:    %s\n", mod.Header)
		fmt.Printf("  Functions: %d\n", len(mod.Functions))
		fmt.Printf("  Types:     %d\n", len(mod.Types))
		fmt.Printf("  Constants: %d\n", len(mod.Constants))
		for _, fn := range mod.Functions {
			fmt.Printf("    %s\n", fn)
		}
		fmt.Println()
	}
	return nil
}
