package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BluPerf/swift/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the on-disk bind cache",
	Long:  "Remove every cached bind result so the next run starts cold.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(_ *cobra.Command, _ []string) error {
	cache, err := driver.OpenDiskCache("swiftc")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to remove cache: %w", err)
	}
	fmt.Fprintf(os.Stdout, "removed %s\n", cache.Dir())
	return nil
}
