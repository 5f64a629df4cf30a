package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chassis-vm/chassis/internal/seed"
)

var seedVolumeLabel string

func init() {
	seedCmd.Flags().StringVar(&seedVolumeLabel, "label", seed.DefaultVolumeLabel, "ISO volume label")
}

var seedCmd = &cobra.Command{
	Use:   "seed <output.iso> <file>...",
	Short: "Build a configuration seed ISO",
	Long: `Seed builds an ISO9660 image from the given files, for attaching to a
machine as a dvd device. Each file lands at the image root under its base
name; use name=path to pick a different name.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := args[0]

		files := make(map[string][]byte, len(args)-1)
		for _, arg := range args[1:] {
			name, path, found := strings.Cut(arg, "=")
			if !found {
				path = arg
				name = filepath.Base(arg)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			if _, dup := files[name]; dup {
				return fmt.Errorf("duplicate seed file name %q", name)
			}
			files[name] = data
		}

		if err := seed.WriteISO(outPath, files, seedVolumeLabel); err != nil {
			return err
		}

		fmt.Printf("Wrote seed image %s (%d files)\n", outPath, len(files))
		return nil
	},
}
