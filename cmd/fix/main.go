// Command fix finds frames whose local color table is redundant with the
// screen's global color table, and with --write drops them into a sibling
// FILE_fix.gif.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncgif/gifed"
	"github.com/ncgif/gifed/internal/cliutil"
	"github.com/spf13/cobra"
)

func main() {
	var write bool
	var profilePath string

	cmd := &cobra.Command{
		Use:   "fix <file.gif>",
		Short: "Detect and optionally drop redundant local color tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := cliutil.DefaultProfile()
			if profilePath != "" {
				var err error
				profile, err = cliutil.LoadProfile(profilePath)
				if err != nil {
					return err
				}
			}
			return run(args[0], write, profile)
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "write FILE_fix.gif alongside, dropping redundant local color tables")
	cmd.Flags().StringVar(&profilePath, "profile", "", "JSON sidecar file overriding verbosity and color-count threshold")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, write bool, profile cliutil.Profile) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	g, err := gifed.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return err
	}

	redundant := 0
	newBlocks := make([]gifed.Block, 0, len(g.Blocks))
	for _, blk := range g.Blocks {
		ci, isImage := blk.(gifed.CompressedImage)
		if !isImage || ci.LocalPalette == nil {
			newBlocks = append(newBlocks, blk)
			continue
		}

		if ci.LocalPalette.Equal(g.GlobalPalette) {
			redundant++
			if profile.Verbose {
				fmt.Printf("redundant local palette on frame at %dx%d\n", ci.Descriptor.Width, ci.Descriptor.Height)
			}
			if write {
				ci.LocalPalette = nil
				newBlocks = append(newBlocks, ci)
				continue
			}
		}
		newBlocks = append(newBlocks, blk)
	}

	fmt.Printf("%d frame(s) with a redundant local color table\n", redundant)

	if write && redundant > 0 {
		g.Blocks = newBlocks
		outPath := fixSiblingPath(path)
		if err := os.WriteFile(outPath, g.Bytes(), 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
	}
	return nil
}

// fixSiblingPath derives FILE_fix.gif alongside the input, rather than
// rewriting it in place, so a mistaken --write never clobbers the original.
func fixSiblingPath(path string) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	return filepath.Join(dir, stem+"_fix"+ext)
}
