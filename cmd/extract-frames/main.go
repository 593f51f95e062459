// Command extract-frames decodes every frame of a GIF into its own PNG
// file, resolving each frame's effective palette and transparent index
// through gifed's image-view layer.
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ncgif/gifed"
	"github.com/spf13/cobra"
)

func main() {
	var outDir string

	cmd := &cobra.Command{
		Use:   "extract-frames <file.gif>",
		Short: "Decode every frame of a GIF to OUTDIR/N.png",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], outDir)
		},
	}

	cmd.Flags().StringVar(&outDir, "outdir", ".", "directory to write frame PNGs into")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	g, err := gifed.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	it := g.Images()
	n := 0
	for {
		view, ok := it.Next()
		if !ok {
			break
		}

		img, err := view.ResolvedImage()
		if err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}

		outPath := filepath.Join(outDir, fmt.Sprintf("%d.png", n))
		if err := writePNG(outPath, img); err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}
		n++
	}

	fmt.Printf("wrote %d frame(s) to %s\n", n, outDir)
	return nil
}

func writePNG(path string, img *image.Paletted) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
