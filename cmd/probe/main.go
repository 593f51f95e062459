// Command probe walks a GIF file block by block and reports its structure:
// version, logical screen descriptor, and one entry per block with its
// byte range in the source file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ncgif/gifed"
	"github.com/ncgif/gifed/internal/cliutil"
	"github.com/spf13/cobra"
)

type blockReport struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type report struct {
	Version       string        `json:"version"`
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	GlobalColors  int           `json:"global_colors"`
	Frames        int           `json:"frames"`
	Blocks        []blockReport `json:"blocks"`
	TrailingBytes int           `json:"trailing_bytes"`
}

func main() {
	var asJSON bool
	var profilePath string

	cmd := &cobra.Command{
		Use:   "probe <file.gif>",
		Short: "Print the block structure of a GIF file",
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
			return run(args[0], asJSON, profile)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit a JSON report instead of plain text")
	cmd.Flags().StringVar(&profilePath, "profile", "", "JSON sidecar file overriding verbosity and color-count threshold")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, asJSON bool, profile cliutil.Profile) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rd, err := gifed.NewReader(f)
	if err != nil {
		return err
	}

	rep := report{
		Version:      rd.Version().String(),
		Width:        int(rd.Screen().Width),
		Height:       int(rd.Screen().Height),
		GlobalColors: len(rd.GlobalPalette()),
	}

	for {
		block, rng, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if block.Kind() == gifed.KindCompressedImage {
			rep.Frames++
		}
		rep.Blocks = append(rep.Blocks, blockReport{
			Index: len(rep.Blocks),
			Kind:  block.Kind().String(),
			Start: rng.Start,
			End:   rng.End,
		})
	}
	rep.TrailingBytes = len(rd.TrailingBytes())

	if rep.GlobalColors >= profile.ColorCountNotice {
		fmt.Fprintf(os.Stderr, "notice: global palette has %d colors\n", rep.GlobalColors)
	}

	if asJSON {
		out, err := cliutil.PrettyJSON(rep)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%s %dx%d, %d global colors, %d frames\n",
		rep.Version, rep.Width, rep.Height, rep.GlobalColors, rep.Frames)
	for _, b := range rep.Blocks {
		fmt.Printf("  [%6d,%6d) %s\n", b.Start, b.End, b.Kind)
		if profile.Verbose {
			fmt.Printf("      size=%d bytes\n", b.End-b.Start)
		}
	}
	if rep.TrailingBytes > 0 {
		fmt.Printf("  %d trailing bytes after the trailer\n", rep.TrailingBytes)
	}
	return nil
}
