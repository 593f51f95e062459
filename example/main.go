// Command example demonstrates building animated GIFs with gifed: a
// moving circle, a color gradient, and a spinning hue square, the last
// one quantized through the NeuQuant implementation in package quantize.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/ncgif/gifed"
	"github.com/ncgif/gifed/indexer"
	"github.com/ncgif/gifed/quantize"
)

func main() {
	fmt.Println("gifed examples")
	fmt.Println("===============")

	fmt.Println("\n1. Creating simple animation...")
	if err := simpleAnimation(); err != nil {
		fmt.Printf("Error: %v\n", err)
	} else {
		fmt.Println("wrote animation.gif")
	}

	fmt.Println("\n2. Creating gradient animation...")
	if err := gradientAnimation(); err != nil {
		fmt.Printf("Error: %v\n", err)
	} else {
		fmt.Println("wrote gradient.gif")
	}

	fmt.Println("\n3. Creating quantized spinning square...")
	if err := spinningSquare(); err != nil {
		fmt.Printf("Error: %v\n", err)
	} else {
		fmt.Println("wrote custom.gif")
	}

	fmt.Println("\nall done")
}

// fixedPalette is a small, hand-picked palette shared across every frame
// of simpleAnimation: white background, red circle.
var fixedPalette = gifed.Palette{
	{255, 255, 255},
	{255, 0, 0},
}

func indexFixed(img *image.RGBA, palette gifed.Palette) gifed.IndexedImage {
	bounds := img.Bounds()
	indices := make([]byte, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := gifed.Color{R: byte(r >> 8), G: byte(g >> 8), B: byte(b >> 8)}
			idx := palette.Index(c)
			if idx < 0 {
				idx = 0
			}
			indices[(y-bounds.Min.Y)*bounds.Dx()+(x-bounds.Min.X)] = byte(idx)
		}
	}
	return gifed.IndexedImage{
		Descriptor: gifed.ImageDescriptor{Width: uint16(bounds.Dx()), Height: uint16(bounds.Dy())},
		Indices:    indices,
	}
}

// simpleAnimation draws a red circle sliding across a white canvas.
func simpleAnimation() error {
	width, height := 200, 200
	frames := make([]gifed.IndexedImage, 0, 10)

	for i := 0; i < 10; i++ {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				img.Set(x, y, color.White)
			}
		}

		centerX := 50 + i*15
		centerY := 100
		radius := 30
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				dx, dy := x-centerX, y-centerY
				if dx*dx+dy*dy <= radius*radius {
					img.Set(x, y, color.RGBA{R: 255, A: 255})
				}
			}
		}

		frames = append(frames, indexFixed(img, fixedPalette))
	}

	g, err := gifed.NewAnimation(width, height, fixedPalette, frames, 10, 0)
	if err != nil {
		return err
	}
	return os.WriteFile("animation.gif", g.Bytes(), 0o644)
}

// gradientAnimation sweeps a red/green gradient, quantized via NeuQuant
// since a gradient's full-color range does not fit a hand-picked palette.
func gradientAnimation() error {
	width, height := 200, 200
	nq := quantize.NewNeuQuant(10)

	frames := make([]gifed.IndexedImage, 0, 20)
	for f := 0; f < 20; f++ {
		pixels := make([]byte, width*height*3)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				p := (y*width + x) * 3
				pixels[p] = byte((x + f*10) % 256)
				pixels[p+1] = byte((y + f*10) % 256)
				pixels[p+2] = 200
			}
		}
		frames = append(frames, indexer.Index(width, height, pixels, nq, indexer.Options{
			MaxColors: 128,
			Kernel:    indexer.FloydSteinberg,
		}))
	}

	g, err := gifed.NewAnimation(width, height, nil, frames, 5, 0)
	if err != nil {
		return err
	}
	return os.WriteFile("gradient.gif", g.Bytes(), 0o644)
}

// spinningSquare cycles a solid-color square through the hue wheel on a
// dark background, each frame quantized and dithered independently.
func spinningSquare() error {
	width, height := 150, 150
	nq := quantize.NewNeuQuant(10)

	frames := make([]gifed.IndexedImage, 0, 15)
	for f := 0; f < 15; f++ {
		pixels := make([]byte, width*height*3)
		for i := 0; i < width*height; i++ {
			pixels[i*3], pixels[i*3+1], pixels[i*3+2] = 20, 20, 40
		}

		hue := float64(f) / 15.0
		r, g, b := hsvToRGB(hue, 1.0, 1.0)
		size, offsetX, offsetY := 50, 50, 50
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				p := ((offsetY+y)*width + (offsetX + x)) * 3
				pixels[p], pixels[p+1], pixels[p+2] = r, g, b
			}
		}

		frames = append(frames, indexer.Index(width, height, pixels, nq, indexer.Options{
			MaxColors:  64,
			Kernel:     indexer.Stucki,
			Serpentine: true,
		}))
	}

	g, err := gifed.NewAnimation(width, height, nil, frames, 8, 0)
	if err != nil {
		return err
	}
	return os.WriteFile("custom.gif", g.Bytes(), 0o644)
}

// hsvToRGB converts HSV color to RGB (h, s, v all in 0..1).
func hsvToRGB(h, s, v float64) (byte, byte, byte) {
	if s == 0 {
		val := byte(v * 255)
		return val, val, val
	}

	h = h * 6
	i := int(h)
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return byte(r * 255), byte(g * 255), byte(b * 255)
}
