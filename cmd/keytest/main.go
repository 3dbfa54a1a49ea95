// Command keytest runs background-color estimation and alpha scoring on a
// single image and reports the intermediate results.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"sprite-extractor/internal/keyer"
	"sprite-extractor/internal/raster"
	"sprite-extractor/internal/sprite"
)

func main() {
	imagePath := flag.String("image", "", "Path to input image")
	threshold := flag.Int("threshold", 10, "Alpha cutoff for content detection")
	pad := flag.Float64("pad", 0.14, "Content padding fraction")
	outPath := flag.String("out", "", "Optional path to write the final PNG")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: keytest -image <path> [-threshold 10] [-pad 0.14] [-out <path>]")
		os.Exit(1)
	}

	img, err := sprite.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Loaded image: %dx%d pixels\n", bounds.Dx(), bounds.Dy())

	params := keyer.DefaultParams().WithThreshold(*threshold).WithPadding(*pad)

	buf := raster.FromImage(img)
	bg := keyer.EstimateBackground(buf, params)
	fmt.Printf("\nBackground centroids:\n")
	fmt.Printf("  c1: %s  (%.1f, %.1f, %.1f)\n", hex(bg.C1), bg.C1[0], bg.C1[1], bg.C1[2])
	fmt.Printf("  c2: %s  (%.1f, %.1f, %.1f)\n", hex(bg.C2), bg.C2[0], bg.C2[1], bg.C2[2])

	scored := keyer.EstimateAlpha(buf, bg, params)
	refined := keyer.Refine(scored, params)

	var sum, opaque int
	for i := 3; i < len(refined.Pix); i += 4 {
		a := int(refined.Pix[i])
		sum += a
		if a > *threshold {
			opaque++
		}
	}
	total := buf.W * buf.H
	fmt.Printf("\nAlpha channel:\n")
	fmt.Printf("  mean: %.1f\n", float64(sum)/float64(total))
	fmt.Printf("  content pixels: %d of %d (%.1f%%)\n",
		opaque, total, 100*float64(opaque)/float64(total))

	box, hasContent := keyer.ContentBox(refined, params.AlphaThreshold)
	if !hasContent {
		fmt.Println("\nBounding box: none (fully transparent result)")
	} else {
		fmt.Printf("\nBounding box: (%d,%d)-(%d,%d), %dx%d\n",
			box.X0, box.Y0, box.X1, box.Y1, box.Width(), box.Height())
		padded := box.Pad(params.PadFrac, buf.W, buf.H)
		fmt.Printf("Padded box:   (%d,%d)-(%d,%d), %dx%d\n",
			padded.X0, padded.Y0, padded.X1, padded.Y1, padded.Width(), padded.Height())
	}

	if *outPath != "" {
		final := keyer.Normalize(refined, box, hasContent, params)
		if err := sprite.SavePNG(final, *outPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %s (%dx%d)\n", *outPath, params.TargetSize, params.TargetSize)
	}
}

func hex(c [3]float64) string {
	return colorful.Color{R: c[0] / 255, G: c[1] / 255, B: c[2] / 255}.Hex()
}
