// Command sprite-extractor reconstructs transparency for images whose
// background was baked as a neutral checkerboard, writing cleaned RGBA PNGs
// normalized to a square canvas.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"sprite-extractor/internal/keyer"
	"sprite-extractor/internal/sprite"
)

const desc = `Reconstructs a plausible alpha channel for sprites flattened onto a
neutral checkerboard or solid-gray background, then crops to content and
normalizes onto a square transparent canvas.`

var cli struct {
	OutDir string   `arg:"" help:"Directory for extracted PNGs (created if missing)."`
	Images []string `arg:"" name:"image" help:"Input images (JPEG, PNG, GIF, BMP, TIFF, WebP)."`

	Target    int     `default:"1024" help:"Output canvas side in pixels."`
	Pad       float64 `default:"0.14" help:"Content padding as a fraction of the bounding box."`
	Threshold int     `default:"10" help:"Alpha cutoff (0-255) for content detection."`
	Workers   int     `default:"0" help:"Parallel workers; 0 uses all CPUs."`
	Debug     bool    `help:"Enable verbose logging."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("sprite-extractor"),
		kong.Description(desc),
		kong.UsageOnError(),
	)

	logger := initLogger(cli.Debug)

	if err := os.MkdirAll(cli.OutDir, 0o755); err != nil {
		logger.WithError(err).Error("cannot create output directory")
		os.Exit(2)
	}

	params := keyer.DefaultParams().
		WithTarget(cli.Target).
		WithPadding(cli.Pad).
		WithThreshold(cli.Threshold)

	workers := cli.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(workers)

	for _, path := range cli.Images {
		path := path
		g.Go(func() error {
			if err := processFile(path, params, logger); err != nil {
				logger.WithField("file", path).WithError(err).Warn("skipped")
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	if n := failed.Load(); n > 0 {
		logger.Errorf("%d of %d images failed", n, len(cli.Images))
		os.Exit(1)
	}
}

// processFile runs the pipeline for a single input. Images are independent,
// so failures here never affect the rest of the batch.
func processFile(path string, params keyer.Params, logger *logrus.Logger) error {
	if !sprite.IsSupportedFormat(path) {
		return fmt.Errorf("unsupported format %q", filepath.Ext(path))
	}

	img, err := sprite.Load(path)
	if err != nil {
		return err
	}

	out := keyer.Extract(img, params)

	outPath := filepath.Join(cli.OutDir, sprite.OutputName(path))
	if err := sprite.SavePNG(out, outPath); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"file": path,
		"out":  outPath,
	}).Info("wrote sprite")
	return nil
}

// initLogger initializes the logger with appropriate level and format.
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
