// Command render writes turntable frames of a scene to image files, or to a
// single animated WebP.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go3dgame/internal/batch"
	"go3dgame/internal/config"
	"go3dgame/internal/export"
	"go3dgame/internal/logger"
	"go3dgame/internal/render"
	"go3dgame/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.yaml")
	scenePath := flag.String("scene", "", "Scene YAML or OBJ mesh (default: built-in demo)")
	frames := flag.Int("frames", 36, "Turntable frames per full turn")
	animate := flag.Bool("animate", false, "Write one animated WebP instead of stills")
	width := flag.Int("width", 0, "Frame width (default: 640)")
	height := flag.Int("height", 0, "Frame height (default: 480)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Still format: webp, png or tga (default: webp)")
	workers := flag.Int("workers", 0, "Worker goroutines (default: NumCPU)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		OutputDir:   *outputDir,
		Format:      *format,
		Workers:     *workers,
		LogLevel:    *logLevel,
	})

	logger.Init(cfg.Logging.Level, cfg.Logging.File)
	defer logger.Sync()

	sc := scene.Demo()
	if *scenePath != "" {
		var err error
		sc, err = scene.Load(*scenePath)
		if err != nil {
			logger.Sugar.Fatalw("scene load failed", "path", *scenePath, "error", err)
		}
	}
	logger.Sugar.Infow("scene ready", "bodies", len(sc.Bodies()))

	cam := render.FitCamera(sc, cfg.Render.Width, cfg.Render.Height, cfg.Render.Zoom)

	batchCfg := batch.Config{
		Width:       cfg.Render.Width,
		Height:      cfg.Render.Height,
		Supersample: cfg.Render.Supersample,
		Frames:      *frames,
		OutputDir:   cfg.Output.Dir,
		Format:      cfg.Output.Format,
		Workers:     cfg.Render.Workers,
		Progress:    true,
	}

	fmt.Printf("go3dgame turntable render\n")
	fmt.Printf("Frames: %d at %dx%d (supersample %dx), Workers: %d\n",
		*frames, batchCfg.Width, batchCfg.Height, batchCfg.Supersample, batchCfg.Workers)
	fmt.Printf("Output: %s\n", cfg.Output.Dir)

	start := time.Now()

	if *animate {
		imgs := batch.RenderFrames(batchCfg, sc, cam)
		outPath := filepath.Join(cfg.Output.Dir, "turntable.webp")
		if err := export.SaveAnimation(outPath, imgs, cfg.Output.DelayMS); err != nil {
			logger.Sugar.Fatalw("animation save failed", "error", err)
		}
		fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())
		fmt.Printf("Animation: %s\n", outPath)
		return
	}

	results := batch.Run(batchCfg, sc, cam)
	elapsed := time.Since(start)

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}

	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())
	fmt.Printf("Rendered: %d/%d\n", len(results)-failed, len(results))

	if failed > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		shown := 0
		for _, r := range results {
			if r.Error == "" {
				continue
			}
			fmt.Printf("  frame %d: %s\n", r.Frame, r.Error)
			if shown++; shown == 20 {
				break
			}
		}
	}

	manifestPath := filepath.Join(cfg.Output.Dir, "manifest.json")
	os.MkdirAll(cfg.Output.Dir, 0755)
	if err := batch.WriteManifest(manifestPath, batchCfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
