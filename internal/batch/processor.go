// Package batch renders turntable frame sequences with a worker pool.
package batch

import (
	"fmt"
	"image"
	"math"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"go3dgame/internal/export"
	"go3dgame/internal/mathutil"
	"go3dgame/internal/postprocess"
	"go3dgame/internal/render"
	"go3dgame/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	Width       int
	Height      int
	Supersample int
	Frames      int
	OutputDir   string
	Format      string // webp, png or tga
	Workers     int
	Progress    bool
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int           `json:"frame"`
	Path    string        `json:"path,omitempty"`
	Elapsed time.Duration `json:"elapsed_ns"`
	Error   string        `json:"error,omitempty"`
}

// Run renders cfg.Frames frames of a full turn about the z axis and writes
// each one as a still image under cfg.OutputDir.
func Run(cfg Config, sc *scene.Scene, cam *render.Camera) []Result {
	_, results := run(cfg, sc, cam, false)
	return results
}

// RenderFrames renders the turntable into memory instead of files, for
// animation export. Frames are ordered by index.
func RenderFrames(cfg Config, sc *scene.Scene, cam *render.Camera) []*image.NRGBA {
	imgs, _ := run(cfg, sc, cam, true)
	return imgs
}

func run(cfg Config, sc *scene.Scene, cam *render.Camera, keep bool) ([]*image.NRGBA, []Result) {
	if cfg.Frames <= 0 {
		return nil, nil
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Supersample < 1 {
		cfg.Supersample = 1
	}

	results := make([]Result, cfg.Frames)
	var imgs []*image.NRGBA
	if keep {
		imgs = make([]*image.NRGBA, cfg.Frames)
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(int64(cfg.Frames))
	}

	// Bodies mutate while rendering, so every worker gets its own scene
	// clone and renderer. The camera is only read.
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wk := newWorker(cfg, sc, cam)
			for idx := range frameChan {
				start := time.Now()
				img := wk.renderFrame(idx)
				res := Result{Frame: idx, Elapsed: time.Since(start)}
				if keep {
					imgs[idx] = img
				} else {
					path := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%04d.%s", idx, cfg.Format))
					if err := export.Save(path, img); err != nil {
						res.Error = err.Error()
					} else {
						res.Path = path
					}
				}
				results[idx] = res
				if bar != nil {
					bar.Add(1)
				}
			}
		}()
	}

	for i := 0; i < cfg.Frames; i++ {
		frameChan <- i
	}
	close(frameChan)
	wg.Wait()

	return imgs, results
}

type worker struct {
	cfg  Config
	sc   *scene.Scene
	base []mathutil.Quat
	r    *render.Renderer
}

func newWorker(cfg Config, sc *scene.Scene, cam *render.Camera) *worker {
	clone := sc.Clone()
	bodies := clone.Bodies()
	base := make([]mathutil.Quat, len(bodies))
	for i, b := range bodies {
		base[i] = b.Rot
	}

	// Supersampling renders larger and scales the projection to match, so
	// the downsampled frame shows the same view.
	sscam := *cam
	sscam.Zoom *= float64(cfg.Supersample)

	return &worker{
		cfg:  cfg,
		sc:   clone,
		base: base,
		r:    render.New(&sscam, clone, cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample),
	}
}

// renderFrame renders frame idx of the turn. Each frame sets absolute body
// rotations, so frames can land on any worker in any order.
func (w *worker) renderFrame(idx int) *image.NRGBA {
	turn := 2 * math.Pi * float64(idx) / float64(w.cfg.Frames)
	spin := mathutil.AxisAngle(turn, mathutil.Vec3{0, 0, 1})
	for i, b := range w.sc.Bodies() {
		b.Move(b.Pos, w.base[i].Mul(spin))
	}

	img := w.r.Render().Image()
	if w.cfg.Supersample > 1 {
		img = postprocess.Downsample(img, w.cfg.Width, w.cfg.Height)
	}
	return img
}
