// Command viewer opens a window and renders a scene in software, in real
// time. WASD moves the camera in its plane, space and left shift move it up
// and down, the arrow keys turn it, and escape quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"go3dgame/internal/colorutil"
	"go3dgame/internal/config"
	"go3dgame/internal/logger"
	"go3dgame/internal/raster"
	"go3dgame/internal/render"
	"go3dgame/internal/scene"
)

const (
	moveSpeed   = 6.0 // world units per second
	turnSpeed   = 1.8 // radians per second
	frameBudget = time.Second / 60
)

func init() {
	// SDL wants its window and event calls on the main thread.
	runtime.LockOSThread()
}

func main() {
	configFile := flag.String("config", "", "Path to config.yaml")
	scenePath := flag.String("scene", "", "Scene YAML or OBJ mesh (default: built-in demo)")
	width := flag.Int("width", 0, "Window width (default: config)")
	height := flag.Int("height", 0, "Window height (default: config)")
	spin := flag.Float64("spin", 30, "Turntable speed in degrees per second (0 disables)")
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
	cfg.Resolve(config.Flags{})
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

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

	if err := run(cfg, sc, *spin); err != nil {
		logger.Sugar.Fatalw("viewer failed", "error", err)
	}
}

func run(cfg *config.Config, sc *scene.Scene, spin float64) error {
	w, h := cfg.Window.Width, cfg.Window.Height

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_Init failed: %w", err)
	}
	defer sdl.Quit()

	win, err := sdl.CreateWindow("go3dgame",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(w), int32(h), sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}
	defer win.Destroy()

	surface, err := win.GetSurface()
	if err != nil {
		return fmt.Errorf("SDL_GetWindowSurface failed: %w", err)
	}
	buf, ok := surfaceBuffer(surface)
	if !ok {
		return fmt.Errorf("unsupported surface format %#x", surface.Format.Format)
	}
	zb := raster.PackedDepth(w, h)

	cam := render.FitCamera(sc, w, h, cfg.Render.Zoom)
	r := render.New(cam, sc, w, h)
	hudColor := colorutil.Invert(sc.Background)

	logger.Sugar.Infow("viewer started",
		"width", w, "height", h, "bodies", len(sc.Bodies()))

	fps := 0.0
	last := time.Now()
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			}
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now
		if dt > 0 {
			fps = 0.9*fps + 0.1/dt
		}

		applyInput(cam, dt)
		if spin != 0 {
			for _, b := range sc.Bodies() {
				b.RotateDeg(spin * dt)
			}
		}

		if surface.MustLock() {
			if err := surface.Lock(); err != nil {
				return fmt.Errorf("surface lock failed: %w", err)
			}
		}
		raster.FillBackground(buf, sc.Background, w, h)
		zb.Clear()
		r.RenderInto(buf, zb, w, h)
		if cfg.Window.ShowFPS {
			render.DrawText(buf, w, h, 10, 10, fmt.Sprintf("FPS: %.1f", fps), hudColor)
		}
		if surface.MustLock() {
			surface.Unlock()
		}
		if err := win.UpdateSurface(); err != nil {
			return fmt.Errorf("surface update failed: %w", err)
		}

		if elapsed := time.Since(now); elapsed < frameBudget {
			sdl.Delay(uint32((frameBudget - elapsed).Milliseconds()))
		}
	}
}

// surfaceBuffer maps an SDL window surface onto a ColorBuffer. Any 32-bit
// format with byte-aligned channel masks works, which covers the usual
// ARGB8888 window surfaces; their BGRA byte order becomes a negative channel
// stride off a shifted base.
func surfaceBuffer(s *sdl.Surface) (raster.ColorBuffer, bool) {
	f := s.Format
	if f == nil || f.BytesPerPixel != 4 {
		return raster.ColorBuffer{}, false
	}
	r, okR := maskByte(f.Rmask)
	g, okG := maskByte(f.Gmask)
	b, okB := maskByte(f.Bmask)
	if !okR || !okG || !okB || g-r != b-g {
		return raster.ColorBuffer{}, false
	}
	return raster.ColorBuffer{
		Pix:     s.Pixels(),
		Base:    r,
		StrideX: int(f.BytesPerPixel),
		StrideY: int(s.Pitch),
		StrideC: g - r,
	}, true
}

func maskByte(mask uint32) (int, bool) {
	switch mask {
	case 0x000000ff:
		return 0, true
	case 0x0000ff00:
		return 1, true
	case 0x00ff0000:
		return 2, true
	case 0xff000000:
		return 3, true
	}
	return 0, false
}

func applyInput(cam *render.Camera, dt float64) {
	ks := sdl.GetKeyboardState()

	var forward, right, up float64
	if ks[sdl.SCANCODE_W] != 0 {
		forward += moveSpeed * dt
	}
	if ks[sdl.SCANCODE_S] != 0 {
		forward -= moveSpeed * dt
	}
	if ks[sdl.SCANCODE_D] != 0 {
		right += moveSpeed * dt
	}
	if ks[sdl.SCANCODE_A] != 0 {
		right -= moveSpeed * dt
	}
	if ks[sdl.SCANCODE_SPACE] != 0 {
		up += moveSpeed * dt
	}
	if ks[sdl.SCANCODE_LSHIFT] != 0 {
		up -= moveSpeed * dt
	}
	if forward != 0 || right != 0 || up != 0 {
		cam.Move(forward, right, up)
	}

	var yaw, pitch float64
	if ks[sdl.SCANCODE_LEFT] != 0 {
		yaw += turnSpeed * dt
	}
	if ks[sdl.SCANCODE_RIGHT] != 0 {
		yaw -= turnSpeed * dt
	}
	if ks[sdl.SCANCODE_UP] != 0 {
		pitch += turnSpeed * dt
	}
	if ks[sdl.SCANCODE_DOWN] != 0 {
		pitch -= turnSpeed * dt
	}
	if yaw != 0 || pitch != 0 {
		cam.Rotate(yaw, pitch)
	}
}
