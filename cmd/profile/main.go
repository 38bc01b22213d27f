// Command profile renders a heavy scene in a tight loop and writes pprof
// data, for digging into rasterizer hot spots.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"go3dgame/internal/colorutil"
	"go3dgame/internal/mathutil"
	"go3dgame/internal/render"
	"go3dgame/internal/scene"
)

func run() error {
	cpuprofile := flag.String("cpuprofile", "cpu.prof", "write CPU profile to file (empty disables)")
	memprofile := flag.String("memprofile", "", "write heap profile to file")
	seconds := flag.Float64("seconds", 5, "how long to render")
	width := flag.Int("width", 640, "frame width")
	height := flag.Int("height", 480, "frame height")
	quality := flag.Int("quality", 5, "sphere subdivision rounds")
	flag.Parse()

	sc := scene.NewScene(colorutil.Black, mathutil.Vec3{0, 1, -1})
	sc.AddBody(scene.Sphere("ball", 2, *quality, colorutil.Cyan))
	ball := sc.Body("ball")

	cam := render.FitCamera(sc, *width, *height, 0)
	r := render.New(cam, sc, *width, *height)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("create CPU profile file: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	frames := 0
	start := time.Now()
	deadline := start.Add(time.Duration(*seconds * float64(time.Second)))
	for time.Now().Before(deadline) {
		ball.RotateDeg(1)
		r.Render()
		frames++
	}
	elapsed := time.Since(start)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			return fmt.Errorf("create memory profile file: %w", err)
		}
		defer f.Close()
		if err := pprof.Lookup("heap").WriteTo(f, 0); err != nil {
			return fmt.Errorf("write memory profile: %w", err)
		}
	}

	fmt.Printf("%d faces at %dx%d: %d frames in %.1fs (%.1f fps)\n",
		len(ball.Faces), *width, *height, frames, elapsed.Seconds(),
		float64(frames)/elapsed.Seconds())
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
