package camera

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
	"github.com/colinmarsh/nextweek-tracer/pkg/hittable"
)

// rowTask is one scanline's worth of rendering work.
type rowTask struct {
	row int
}

// rowResult carries a fully-sampled scanline back for row-major assembly.
type rowResult struct {
	row    int
	pixels []core.Color
}

// Render walks every pixel of the camera's image, accumulating
// SamplesPerPixel stratified samples per pixel, and writes the result as a
// PPM (P3) image to w. Rows are distributed across a worker pool sized to
// the host's CPU count; each worker carries a private *rand.Rand so the
// immutable scene graph can be read concurrently without locks. Rows are
// reassembled in row-major order before any bytes are written.
func Render(c *Camera, world hittable.Hittable, w io.Writer, logger core.Logger) error {
	numWorkers := runtime.NumCPU()
	if numWorkers < 1 {
		numWorkers = 1
	}

	tasks := make(chan rowTask, c.imageHeight)
	results := make(chan rowResult, c.imageHeight)

	var wg sync.WaitGroup
	for workerID := 0; workerID < numWorkers; workerID++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			random := rand.New(rand.NewSource(seed))
			for task := range tasks {
				results <- rowResult{row: task.row, pixels: c.renderRow(task.row, world, random)}
			}
		}(int64(workerID) + 1)
	}

	for j := 0; j < c.imageHeight; j++ {
		tasks <- rowTask{row: j}
	}
	close(tasks)

	go func() {
		wg.Wait()
		close(results)
	}()

	frame := make([][]core.Color, c.imageHeight)
	for result := range results {
		frame[result.row] = result.pixels
		if logger != nil {
			logger.Printf("scanline %d/%d done", result.row+1, c.imageHeight)
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.cfg.ImageWidth, c.imageHeight); err != nil {
		return err
	}
	for _, row := range frame {
		for _, pixel := range row {
			if err := writePixel(bw, pixel); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func (c *Camera) renderRow(row int, world hittable.Hittable, random *rand.Rand) []core.Color {
	pixels := make([]core.Color, c.cfg.ImageWidth)
	samples := c.cfg.SamplesPerPixel

	for i := 0; i < c.cfg.ImageWidth; i++ {
		var accum core.Color
		for s := 0; s < samples; s++ {
			ray := c.GetRay(i, row, random)
			accum = accum.Add(RayColor(ray, c.cfg.MaxDepth, world, c.cfg.Background, random))
		}
		pixels[i] = accum.Multiply(1.0 / float64(samples))
	}
	return pixels
}

var quantizeRange = core.NewInterval(0, 0.9999)

func writePixel(w io.Writer, c core.Color) error {
	r := quantizeRange.Clamp(math.Sqrt(math.Max(c.X, 0)))
	g := quantizeRange.Clamp(math.Sqrt(math.Max(c.Y, 0)))
	b := quantizeRange.Clamp(math.Sqrt(math.Max(c.Z, 0)))

	_, err := fmt.Fprintf(w, "%d %d %d\n", int(r*256), int(g*256), int(b*256))
	return err
}
