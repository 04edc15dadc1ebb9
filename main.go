package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/colinmarsh/nextweek-tracer/pkg/camera"
	"github.com/colinmarsh/nextweek-tracer/pkg/config"
	"github.com/colinmarsh/nextweek-tracer/pkg/scene"
)

// caseScene builds the Scene for the given CLI case id, matching the
// case -> scene constructor table: 1=random_balls, 2=two_spheres,
// 3=earth, 4=two_perlin_spheres, 5=quads, 6=simple_light, 7=cornell_box,
// 8=cornell_smoke, 9=final_scene at full quality, anything else falls
// back to final_scene at a quick preview quality.
func caseScene(caseID int, random *rand.Rand) (scene.Scene, error) {
	switch caseID {
	case 1:
		return scene.RandomBalls(random), nil
	case 2:
		return scene.TwoSpheres(), nil
	case 3:
		return scene.Earth()
	case 4:
		return scene.TwoPerlinSpheres(random), nil
	case 5:
		return scene.Quads(), nil
	case 6:
		return scene.SimpleLight(random), nil
	case 7:
		return scene.CornellBox(), nil
	case 8:
		return scene.CornellSmoke(), nil
	case 9:
		return scene.FinalScene(random, 800, 10000, 40)
	default:
		return scene.FinalScene(random, 400, 250, 4)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("nextweek-tracer", flag.ContinueOnError)
	configPath := fs.String("config", "raytracer.toml", "path to a render configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	positional := fs.Args()
	caseID := -1
	outputPath := cfg.Render.Output
	if len(positional) > 0 {
		id, err := strconv.Atoi(positional[0])
		if err != nil {
			return fmt.Errorf("invalid case id %q: %w", positional[0], err)
		}
		caseID = id
	}
	if len(positional) > 1 {
		outputPath = positional[1]
	}

	random := rand.New(rand.NewSource(time.Now().UnixNano()))
	built, err := caseScene(caseID, random)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	cam := camera.New(built.Camera)
	logger := log.New(os.Stderr, "", log.LstdFlags)

	start := time.Now()
	if err := camera.Render(cam, built.World, out, logger); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	logger.Printf("rendered %s in %v", outputPath, time.Since(start))
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
