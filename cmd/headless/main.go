package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/physics2d/ecs"
	"github.com/milk9111/physics2d/ecs/system"
	"github.com/milk9111/physics2d/physics"
	"github.com/milk9111/physics2d/prefabs"
)

func main() {
	scene := flag.String("scene", "scenes/sandbox.yaml", "scene spec under prefabs/")
	ticks := flag.Int("ticks", 120, "number of 60 Hz ticks to simulate")
	every := flag.Int("every", 0, "also print a snapshot every N ticks (0 = only the last)")
	flag.Parse()

	if err := run(os.Stdout, *scene, *ticks, *every); err != nil {
		log.Fatal(err)
	}
}

// run simulates the scene without a window and writes YAML snapshots to out.
func run(out io.Writer, scene string, ticks, every int) error {
	spec, err := prefabs.LoadScene(scene)
	if err != nil {
		return err
	}
	w := ecs.NewWorld()
	pw, err := prefabs.BuildScene(w, spec)
	if err != nil {
		return err
	}
	defer pw.Destroy()

	sched := ecs.NewScheduler(
		system.NewPhysicsPreStepSystem(func() float64 { return physics.DefaultTimeStep }),
		system.NewScriptSystem(),
		system.NewTTLSystem(),
		system.NewDestroySystem(),
		system.NewPhysicsPostStepSystem(),
	)

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()

	for i := 1; i <= ticks; i++ {
		sched.Update(w)
		if (every > 0 && i%every == 0) || i == ticks {
			if err := enc.Encode(pw.Snapshot()); err != nil {
				return fmt.Errorf("encode snapshot: %w", err)
			}
		}
	}
	return nil
}
