package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/physics2d/common"
	"github.com/milk9111/physics2d/inspect"
	"github.com/milk9111/physics2d/prefabs"
)

func main() {
	sceneName := flag.String("scene", "scenes/sandbox.yaml", "scene spec under prefabs/")
	debug := flag.Bool("debug", false, "draw fixtures and joints")
	inspectAddr := flag.String("inspect", "", "serve the snapshot inspector on this address (e.g. :8090)")
	watch := flag.Bool("watch", false, "hot reload prefab files edited on disk")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("physics2d sandbox")
	ebiten.SetTPS(60)

	opts := GameOptions{Scene: *sceneName, Debug: *debug}

	if *inspectAddr != "" {
		server := inspect.NewServer(inspect.Config{})
		defer server.Close()
		go func() {
			log.Printf("inspect: listening on %s", *inspectAddr)
			if err := http.ListenAndServe(*inspectAddr, server.Handler()); err != nil {
				log.Printf("inspect: %v", err)
			}
		}()
		opts.Inspector = server
	}

	if *watch {
		watcher, err := prefabs.NewWatcher(prefabs.WatchDirs()...)
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			defer watcher.Close()
			opts.Reloads = watcher.Events
		}
	}

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
