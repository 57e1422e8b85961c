// gm8view - Minimal demo host driving GameState.DrawFrame in a loop
//
// Mirrors the teacher's cmd/ie32to64 convention: a small side binary with
// its own main package, flag-driven, that wires library types together
// and reports failures the way main.go does (print and exit non-zero on
// a setup error; warn and continue on a per-frame error).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zotley/gm8run"
)

func main() {
	frames := flag.Int("frames", 60, "number of frames to simulate")
	width := flag.Int("width", 640, "window width")
	height := flag.Int("height", 480, "window height")
	flag.Parse()

	if err := run(*frames, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "gm8view: %v\n", err)
		os.Exit(1)
	}
}

func run(frameCount, width, height int) error {
	renderer := gm8run.NewHeadlessRenderer()
	sizer := gm8run.FixedWindowSizer{Width: width, Height: height}
	assets := gm8run.NewMapAssetRepository()

	game := gm8run.NewGameState(renderer, sizer, assets)
	game.RoomWidth, game.RoomHeight = int32(width), int32(height)
	game.UnscaledWidth, game.UnscaledHeight = width, height

	for i := 0; i < frameCount; i++ {
		if err := game.DrawFrame(); err != nil {
			fmt.Fprintf(os.Stderr, "gm8view: frame %d: %v\n", i, err)
			continue
		}
	}

	fmt.Printf("gm8view: simulated %d frames, recorded %d renderer calls\n", frameCount, len(renderer.Calls))
	return nil
}
