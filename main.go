package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gookit/color"
	"golang.org/x/term"

	"jigsaw/pkg/game/options"
	"jigsaw/pkg/game/session"
	"jigsaw/pkg/game/slotdata"
)

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "jigsaw:", err)
	os.Exit(1)
}

func main() {
	seed := flag.Int64("seed", 0, "Generation seed (0 uses the current time)")
	seedName := flag.String("name", "", "Seed name recorded in the slot data")
	configPath := flag.String("config", "", "Path to a YAML options file")
	outPath := flag.String("out", "", "Write the slot data payload to this file")
	compress := flag.Bool("compress", false, "Write the slot data zstd-compressed")
	spoiler := flag.Bool("spoiler", false, "Print the spoiler summary")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Disable()
	}

	opts := options.Default()
	if *configPath != "" {
		loaded, err := options.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		opts = loaded
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *seedName == "" {
		*seedName = fmt.Sprintf("seed-%d", *seed)
	}

	world, err := session.Generate(opts, *seedName, *seed)
	if err != nil {
		fatal(err)
	}

	color.Bold.Printf("Generated jigsaw world %q\n", world.SeedName)
	color.Green.Printf("  %d x %d grid, %d pieces\n", world.Width, world.Height, world.NPieces())
	fmt.Printf("  %d precollected, %d in the item pool\n",
		len(world.Plan.Precollected), len(world.Plan.Itempool))
	fmt.Printf("  %d item checks of %d pieces each\n",
		world.Milestones.NumberOfLocations, world.Milestones.MinPiecesPerLocation)

	if *spoiler {
		if err := world.WriteSpoiler(os.Stdout); err != nil {
			fatal(err)
		}
	}

	if *outPath != "" {
		payload := world.SlotData()
		var raw []byte
		if *compress {
			raw, err = slotdata.EncodeCompressed(payload)
		} else {
			raw, err = slotdata.Encode(payload)
		}
		if err != nil {
			fatal(err)
		}
		if err := os.WriteFile(*outPath, raw, 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("  slot data written to %s\n", *outPath)
	}
}
