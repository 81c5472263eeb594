// Smileys opens a window with two color-shifting smiley faces.
//
// Click to move the first smiley, use the arrow keys to move the second,
// press space to randomize both colors, and escape or q to quit.
package main

import (
	"flag"
	"log"

	smiley "github.com/nevakrien/small-game"
)

func main() {
	verbose := flag.Bool("v", false, "log loop stats to stderr and show FPS")
	mute := flag.Bool("mute", false, "disable audio feedback")
	flag.Parse()

	err := smiley.Run(smiley.Config{
		Title:   "Smileys",
		Width:   640,
		Height:  480,
		Verbose: *verbose,
		Mute:    *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
}
