// Package smiley is a small interactive graphics demo for [Ebitengine]: a
// resizable window with two animated smiley faces whose colors drift every
// tick and which respond to the pointer and keyboard.
//
// The quickest way in is [Run], which creates the window and game loop:
//
//	smiley.Run(smiley.Config{Title: "Smileys", Width: 640, Height: 480})
//
// Controls: click to move the first smiley, arrow keys to move the second,
// space to randomize both colors, escape or q to quit.
//
// The package separates the scene model ([Surface], [Entity], [Smiley],
// [Renderer]) from the dispatch state machine ([Loop]), which is driven with
// explicit timestamps and events and so can be exercised without a window.
//
// [Ebitengine]: https://ebitengine.org
package smiley
