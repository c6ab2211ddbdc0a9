// Command terrapath plans an orienteering route through a chain of waypoints
// over a terrain raster and an elevation table, and draws it onto the map.
//
// Usage:
//
//	terrapath [flags] <terrain.png> <elevation.txt> <waypoints.txt> <out.png>
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
