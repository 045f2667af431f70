// Command trackfeed connects to the game's hand-tracker bridge and feeds
// it a synthetic fingertip that circles the frame. Useful for exercising
// the full steering path without a webcam or a real hand tracker.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"fingersnake/track"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:9000", "bridge address the game is listening on")
	hz := flag.Float64("hz", 30, "frames pushed per second")
	period := flag.Float64("period", 8, "seconds per full circle")
	flag.Parse()

	url := fmt.Sprintf("ws://%s/ws", *addr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to %s: %v\n", url, err)
		os.Exit(1)
	}
	defer conn.Close()
	fmt.Printf("feeding synthetic fingertip to %s\n", url)

	ticker := time.NewTicker(time.Duration(float64(time.Second) / *hz))
	defer ticker.Stop()

	start := time.Now()
	for range ticker.C {
		t := time.Since(start).Seconds()
		angle := 2 * math.Pi * t / *period
		f := track.Frame{
			X:    0.5 + 0.3*math.Cos(angle),
			Y:    0.5 + 0.3*math.Sin(angle),
			Seen: true,
		}
		if err := conn.WriteJSON(f); err != nil {
			fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
			os.Exit(1)
		}
	}
}
