// ABOUTME: Echo mode: the main control loop that polls the input source and renders each byte
// ABOUTME: Never blocks on input; idles briefly when nothing is pending and stops on ctx or Ctrl+C

package echo

import (
	"context"
	"io"
	"time"

	"github.com/mauromedda/keyecho/internal/log"
	"github.com/mauromedda/keyecho/internal/render"
)

// QuitByte is what Ctrl+C produces once the terminal no longer generates SIGINT.
const QuitByte = 0x03

// idleWait is how long the loop sleeps when the source is empty.
const idleWait = time.Millisecond

// Source is a non-blocking byte source such as *input.Bridge. Poll may
// report no input while bytes are still pending (a filtered NUL), so
// Pending decides when the source is drained.
type Source interface {
	Poll() (byte, bool)
	Pending() int
}

// Run renders every byte from src to out until ctx is done, QuitByte is
// read, or a write fails. QuitByte is rendered before Run returns nil.
func Run(ctx context.Context, src Source, out io.Writer) error {
	idle := time.NewTimer(idleWait)
	defer idle.Stop()

	for {
		for {
			b, ok := src.Poll()
			if !ok {
				if src.Pending() > 0 {
					continue
				}
				break
			}
			if err := render.Render(out, b); err != nil {
				return err
			}
			if b == QuitByte {
				log.Debug("quit byte received")
				return nil
			}
		}

		idle.Reset(idleWait)
		select {
		case <-ctx.Done():
			log.Debug("echo loop cancelled: %v", context.Cause(ctx))
			return nil
		case <-idle.C:
		}
	}
}
