// Command cuckatoo is a single-threaded lean Cuckatoo cycle solver.
//
//	cuckatoo tune --edge-bits 20
//	cuckatoo mine --header <hex> --nonce 100 --nonces 50
//	cuckatoo verify --header <hex> --nonce 123 1 5 9 ...
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().root.ExecuteContext(ctx); err != nil {
		reportError(colorable.NewColorableStderr(), err)
		stop()
		os.Exit(1)
	}
}

// reportError logs a fatal error in the console format preRun installs.
// It does not depend on preRun, which may not have run.
func reportError(w io.Writer, err error) {
	l := newLogger(w, zerolog.ErrorLevel)
	l.Error().Msg(err.Error())
}
