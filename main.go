package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sexel "github.com/sexel-dev/sexel/src"
	"github.com/sexel-dev/sexel/src/util"
)

var version string = "0.3"
var revision string = "devel"

func main() {
	opts, err := sexel.ParseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		util.Exit(sexel.ExitError)
	}
	if opts.Help {
		fmt.Print(sexel.Usage)
		util.Exit(sexel.ExitOk)
	}
	if opts.Version {
		fmt.Printf("sexel %s (%s)\n", version, revision)
		util.Exit(sexel.ExitOk)
	}

	// The terminal runs in raw mode while frames are on screen, so the
	// registered teardown must run on every exit path.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		util.Exit(sexel.ExitInterrupt)
	}()

	code, err := sexel.Run(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	util.Exit(code)
}
