package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/glint-tools/cli/internal/cli"
	"github.com/glint-tools/cli/internal/config"
	"github.com/glint-tools/cli/internal/dispatchers"
	"github.com/glint-tools/cli/internal/log"
	"github.com/glint-tools/cli/internal/ui/style"
	"github.com/glint-tools/cli/internal/usage"
)

func main() {
	// Exit status 0 means a plain return; anything else terminates with
	// that exact code.
	if code := run(os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}

func run(args []string) (code int) {
	crashOnError := false
	defer func() {
		if r := recover(); r != nil {
			if crashOnError {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "glint: internal error: %v\n", r)
			code = 1
		}
	}()

	if err := log.Init(log.DefaultPath(), log.LevelWarn); err == nil {
		defer func() { _ = log.Close() }()
	}

	opts, err := dispatchers.ParseOptions(args, cli.Switches)
	if err != nil {
		return fail(err)
	}

	registry := cli.BuildRegistry()
	res := dispatchers.ResolveCommand(registry, opts.Positional())

	cfg, err := config.Resolve(res.DirPath(), cli.ProfileName(opts), cli.Overlay(opts))
	if err != nil {
		return fail(err)
	}
	crashOnError = cfg.CrashOnError
	res = res.ApplyConfig(registry, cfg)

	style.Init(term.IsTerminal(int(os.Stdout.Fd())))

	status, err := dispatchers.Dispatch(res, cfg)
	if err != nil {
		return fail(err)
	}
	return status
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, err.Error())
	if ue, ok := err.(*usage.Error); ok {
		return ue.ExitCode()
	}
	return 1
}
