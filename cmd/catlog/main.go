package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abyssdigger/catlog"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "catlog",
		Usage: "Exercise the catlog facade from a terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML settings file to install before running",
			},
		},
		Commands: []*cli.Command{
			demoCommand(),
			verbosityCommand(),
		},
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Emit sample messages through every target kind",
		Action: func(ctx context.Context, c *cli.Command) error {
			if path := c.String("config"); path != "" {
				if err := catlog.ApplyConfigFile(path); err != nil {
					return fmt.Errorf("applying config: %w", err)
				}
			}

			console := catlog.NewConsoleTarget(os.Stdout).
				WithPrefixMap(catlog.VerbShortNames).
				WithColorMap(catlog.VerbColorOnBlackMap).
				WithTimeFormat("15:04:05")
			overlay := catlog.NewOverlayTarget(os.Stdout).
				WithDuration(5 * time.Second).
				WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("214")))

			demo := catlog.Default().
				WithDefaultCategory(catlog.GetCategory("LogDemo")).
				WithTargets(console, overlay)

			demo.Log("plain message, numbered args: {0} and {1}", "first", 2)
			demo.Warnf("printf args: %s and %d", "first", 2)
			demo.Error("errors also open the message panel when one is attached")

			scope := catlog.PushCategoryName("LogDemoScope")
			demo.Display("scoped category overrides the flavor default")
			scope.Release()

			verbose := catlog.GetContextFlag("DemoVerbose")
			guard := verbose.Scoped(c.Bool("verbose"))
			verbose.WhenActive(func() {
				demo.Verbose("context flag is open")
			})
			guard.Release()
			return nil
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Open the DemoVerbose context flag during the run",
			},
		},
	}
}

func verbosityCommand() *cli.Command {
	return &cli.Command{
		Name:      "verbosity",
		Usage:     "Set a category threshold and show what passes",
		ArgsUsage: "<category> <verbosity>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("expected <category> <verbosity>")
			}
			v, err := catlog.VerbosityFromName(c.Args().Get(1))
			if err != nil {
				return err
			}
			cat := catlog.GetCategory(c.Args().Get(0))
			cat.SetVerbosity(v)

			probe := catlog.Default().
				WithCategory(cat).
				WithTargets(catlog.NewConsoleTarget(os.Stdout).WithPrefixMap(catlog.VerbFullNames))
			for lvl := catlog.VRB_FATAL; lvl <= catlog.VRB_VERYVERBOSE; lvl++ {
				probe.Emit(lvl, "emitted at {0}", lvl)
			}
			return nil
		},
	}
}
