package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/echoflaresat/geomkit/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Set with -ldflags "-X main.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var CLI struct {
	Debug   bool     `help:"Whether to enable debug logging."`
	Configs []string `name:"config" help:"Configuration files, applied in order over the defaults." type:"path"`

	Eval struct {
		Scene     string `arg:"" help:"Scene file." type:"existingfile"`
		Format    string `help:"Report format: yaml, json or cbor."`
		Out       string `help:"Write the report here instead of standard output." type:"path" short:"o"`
		Workers   int    `help:"Queries evaluated at once; overrides the config when positive."`
		CacheSize int    `help:"Hexahedra whose face planes stay cached; overrides the config when positive."`
	} `cmd:"" help:"Evaluate the queries of a scene."`

	Render struct {
		Scene  string `arg:"" help:"Scene file." type:"existingfile"`
		Out    string `help:"Output image, .png or .tif." type:"path" short:"o" default:"view.png"`
		Size   int    `help:"Image width and height in pixels; overrides the config when positive."`
		NoEval bool   `help:"Draw the shapes only, without query results."`
	} `cmd:"" help:"Draw a scene and its query results as a wireframe."`

	Inspect struct {
		Scene string `arg:"" help:"Scene file." type:"existingfile"`
	} `cmd:"" help:"Print every shape and query of a scene."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`

	Version struct {
	} `cmd:"" help:"Print version information and exit."`
}

func writeError(err error) {
	log.Error().Err(err).Msg("geomkit failed")
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("geomkit"),
		kong.Description("evaluate and draw segment, orb, plane and hexahedron queries"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if ctx.Command() == "version" {
		fmt.Printf("geomkit %s (commit %s)\n", Version, GitCommit)
		return
	}
	if ctx.Command() == "config" {
		os.Stdout.Write(config.DEFAULT)
		return
	}

	cfg, err := config.Process(CLI.Configs)
	if err != nil {
		writeError(err)
	}

	switch ctx.Command() {
	case "eval <scene>":
		if CLI.Eval.Format != "" {
			cfg.Eval.Format = CLI.Eval.Format
		}
		if CLI.Eval.Workers > 0 {
			cfg.Eval.Workers = CLI.Eval.Workers
		}
		if CLI.Eval.CacheSize > 0 {
			cfg.Eval.CacheSize = CLI.Eval.CacheSize
		}
		if err := cfg.Validate(); err != nil {
			writeError(err)
		}
		err = evalCommand(cfg, CLI.Eval.Scene, CLI.Eval.Out)
	case "render <scene>":
		if CLI.Render.Size > 0 {
			cfg.Render.Size = CLI.Render.Size
		}
		if err := cfg.Validate(); err != nil {
			writeError(err)
		}
		err = renderCommand(cfg, CLI.Render.Scene, CLI.Render.Out, !CLI.Render.NoEval)
	case "inspect <scene>":
		err = inspectCommand(os.Stdout, CLI.Inspect.Scene)
	}
	if err != nil {
		writeError(err)
	}
}
