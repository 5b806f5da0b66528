package main

import (
	"github.com/scott-cotton/cli"
)

// MainConfig holds flags shared by every subcommand, mirroring the
// MainConfig/StructOpts split in cmd/o/configs.go.
type MainConfig struct {
	JSON     bool   `cli:"name=json desc='emit diagnostics as line-delimited JSON on stderr'"`
	NoStatus bool   `cli:"name=no-status desc='suppress status updates; only final diagnostics are emitted'"`
	Config   string `cli:"name=config desc='path to a .markdoll.yaml config file'"`
	Target   string `cli:"name=target desc='emit target (default: html)'"`
	Danger   bool   `cli:"name=danger desc='enable the danger.eval expression tag (danger builds only)'"`

	Main *cli.Command
}

// MainCommand builds the "markdoll" command tree: a root command with one
// subcommand, convert, per SPEC_FULL's AMBIENT STACK CLI shape.
func MainCommand() *cli.Command {
	cfg := &MainConfig{Target: "html"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "markdoll").
		WithSynopsis("markdoll [opts] command [opts]").
		WithDescription("markdoll parses and renders markdoll-format documents.").
		WithOpts(opts...).
		WithSubs(
			ConvertCommand(cfg),
		)
}

// ConvertConfig embeds MainConfig; convert has no flags of its own.
type ConvertConfig struct {
	*MainConfig
	Convert *cli.Command
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c").
		WithSynopsis("convert [files]").
		WithDescription("convert renders markdoll documents to the configured target.").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}
