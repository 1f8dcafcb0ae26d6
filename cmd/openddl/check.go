package main

import (
	"fmt"

	"github.com/opengex/openddl/opengex"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Plain {
		return fmt.Errorf("%w: check needs the OpenGEX identifier tables, drop -plain", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readDocument(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		if err := opengex.Validate(d); err != nil {
			return fmt.Errorf("validation failed for %s: %w", arg, err)
		}
		name := arg
		if name == "-" {
			name = "stdin"
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", name)
	}
	return nil
}
