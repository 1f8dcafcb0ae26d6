package main

import (
	"encoding/json"
	"fmt"

	"github.com/opengex/openddl/encode"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readDocument(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		v := encode.Any(d)
		if cfg.J {
			enc := json.NewEncoder(cc.Out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(v); err != nil {
				return fmt.Errorf("error encoding %s: %w", arg, err)
			}
			continue
		}
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if _, err := cc.Out.Write(data); err != nil {
			return err
		}
	}
	return nil
}
