package main

import (
	"fmt"
	"io"
	"os"

	"markdoll"
	"markdoll/diag"
	"markdoll/emit"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	fileCfg, err := loadConfig(cfg.Config)
	if err != nil {
		return err
	}
	target := cfg.Target
	if target == "html" && fileCfg.Target != "" {
		target = fileCfg.Target
	}

	reporter := newStatusReporter(os.Stderr, cfg.JSON, cfg.NoStatus)

	engine, err := markdoll.New()
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	if err := registerDangerTags(engine.Registry(), cfg.Danger); err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}

	sources := diag.MapSourceSet{}
	var allDiags []diag.Diagnostic
	hadErrors := false

	convertOne := func(name string, r io.Reader, w io.Writer) error {
		src, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		sources[name] = src

		reporter.stage("parse", "working")
		res := engine.ParseDocument(name, src, target)
		allDiags = append(allDiags, res.Diagnostics...)
		if res.HasErrors() {
			hadErrors = true
			reporter.stage("parse", "failure")
		} else {
			reporter.stage("parse", "success")
		}

		reporter.stage("emit", "working")
		out, emitDiags, err := engine.Emit(res.Doc, emit.Options{
			Target:        target,
			CodeLanguages: fileCfg.CodeLanguages,
		})
		if err != nil {
			reporter.stage("emit", "failure")
			return fmt.Errorf("error emitting %s: %w", name, err)
		}
		allDiags = append(allDiags, emitDiags...)
		reporter.stage("emit", "success")

		if _, err := w.Write(out); err != nil {
			return err
		}
		reporter.stage("emit", "written")
		return nil
	}

	if len(args) == 0 {
		if err := convertOne("<stdin>", cc.In, cc.Out); err != nil {
			return err
		}
	} else {
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("could not open %q: %w", path, err)
			}
			err = convertOne(path, f, cc.Out)
			f.Close()
			if err != nil {
				return err
			}
		}
	}

	reportDiagnostics(os.Stderr, allDiags, sources, cfg.JSON)
	if hadErrors {
		return cli.ExitCodeErr(1)
	}
	return nil
}
