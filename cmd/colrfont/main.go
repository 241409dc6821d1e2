/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// colrfont converts TrueType/OpenType fonts into single-color COLR/CPAL fonts and optionally
// deploys them, with the BuilderIcons manifest, into a bootstrapper's asset directory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/froststrap/colrfont/bootstrapper"
	"github.com/froststrap/colrfont/common"
	"github.com/froststrap/colrfont/recolor"
)

type flags struct {
	path         string
	color        string
	bootstrapper string
	modName      string
	verbose      bool
}

func newRootCmd(env bootstrapper.Env, stdout io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "colrfont --path <dir> --color <hex>",
		Short: "Batch-convert fonts to single-color COLR/CPAL OTF fonts",
		Long: `colrfont recolors every .ttf and .otf file below --path: each font gets a
one-entry CPAL palette holding --color and a COLR table drawing every glyph
except .notdef in that color. The result is written next to the input as .otf.

With --bootstrapper (default on Linux: Sober) the converted fonts are copied
into the bootstrapper's BuilderIcons package together with BuilderIcons.json.

Bootstrappers: Bloxstrap, Fishstrap, Froststrap, Luczystrap, Lunastrap, Sober.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, env, stdout)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.path, "path", "", "root directory to scan for fonts")
	fs.StringVar(&f.color, "color", "", "color as 6 hex digits, e.g. 00008B or #00008B")
	fs.StringVar(&f.bootstrapper, "bootstrapper", "", "bootstrapper to deploy to (case-insensitive)")
	fs.StringVar(&f.modName, "mod-name", "", "Froststrap modification folder name")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug output")
	_ = cmd.MarkFlagRequired("path")
	_ = cmd.MarkFlagRequired("color")

	return cmd
}

func run(f flags, env bootstrapper.Env, stdout io.Writer) error {
	level := common.LogLevelInfo
	if f.verbose {
		level = common.LogLevelDebug
	}
	common.SetLogger(common.NewConsoleLogger(level))

	color, err := recolor.ParseHexColor(f.color)
	if err != nil {
		return err
	}

	name := bootstrapper.Default(env.GOOS)
	if f.bootstrapper != "" {
		name, err = bootstrapper.Canonicalize(f.bootstrapper)
		if err != nil {
			return err
		}
	}
	if f.modName != "" && name != bootstrapper.Froststrap {
		common.Log.Debug("--mod-name is only used with %s", bootstrapper.Froststrap)
	}

	sum, err := recolor.ProcessDirectory(f.path, recolor.Options{
		Color:        color,
		Bootstrapper: name,
		ModName:      f.modName,
		Env:          env,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Processed %d files\n", sum.Processed)
	if sum.Failed > 0 {
		common.Log.Warning("%d of %d files failed", sum.Failed, sum.Processed)
	}
	return nil
}

func main() {
	if err := newRootCmd(bootstrapper.HostEnv(), os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
