package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	iigsimage "github.com/yoshisuga/IIgsImageTool"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func converter(c *cli.Context, label string) *iigsimage.Converter {
	if label == "" {
		label = c.String("label")
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return iigsimage.New(iigsimage.Options{
		Label:  label,
		Width:  c.Int("width"),
		Reduce: c.Bool("reduce"),
		Dither: c.Bool("dither"),
		Strict: c.Bool("strict"),
	}, logger)
}

func main() {
	app := cli.NewApp()

	app.Name = "iigsimage"
	app.Usage = "Convert images to Apple IIgs super hi-res drawing code"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "label",
			Usage: "name for the generated routines and data block",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "scale the image to this width before converting",
		},
		&cli.BoolFlag{
			Name:  "reduce",
			Usage: "median cut down to 16 colors before converting",
		},
		&cli.BoolFlag{
			Name:  "dither",
			Usage: "reduce to 16 colors with Floyd-Steinberg dithering",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "fail on palette overflow or unsupported width",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert a single image",
			Description: "",
			ArgsUsage:   "FILE [LABEL]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write the generated source to this file",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				out := io.WriteCloser(os.Stdout)
				if file := c.String("output"); file != "" {
					f, err := os.Create(file)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					out = f
				}

				if err := converter(c, c.Args().Get(1)).ConvertFile(c.Args().First(), out); err != nil {
					return cli.NewExitError(err, 1)
				}

				if out != os.Stdout {
					if err := out.Close(); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Convert every image below a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := converter(c, "").Batch(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
