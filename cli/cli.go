package cli

import (
	"context"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"parbox.dev/parbox/maps"
	ms "parbox.dev/parbox/settings"
)

func Handle() {
	cmd := &cli.Command{
		Name:      "parbox",
		Usage:     "Compute the bounding box of a geographic feature document",
		ArgsUsage: "/path/to/file.geojson",
		Flags:     computeFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("expected exactly one input file, see --help")
			}
			return computeFile(cmd.Args().First(), computeOptions(cmd))
		},
		Commands: []*cli.Command{
			{
				Name:    "convert",
				Aliases: []string{"c"},
				Usage:   "Extract ways from an OSM pbf file into a GeoJSON feature collection",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "input-file",
						Usage:    "The open street maps pbf file to extract ways from",
						Aliases: []string{
							"i",
						},
						Value: "./map.osm.pbf",
					},
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "output-file",
						Usage:    "The GeoJSON file to write the extracted ways to",
						Aliases: []string{
							"o",
						},
						Value: "./map.geojson",
					},
					&cli.BoolFlag{
						Category: "Filtering",
						Name:     "all-ways",
						Usage:    "Keeps every way instead of just highways",
						Aliases: []string{
							"a",
						},
						Value: false,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return maps.Extract(maps.ExtractSettings{
						InputFile:  cmd.String("input-file"),
						OutputFile: cmd.String("output-file"),
						AllWays:    cmd.Bool("all-ways"),
					})
				},
			},
			{
				Name:    "fetch",
				Aliases: []string{"f"},
				Usage:   "Download a GeoJSON document and optionally compute its bounding box",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "output-file",
						Usage:    "Where to store the downloaded document",
						Aliases: []string{
							"o",
						},
						Value: "./download.geojson",
					},
					&cli.BoolFlag{
						Category: "Inputs and Outputs",
						Name:     "compute",
						Usage:    "Compute the bounding box once the download finishes",
						Value:    false,
					},
				}, computeFlags()...),
				ArgsUsage: "https://host/file.geojson",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return errors.New("expected exactly one url, see --help")
					}
					path := cmd.String("output-file")
					if err := fetch(cmd.Args().First(), path); err != nil {
						return err
					}
					if cmd.Bool("compute") {
						return computeFile(path, computeOptions(cmd))
					}
					return nil
				},
			},
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Edit the persisted parbox settings",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func computeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Category: "Tuning",
			Name:     "threshold",
			Usage:    "Sets the sequence length below which splitting stops",
			Aliases: []string{
				"t",
			},
			Value: ms.Settings.Threshold,
		},
		&cli.IntFlag{
			Category: "Tuning",
			Name:     "workers",
			Usage:    "Caps concurrent reductions, 0 means one per execution unit",
			Aliases: []string{
				"w",
			},
			Value: ms.Settings.Workers,
		},
		&cli.BoolFlag{
			Category: "Output",
			Name:     "quiet",
			Usage:    "Suppresses the parse and bbox timing report",
			Aliases: []string{
				"q",
			},
			Value: false,
		},
	}
}
