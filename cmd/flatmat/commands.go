package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/flatmat/matrix"
)

// commonFlags returns the output/diagnostics flags shared by all commands.
func commonFlags(out, format, logLevel *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "out",
			Aliases:     []string{"o"},
			Usage:       "output file (.json/.yaml); stdout when omitted",
			Destination: out,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "output format: json, yaml or pretty (stdout only)",
			Destination: format,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "diagnostics level: debug, info, warn, error",
			Value:       "info",
			Destination: logLevel,
		},
	}
}

func showCmd() *cli.Command {
	var in, out, format, logLevel string

	return &cli.Command{
		Name:  "show",
		Usage: "Pretty-print a matrix file",
		Flags: append(commonFlags(&out, &format, &logLevel),
			&cli.StringFlag{
				Name:        "in",
				Aliases:     []string{"i"},
				Usage:       "matrix file (.json/.yaml)",
				Required:    true,
				Destination: &in,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyConfig(cmd, cfg, &format, &logLevel)
			log := newLogger(logLevel)

			m, err := readMatrix(in)
			if err != nil {
				return err
			}
			log.Debug("matrix loaded", "path", in, "rows", m.Rows(), "cols", m.Cols())
			if format == "" {
				format = formatPretty
			}
			return writeMatrix(m, out, format)
		},
	}
}

func identityCmd() *cli.Command {
	var n int64
	var out, format, logLevel string

	return &cli.Command{
		Name:  "identity",
		Usage: "Emit the n×n identity matrix",
		Flags: append(commonFlags(&out, &format, &logLevel),
			&cli.IntFlag{
				Name:        "n",
				Usage:       "dimension (>= 0)",
				Required:    true,
				Destination: &n,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyConfig(cmd, cfg, &format, &logLevel)
			if n < 0 {
				return fmt.Errorf("identity: n must be >= 0, got %d", n)
			}
			return writeMatrix(matrix.Identity[float64](int(n)), out, format)
		},
	}
}

func transposeCmd() *cli.Command {
	var in, out, format, logLevel string

	return &cli.Command{
		Name:  "transpose",
		Usage: "Transpose a matrix file",
		Flags: append(commonFlags(&out, &format, &logLevel),
			&cli.StringFlag{
				Name:        "in",
				Aliases:     []string{"i"},
				Usage:       "matrix file (.json/.yaml)",
				Required:    true,
				Destination: &in,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyConfig(cmd, cfg, &format, &logLevel)
			log := newLogger(logLevel)

			m, err := readMatrix(in)
			if err != nil {
				return err
			}
			mt := matrix.Transpose(m)
			log.Debug("transposed", "rows", mt.Rows(), "cols", mt.Cols())
			return writeMatrix(mt, out, format)
		},
	}
}

func mulCmd() *cli.Command {
	var inA, inB, out, format, logLevel string

	return &cli.Command{
		Name:  "mul",
		Usage: "Multiply two matrix files (a × b)",
		Flags: append(commonFlags(&out, &format, &logLevel),
			&cli.StringFlag{
				Name:        "a",
				Usage:       "left operand file (.json/.yaml)",
				Required:    true,
				Destination: &inA,
			},
			&cli.StringFlag{
				Name:        "b",
				Usage:       "right operand file (.json/.yaml)",
				Required:    true,
				Destination: &inB,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyConfig(cmd, cfg, &format, &logLevel)
			log := newLogger(logLevel)

			a, err := readMatrix(inA)
			if err != nil {
				return err
			}
			b, err := readMatrix(inB)
			if err != nil {
				return err
			}
			p, err := matrix.Dot(a, b)
			if err != nil {
				return fmt.Errorf("mul: %dx%d × %dx%d: %w",
					a.Rows(), a.Cols(), b.Rows(), b.Cols(), err)
			}
			log.Debug("product computed", "rows", p.Rows(), "cols", p.Cols())
			return writeMatrix(p, out, format)
		},
	}
}
