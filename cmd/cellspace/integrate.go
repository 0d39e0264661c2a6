package main

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellspace/integrate"
	"github.com/katalvlaran/cellspace/render"
)

// errMissingInput guards the required file flags.
var errMissingInput = errors.New("cellspace: --matrix, --labels, and --out are required")

// integrateCmd runs the pipeline on a user-supplied matrix + label file.
// The matrix must already be normalised (the core performs no
// normalisation); rows are features, columns are cells.
func integrateCmd() *cobra.Command {
	var (
		matrixPath string
		labelsPath string
		outPath    string
		plotPath   string
		configPath string
		flags      RunConfig
	)

	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate a CSV expression matrix into a shared embedding",
		RunE: func(cmd *cobra.Command, args []string) error {
			if matrixPath == "" || labelsPath == "" || outPath == "" {
				return errMissingInput
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = cfg.merge(flags, cmd.Flags().Changed)

			x, err := readMatrixCSV(matrixPath)
			if err != nil {
				return err
			}
			labels, err := readLabels(labelsPath)
			if err != nil {
				return err
			}
			f, n := x.Dims()
			log.Info().Int("features", f).Int("cells", n).Str("reference", cfg.Reference).Int("rank", cfg.Rank).Msg("running integration")

			res, err := integrate.Run(x, labels, cfg.options())
			if err != nil {
				return err
			}
			if err := writeMatrixCSV(res.Embedding, outPath); err != nil {
				return err
			}
			log.Info().Str("path", outPath).Msg("embedding written")

			if plotPath != "" {
				pl, err := render.EmbeddingScatter(res.Embedding, labels, 0, 1, "integrated embedding")
				if err != nil {
					return err
				}
				if err := render.SavePNG(pl, plotPath); err != nil {
					return err
				}
				log.Info().Str("path", plotPath).Msg("scatter written")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&matrixPath, "matrix", "", "CSV matrix, features×cells, no header")
	cmd.Flags().StringVar(&labelsPath, "labels", "", "text file, one condition label per cell")
	cmd.Flags().StringVar(&outPath, "out", "", "output CSV for the P×N embedding")
	cmd.Flags().StringVar(&plotPath, "plot", "", "optional PNG scatter of components 1-2")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML run config")
	cmd.Flags().StringVar(&flags.Reference, "reference", "", "reference condition (required unless set in config)")
	cmd.Flags().IntVar(&flags.Rank, "rank", 0, "embedding dimensionality P")
	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "random seed for the basis fit")
	cmd.Flags().IntVar(&flags.MaxIter, "max-iter", 0, "override fit iteration cap")
	cmd.Flags().Float64Var(&flags.Tol, "tol", 0, "override fit convergence tolerance")

	return cmd
}
