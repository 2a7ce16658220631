package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_strutil/pkg/cosine"
)

type similarityOutput struct {
	Score           float64 `json:"score"`
	Passed          bool    `json:"passed"`
	Threshold       float64 `json:"threshold"`
	OriginalLength  int     `json:"original_length"`
	AugmentedLength int     `json:"augmented_length"`
	BytesProcessed  int64   `json:"bytes_processed,omitempty"`
	Error           string  `json:"error,omitempty"`
}

func newSimilarityCommand(ctx *commandContext) *cobra.Command {
	var (
		threshold float64
		precision int
		fold      bool
		files     bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "similarity <original> <augmented>",
		Short: "Score two strings by cosine similarity of their character counts",
		Long: `Score two strings by cosine similarity of their character counts.

With --files both arguments are file paths ('-' for stdin) and are read as
streams instead of being held in memory.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			logger, err := ctx.loggerFor(cmd)
			if err != nil {
				return err
			}

			opts := []cosine.Option{
				cosine.WithLogger(logger),
				cosine.WithThreshold(threshold),
				cosine.WithPrecision(precision),
			}
			if fold {
				opts = append(opts, cosine.WithCaseFolding())
			}
			metric, err := cosine.New(opts...)
			if err != nil {
				return err
			}

			var result similarityOutput
			if files {
				result, err = compareFiles(cmd.Context(), metric, cmd.InOrStdin(), args[0], args[1])
				if err != nil {
					return err
				}
			} else {
				r := metric.Compute(cmd.Context(), args[0], args[1])
				result = similarityOutput{
					Score:           r.Score,
					Passed:          r.Passed,
					Threshold:       r.Threshold,
					OriginalLength:  r.OriginalLength,
					AugmentedLength: r.AugmentedLength,
				}
				if msg, ok := r.Details["error"].(string); ok {
					result.Error = msg
				}
			}

			logger.Info("Compared inputs",
				"score", result.Score,
				"passed", result.Passed,
				"files", files,
			)

			if output == outputJSON {
				return writeJSON(cmd, result)
			}
			if result.Error != "" {
				return fmt.Errorf("similarity: %s", result.Error)
			}

			status := "FAIL"
			if result.Passed {
				status = "PASS"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s score=%g threshold=%g\n", status, result.Score, result.Threshold)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0.7, "Score needed to pass (0.0-1.0)")
	cmd.Flags().IntVarP(&precision, "precision", "p", 4, "Decimals to round the score to (-1 = no rounding)")
	cmd.Flags().BoolVar(&fold, "fold", false, "Ignore case and punctuation")
	cmd.Flags().BoolVar(&files, "files", false, "Treat arguments as file paths")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text or json")
	return cmd
}

func compareFiles(ctx context.Context, metric *cosine.CosineSimilarity, stdin io.Reader, originalPath, augmentedPath string) (similarityOutput, error) {
	if originalPath == "-" && augmentedPath == "-" {
		return similarityOutput{}, errors.New("only one argument may read stdin")
	}

	original, closeOriginal, err := openInput(originalPath, stdin)
	if err != nil {
		return similarityOutput{}, err
	}
	defer closeOriginal()

	augmented, closeAugmented, err := openInput(augmentedPath, stdin)
	if err != nil {
		return similarityOutput{}, err
	}
	defer closeAugmented()

	r := metric.ComputeFromReaders(ctx, original, augmented)
	out := similarityOutput{
		Score:           r.Score,
		Passed:          r.Passed,
		Threshold:       r.Threshold,
		OriginalLength:  r.OriginalLength,
		AugmentedLength: r.AugmentedLength,
		BytesProcessed:  r.BytesProcessed,
	}
	if msg, ok := r.Details["error"].(string); ok {
		out.Error = msg
	}
	return out, nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return file, func() { _ = file.Close() }, nil
}
