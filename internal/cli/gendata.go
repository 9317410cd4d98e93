package cli

import (
	"fmt"

	"github.com/ougirez/coalportal/internal/service/synthetic"
	"github.com/spf13/cobra"
)

type GenDataOptions struct {
	Out string
	synthetic.Options
}

func NewGenDataCommand() *cobra.Command {
	opts := &GenDataOptions{Options: synthetic.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "gendata",
		Short: "Write a synthetic company dataset",
		Long: `Write a synthetic coal company dataset as CSV.

Company names cycle through the Indian coal producers, one row per company and year.

Example:
  portal gendata --out modified_indian_coal_companies.csv --companies 500 --from 2014 --to 2023`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := synthetic.NewSyntheticService(opts.Options).WriteFile(cmd.Context(), opts.Out)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Generated '%s' with %d rows.\n", opts.Out, rows)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "modified_indian_coal_companies.csv", "output CSV path")
	cmd.Flags().IntVar(&opts.Companies, "companies", opts.Companies, "number of companies")
	cmd.Flags().IntVar(&opts.FromYear, "from", opts.FromYear, "first year")
	cmd.Flags().IntVar(&opts.ToYear, "to", opts.ToYear, "last year")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed")

	return cmd
}
