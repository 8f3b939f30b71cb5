package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values <field>",
		Short: "List the distinct tags of a multi-valued field",
		Long:  "Prints every distinct genre or platform tag across the full catalog. Field must be 'genre' or 'platform'.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args[0])
		},
	}
}

func runValues(field string) error {
	return withDeps(func(d *deps) error {
		values, err := d.State.DistinctValues(field)
		if err != nil {
			return err
		}

		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	})
}
