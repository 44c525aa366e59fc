package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/phonotact/scheme"
	"github.com/c360studio/phonotact/source"
)

// checkCmd parses scheme files without running their tests, so a scheme
// can be linted on its own.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Parse scheme files without running tests",
		Long: `Check parses each scheme file and reports whether it is well-formed:
classes resolve, rule patterns compile, and every line uses a known
operator. No tests are run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := source.ResolvePaths(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no scheme files matched %v", args)
			}

			for _, path := range files {
				doc, err := source.Load(path)
				if err != nil {
					return err
				}
				sch, err := scheme.Parse(doc.Text)
				if err != nil {
					return fmt.Errorf("parse %s: %w", path, err)
				}
				fmt.Printf("%s: ok (%d rules, %d tests)\n", path, len(sch.Rules), sch.TestCount())
			}
			return nil
		},
	}
}
