package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/receptbanken/receptbanken/config"
	"github.com/receptbanken/receptbanken/internal/content"
)

// checkCMD validates every content file and reports the ones the catalog
// loader would skip.
func checkCMD() *cobra.Command {
	var cfgPath string
	var check = &cobra.Command{
		Use:   "check",
		Short: "Validate all content files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			store := content.NewStore(cfg.Content.Dir, log.New(cmd.ErrOrStderr(), "[CHECK] ", 0))

			bad := 0
			for _, t := range cfg.Content.Types {
				slugs, err := store.ListFiles(t)
				if err != nil {
					return err
				}
				ok := 0
				for _, slug := range slugs {
					if _, err := store.GetBySlug(t, slug); err != nil {
						fmt.Fprintf(cmd.OutOrStdout(), "BAD  %s/%s: %v\n", t, slug, err)
						bad++
						continue
					}
					ok++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d ok, %d total\n", t, ok, len(slugs))
			}
			if bad > 0 {
				return fmt.Errorf("%d content file(s) failed to parse", bad)
			}
			return nil
		},
	}
	check.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config.yaml)")

	return check
}
