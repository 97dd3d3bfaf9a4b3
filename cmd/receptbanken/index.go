package main

import (
	"encoding/json"
	"log"

	"github.com/spf13/cobra"

	"github.com/receptbanken/receptbanken/config"
	"github.com/receptbanken/receptbanken/internal/content"
	"github.com/receptbanken/receptbanken/models"
)

// indexCMD writes the client-side search index to stdout, for build
// pipelines that host it as a static file.
func indexCMD() *cobra.Command {
	var cfgPath string
	var contentType string
	var index = &cobra.Command{
		Use:   "index",
		Short: "Print the JSON search index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if contentType == "" {
				contentType = cfg.Content.DefaultType
			}
			store := content.NewStore(cfg.Content.Dir, log.New(cmd.ErrOrStderr(), "[INDEX] ", 0))
			items, err := store.GetAll(contentType)
			if err != nil {
				return err
			}
			docs := make([]models.SearchDoc, 0, len(items))
			for _, item := range items {
				docs = append(docs, models.NewSearchDoc(item))
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(docs)
		},
	}
	index.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config.yaml)")
	index.Flags().StringVarP(&contentType, "type", "t", "", "content type to index (default from config)")

	return index
}
