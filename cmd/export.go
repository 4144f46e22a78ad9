package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/iksnae/bookmark-tag/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputOut string
	exportTag string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export bookmarks to a file or stdout",
	Long: `Export the flattened bookmark tree to various formats (jsonl, md, yaml, json).

Every entry carries its display title, tags, folder path and depth. With
--tag only bookmarks carrying that tag are exported and folders are left out.
Without --out the export is written to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		m, store, err := openManager(cfg, nil)
		if err != nil {
			return err
		}
		defer closeStore(store)

		entries := m.Entries(cmd.Context())
		if entries == nil {
			return fmt.Errorf("failed to read bookmarks from %s", store.Path)
		}
		if exportTag != "" {
			entries = entriesWithTag(entries, exportTag)
		}

		if outputOut == "" {
			if err := exporter.Export(entries, cmd.OutOrStdout()); err != nil {
				return &internal.ExportError{Format: format, Path: "stdout", Err: err}
			}
			return nil
		}

		path := outputOut
		if filepath.Ext(path) == "" {
			path += "." + exporter.Extension()
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return &internal.ExportError{Format: format, Path: path, Err: err}
			}
		}

		err = internal.ShowProgress(cmd.Context(), fmt.Sprintf("Exporting %d entries to %s", len(entries), path), func() error {
			return writeExport(exporter, entries, path)
		})
		if err != nil {
			return &internal.ExportError{Format: format, Path: path, Err: err}
		}

		internal.PrintSuccess(fmt.Sprintf("Export complete: %d entries written to %s", len(entries), path))
		return nil
	},
}

// entriesWithTag keeps the bookmarks whose title carries tag
func entriesWithTag(entries []internal.Entry, tag string) []internal.Entry {
	want := internal.AddTagPrefix(internal.RemoveTagPrefix(tag))
	var filtered []internal.Entry
	for _, e := range entries {
		if e.IsFolder {
			continue
		}
		for _, t := range internal.ExtractTags(e.Title) {
			if t == want {
				filtered = append(filtered, e)
				break
			}
		}
	}
	return filtered
}

func writeExport(exporter export.Exporter, entries []internal.Entry, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return exportTo(exporter, entries, file)
}

func exportTo(exporter export.Exporter, entries []internal.Entry, w io.Writer) error {
	if entries == nil {
		entries = []internal.Entry{}
	}
	return exporter.Export(entries, w)
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "jsonl", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&outputOut, "out", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportTag, "tag", "t", "", "Only export bookmarks with this tag")
}
