package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	protoform "github.com/goliatone/go-protoform"
	"github.com/goliatone/go-protoform/pkg/pages"
)

var (
	generateOut          string
	generateTheme        string
	generateThemeVariant string
)

var generateCmd = &cobra.Command{
	Use:   "generate <definition>",
	Short: "Build the downloadable prototype from a definition file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := protoform.Load(args[0])
		if err != nil {
			return err
		}

		files, err := protoform.Generate(def, pages.WithTheme(generateTheme, generateThemeVariant))
		if err != nil {
			return err
		}

		if err := os.MkdirAll(generateOut, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		var g errgroup.Group
		for _, file := range files {
			g.Go(func() error {
				path := filepath.Join(generateOut, file.Name)
				return os.WriteFile(path, []byte(file.Source), 0o644)
			})
		}
		g.Go(func() error {
			return copyAssets(filepath.Join(generateOut, "assets"))
		})
		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Println(headingStyle.Render(fmt.Sprintf("Generated %q", def.Title)))
		for _, file := range files {
			fmt.Printf("  %s\n", pathStyle.Render(filepath.Join(generateOut, file.Name)))
		}
		fmt.Printf("  %s\n", pathStyle.Render(filepath.Join(generateOut, "assets")+string(os.PathSeparator)))
		return nil
	},
}

// copyAssets writes the embedded stylesheet and validation runtime next to
// the generated pages so the prototype works from a plain directory.
func copyAssets(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create assets dir: %w", err)
	}
	assets := protoform.AssetsFS()
	return fs.WalkDir(assets, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return fmt.Errorf("read embedded asset %q: %w", path, err)
		}
		return os.WriteFile(filepath.Join(dir, filepath.FromSlash(path)), data, 0o644)
	})
}

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "prototype", "Output directory for the generated pages")
	generateCmd.Flags().StringVar(&generateTheme, "theme", "", "Theme name (defaults to the embedded GOV.UK theme)")
	generateCmd.Flags().StringVar(&generateThemeVariant, "theme-variant", "", "Theme variant")
	rootCmd.AddCommand(generateCmd)
}
