package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gradefill/adapters/excel"
	"gradefill/internal/config"

	"github.com/joho/godotenv"
)

// templatecheck verifies that the configured grading-tool templates are ready
// to serve fills. Run it after dropping new .xlsm files into the templates
// directory and before restarting the service.
func main() {
	dir := flag.String("dir", "", "templates directory (overrides TEMPLATES_DIR)")
	deep := flag.Bool("deep", true, "open each workbook and resolve the Inputs sheet and headers")
	flag.Parse()

	// Optional .env, same as the server.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(2)
	}
	if *dir != "" {
		cfg.Templates.Dir = *dir
	}

	catalog := excel.NewTemplateCatalog(excel.CatalogConfig{
		Dir:      cfg.Templates.Dir,
		FlatFile: cfg.Templates.FlatFile,
		XTRFile:  cfg.Templates.XTRFile,
	})

	fmt.Println("=== Template Preflight ===")
	fmt.Printf("Directory: %s\n\n", cfg.Templates.Dir)

	ctx := context.Background()
	failures := 0
	for _, entry := range catalog.List(ctx) {
		if !entry.Available {
			fmt.Printf("%-5s %-28s FAIL: file not found\n", entry.Tracker, entry.Filename)
			failures++
			continue
		}
		if !*deep {
			fmt.Printf("%-5s %-28s OK\n", entry.Tracker, entry.Filename)
			continue
		}

		ref, err := catalog.Resolve(ctx, entry.Tracker)
		if err != nil {
			fmt.Printf("%-5s %-28s FAIL: %v\n", entry.Tracker, entry.Filename, err)
			failures++
			continue
		}
		sheet, err := excel.InspectTemplate(ref.Path)
		if err != nil {
			fmt.Printf("%-5s %-28s FAIL: %v\n", entry.Tracker, entry.Filename, err)
			failures++
			continue
		}
		fmt.Printf("%-5s %-28s OK (sheet %q)\n", entry.Tracker, entry.Filename, sheet)
	}

	if failures > 0 {
		fmt.Printf("\n%d template(s) failed preflight\n", failures)
		os.Exit(1)
	}
	fmt.Println("\nAll templates ready")
}
