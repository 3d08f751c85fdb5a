package main

import (
	"fmt"
	"os"

	"troywu.dev/internal/config"
	"troywu.dev/internal/content"
	"troywu.dev/internal/export"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("       generate <output-dir> <content.yaml>  (use a content file instead of the built-in one)")
		os.Exit(1)
	}

	outputDir := os.Args[1]

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) > 2 {
		cfg.ContentPath = os.Args[2]
	}

	source := cfg.ContentPath
	if source == "" {
		source = "built-in content"
	}
	fmt.Printf("Loading portfolio from %s...\n", source)

	p, err := content.Load(cfg.ContentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  %d projects, %d experience entries\n", len(p.Projects), len(p.Experience))

	res, err := export.New(outputDir, cfg.StaticDir, cfg.View.Lookahead).Export(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	for _, f := range res.Files {
		fmt.Printf("  Created %s\n", f)
	}
	fmt.Printf("  Copied %d static files from %s\n", res.Copied, cfg.StaticDir)

	fmt.Println("Done!")
}
