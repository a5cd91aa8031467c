package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/samfallible/bad-pixels/internal/imaging"
	"github.com/samfallible/bad-pixels/internal/islands"
	"github.com/samfallible/bad-pixels/internal/pipeline"
	"github.com/samfallible/bad-pixels/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version before flag parsing so it works without an input path
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("bad-pixels %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	threshold := flag.Uint("threshold", uint(islands.DefaultThreshold),
		"intensity cutoff; pixels strictly below it count as bad (0-255)")
	colorHex := flag.String("color", render.DefaultHighlightColor,
		"hex highlight color for island interiors")
	labels := flag.Bool("labels", false,
		"draw island IDs onto the output image")
	snippets := flag.String("snippets", "",
		"also write per-island close-up PNGs into this directory")
	diagonals := flag.Bool("diagonals", false,
		"treat diagonal neighbors as connected (8-connectivity)")
	force := flag.Bool("force", false,
		"overwrite existing output files without prompting")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: bad-pixels [options] <image>\n\n"+
				"Finds islands of bad (near-black) pixels in an image and writes\n"+
				"<name>_islands.png and <name>_islands.xlsx into the current directory.\n"+
				"Supported input formats: PNG, JPEG, GIF, BMP, TIFF, WebP.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(),
			"\nEnvironment variables:\n  BAD_PIXELS_LOG_LEVEL=debug    Enable debug logging\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	if *threshold > 255 {
		log.Fatalf("threshold %d out of range (0-255)", *threshold)
	}

	// Logging goes to stderr; stdout is for the result summary
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	debug := os.Getenv("BAD_PIXELS_LOG_LEVEL") == "debug"

	if debug {
		if info, err := imaging.LoadImageInfo(inputPath); err == nil {
			log.Printf("input %s: %dx%d %s, %d bytes",
				inputPath, info.Width, info.Height, info.Format, info.FileSizeBytes)
		}
	}

	imagePath, reportPath := outputPaths(inputPath)
	if !*force && !confirmOverwrite(imagePath, reportPath) {
		fmt.Println("Operation cancelled.")
		return
	}

	opts := pipeline.DefaultOptions()
	opts.Threshold = uint8(*threshold)
	opts.HighlightColor = *colorHex
	opts.Labels = *labels
	if *diagonals {
		opts.Connectivity = islands.Conn8
	}

	analyzer := pipeline.New(opts)
	if err := analyzer.Analyze(inputPath); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if err := analyzer.WriteImage(imagePath); err != nil {
		log.Fatalf("Failed to write image: %v", err)
	}
	if err := analyzer.WriteReport(reportPath); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	if *snippets != "" {
		if err := analyzer.WriteSnippets(*snippets); err != nil {
			log.Fatalf("Failed to write snippets: %v", err)
		}
	}

	fmt.Printf("Found %d islands :)\n", analyzer.Catalog().Len())
	fmt.Printf("Output image saved to %s\n", imagePath)
	fmt.Printf("Output spreadsheet saved to %s\n", reportPath)
	if *snippets != "" {
		fmt.Printf("Island snippets saved to %s\n", *snippets)
	}
}

// outputPaths derives the sibling output names from the input file name,
// placed in the current directory.
func outputPaths(inputPath string) (imagePath, reportPath string) {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return base + "_islands.png", base + "_islands.xlsx"
}

// confirmOverwrite prompts before clobbering existing outputs. Returns
// true when it is safe to proceed.
func confirmOverwrite(paths ...string) bool {
	reader := bufio.NewReader(os.Stdin)
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		fmt.Printf("%s already exists. Do you want to overwrite it? (y/n): ", path)
		answer, err := reader.ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(answer)) != "y" {
			return false
		}
	}
	return true
}
