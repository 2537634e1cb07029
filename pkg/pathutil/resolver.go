// Package pathutil provides centralized path management for ledger inputs and dashboard outputs.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputExt is the extension used when the output path is derived from the input path.
const DefaultOutputExt = ".html"

// PathResolver manages the paths of one dashboard run.
type PathResolver struct {
	inputPath   string
	outputPath  string
	mappingPath string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// InputPath is the ledger file (e.g., ./data/ledger.csv)
	InputPath string
	// OutputPath is the dashboard artifact; derived from InputPath when empty
	OutputPath string
	// MappingPath is the optional label mapping file
	MappingPath string
}

// New creates a new PathResolver with the given configuration.
// If OutputPath is empty, it defaults to InputPath with its extension replaced by .html
func New(config Config) *PathResolver {
	outputPath := config.OutputPath
	if outputPath == "" && config.InputPath != "" {
		ext := filepath.Ext(config.InputPath)
		outputPath = strings.TrimSuffix(config.InputPath, ext) + DefaultOutputExt
	}

	return &PathResolver{
		inputPath:   config.InputPath,
		outputPath:  outputPath,
		mappingPath: config.MappingPath,
	}
}

// GetInputPath returns the ledger file path.
func (p *PathResolver) GetInputPath() string {
	return p.inputPath
}

// GetOutputPath returns the dashboard artifact path.
func (p *PathResolver) GetOutputPath() string {
	return p.outputPath
}

// GetMappingPath returns the label mapping file path, empty when none is configured.
func (p *PathResolver) GetMappingPath() string {
	return p.mappingPath
}

// HasMapping reports whether a mapping file is configured.
func (p *PathResolver) HasMapping() bool {
	return p.mappingPath != ""
}

// CheckOutputDir verifies that the parent directory of the output path exists.
// Directories are never created: a missing directory is reported as an error.
func (p *PathResolver) CheckOutputDir() error {
	if p.outputPath == "" {
		return fmt.Errorf("output path is empty")
	}
	dir := filepath.Dir(p.outputPath)
	if !p.IsDir(dir) {
		return fmt.Errorf("output directory %s does not exist", dir)
	}
	if p.IsDir(p.outputPath) {
		return fmt.Errorf("output path %s is a directory", p.outputPath)
	}
	return nil
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// IsDir checks if a path is a directory.
func (p *PathResolver) IsDir(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}
