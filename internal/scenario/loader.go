package scenario

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/mfgkit/proligentgo/internal/ctxlog"
	"github.com/mfgkit/proligentgo/internal/fsutil"
	"github.com/mfgkit/proligentgo/internal/model"
)

// Discover resolves a scenario path into the list of .hcl files it names: a
// file is returned as-is, a directory is searched recursively. The list is
// sorted so a directory of scenarios generates in a stable order.
func Discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl scenario files found under %s", path)
	}
	sort.Strings(files)
	return files, nil
}

// LoadFile parses a single scenario file and translates it into a warehouse
// tree, using env for every construction-time default.
func LoadFile(ctx context.Context, path string, env *model.Env) (*model.DataWareHouse, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing scenario file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse scenario %s: %w", path, diags)
	}

	var content fileContent
	if diags := gohcl.DecodeBody(file.Body, nil, &content); diags.HasErrors() {
		return nil, fmt.Errorf("decode scenario %s: %w", path, diags)
	}
	if content.Warehouse == nil {
		return nil, fmt.Errorf("scenario %s has no warehouse block", path)
	}

	warehouse, err := translateWarehouse(content.Warehouse, env)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	logger.Debug("Scenario translated into warehouse tree.", "path", path)
	return warehouse, nil
}
