package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/loomgen/loom/internal/figma"
	"github.com/loomgen/loom/internal/ir"
	"github.com/loomgen/loom/internal/normalize"
)

// loadDocument obtains the raw document either from a local snapshot
// file or from the API, then normalizes it.
func loadDocument(ctx context.Context, key, snapshot string, formatter *OutputFormatter) (*ir.Document, error) {
	raw, err := loadRawFile(ctx, key, snapshot, formatter)
	if err != nil {
		return nil, err
	}
	return normalize.Document(raw), nil
}

// loadRawFile returns the parsed REST document without normalizing.
func loadRawFile(ctx context.Context, key, snapshot string, formatter *OutputFormatter) (*figma.File, error) {
	if snapshot != "" {
		formatter.VerboseLog("reading snapshot %s", snapshot)
		data, err := os.ReadFile(snapshot)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "reading snapshot", err)
		}
		var f figma.File
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("decoding snapshot %s", snapshot), err)
		}
		return &f, nil
	}

	cfg, err := figma.LoadClientConfig()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading API configuration", err)
	}
	formatter.VerboseLog("fetching document %s from %s", key, cfg.BaseURL)

	f, err := figma.NewClient(*cfg).GetFile(ctx, key)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("fetching document %s", key), err)
	}
	return f, nil
}

// selectPages filters the document's pages per the manifest; an empty
// selection keeps everything.
func selectPages(doc *ir.Document, names []string) {
	if len(names) == 0 {
		return
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var pages []ir.Page
	for _, p := range doc.Pages {
		if wanted[p.Name] {
			pages = append(pages, p)
		}
	}
	doc.Pages = pages
}

// selectComponents drops top-level frames not named in the manifest; an
// empty selection keeps everything.
func selectComponents(doc *ir.Document, names []string) {
	if len(names) == 0 {
		return
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	for i := range doc.Pages {
		var nodes []ir.Node
		for _, n := range doc.Pages[i].Nodes {
			if _, ok := n.(*ir.Frame); !ok || wanted[n.Base().Name] {
				nodes = append(nodes, n)
			}
		}
		doc.Pages[i].Nodes = nodes
	}
}
