package cli

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/loomgen/loom/internal/assets"
	"github.com/loomgen/loom/internal/config"
	"github.com/loomgen/loom/internal/figma"
	"github.com/loomgen/loom/internal/gen"
	"github.com/loomgen/loom/internal/render"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Manifest   string // manifest path
	Snapshot   string // local document snapshot instead of the API
	SkipImages bool   // skip the asset cache fill
}

// GenerateResult is the success payload of the generate command.
type GenerateResult struct {
	Components    int      `json:"components"`
	Files         []string `json:"files"`
	OutputDir     string   `json:"output_dir"`
	ImagesFetched int      `json:"images_fetched"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate component source from a design document",
		Long: `Fetch the manifest's document, normalize it, and write one generated
source file per selected component into the manifest's output directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Manifest, "manifest", "m", "loom.yaml", "manifest path")
	cmd.Flags().StringVar(&opts.Snapshot, "snapshot", "", "read the document from a local snapshot instead of the API")
	cmd.Flags().BoolVar(&opts.SkipImages, "skip-images", false, "do not download referenced images")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	ctx := cmd.Context()

	m, err := config.Load(opts.Manifest)
	if err != nil {
		formatter.Error(ErrCodeManifestInvalid, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading manifest", err)
	}

	doc, err := loadDocument(ctx, m.Document, opts.Snapshot, formatter)
	if err != nil {
		formatter.Error(ErrCodeFetchFailed, err.Error(), nil)
		return err
	}
	selectPages(doc, m.Pages)
	selectComponents(doc, m.Components)

	units := gen.Generate(doc)
	if len(units) == 0 {
		msg := fmt.Sprintf("document %s has no generatable components after selection", m.Document)
		formatter.Error(ErrCodeEmptyDocument, msg, nil)
		return NewExitError(ExitFailure, msg)
	}
	formatter.VerboseLog("generating %d component unit(s)", len(units))

	if err := render.WriteUnits(m.OutputDir, units); err != nil {
		formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "writing output", err)
	}

	result := GenerateResult{
		Components: len(units),
		OutputDir:  m.OutputDir,
	}
	for _, u := range units {
		result.Files = append(result.Files, render.FileName(u))
	}

	if refs := collectRefs(units); len(refs) > 0 {
		fetched, err := fillAssetCache(cmd, opts, m, refs, formatter)
		if err != nil {
			formatter.Error(ErrCodeFetchFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "downloading images", err)
		}
		result.ImagesFetched = fetched
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("generated %d component(s) to %s", result.Components, m.OutputDir))
}

// collectRefs merges every unit's image refs, deduplicated.
func collectRefs(units []*gen.Unit) []string {
	var refs []string
	seen := make(map[string]bool)
	for _, u := range units {
		for _, ref := range u.Images {
			if !seen[ref] {
				seen[ref] = true
				refs = append(refs, ref)
			}
		}
	}
	return refs
}

// fillAssetCache downloads the referenced images into the local cache.
// Snapshot runs stay offline.
func fillAssetCache(cmd *cobra.Command, opts *GenerateOptions, m *config.Manifest, refs []string, formatter *OutputFormatter) (int, error) {
	if opts.SkipImages {
		formatter.VerboseLog("skipping %d image ref(s)", len(refs))
		return 0, nil
	}
	if opts.Snapshot != "" {
		formatter.VerboseLog("snapshot run: %d image ref(s) left to a later online run", len(refs))
		return 0, nil
	}

	cfg, err := figma.LoadClientConfig()
	if err != nil {
		return 0, err
	}

	cachePath := m.Target.ImageDir
	if cachePath == "" {
		cachePath = m.OutputDir
	}
	cache, err := assets.Open(filepath.Join(cachePath, "assets.db"))
	if err != nil {
		return 0, err
	}
	defer cache.Close()

	f := &assets.Fetcher{Cache: cache, Client: figma.NewClient(*cfg)}
	if opts.Verbose {
		f.Log = log.New(cmd.ErrOrStderr(), "", 0)
	}
	return f.Ensure(cmd.Context(), m.Document, refs)
}
