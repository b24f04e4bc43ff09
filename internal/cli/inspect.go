package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loomgen/loom/internal/config"
	"github.com/loomgen/loom/internal/ir"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	Manifest string
	Snapshot string
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump the normalized document tree",
		Long: `Normalize the manifest's document and print the resulting tree:
as an indented outline in text mode, as the full IR in JSON mode.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Manifest, "manifest", "m", "loom.yaml", "manifest path")
	cmd.Flags().StringVar(&opts.Snapshot, "snapshot", "", "read the document from a local snapshot instead of the API")

	return cmd
}

func runInspect(opts *InspectOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	m, err := config.Load(opts.Manifest)
	if err != nil {
		formatter.Error(ErrCodeManifestInvalid, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading manifest", err)
	}

	doc, err := loadDocument(cmd.Context(), m.Document, opts.Snapshot, formatter)
	if err != nil {
		formatter.Error(ErrCodeFetchFailed, err.Error(), nil)
		return err
	}
	selectPages(doc, m.Pages)

	if opts.Format == "json" {
		return formatter.Success(doc)
	}
	return formatter.Success(outline(doc))
}

// outline renders the normalized tree as an indented listing.
func outline(doc *ir.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "document %q\n", doc.Name)
	for _, page := range doc.Pages {
		fmt.Fprintf(&b, "  page %q\n", page.Name)
		for _, n := range page.Nodes {
			outlineNode(&b, n, 2)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func outlineNode(b *strings.Builder, n ir.Node, depth int) {
	base := n.Base()
	fmt.Fprintf(b, "%s%s %q (%g, %g, %g, %g)\n",
		strings.Repeat("  ", depth), kindOf(n), base.Name,
		base.Bounds.X, base.Bounds.Y, base.Bounds.Width, base.Bounds.Height)
	for _, child := range ir.ChildrenOf(n) {
		outlineNode(b, child, depth+1)
	}
}

func kindOf(n ir.Node) string {
	switch n.(type) {
	case *ir.Frame:
		return "frame"
	case *ir.Group:
		return "group"
	case *ir.Rectangle:
		return "rect"
	case *ir.Ellipse:
		return "ellipse"
	case *ir.Text:
		return "text"
	case *ir.Vector:
		return "vector"
	default:
		return "node"
	}
}
