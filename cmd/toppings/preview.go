package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/toppings/internal/catalog"
	"github.com/alexisbeaulieu97/toppings/internal/preview"
	"github.com/alexisbeaulieu97/toppings/internal/selection"
)

type previewOptions struct {
	size     string
	toppings []string
	output   string
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a preview once without the interactive builder",
		Example: `  toppings preview --size large --topping tomato
  toppings preview --variant cookie --size small --topping candy --topping zigzag --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.size, "size", "", "Size to preview (defaults to the middle size option)")
	cmd.Flags().StringArrayVar(&opts.toppings, "topping", nil, "Topping to add; repeat for several")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "Output format: text, yaml or json")

	return cmd
}

func runPreview(cmd *cobra.Command, rootFlags *rootFlags, opts *previewOptions) error {
	format, err := validateOutputFormat(opts.output)
	if err != nil {
		return newCommandError("preview", "reading --output", err, "Use --output text, yaml or json.")
	}

	cfg, err := loadConfig(cmd, rootFlags)
	if err != nil {
		return err
	}

	appCtx, err := newAppContext(cmd, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	variant := appCtx.Variant
	log := appCtx.Logger

	sizes := cfg.Sizes
	if len(sizes) == 0 {
		sizes = variant.SizeNames()
	}
	size := opts.size
	if size == "" {
		size = catalog.MiddleOption(sizes)
	}
	if _, ok := variant.LookupSize(size); !ok {
		log.Warn("size is not in the catalog, rendering without a base", "size", size)
	}

	store := selection.NewStore(size, selection.WithToppings(opts.toppings...))
	for _, name := range store.Toppings() {
		if _, ok := variant.LookupTopping(name); !ok {
			log.Warn("topping is not in the catalog, it will not be drawn", "topping", name)
		}
	}

	comp, err := composeFromContext(selection.NewContext(cmd.Context(), store), variant)
	if err != nil {
		return newCommandError("preview", "composing preview", err, "This is a bug; please report it.")
	}
	log.Debug("composed preview", "layers", len(comp.Layers), "instances", comp.InstanceCount())

	switch format {
	case outputYAML:
		return renderPreviewYAML(cmd, comp)
	case outputJSON:
		return renderPreviewJSON(cmd, comp)
	default:
		return renderPreviewText(cmd, comp)
	}
}

// composeFromContext renders the store published in ctx, the way a builder
// child finds the selection it belongs to.
func composeFromContext(ctx context.Context, variant catalog.Variant) (preview.Composition, error) {
	store, err := selection.FromContext(ctx, "preview")
	if err != nil {
		return preview.Composition{}, err
	}
	return preview.Compose(variant, store.Snapshot()), nil
}

func renderPreviewText(cmd *cobra.Command, comp preview.Composition) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, comp.Summary)

	canvas := preview.Rasterize(comp)
	if cols, rows := canvas.Size(); cols == 0 || rows == 0 {
		return nil
	}
	if supportsColor(out) {
		fmt.Fprintln(out, canvas.View())
		return nil
	}
	fmt.Fprintln(out, canvas.Plain())
	return nil
}

func renderPreviewYAML(cmd *cobra.Command, comp preview.Composition) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(comp); err != nil {
		return newCommandError("preview", "encoding YAML", err, "Try --output json instead.")
	}
	return encoder.Close()
}

func renderPreviewJSON(cmd *cobra.Command, comp preview.Composition) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(comp)
}

// supportsColor reports whether writer is the terminal. Buffers and pipes get
// plain glyphs.
func supportsColor(writer any) bool {
	if file, ok := writer.(*os.File); ok && file == os.Stdout {
		return isTerminal()
	}
	return false
}
