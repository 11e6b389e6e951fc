package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toppings/internal/catalog"
)

type catalogOptions struct {
	jsonOutput bool
}

func newCatalogCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the sizes and toppings of a variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runCatalog(cmd *cobra.Command, rootFlags *rootFlags, opts *catalogOptions) error {
	name := rootFlags.variant
	if name == "" {
		cfg, err := loadConfig(cmd, rootFlags)
		if err != nil {
			return err
		}
		name = cfg.Variant
	}

	variant, err := catalog.Lookup(name)
	if err != nil {
		return newCommandError("catalog", "selecting variant", err, "Use --variant "+strings.Join(catalog.VariantNames(), " or --variant ")+".")
	}

	if opts.jsonOutput {
		return renderCatalogJSON(cmd, variant)
	}
	return renderCatalogTable(cmd, variant)
}

func renderCatalogTable(cmd *cobra.Command, variant catalog.Variant) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (base %s)\n\n", variant.Label, variant.BaseImage)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "SIZE\tWIDTH\tMARGIN LEFT")
	for _, s := range variant.Sizes {
		fmt.Fprintf(writer, "%s\t%d\t%d\n", s.Name, s.Width, s.MarginLeft)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)

	writer = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "TOPPING\tIMAGE\tWIDTH\tPLACEMENTS")
	for _, t := range variant.Toppings {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%d\n", t.Name, t.Image, t.Style.Width, len(t.Placements))
	}
	return writer.Flush()
}

type catalogJSONPayload struct {
	Variant   string            `json:"variant"`
	Label     string            `json:"label"`
	BaseImage string            `json:"base_image"`
	Sizes     []catalog.Size    `json:"sizes"`
	Toppings  []catalog.Topping `json:"toppings"`
}

func renderCatalogJSON(cmd *cobra.Command, variant catalog.Variant) error {
	payload := catalogJSONPayload{
		Variant:   variant.Name,
		Label:     variant.Label,
		BaseImage: variant.BaseImage,
		Sizes:     variant.Sizes,
		Toppings:  variant.Toppings,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
