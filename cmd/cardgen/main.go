// Command cardgen renders listing cards from YAML files without running the
// API server.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/yourorg/listing-studio/internal/card"
	"github.com/yourorg/listing-studio/internal/store"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cardgen",
		Short:        "Render real-estate listing cards",
		SilenceUsage: true,
	}
	root.AddCommand(
		newVersionCmd(),
		newListCmd(),
		newRenderCmd(),
		newAllCmd(),
		newSeedCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cardgen %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the standard templates in gallery order",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tLABEL")
			for _, t := range card.Templates {
				fmt.Fprintf(tw, "%s\t%s\n", t.ID, t.Label)
			}
			return tw.Flush()
		},
	}
}

// inputs are the YAML files shared by render and all.
type inputs struct {
	property string
	brand    string
	config   string
	format   string
}

func (in *inputs) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.property, "property", "p", "", "property YAML file (default: sample listing)")
	cmd.Flags().StringVarP(&in.brand, "brand", "b", "", "brand YAML file (default: built-in brand)")
	cmd.Flags().StringVarP(&in.config, "config", "c", "", "template config YAML file")
	cmd.Flags().StringVarP(&in.format, "format", "f", "html", "output format: html or json")
}

func (in *inputs) load() (card.PropertyDetails, *card.BrandSettings, *card.TemplateConfig, error) {
	data := card.SampleProperty()
	if in.property != "" {
		data = card.PropertyDetails{}
		if err := readYAML(in.property, &data); err != nil {
			return data, nil, nil, err
		}
		if err := store.Validate(data); err != nil {
			return data, nil, nil, fmt.Errorf("%s: %w", in.property, err)
		}
	}

	brand := store.DefaultBrand()
	if in.brand != "" {
		if err := readYAML(in.brand, &brand); err != nil {
			return data, nil, nil, err
		}
		if err := store.Validate(brand); err != nil {
			return data, nil, nil, fmt.Errorf("%s: %w", in.brand, err)
		}
	}

	var cfg *card.TemplateConfig
	if in.config != "" {
		cfg = &card.TemplateConfig{}
		if err := readYAML(in.config, cfg); err != nil {
			return data, nil, nil, err
		}
		if err := store.Validate(cfg); err != nil {
			return data, nil, nil, fmt.Errorf("%s: %w", in.config, err)
		}
	}
	return data, &brand, cfg, nil
}

func readYAML(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && err != io.EOF {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func encode(n *card.Node, format string) ([]byte, error) {
	switch format {
	case "html":
		var buf bytes.Buffer
		if err := card.WriteHTML(&buf, n); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "json":
		return json.MarshalIndent(n, "", "  ")
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func newRenderCmd() *cobra.Command {
	var (
		in       inputs
		template string
		out      string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one template",
		Long: `Render one template for a property.

Unknown template ids render the placeholder card.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, brand, cfg, err := in.load()
			if err != nil {
				return err
			}
			body, err := encode(card.Render(card.TemplateID(template), data, brand, cfg), in.format)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}
			return os.WriteFile(out, body, 0o644)
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVarP(&template, "template", "t", string(card.JustListed), "template id")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func newAllCmd() *cobra.Command {
	var (
		in  inputs
		dir string
	)
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Render every standard template into a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, brand, cfg, err := in.load()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			start := time.Now()
			g := new(errgroup.Group)
			g.SetLimit(runtime.NumCPU())
			for _, t := range card.Templates {
				g.Go(func() error {
					body, err := encode(card.Render(t.ID, data, brand, cfg), in.format)
					if err != nil {
						return fmt.Errorf("%s: %w", t.ID, err)
					}
					return os.WriteFile(filepath.Join(dir, string(t.ID)+"."+in.format), body, 0o644)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "rendered %d templates to %s in %s\n", len(card.Templates), dir, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVarP(&dir, "dir", "d", "cards", "output directory")
	return cmd
}

func newSeedCmd() *cobra.Command {
	seed := &cobra.Command{
		Use:   "seed",
		Short: "Work with seed files",
	}
	seed.AddCommand(&cobra.Command{
		Use:   "validate [file]",
		Short: "Check a seed file loads cleanly (default: built-in seed)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.New()
			var err error
			if len(args) == 1 {
				err = st.LoadSeedFile(args[0], time.Now())
			} else {
				err = st.LoadDefaultSeed(time.Now())
			}
			if err != nil {
				return err
			}
			stats := st.Posts.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d listings, %d posts, %d custom templates\n",
				st.Listings.Len(), stats.Total, len(st.Templates.List()))
			return nil
		},
	})
	return seed
}
