// Command ggfx applies ggfx filters and chains to an image file.
//
//	ggfx -in photo.png -out edges.png -filter SobelEdges -set strength=2
//	ggfx -in photo.png -out out.png -catalog filters.yaml -def Moody
//	ggfx -in photo.png -out out.png -chain Vibrance,Clarity,Vignette
//	ggfx -in photo.png -out out.png -filter MultiplyBlend -blends papers -blend-with linen
//	ggfx -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/asset"
	"github.com/gogpu/ggfx/catalog"
	"github.com/gogpu/ggfx/filter"
	"github.com/gogpu/ggfx/param"
	"github.com/gogpu/ggfx/registry"
)

// settingsFlag collects repeated -set key=value flags.
type settingsFlag []string

func (s *settingsFlag) String() string     { return strings.Join(*s, " ") }
func (s *settingsFlag) Set(v string) error { *s = append(*s, v); return nil }

func main() {
	var (
		in       = flag.String("in", "", "input image")
		out      = flag.String("out", "out.png", "output PNG file")
		name     = flag.String("filter", "", "registered filter name")
		chain    = flag.String("chain", "", "comma-separated filter names applied in order")
		catPath  = flag.String("catalog", "", "filter catalog (yaml, json or toml)")
		def      = flag.String("def", "", "catalog entry to apply")
		lookups  = flag.String("lookups", "", "directory of lookup table images")
		blendImg = flag.String("blend", "", "second image for blend filters")
		blends   = flag.String("blends", "", "directory of default blend images")
		blendSel = flag.String("blend-with", "", "default blend image from -blends, used without -blend")
		fill     = flag.String("fill", "#808080", "solid default blend color when no blend image is selected")
		abort    = flag.Bool("abort", false, "stop a chain at the first failing stage")
		list     = flag.Bool("list", false, "list registered filters and exit")
		dump     = flag.String("dump", "", "write the default catalog to this file and exit")
		verbose  = flag.Bool("v", false, "verbose logging")
		sets     settingsFlag
	)
	flag.Var(&sets, "set", "parameter key=value (repeatable; colors and vectors as comma lists)")
	flag.Parse()

	if *verbose {
		ggfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	reg := registry.Default()

	switch {
	case *list:
		printFilters(reg)
		return
	case *dump != "":
		c, err := catalog.FromRegistry(reg)
		if err != nil {
			log.Fatalf("Failed to build catalog: %v", err)
		}
		if err := c.Save(*dump); err != nil {
			log.Fatalf("Failed to save catalog: %v", err)
		}
		log.Printf("Catalog with %d filters written to %s\n", len(c.Filters), *dump)
		return
	}

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := readImage(*in)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	var opts []filter.Option
	lookupDir := *lookups
	var cat *catalog.Catalog
	if *catPath != "" {
		if cat, err = catalog.Load(*catPath); err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		if lookupDir == "" {
			lookupDir = cat.Lookups
		}
	}
	if lookupDir != "" {
		opts = append(opts, filter.WithLookupStore(asset.NewCachedStore(asset.NewFSStore(os.DirFS(lookupDir), "."), 0)))
	}

	library, err := blendLibrary(*blends, *blendSel, *fill)
	if err != nil {
		log.Fatalf("Failed to select blend image: %v", err)
	}
	opts = append(opts, filter.WithBlendSource(library))

	applier, err := buildApplier(reg, cat, *name, *chain, *def, opts)
	if err != nil {
		log.Fatalf("Failed to build filter: %v", err)
	}
	if c, ok := applier.(*filter.Chain); ok && *abort {
		c.SetPolicy(filter.AbortOnError)
	}
	if d, ok := applier.(*filter.Descriptor); ok {
		if err := applySettings(d, sets); err != nil {
			log.Fatalf("Invalid -set: %v", err)
		}
	} else if len(sets) > 0 {
		log.Printf("Ignoring -set for chain %s\n", applier.Key())
	}

	var second *ggfx.Pixmap
	if *blendImg != "" {
		if second, err = readImage(*blendImg); err != nil {
			log.Fatalf("Failed to read blend image: %v", err)
		}
	}

	start := time.Now()
	result, err := applier.Apply(src, second)
	if err != nil {
		log.Fatalf("Failed to apply %s: %v", applier.Key(), err)
	}
	elapsed := time.Since(start)

	if err := result.SavePNG(*out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	size := int64(0)
	if fi, err := os.Stat(*out); err == nil {
		size = fi.Size()
	}
	log.Printf("%s: %s pixels in %v, saved %s (%s)\n", applier.Title(),
		humanize.Comma(int64(src.Size().Pixels())), elapsed.Round(time.Millisecond),
		*out, humanize.Bytes(uint64(size)))
}

func readImage(path string) (*ggfx.Pixmap, error) {
	store := asset.NewFSStore(os.DirFS(filepath.Dir(path)), ".")
	return store.Image(filepath.Base(path))
}

func buildApplier(reg *registry.Registry, cat *catalog.Catalog, name, chain, def string, opts []filter.Option) (filter.Applier, error) {
	switch {
	case def != "":
		if cat == nil {
			return nil, errors.New("-def requires -catalog")
		}
		return cat.Resolve(def, reg, opts...)
	case chain != "":
		c, err := filter.NewChain("chain")
		if err != nil {
			return nil, err
		}
		for _, n := range strings.Split(chain, ",") {
			d, err := reg.Descriptor(strings.TrimSpace(n), opts...)
			if err != nil {
				return nil, err
			}
			if err := c.Append(d); err != nil {
				return nil, err
			}
		}
		c.SetTitle(chain)
		return c, nil
	}
	if name == "" {
		name = filter.NoFilterKey
	}
	d, err := reg.Descriptor(name, opts...)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// applySettings parses key=value pairs by the declared parameter type.
func applySettings(d *filter.Descriptor, sets []string) error {
	for _, kv := range sets {
		key, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("%q is not key=value", kv)
		}
		s, ok := d.Settings(key)
		if !ok {
			return fmt.Errorf("%s has no parameter %q (have %s)", d.Key(), key, strings.Join(d.ParameterKeys(), ", "))
		}
		nums, err := parseFloats(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		var v param.Value
		switch s.Type {
		case param.TypeFloat:
			v = param.Float(nums[0])
		case param.TypeColor:
			c := ggfx.RGBA{A: 1}
			for i, n := range nums {
				switch i {
				case 0:
					c.R = n
				case 1:
					c.G = n
				case 2:
					c.B = n
				case 3:
					c.A = n
				}
			}
			v = param.Color(c)
		case param.TypePosition:
			nums = append(nums, 0)
			v = param.Position(ggfx.Pt(nums[0], nums[1]))
		case param.TypeVector:
			var vec param.Vec4
			copy(vec[:], nums)
			v = param.Vector(vec)
		default:
			return fmt.Errorf("%s: cannot set %s parameter from the command line", key, s.Type)
		}
		if err := d.SetValue(key, v); err != nil {
			return err
		}
	}
	return nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func printFilters(reg *registry.Registry) {
	for _, cat := range []registry.Category{registry.CategoryMultiPixel, registry.CategoryColor} {
		names := reg.NamesByCategory(cat)
		fmt.Printf("%s (%d)\n", cat, len(names))
		for _, n := range names {
			def, err := reg.Definition(n)
			if err != nil {
				continue
			}
			keys := make([]string, len(def.Parameters))
			for i, p := range def.Parameters {
				keys[i] = p.Key
			}
			fmt.Printf("  %-18s %-7s %s\n", n, def.Type, strings.Join(keys, " "))
		}
	}
}

// blendLibrary returns the default blend source: the image selected from
// dir, or a solid fill when nothing is selected.
func blendLibrary(dir, selected, fill string) (*asset.BlendLibrary, error) {
	var store asset.Store
	if dir != "" {
		store = asset.NewCachedStore(asset.NewFSStore(os.DirFS(dir), "."), 0)
	} else if selected != "" {
		return nil, errors.New("-blend-with needs -blends")
	}
	lib := asset.NewBlendLibrary(store, ggfx.Hex(fill))
	if err := lib.Select(selected); err != nil {
		return nil, err
	}
	return lib, nil
}
