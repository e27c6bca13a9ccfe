package iconpack

import (
	"context"
	"os"
	"path/filepath"

	"github.com/viewy-dev/viewy/internal/errors"
	"github.com/viewy-dev/viewy/internal/logger"
	"github.com/viewy-dev/viewy/pkg/config"
)

// Options configures a build.
type Options struct {
	// Root is the project root. Empty means the nearest ancestor of the
	// working directory holding a configuration file.
	Root string

	// Output is the generated file. Defaults to icons/icons_gen.go under
	// the root.
	Output string

	// Package is the package clause of the generated file. Defaults to the
	// name of the output directory.
	Package string

	// CacheDir receives cloned packs. Defaults to the user cache directory.
	CacheDir string

	// Clone overrides git cloning.
	Clone CloneFunc

	// Log receives progress and skipped packs. Nil means logger.Default().
	Log *logger.Logger
}

// Result describes a finished build.
type Result struct {
	// Output is the file that was written.
	Output string

	// Packs are the generated packs, in name order.
	Packs []GeneratedPack

	// Skipped names the packs that could not be resolved.
	Skipped []string

	// Source is the generated Go file.
	Source []byte
}

func (o *Options) defaults() error {
	if o.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.New("E105").Wrap(err)
		}
		o.Root, _ = config.FindRoot(wd)
	}
	if o.Output == "" {
		o.Output = filepath.Join(o.Root, "icons", "icons_gen.go")
	}
	if o.Package == "" {
		o.Package = packageName(filepath.Base(filepath.Dir(o.Output)))
	}
	if o.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		o.CacheDir = filepath.Join(base, "viewy", "icons")
	}
	if o.Log == nil {
		o.Log = logger.Default()
	}
	return nil
}

// Build loads the packs of the project, generates their Go file and writes
// it. Packs that cannot be resolved are skipped with a warning. Name
// collisions fail the build.
func Build(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.defaults(); err != nil {
		return nil, err
	}

	packs, err := LoadPacks(opts.Root)
	if err != nil {
		return nil, err
	}

	resolver := &Resolver{Root: opts.Root, CacheDir: opts.CacheDir, Clone: opts.Clone}
	result := &Result{Output: opts.Output}

	for _, p := range packs {
		log := opts.Log.WithField("pack", p.Name)

		dir, err := resolver.Resolve(ctx, p)
		if err != nil {
			log.Warn(err, "skipping icon pack")
			result.Skipped = append(result.Skipped, p.Name)
			continue
		}

		gp, err := compilePack(p, dir)
		if err != nil {
			log.Warn(err, "skipping icon pack")
			result.Skipped = append(result.Skipped, p.Name)
			continue
		}
		log.WithFields(map[string]any{"icons": len(gp.Icons), "dir": dir}).Debug("compiled icon pack")
		result.Packs = append(result.Packs, gp)
	}

	if err := checkCollisions(result.Packs); err != nil {
		return nil, err
	}

	src, err := Generate(opts.Package, result.Packs)
	if err != nil {
		return nil, err
	}
	result.Source = src

	if err := os.MkdirAll(filepath.Dir(opts.Output), 0755); err != nil {
		return nil, errors.New("E207").WithField("path", opts.Output).Wrap(err)
	}
	if err := os.WriteFile(opts.Output, src, 0644); err != nil {
		return nil, errors.New("E207").WithField("path", opts.Output).Wrap(err)
	}

	opts.Log.WithFields(map[string]any{
		"packs":   len(result.Packs),
		"skipped": len(result.Skipped),
		"output":  opts.Output,
	}).Info("generated icon packs")
	return result, nil
}

// compilePack scans dir and names every icon of p.
func compilePack(p Pack, dir string) (GeneratedPack, error) {
	typeName := identifier(Pascal(p.Name))
	if typeName == "" {
		return GeneratedPack{}, errors.New("E206").WithField("pack", p.Name)
	}

	names, err := IconNames(dir)
	if err != nil {
		return GeneratedPack{}, err
	}

	gp := GeneratedPack{Name: p.Name, Type: typeName, Stroked: p.IsStroked()}
	for _, name := range names {
		markup, err := readIcon(dir, name)
		if err != nil {
			return GeneratedPack{}, err
		}
		constName := identifier(p.Prefix + Pascal(name))
		if constName == "" {
			return GeneratedPack{}, errors.New("E206").
				WithField("pack", p.Name).
				WithField("icon", name).
				WithDetail("The icon name does not produce a valid Go identifier.")
		}
		gp.Icons = append(gp.Icons, Icon{
			File:     name,
			Const:    constName,
			SymbolID: SymbolID(p.Name, name),
			Path:     markup,
		})
	}
	return gp, nil
}

// checkCollisions rejects duplicate symbol ids and Go identifiers across
// all packs of a run.
func checkCollisions(packs []GeneratedPack) error {
	idents := map[string]string{
		"SymbolByID": "generated lookup",
	}
	symbols := make(map[string]string)

	claim := func(name, owner string) error {
		if prev, ok := idents[name]; ok {
			return errors.New("E205").
				WithDetail("The Go identifier "+name+" is declared by both "+prev+" and "+owner+".").
				WithSuggestion("Set a prefix on one of the packs").
				WithField("identifier", name)
		}
		idents[name] = owner
		return nil
	}

	for _, p := range packs {
		if err := claim(p.Type, "pack "+p.Name); err != nil {
			return err
		}
		if err := claim("All"+p.Type, "pack "+p.Name); err != nil {
			return err
		}
		for _, icon := range p.Icons {
			owner := p.Name + "/" + icon.File + ".svg"
			if err := claim(icon.Const, owner); err != nil {
				return err
			}
			if prev, ok := symbols[icon.SymbolID]; ok {
				return errors.New("E205").
					WithDetail(prev+" and "+owner+" share the symbol id "+icon.SymbolID+".").
					WithField("id", icon.SymbolID)
			}
			symbols[icon.SymbolID] = owner
		}
	}
	return nil
}
