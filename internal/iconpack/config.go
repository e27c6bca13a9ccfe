package iconpack

import (
	"path/filepath"
	"sort"

	"github.com/viewy-dev/viewy/pkg/config"
)

// DefaultBranch is cloned when a git pack names no branch.
const DefaultBranch = "main"

// Pack is one [icon-packs.<name>] entry.
type Pack struct {
	// Name is the table key.
	Name string `toml:"-"`

	// Git is the repository URL. Empty for local packs.
	Git string `toml:"git"`

	// Path is the icon directory, inside the repository for git packs or
	// relative to the project root for local ones.
	Path string `toml:"path"`

	// Branch is the branch to clone.
	Branch string `toml:"branch"`

	// Prefix starts every constant of the pack.
	Prefix string `toml:"prefix"`

	// Stroked selects outline defaults. Unset means true.
	Stroked *bool `toml:"stroked"`
}

// BranchName returns the branch to clone.
func (p Pack) BranchName() string {
	if p.Branch == "" {
		return DefaultBranch
	}
	return p.Branch
}

// IsStroked reports whether icons are drawn with strokes.
func (p Pack) IsStroked() bool {
	return p.Stroked == nil || *p.Stroked
}

type packsFile struct {
	IconPacks map[string]Pack `toml:"icon-packs"`
}

type legacyFile struct {
	Icons map[string]Pack `toml:"icons"`
}

// LoadPacks reads the packs declared under root, sorted by name. The
// [icons] table of viewy-icons.toml is read only when no [icon-packs] entry
// exists.
func LoadPacks(root string) ([]Pack, error) {
	var modern packsFile
	for _, name := range config.FileNames {
		if _, err := config.DecodeFile(filepath.Join(root, name), &modern); err != nil {
			return nil, err
		}
	}
	if len(modern.IconPacks) > 0 {
		return sortPacks(modern.IconPacks), nil
	}

	var legacy legacyFile
	if _, err := config.DecodeFile(filepath.Join(root, config.LegacyIconsFileName), &legacy); err != nil {
		return nil, err
	}
	return sortPacks(legacy.Icons), nil
}

func sortPacks(m map[string]Pack) []Pack {
	packs := make([]Pack, 0, len(m))
	for name, p := range m {
		p.Name = name
		packs = append(packs, p)
	}
	sort.Slice(packs, func(i, j int) bool { return packs[i].Name < packs[j].Name })
	return packs
}
