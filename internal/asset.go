package internal

import (
	"path/filepath"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Asset is a path-tagged unit of text content. Paths are compared by exact
// string equality; the body is already extract-normalized when the asset is
// built through Codec.NewAsset.
type Asset struct {
	Path string
	Body string
}

// DefaultMatchThreshold is the minimum normalized similarity score for
// Collection.Match.
const DefaultMatchThreshold = 0.7

// Collection is an ordered sequence of assets with path uniqueness enforced
// through its mutators. Iteration order follows insertion/replacement
// order, not key order.
type Collection struct {
	assets []Asset
}

func NewCollection(assets ...Asset) *Collection {
	c := &Collection{}
	for _, a := range assets {
		c.AddOrUpdate(a)
	}
	return c
}

func (c *Collection) Len() int {
	return len(c.assets)
}

// Assets returns a copy of the underlying sequence in order.
func (c *Collection) Assets() []Asset {
	out := make([]Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

func (c *Collection) Paths() []string {
	paths := make([]string, 0, len(c.assets))
	for _, a := range c.assets {
		paths = append(paths, a.Path)
	}
	return paths
}

func (c *Collection) Get(path string) (Asset, bool) {
	for _, a := range c.assets {
		if a.Path == path {
			return a, true
		}
	}
	return Asset{}, false
}

// AddOrUpdate replaces the asset with the same path in place, or appends a
// new one. Returns true when an existing asset was replaced.
func (c *Collection) AddOrUpdate(a Asset) bool {
	for i := range c.assets {
		if c.assets[i].Path == a.Path {
			c.assets[i] = a
			return true
		}
	}
	c.assets = append(c.assets, a)
	return false
}

func (c *Collection) Remove(path string) bool {
	for i := range c.assets {
		if c.assets[i].Path == path {
			c.assets = append(c.assets[:i], c.assets[i+1:]...)
			return true
		}
	}
	return false
}

// Clone deep-copies the collection. Assets are value types, so copying the
// slice is a full copy; snapshots rely on this.
func (c *Collection) Clone() *Collection {
	return &Collection{assets: c.Assets()}
}

// Match returns the assets whose path stem (basename without extension,
// lowercased) scores at least threshold against the lowercased query under
// fuzzy partial-ratio similarity. Source order is preserved; ties are not
// broken by score.
func (c *Collection) Match(query string, threshold float64) *Collection {
	q := strings.ToLower(query)
	matched := &Collection{}
	for _, a := range c.assets {
		base := filepath.Base(a.Path)
		stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
		score := float64(fuzzy.PartialRatio(stem, q)) / 100.0
		if score >= threshold {
			matched.AddOrUpdate(a)
		}
	}
	return matched
}
