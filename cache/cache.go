// Package cache persists proven-optimal dominating sets in a badger store,
// keyed by the content of the graph they solve.
//
// Only optimal results are stored, so a hit can be returned instead of
// searching again. Solutions are stored by label and mapped back onto the
// caller's graph on lookup.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/katalvlaran/domset/core"
	"github.com/katalvlaran/domset/domset"
	"github.com/katalvlaran/domset/loader"
)

// ErrNotOptimal is returned by Put for results that are not proven minimum.
var ErrNotOptimal = errors.New("cache: result is not optimal")

const keyPrefix = "mds/"

// entry is the stored value.
type entry struct {
	Labels   []string  `json:"labels"`
	Nodes    uint64    `json:"nodes"`
	SolvedAt time.Time `json:"solved_at"`
}

// Cache is a badger-backed result store. Safe for concurrent use.
type Cache struct {
	db *badger.DB
}

// Open opens (or creates) the store in dir. An empty dir keeps the store
// in memory for the lifetime of the Cache.
func Open(dir string) (*Cache, error) {
	dbOpts := badger.DefaultOptions(dir)
	dbOpts.Logger = nil
	if dir == "" {
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "cache: open %q", dir)
	}

	return &Cache{db: db}, nil
}

// Close flushes and closes the store.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key returns the store key of g: a SHA-256 of its edge-list form.
func Key(g *core.Graph) ([]byte, error) {
	h := sha256.New()
	if err := loader.Write(h, g); err != nil {
		return nil, err
	}

	return []byte(keyPrefix + hex.EncodeToString(h.Sum(nil))), nil
}

// Get returns the cached optimum of g, if any. The Result has Optimal set
// and Nodes reports the search that originally proved it.
func (c *Cache) Get(g *core.Graph) (domset.Result, bool, error) {
	key, err := Key(g)
	if err != nil {
		return domset.Result{}, false, err
	}

	var e entry
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domset.Result{}, false, nil
	}
	if err != nil {
		return domset.Result{}, false, errors.Wrap(err, "cache: get")
	}

	sol := make([]core.Vertex, 0, len(e.Labels))
	for _, l := range e.Labels {
		v, ok := g.Lookup(l)
		if !ok {
			return domset.Result{}, false, nil
		}
		sol = append(sol, v)
	}

	return domset.Result{
		Solution: sol,
		Labels:   e.Labels,
		Size:     len(sol),
		Nodes:    e.Nodes,
		Optimal:  true,
	}, true, nil
}

// Put stores an optimal result for g.
func (c *Cache) Put(g *core.Graph, res domset.Result) error {
	if !res.Optimal {
		return ErrNotOptimal
	}
	key, err := Key(g)
	if err != nil {
		return err
	}
	val, err := json.Marshal(entry{
		Labels:   g.Labels(res.Solution),
		Nodes:    res.Nodes,
		SolvedAt: time.Now().UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "cache: encode")
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})

	return errors.Wrap(err, "cache: put")
}
