package procanalysis

import (
	"crypto/sha256"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"hif/internal/hifctx"
	"hif/internal/ir"
	"hif/internal/semantics"

	"github.com/vmihailenco/msgpack/v5"
)

// Digest is a content hash keying a cached ProcessMap. The key is supplied
// by the caller from whatever identifies "this tree's
// shape" to it, typically a hash of the XML bytes AnalyzeProcesses's root
// was parsed from, since the analyzer reaches the same StateTables in the
// same discovery order for an unchanged input.
type Digest [32]byte

// HashBytes is the digest constructor callers use before Get/Put; hashing
// whatever the cache key represents stays outside the cache package itself.
func HashBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

const cacheSchemaVersion uint16 = 1

// nodeSetPayload is NodeSet's wire shape: the set's NodeIDs in insertion
// order, stored and restored as raw IDs. Only the process keys are
// re-associated by discovery order (see Replay); the IDs inside a set, like
// Clock and Reset, are reused unchanged, so they name the right nodes only
// when the tree being analyzed was built with the same NodeIDs.
type nodeSetPayload struct {
	Order []ir32 `msgpack:"order"`
}

// ir32 avoids importing hif/internal/ir's NodeID type directly in the wire
// struct tags; it is numerically identical (NodeID is a uint32).
type ir32 = uint32

func toNodeSetPayload(s NodeSet) nodeSetPayload {
	items := s.Items()
	out := make([]ir32, len(items))
	for i, id := range items {
		out[i] = ir32(id)
	}
	return nodeSetPayload{Order: out}
}

func fromNodeSetPayload(p nodeSetPayload) NodeSet {
	var s NodeSet
	for _, raw := range p.Order {
		s.Add(ir.NodeID(raw))
	}
	return s
}

// cachedInfo is ProcessInfos's wire shape.
type cachedInfo struct {
	Kind      uint8  `msgpack:"kind"`
	ResetKind uint8  `msgpack:"reset_kind"`
	Edge      uint8  `msgpack:"edge"`
	Phase     uint8  `msgpack:"phase"`
	Style     uint8  `msgpack:"style"`
	Clock     ir32   `msgpack:"clock"`
	Reset     ir32   `msgpack:"reset"`
	Process   ir32   `msgpack:"process"`

	ReadSignals      nodeSetPayload `msgpack:"read_signals"`
	WrittenSignals   nodeSetPayload `msgpack:"written_signals"`
	ReadVariables    nodeSetPayload `msgpack:"read_variables"`
	WrittenVariables nodeSetPayload `msgpack:"written_variables"`

	SensitivityLevel   nodeSetPayload `msgpack:"sensitivity_level"`
	SensitivityRising  nodeSetPayload `msgpack:"sensitivity_rising"`
	SensitivityFalling nodeSetPayload `msgpack:"sensitivity_falling"`
}

// CachePayload is what Cache.Put/Get persist: a ProcessMap flattened in its
// own discovery order. HasMixed mirrors AnalyzeProcesses's second return
// value so a cache hit doesn't need to re-derive it.
type CachePayload struct {
	Schema   uint16       `msgpack:"schema"`
	HasMixed bool         `msgpack:"has_mixed"`
	Infos    []cachedInfo `msgpack:"infos"`
}

func toCachePayload(pm *ProcessMap, hasMixed bool) CachePayload {
	procs := pm.Processes()
	infos := make([]cachedInfo, 0, len(procs))
	for _, p := range procs {
		info, ok := pm.Get(p)
		if !ok {
			continue
		}
		infos = append(infos, cachedInfo{
			Kind:      uint8(info.Kind),
			ResetKind: uint8(info.ResetKind),
			Edge:      uint8(info.Edge),
			Phase:     uint8(info.Phase),
			Style:     uint8(info.Style),
			Clock:     ir32(info.Clock),
			Reset:     ir32(info.Reset),
			Process:   ir32(p),

			ReadSignals:      toNodeSetPayload(info.ReadSignals),
			WrittenSignals:   toNodeSetPayload(info.WrittenSignals),
			ReadVariables:    toNodeSetPayload(info.ReadVariables),
			WrittenVariables: toNodeSetPayload(info.WrittenVariables),

			SensitivityLevel:   toNodeSetPayload(info.SensitivityLevel),
			SensitivityRising:  toNodeSetPayload(info.SensitivityRising),
			SensitivityFalling: toNodeSetPayload(info.SensitivityFalling),
		})
	}
	return CachePayload{Schema: cacheSchemaVersion, HasMixed: hasMixed, Infos: infos}
}

// Replay rebuilds a ProcessMap from a cache payload, matching each cached
// record back onto this run's freshly-discovered StateTables by position:
// discovered[i] is assumed to be the same process as p.Infos[i]'s original
// subject, which holds as long as the digest that keyed this payload still
// matches the tree being analyzed now. Returns false if discovered's length
// disagrees with the payload, since that means the tree shape changed and
// the cache is stale despite a matching digest (e.g. a digest collision, or
// a caller reusing a key across unrelated trees).
func (p CachePayload) Replay(discovered []ir.NodeID) (*ProcessMap, bool, bool) {
	if len(discovered) != len(p.Infos) {
		return nil, false, false
	}
	pm := NewProcessMap()
	for i, proc := range discovered {
		c := p.Infos[i]
		pm.Set(proc, &ProcessInfos{
			Kind:      ProcessKind(c.Kind),
			ResetKind: ResetKind(c.ResetKind),
			Edge:      WorkingEdge(c.Edge),
			Phase:     ResetPhase(c.Phase),
			Style:     ProcessStyle(c.Style),
			Clock:     ir.NodeID(c.Clock),
			Reset:     ir.NodeID(c.Reset),

			ReadSignals:      fromNodeSetPayload(c.ReadSignals),
			WrittenSignals:   fromNodeSetPayload(c.WrittenSignals),
			ReadVariables:    fromNodeSetPayload(c.ReadVariables),
			WrittenVariables: fromNodeSetPayload(c.WrittenVariables),

			SensitivityLevel:   fromNodeSetPayload(c.SensitivityLevel),
			SensitivityRising:  fromNodeSetPayload(c.SensitivityRising),
			SensitivityFalling: fromNodeSetPayload(c.SensitivityFalling),
		})
	}
	return pm, p.HasMixed, true
}

// Cache is an on-disk store of process-classification results keyed by
// Digest: msgpack-encoded payloads
// under a flat directory, written via a temp-file-then-rename so a reader
// never observes a partial file.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCache opens (creating if absent) a Cache rooted at dir.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	const hexDigits = "0123456789abcdef"
	buf := make([]byte, 0, len(key)*2)
	for _, b := range key {
		buf = append(buf, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return filepath.Join(c.dir, string(buf)+".mp")
}

// Get looks up key, decoding into a CachePayload on a hit.
func (c *Cache) Get(key Digest) (CachePayload, bool, error) {
	var out CachePayload
	if c == nil {
		return out, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return out, false, nil
		}
		return out, false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return CachePayload{}, false, err
	}
	if out.Schema != cacheSchemaVersion {
		return CachePayload{}, false, nil
	}
	return out, true, nil
}

// Put stores payload under key, replacing any existing entry.
func (c *Cache) Put(key Digest, payload CachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	tmp, err := os.CreateTemp(c.dir, "process-*.mp.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if err := msgpack.NewEncoder(tmp).Encode(payload); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, c.pathFor(key))
}

// AnalyzeProcessesCached behaves like AnalyzeProcesses but consults cache
// first under key, and populates it on a miss. The cache speeds up repeated
// analysis of an unchanged tree (e.g. a hifc CLI invoked in a watch loop)
// without changing AnalyzeProcesses's own semantics: a cache miss, a stale
// hit (shape mismatch), or a nil cache all fall through to a full analysis.
func AnalyzeProcessesCached(ctx *hifctx.Context, root ir.NodeRef, sem semantics.Language, opts AnalyzeOptions, cache *Cache, key Digest) (*ProcessMap, bool, error) {
	discovered := discoverStateTables(root)

	if cache != nil {
		if payload, ok, err := cache.Get(key); err == nil && ok {
			if pm, hasMixed, replayed := payload.Replay(discovered); replayed {
				return pm, hasMixed, nil
			}
		}
	}

	pm, hasMixed, err := AnalyzeProcesses(ctx, root, sem, opts)
	if err != nil {
		return nil, false, err
	}
	if cache != nil {
		_ = cache.Put(key, toCachePayload(pm, hasMixed))
	}
	return pm, hasMixed, nil
}

// discoverStateTables walks root in the same order AnalyzeProcesses does
// (tableCollector's ancestor-visitor traversal), giving Replay the
// positional ordering it needs to re-associate a cached payload with this
// run's StateTable NodeIDs.
func discoverStateTables(root ir.NodeRef) []ir.NodeID {
	if !root.IsValid() {
		return nil
	}
	var tables []ir.NodeID
	ir.WalkAncestor(root.Tree, root.Node, &tableCollector{out: &tables})
	return tables
}
