package loader

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/osmparser"
)

// Cache collaborator for loaded graphs, keyed by a stable identifier of
// the map source. the pathfinding core never touches cache state.
type Cache interface {
	Get(key string) (*datastructure.Graph, bool)
	Add(key string, graph *datastructure.Graph)
}

// GraphCache two layer cache: in-process lru over bzip2 compressed graph
// files on disk. a process restart still skips reparsing the pbf.
type GraphCache struct {
	mem *lru.Cache[string, *datastructure.Graph]
	dir string
	log *zap.Logger
}

func NewGraphCache(size int, dir string, log *zap.Logger) (*GraphCache, error) {
	mem, err := lru.New[string, *datastructure.Graph](size)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &GraphCache{mem: mem, dir: dir, log: log}, nil
}

func (c *GraphCache) Get(key string) (*datastructure.Graph, bool) {
	if graph, ok := c.mem.Get(key); ok {
		return graph, true
	}

	graph, err := datastructure.ReadGraph(c.cacheFile(key))
	if err != nil {
		return nil, false
	}
	c.log.Info("graph cache hit on disk", zap.String("key", key))
	c.mem.Add(key, graph)
	return graph, true
}

func (c *GraphCache) Add(key string, graph *datastructure.Graph) {
	c.mem.Add(key, graph)
	if err := graph.WriteGraph(c.cacheFile(key)); err != nil {
		c.log.Warn("writing graph cache file failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *GraphCache) cacheFile(key string) string {
	h := fnv.New64a()
	h.Write([]byte(key))
	return filepath.Join(c.dir, fmt.Sprintf("%x.graph", h.Sum64()))
}

// Loader loads road graphs through the injected cache, parsing the osm
// extract only on a full miss.
type Loader struct {
	parser *osmparser.OsmParser
	cache  Cache
	log    *zap.Logger
}

func NewLoader(parser *osmparser.OsmParser, cache Cache, log *zap.Logger) *Loader {
	return &Loader{parser: parser, cache: cache, log: log}
}

// Load returns the graph for the given pbf extract and network type.
func (l *Loader) Load(mapFile, networkType string) (*datastructure.Graph, error) {
	key := networkType + ":" + mapFile

	if l.cache != nil {
		if graph, ok := l.cache.Get(key); ok {
			return graph, nil
		}
	}

	graph, err := l.parser.Parse(mapFile)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		l.cache.Add(key, graph)
	}
	return graph, nil
}
