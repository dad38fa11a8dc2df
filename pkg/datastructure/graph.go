package datastructure

import (
	"math"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/util"
)

type Index uint32

const (
	INVALID_VERTEX_ID = Index(math.MaxUint32)
)

// WeightMode selects which edge attribute is summed as path cost.
type WeightMode uint8

const (
	DISTANCE_MODE WeightMode = iota
	TIME_MODE
)

func (wm WeightMode) String() string {
	if wm == TIME_MODE {
		return "time"
	}
	return "distance"
}

type Vertex struct {
	id    Index
	osmId int64
	lat   float64
	lon   float64
}

func (v *Vertex) GetId() Index {
	return v.id
}

func (v *Vertex) GetOsmId() int64 {
	return v.osmId
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

// OutEdge directed edge. length in meter, travelTime in second.
type OutEdge struct {
	head       Index
	length     float64
	travelTime float64
}

func NewOutEdge(head Index, length, travelTime float64) OutEdge {
	return OutEdge{head: head, length: length, travelTime: travelTime}
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetLength() float64 {
	return e.length
}

func (e *OutEdge) GetTravelTime() float64 {
	return e.travelTime
}

// Weight edge cost under the active weight mode.
func (e *OutEdge) Weight(mode WeightMode) float64 {
	if mode == TIME_MODE {
		return e.travelTime
	}
	return e.length
}

// Graph directed weighted road network. read-only during queries,
// safe for concurrent read-only access.
type Graph struct {
	vertices []Vertex
	outEdges [][]OutEdge
	osmIdMap map[int64]Index
	numEdges int
	maxSpeed float64 // maximum implied speed over all edges, in meter/second
}

func NewGraph() *Graph {
	return &Graph{
		vertices: make([]Vertex, 0),
		outEdges: make([][]OutEdge, 0),
		osmIdMap: make(map[int64]Index),
	}
}

// AddVertex registers a node with its WGS84 coordinates. idempotent per osm id.
func (g *Graph) AddVertex(osmId int64, lat, lon float64) Index {
	if id, ok := g.osmIdMap[osmId]; ok {
		return id
	}
	id := Index(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{id: id, osmId: osmId, lat: lat, lon: lon})
	g.outEdges = append(g.outEdges, nil)
	g.osmIdMap[osmId] = id
	return id
}

// AddEdge adds a directed edge. parallel edges between the same pair are
// allowed, relaxation picks the cheaper one under the active weight mode.
// self loops are rejected.
func (g *Graph) AddEdge(fromOsmId, toOsmId int64, length, travelTime float64) error {
	if fromOsmId == toOsmId {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "self loop edge on node %d", fromOsmId)
	}
	if length < 0 || travelTime < 0 {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "negative edge weight %f/%f on edge %d->%d",
			length, travelTime, fromOsmId, toOsmId)
	}
	from, err := g.IdToIndex(fromOsmId)
	if err != nil {
		return err
	}
	to, err := g.IdToIndex(toOsmId)
	if err != nil {
		return err
	}

	g.outEdges[from] = append(g.outEdges[from], NewOutEdge(to, length, travelTime))
	g.numEdges++

	if travelTime > 0 {
		speed := length / travelTime
		if speed > g.maxSpeed {
			g.maxSpeed = speed
		}
	}
	return nil
}

// IdToIndex resolves an osm node id to the dense internal index.
func (g *Graph) IdToIndex(osmId int64) (Index, error) {
	id, ok := g.osmIdMap[osmId]
	if !ok {
		return INVALID_VERTEX_ID, util.WrapErrorf(nil, util.ErrNodeNotFound, "node %d not found in the graph", osmId)
	}
	return id, nil
}

// ForOutEdgesOf iterates outgoing edges of v in insertion order.
func (g *Graph) ForOutEdgesOf(v Index, fn func(e *OutEdge)) {
	for i := range g.outEdges[v] {
		fn(&g.outEdges[v][i])
	}
}

func (g *Graph) GetVertexCoordinates(v Index) (float64, float64) {
	return g.vertices[v].lat, g.vertices[v].lon
}

func (g *Graph) GetVertexOsmId(v Index) int64 {
	return g.vertices[v].osmId
}

func (g *Graph) GetVertex(v Index) *Vertex {
	return &g.vertices[v]
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}

// MaxSpeed maximum implied speed (length/travelTime) observed across all
// loaded edges, in meter/second. used as the admissibility bound for
// time-mode heuristics. zero when the graph carries no travel times.
func (g *Graph) MaxSpeed() float64 {
	return g.maxSpeed
}
