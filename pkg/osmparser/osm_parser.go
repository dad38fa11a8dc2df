package osmparser

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/geo"
)

type nodeCoord struct {
	lat float64
	lon float64
}

type osmWay struct {
	nodes    []int64
	oneWay   bool
	speedKmh float64
}

// OsmParser builds the road graph from an openstreetmap pbf extract.
// only drivable highway ways are kept. travel time per edge is derived
// from the way's maxspeed tag, falling back to a default speed per
// highway class.
type OsmParser struct {
	log *zap.Logger
}

func NewOsmParser(log *zap.Logger) *OsmParser {
	return &OsmParser{log: log}
}

var (
	skipHighway = map[string]struct{}{
		"footway":      {},
		"construction": {},
		"cycleway":     {},
		"path":         {},
		"pedestrian":   {},
		"busway":       {},
		"steps":        {},
		"bridleway":    {},
		"corridor":     {},
		"street_lamp":  {},
		"bus_stop":     {},
		"proposed":     {},
		"abandoned":    {},
		"platform":     {},
		"raceway":      {},
		"elevator":     {},
	}

	// km/h fallback when a way carries no usable maxspeed tag
	defaultSpeed = map[string]float64{
		"motorway":       100,
		"trunk":          90,
		"primary":        65,
		"secondary":      60,
		"tertiary":       50,
		"unclassified":   40,
		"residential":    30,
		"service":        20,
		"motorway_link":  60,
		"trunk_link":     55,
		"primary_link":   50,
		"secondary_link": 45,
		"tertiary_link":  40,
		"living_street":  10,
		"road":           40,
		"track":          20,
	}
)

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	if highway == "" {
		return false
	}
	if _, skip := skipHighway[highway]; skip {
		return false
	}
	if way.Tags.Find("area") == "yes" {
		return false
	}
	return true
}

// Parse scans the pbf twice: first the drivable ways, then the coordinates
// of the nodes those ways reference, and builds the directed graph.
func (p *OsmParser) Parse(mapFile string) (*datastructure.Graph, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, errors.Wrapf(err, "open osm pbf file %s", mapFile)
	}
	defer f.Close()

	ways := make([]osmWay, 0)
	usedNodes := make(map[int64]struct{})

	scanner := osmpbf.New(context.Background(), f, 0)
	// must not be parallel
	countWays := 0
	for scanner.Scan() {
		o := scanner.Object()

		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		if len(way.Nodes) < 2 {
			continue
		}
		if !acceptOsmWay(way) {
			continue
		}
		if (countWays+1)%50000 == 0 {
			p.log.Info("reading openstreetmap ways", zap.Int("count", countWays+1))
		}
		countWays++

		nodes := make([]int64, 0, len(way.Nodes))
		for _, node := range way.Nodes {
			nodes = append(nodes, int64(node.ID))
			usedNodes[int64(node.ID)] = struct{}{}
		}

		ways = append(ways, osmWay{
			nodes:    nodes,
			oneWay:   isOneWay(way),
			speedKmh: waySpeedKmh(way),
		})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, errors.Wrap(err, "scan osm ways")
	}
	scanner.Close()

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "rewind osm pbf file")
	}

	scanner = osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()

	coords := make(map[int64]nodeCoord, len(usedNodes))
	countNodes := 0
	for scanner.Scan() {
		o := scanner.Object()

		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		if _, used := usedNodes[int64(node.ID)]; !used {
			continue
		}
		if (countNodes+1)%500000 == 0 {
			p.log.Info("reading openstreetmap nodes", zap.Int("count", countNodes+1))
		}
		countNodes++
		coords[int64(node.ID)] = nodeCoord{lat: node.Lat, lon: node.Lon}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan osm nodes")
	}

	graph := p.buildGraph(ways, coords)
	p.log.Info("openstreetmap graph built",
		zap.String("file", mapFile),
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))
	return graph, nil
}

func (p *OsmParser) buildGraph(ways []osmWay, coords map[int64]nodeCoord) *datastructure.Graph {
	graph := datastructure.NewGraph()

	for _, way := range ways {
		for i := 0; i+1 < len(way.nodes); i++ {
			fromId, toId := way.nodes[i], way.nodes[i+1]
			from, fromOk := coords[fromId]
			to, toOk := coords[toId]
			if !fromOk || !toOk || fromId == toId {
				continue
			}

			graph.AddVertex(fromId, from.lat, from.lon)
			graph.AddVertex(toId, to.lat, to.lon)

			length := geo.CalculateHaversineDistance(from.lat, from.lon, to.lat, to.lon) * 1000.0
			travelTime := 0.0
			if way.speedKmh > 0 {
				travelTime = length / (way.speedKmh / 3.6)
			}

			if err := graph.AddEdge(fromId, toId, length, travelTime); err != nil {
				continue
			}
			if !way.oneWay {
				if err := graph.AddEdge(toId, fromId, length, travelTime); err != nil {
					continue
				}
			}
		}
	}
	return graph
}

func isOneWay(way *osm.Way) bool {
	switch way.Tags.Find("oneway") {
	case "yes", "1", "true":
		return true
	}
	// motorways and roundabouts are one way unless tagged otherwise
	if way.Tags.Find("junction") == "roundabout" {
		return true
	}
	return way.Tags.Find("highway") == "motorway"
}

// waySpeedKmh maxspeed tag in km/h, handling mph suffixes, falling back to
// the highway-class default.
func waySpeedKmh(way *osm.Way) float64 {
	maxspeed := strings.TrimSpace(way.Tags.Find("maxspeed"))
	if maxspeed != "" {
		mph := false
		if strings.HasSuffix(maxspeed, "mph") {
			mph = true
			maxspeed = strings.TrimSpace(strings.TrimSuffix(maxspeed, "mph"))
		}
		if speed, err := strconv.ParseFloat(maxspeed, 64); err == nil && speed > 0 {
			if mph {
				speed *= 1.609344
			}
			return speed
		}
	}
	return defaultSpeed[way.Tags.Find("highway")]
}
