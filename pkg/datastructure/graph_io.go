package datastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/dsnet/compress/bzip2"
)

// WriteGraph persists the graph to a bzip2 compressed cache file.
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d\n", g.NumberOfVertices(), g.NumberOfEdges())

	for vId := 0; vId < len(g.vertices); vId++ {
		v := g.vertices[vId]
		latF := strconv.FormatFloat(v.lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(v.lon, 'f', -1, 64)

		fmt.Fprintf(w, "%d %s %s\n", v.osmId, latF, lonF)
	}

	for vId := 0; vId < len(g.vertices); vId++ {
		for _, e := range g.outEdges[vId] {
			lengthF := strconv.FormatFloat(e.length, 'f', -1, 64)
			ttF := strconv.FormatFloat(e.travelTime, 'f', -1, 64)

			fmt.Fprintf(w, "%d %d %s %s\n", g.vertices[vId].osmId, g.vertices[e.head].osmId, lengthF, ttF)
		}
	}

	return w.Flush()
}

// ReadGraph loads a graph previously persisted with WriteGraph.
func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	r := bufio.NewReader(bz)

	var numVertices, numEdges int
	if _, err := fmt.Fscanf(r, "%d %d\n", &numVertices, &numEdges); err != nil {
		return nil, err
	}

	g := NewGraph()

	for i := 0; i < numVertices; i++ {
		var (
			osmId    int64
			lat, lon float64
		)
		if _, err := fmt.Fscanf(r, "%d %f %f\n", &osmId, &lat, &lon); err != nil {
			return nil, err
		}
		g.AddVertex(osmId, lat, lon)
	}

	for i := 0; i < numEdges; i++ {
		var (
			from, to           int64
			length, travelTime float64
		)
		if _, err := fmt.Fscanf(r, "%d %d %f %f\n", &from, &to, &length, &travelTime); err != nil {
			return nil, err
		}
		if err := g.AddEdge(from, to, length, travelTime); err != nil {
			return nil, err
		}
	}

	return g, nil
}
