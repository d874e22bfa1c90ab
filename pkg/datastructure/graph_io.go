package datastructure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"go.uber.org/zap"
)

const graphFileHeader = "taxinav-graph"

// WriteGraph. bzip2 compressed, tab separated snapshot of the graph.
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

	if err := g.Encode(bz); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

func (g *Graph) Encode(out io.Writer) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "%s\t1\t%d\t%d\n", graphFileHeader, len(g.vertices), len(g.edges))

	for _, id := range g.VertexIDs() {
		v := g.vertices[id]
		latF := strconv.FormatFloat(v.coord.Lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(v.coord.Lon, 'f', -1, 64)
		fmt.Fprintf(w, "v\t%d\t%s\t%s\t%s\t%s\n", v.id, latF, lonF, v.usage, strconv.Quote(v.name))
	}

	for _, e := range g.edges {
		costF := strconv.FormatFloat(e.cost, 'f', -1, 64)
		fmt.Fprintf(w, "e\t%d\t%d\t%s\t%d\t%d\t%s\t%s\t%s\n",
			e.start, e.end, costF, e.direction, e.usage, e.widthCode, strconv.Quote(e.name),
			encodeActive(e.active))
	}

	return w.Flush()
}

func encodeActive(active []ActiveRestriction) string {
	parts := make([]string, 0, len(active))
	for _, ar := range active {
		parts = append(parts, ar.activity.String()+":"+strings.Join(ar.runways, ","))
	}
	return strings.Join(parts, ";")
}

func decodeActive(s string) ([]ActiveRestriction, error) {
	if s == "" {
		return nil, nil
	}
	active := make([]ActiveRestriction, 0)
	for _, part := range strings.Split(s, ";") {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid active restriction %q", part)
		}
		activity, err := ParseActivity(kv[0])
		if err != nil {
			return nil, err
		}
		var runways []string
		if kv[1] != "" {
			runways = strings.Split(kv[1], ",")
		}
		active = append(active, NewActiveRestriction(activity, runways...))
	}
	return active, nil
}

func ReadGraph(filename string, log *zap.Logger) (*Graph, error) {
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

	return DecodeGraph(bz, log)
}

func DecodeGraph(in io.Reader, log *zap.Logger) (*Graph, error) {
	g := NewGraph(log)
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		ff := strings.Split(line, "\t")
		switch ff[0] {
		case graphFileHeader:
			if len(ff) < 2 || ff[1] != "1" {
				return nil, fmt.Errorf("line %d: unsupported graph file version", lineNo)
			}
		case "v":
			if err := parseVertex(g, ff); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case "e":
			e, err := parseEdge(ff)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			g.AddEdge(e)
		default:
			return nil, fmt.Errorf("line %d: unknown record %q", lineNo, ff[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func ParseIndex(s string) (Index, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return Index(id), nil
}

func parseVertex(g *Graph, ff []string) error {
	if len(ff) != 6 {
		return fmt.Errorf("vertex record needs 6 fields, got %d", len(ff))
	}
	id, err := ParseIndex(ff[1])
	if err != nil {
		return err
	}
	lat, err := strconv.ParseFloat(ff[2], 64)
	if err != nil {
		return err
	}
	lon, err := strconv.ParseFloat(ff[3], 64)
	if err != nil {
		return err
	}
	name, err := strconv.Unquote(ff[5])
	if err != nil {
		return err
	}
	g.AddVertex(id, geo.NewCoordinate(lat, lon), ParseVertexUsage(ff[4]), name)
	return nil
}

func parseEdge(ff []string) (*Edge, error) {
	if len(ff) != 9 {
		return nil, fmt.Errorf("edge record needs 9 fields, got %d", len(ff))
	}
	start, err := ParseIndex(ff[1])
	if err != nil {
		return nil, err
	}
	end, err := ParseIndex(ff[2])
	if err != nil {
		return nil, err
	}
	cost, err := strconv.ParseFloat(ff[3], 64)
	if err != nil {
		return nil, err
	}
	dir, err := strconv.ParseUint(ff[4], 10, 8)
	if err != nil {
		return nil, err
	}
	usage, err := strconv.ParseUint(ff[5], 10, 8)
	if err != nil {
		return nil, err
	}
	width, err := ParseWidthCode(ff[6])
	if err != nil {
		return nil, err
	}
	name, err := strconv.Unquote(ff[7])
	if err != nil {
		return nil, err
	}
	active, err := decodeActive(ff[8])
	if err != nil {
		return nil, err
	}
	return NewEdge(start, end, cost, Direction(dir), EdgeUsage(usage), width, name, active), nil
}
