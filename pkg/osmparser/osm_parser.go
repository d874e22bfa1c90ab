package osmparser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lintang-b-s/Taxinav/pkg"
	"github.com/lintang-b-s/Taxinav/pkg/airport"
	"github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"github.com/lintang-b-s/Taxinav/pkg/spatialindex"
	"github.com/lintang-b-s/Taxinav/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"go.uber.org/zap"
)

const (
	defaultRunwayWidth = 45.0  // meter
	maxStandAttach     = 300.0 // meter, stands farther than this from any taxiway are ignored
)

// OSMScanner. common interface of the pbf and xml scanners.
type OSMScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

type aeroWay struct {
	id       osm.WayID
	nodes    []osm.NodeID
	aeroway  string
	name     string
	oneway   bool
	reversed bool
	width    float64
}

type poiKind uint8

const (
	POI_HOLDING_POSITION poiKind = iota
	POI_STAND
)

type poi struct {
	id    osm.NodeID
	kind  poiKind
	name  string
	coord geo.Coordinate
}

/*
AirportParser. two pass reader of an openstreetmap airport extract.
first pass keeps aeroway=taxiway/taxilane/runway ways and the holding_position/parking_position/gate nodes,
second pass picks up the coordinates of every node used by those ways.
*/
type AirportParser struct {
	log *zap.Logger

	ways     []aeroWay
	pois     map[osm.NodeID]poi
	coords   map[osm.NodeID]geo.Coordinate
	wayNodes map[osm.NodeID]struct{}

	icao, name string
}

func NewAirportParser(log *zap.Logger) *AirportParser {
	if log == nil {
		log = zap.NewNop()
	}
	return &AirportParser{
		log:      log,
		ways:     make([]aeroWay, 0),
		pois:     make(map[osm.NodeID]poi),
		coords:   make(map[osm.NodeID]geo.Coordinate),
		wayNodes: make(map[osm.NodeID]struct{}),
	}
}

// Parse. read an .osm/.xml or .pbf file.
func (p *AirportParser) Parse(mapFile string) (*datastructure.Graph, *airport.Airport, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	ext := filepath.Ext(mapFile)
	open := func() (OSMScanner, error) {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		switch ext {
		case ".osm", ".xml":
			return osmxml.New(context.Background(), f), nil
		case ".pbf":
			// must not be parallel
			return osmpbf.New(context.Background(), f, 1), nil
		}
		return nil, fmt.Errorf("file extension '%s' for file '%s' is not handled", ext, mapFile)
	}
	return p.ParseScanner(open)
}

// ParseScanner. run both passes, open must return a fresh scanner positioned at the start of the data.
func (p *AirportParser) ParseScanner(open func() (OSMScanner, error)) (*datastructure.Graph, *airport.Airport, error) {
	scanner, err := open()
	if err != nil {
		return nil, nil, err
	}
	if err := p.scanElements(scanner); err != nil {
		return nil, nil, err
	}
	p.log.Info("scanned openstreetmap aeroways", zap.Int("ways", len(p.ways)), zap.Int("pois", len(p.pois)))

	scanner, err = open()
	if err != nil {
		return nil, nil, err
	}
	if err := p.scanCoordinates(scanner); err != nil {
		return nil, nil, err
	}

	return p.build()
}

func (p *AirportParser) scanElements(scanner OSMScanner) error {
	defer scanner.Close()
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			p.scanNode(o)
		case *osm.Way:
			if o.Tags.Find("aeroway") == "aerodrome" {
				p.setAerodrome(o.Tags)
				continue
			}
			if len(o.Nodes) < 2 || !acceptOsmWay(o) {
				continue
			}
			p.ways = append(p.ways, newAeroWay(o))
			for _, n := range o.Nodes {
				p.wayNodes[n.ID] = struct{}{}
			}
		case *osm.Relation:
			if o.Tags.Find("aeroway") == "aerodrome" {
				p.setAerodrome(o.Tags)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan openstreetmap elements: %w", err)
	}
	return nil
}

func (p *AirportParser) setAerodrome(tags osm.Tags) {
	if p.icao == "" {
		p.icao = tags.Find("icao")
	}
	if p.name == "" {
		p.name = tags.Find("name")
	}
}

func (p *AirportParser) scanNode(n *osm.Node) {
	coord := geo.NewCoordinate(n.Lat, n.Lon)
	switch n.Tags.Find("aeroway") {
	case "holding_position":
		p.pois[n.ID] = poi{id: n.ID, kind: POI_HOLDING_POSITION, name: nodeName(n.Tags), coord: coord}
	case "parking_position", "gate":
		p.pois[n.ID] = poi{id: n.ID, kind: POI_STAND, name: nodeName(n.Tags), coord: coord}
	case "aerodrome":
		p.setAerodrome(n.Tags)
	}
}

func (p *AirportParser) scanCoordinates(scanner OSMScanner) error {
	defer scanner.Close()
	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, used := p.wayNodes[n.ID]; used {
			p.coords[n.ID] = geo.NewCoordinate(n.Lat, n.Lon)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan openstreetmap nodes: %w", err)
	}
	return nil
}

func acceptOsmWay(way *osm.Way) bool {
	switch way.Tags.Find("aeroway") {
	case "taxiway", "taxilane", "runway":
		return true
	}
	return false
}

func newAeroWay(way *osm.Way) aeroWay {
	aw := aeroWay{
		id:      way.ID,
		nodes:   make([]osm.NodeID, 0, len(way.Nodes)),
		aeroway: way.Tags.Find("aeroway"),
		name:    way.Tags.Find("ref"),
	}
	if aw.name == "" {
		aw.name = way.Tags.Find("name")
	}
	for _, n := range way.Nodes {
		aw.nodes = append(aw.nodes, n.ID)
	}
	switch way.Tags.Find("oneway") {
	case "yes", "1", "true":
		aw.oneway = true
	case "-1":
		aw.oneway, aw.reversed = true, true
	}
	aw.width = parseWidth(way.Tags.Find("width"))
	return aw
}

func nodeName(tags osm.Tags) string {
	if ref := tags.Find("ref"); ref != "" {
		return ref
	}
	return tags.Find("name")
}

// parseWidth. "23", "23 m", "23m", 0 when absent or malformed.
func parseWidth(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "m"))
	if s == "" {
		return 0
	}
	w, err := util.StringToFloat64(s)
	if err != nil || w < 0 {
		return 0
	}
	return w
}

/*
WidthCodeFromTaxiwayWidth. largest aircraft code letter a taxiway of width meter can take.

	>= 25 F, >= 23 E, >= 18 D, >= 15 C, >= 10.5 B, otherwise A. 0 = unknown width.
*/
func WidthCodeFromTaxiwayWidth(width float64) datastructure.WidthCode {
	switch {
	case width <= 0:
		return datastructure.NO_WIDTH_CODE
	case width >= 25:
		return datastructure.WIDTH_CODE_F
	case width >= 23:
		return datastructure.WIDTH_CODE_E
	case width >= 18:
		return datastructure.WIDTH_CODE_D
	case width >= 15:
		return datastructure.WIDTH_CODE_C
	case width >= 10.5:
		return datastructure.WIDTH_CODE_B
	default:
		return datastructure.WIDTH_CODE_A
	}
}

// runwayEnds. "09L/27R" -> ["09L", "27R"].
func runwayEnds(ref string) ([2]string, bool) {
	parts := strings.Split(ref, "/")
	if len(parts) != 2 {
		return [2]string{}, false
	}
	return [2]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}, true
}

// runwayHeading. magnetic heading encoded in a runway designator, "09L" -> 90.
func runwayHeading(end string) (float64, bool) {
	digits := strings.TrimRight(end, "LRCB")
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > 36 {
		return 0, false
	}
	return float64(n) * 10, true
}

// build. create graph vertices/edges and the airport registry out of the scanned elements.
func (p *AirportParser) build() (*datastructure.Graph, *airport.Airport, error) {
	g := datastructure.NewGraph(p.log)
	ap := airport.NewAirport(p.icao, p.name)

	nodeIDMap := make(map[osm.NodeID]datastructure.Index, len(p.coords))
	taxiwayNodes := make(map[osm.NodeID]struct{})
	var nextID datastructure.Index

	vertexOf := func(n osm.NodeID) (datastructure.Index, bool) {
		if id, ok := nodeIDMap[n]; ok {
			return id, true
		}
		coord, ok := p.coords[n]
		if !ok {
			return 0, false
		}
		id := nextID
		nextID++
		usage, name := datastructure.JUNCTION, ""
		if pt, ok := p.pois[n]; ok {
			usage, name = datastructure.BOTH, pt.name
		}
		g.AddVertex(id, coord, usage, name)
		nodeIDMap[n] = id
		return id, true
	}

	for _, w := range p.ways {
		if w.aeroway != "runway" {
			for _, n := range w.nodes {
				taxiwayNodes[n] = struct{}{}
			}
		}
	}

	for _, w := range p.ways {
		p.addWay(g, ap, w, vertexOf, nodeIDMap, taxiwayNodes)
	}

	p.addPOIs(g, ap, nodeIDMap, &nextID)
	ap.Sort()

	p.log.Info("airport graph built", zap.String("icao", ap.ICAO),
		zap.Int("vertices", g.NumberOfVertices()), zap.Int("edges", g.NumberOfEdges()),
		zap.Int("runways", len(ap.Runways)), zap.Int("stands", len(ap.Stands)),
		zap.Int("holdingPoints", len(ap.HoldingPoints)))
	if g.NumberOfEdges() == 0 {
		return nil, nil, errors.New("no taxiway found in the openstreetmap data")
	}
	return g, ap, nil
}

func (p *AirportParser) addWay(g *datastructure.Graph, ap *airport.Airport, w aeroWay,
	vertexOf func(osm.NodeID) (datastructure.Index, bool), nodeIDMap map[osm.NodeID]datastructure.Index,
	taxiwayNodes map[osm.NodeID]struct{}) {

	usage := datastructure.TAXIWAY
	widthCode := WidthCodeFromTaxiwayWidth(w.width)
	var (
		active []datastructure.ActiveRestriction
		runway *airport.Runway
	)
	if w.aeroway == "runway" {
		usage = datastructure.RUNWAY
		widthCode = datastructure.NO_WIDTH_CODE
		runway = p.newRunway(w)
		if runway != nil {
			ends := []string{runway.Ends[0].Name, runway.Ends[1].Name}
			active = []datastructure.ActiveRestriction{
				datastructure.NewActiveRestriction(datastructure.ACTIVE_DEPARTURE, ends...),
				datastructure.NewActiveRestriction(datastructure.ACTIVE_ARRIVAL, ends...),
			}
			ap.AddRunway(runway)
		}
	}

	direction := datastructure.TWOWAY
	if w.oneway {
		direction = datastructure.ONEWAY
	}

	for i := 0; i+1 < len(w.nodes); i++ {
		a, okA := vertexOf(w.nodes[i])
		b, okB := vertexOf(w.nodes[i+1])
		if !okA || !okB {
			p.log.Warn("way references a node without coordinate, segment dropped",
				zap.Int64("wayID", int64(w.id)))
			continue
		}
		if a == b {
			continue
		}
		if w.reversed {
			a, b = b, a
		}
		g.AddEdge(datastructure.NewEdge(a, b, 0, direction, usage, widthCode, w.name, active))
	}

	if runway != nil {
		for _, n := range w.nodes {
			if _, shared := taxiwayNodes[n]; !shared {
				continue
			}
			if id, ok := nodeIDMap[n]; ok {
				runway.AddExit(id)
			}
		}
	}
}

// newRunway. runway from a runway way, the end whose designator matches the way direction gets the first node.
func (p *AirportParser) newRunway(w aeroWay) *airport.Runway {
	ends, ok := runwayEnds(w.name)
	if !ok {
		p.log.Warn("runway without a usable ref, not registered", zap.Int64("wayID", int64(w.id)),
			zap.String("ref", w.name))
		return nil
	}
	first, okFirst := p.coords[w.nodes[0]]
	last, okLast := p.coords[w.nodes[len(w.nodes)-1]]
	if !okFirst || !okLast {
		return nil
	}

	bearing := geo.Bearing(first, last)
	if h, ok := runwayHeading(ends[1]); ok {
		h0, ok0 := runwayHeading(ends[0])
		// the end whose designator is closer to the drawing direction starts at the first node
		if !ok0 || math.Abs(geo.Turn(bearing, h)) < math.Abs(geo.Turn(bearing, h0)) {
			ends[0], ends[1] = ends[1], ends[0]
		}
	}

	width := w.width
	if width <= 0 {
		width = defaultRunwayWidth
	}
	return airport.NewRunway(airport.RunwayEnd{Name: ends[0], Threshold: first},
		airport.RunwayEnd{Name: ends[1], Threshold: last}, width)
}

/*
addPOIs. register holding points and stands, stands off the network get a link to the nearest vertex
that can be reached without crossing a runway.
*/
func (p *AirportParser) addPOIs(g *datastructure.Graph, ap *airport.Airport,
	nodeIDMap map[osm.NodeID]datastructure.Index, nextID *datastructure.Index) {

	index := spatialindex.NewRtree()
	index.Build(g, p.log)
	ids := make([]osm.NodeID, 0, len(p.pois))
	for id := range p.pois {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		pt := p.pois[id]
		vertex, ok := nodeIDMap[pt.id]
		if !ok && pt.kind == POI_STAND {
			standPos := pt.coord
			nearest, found := index.Nearest(pt.coord, maxStandAttach, func(v *datastructure.Vertex) bool {
				return !ap.CrossesRunway(standPos, v.GetCoordinate())
			})
			if !found {
				p.log.Warn("stand too far from the taxiway network, ignored", zap.String("stand", pt.name))
				continue
			}
			vertex = *nextID
			*nextID++
			g.AddVertex(vertex, pt.coord, datastructure.BOTH, pt.name)
			g.AddEdge(datastructure.NewEdge(vertex, nearest.GetID(), 0, datastructure.TWOWAY,
				datastructure.TAXIWAY, datastructure.NO_WIDTH_CODE, "", nil))
			ok = true
		}
		if !ok {
			p.log.Warn("holding position off the taxiway network, ignored", zap.String("hold", pt.name))
			continue
		}

		switch pt.kind {
		case POI_STAND:
			ap.AddStand(&airport.Stand{Name: pt.name, Position: pt.coord, Vertex: vertex})
		case POI_HOLDING_POSITION:
			ap.AddHoldingPoint(&airport.HoldingPoint{
				Name:     pt.name,
				Position: pt.coord,
				Runway:   nearestRunway(ap, pt.coord),
				Vertex:   vertex,
			})
		}
	}
}

// nearestRunway. name of the runway whose centerline is closest to pos, within MAX_NETWORK_DISTANCE.
func nearestRunway(ap *airport.Airport, pos geo.Coordinate) string {
	best, bestDist := "", pkg.DEFAULT_MAX_NETWORK_DISTANCE
	for _, r := range ap.Runways {
		d := geo.PointLinePerpendicularDistance(r.Ends[0].Threshold, r.Ends[1].Threshold, pos)
		if d < bestDist {
			best, bestDist = r.Name, d
		}
	}
	return best
}
