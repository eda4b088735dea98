package main

import (
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"os"
	"spatialneighbors/bench"
	"spatialneighbors/index"
	ownIo "spatialneighbors/io"
	"spatialneighbors/osm"
	"spatialneighbors/render"
	"spatialneighbors/web"
	"strings"
	"sync"
)

const VERSION = "v0.1.0"

type IndexOptions struct {
	Index       string  `help:"The index structure to use." enum:"list,grid,quadtree" default:"quadtree"`
	CellsX      int     `help:"Number of grid columns. When columns and rows are 0, the cell size is used." default:"0"`
	CellsY      int     `help:"Number of grid rows. When columns and rows are 0, the cell size is used." default:"0"`
	CellSize    float64 `help:"Edge length of grid cells in degree." default:"0.01"`
	Capacity    int     `help:"Number of entries after which a quadtree node is divided." default:"50"`
	MinNodeSize float64 `help:"Quadtree nodes with a half-extent of at most this value are not divided any further." default:"0"`
	Filter      string  `help:"Only use nodes with this tag. Either 'key' or 'key=value'." placeholder:"<tag>"`
}

func (o IndexOptions) toConfig() index.Config {
	return index.Config{
		Kind:        index.Kind(o.Index),
		CellsX:      o.CellsX,
		CellsY:      o.CellsY,
		CellWidth:   o.CellSize,
		CellHeight:  o.CellSize,
		Capacity:    o.Capacity,
		MinNodeSize: o.MinNodeSize,
	}
}

var cli struct {
	Logging string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	Render  struct {
		Index    string  `help:"The index structure to use." enum:"list,grid,quadtree" default:"quadtree"`
		Width    int     `help:"Number of lattice columns." default:"10"`
		Height   int     `help:"Number of lattice rows." default:"10"`
		X        float64 `help:"X coordinate of the circle center." default:"0"`
		Y        float64 `help:"Y coordinate of the circle center." default:"0"`
		Radius   float64 `help:"Radius of the circle." default:"3"`
		CellsX   int     `help:"Number of grid columns." default:"3"`
		CellsY   int     `help:"Number of grid rows." default:"3"`
		Capacity int     `help:"Number of entries after which a quadtree node is divided." default:"5"`
	} `cmd:"" help:"Prints a lattice of points and marks all points within the given circle."`
	Bench struct {
		Size    int       `help:"Half the edge length of the square lattice used as input." default:"500"`
		Radii   []float64 `help:"The query radii." default:"5,10,20"`
		Queries int       `help:"Number of queries per radius." default:"100"`
	} `cmd:"" help:"Measures insertion and query times of all index structures."`
	Query struct {
		Input  string  `help:"The input file. Either .osm or .osm.pbf." placeholder:"<input-file>" arg:"" type:"existingfile"`
		X      float64 `help:"Longitude of the circle center." required:""`
		Y      float64 `help:"Latitude of the circle center." required:""`
		Radius float64 `help:"Radius of the circle in degree." required:""`
		Output string  `help:"The GeoJSON output file. Prints to stdout when not set." placeholder:"<output-file>" short:"o"`
		IndexOptions `embed:""`
	} `cmd:"" help:"Loads the nodes of the given OSM file and writes all nodes within the circle as GeoJSON."`
	Serve struct {
		Input        string `help:"The input file. Either .osm or .osm.pbf." placeholder:"<input-file>" arg:"" type:"existingfile"`
		Port         string `help:"The port of the HTTP server." default:"8080" short:"p"`
		IndexOptions `embed:""`
	} `cmd:"" help:"Loads the nodes of the given OSM file and serves in-circle queries via HTTP."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("Spatial neighbors"),
		kong.Description("A tool to find all points within a circle using different spatial indices."),
		kong.Vars{
			"version": VERSION,
		},
	)

	if strings.ToLower(cli.Logging) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(cli.Logging) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(cli.Logging) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", cli.Logging)
	}

	switch ctx.Command() {
	case "render":
		domain, err := render.LatticeDomain(cli.Render.Width, cli.Render.Height)
		sigolo.FatalCheck(err)

		config := index.Config{
			Kind:     index.Kind(cli.Render.Index),
			CellsX:   cli.Render.CellsX,
			CellsY:   cli.Render.CellsY,
			Capacity: cli.Render.Capacity,
		}
		spatialIndex, err := index.New[int](config, domain)
		sigolo.FatalCheck(err)

		hits, err := render.Lattice(spatialIndex, cli.Render.Width, cli.Render.Height, orb.Point{cli.Render.X, cli.Render.Y}, cli.Render.Radius, os.Stdout)
		sigolo.FatalCheck(err)

		sigolo.Infof("%d points are within the circle", hits)
	case "bench":
		_, err := bench.Run(bench.Config{
			Size:       cli.Bench.Size,
			Radii:      cli.Bench.Radii,
			Queries:    cli.Bench.Queries,
			Candidates: bench.DefaultCandidates(),
		})
		sigolo.FatalCheck(err)
	case "query <input>":
		filter, err := osm.ParseTagFilter(cli.Query.Filter)
		sigolo.FatalCheck(err)

		spatialIndex, _, err := osm.LoadIndex(cli.Query.Input, cli.Query.toConfig(), filter)
		sigolo.FatalCheck(err)

		nodes := spatialIndex.InCircle(orb.Point{cli.Query.X, cli.Query.Y}, cli.Query.Radius)
		sigolo.Infof("Found %d nodes", len(nodes))

		if cli.Query.Output == "" {
			err = ownIo.WriteNodesAsGeoJson(nodes, os.Stdout)
		} else {
			err = ownIo.WriteNodesAsGeoJsonFile(nodes, cli.Query.Output)
		}
		sigolo.FatalCheck(err)
	case "serve <input>":
		filter, err := osm.ParseTagFilter(cli.Serve.Filter)
		sigolo.FatalCheck(err)

		spatialIndex, _, err := osm.LoadIndex(cli.Serve.Input, cli.Serve.toConfig(), filter)
		sigolo.FatalCheck(err)

		web.StartServer(cli.Serve.Port, web.NewRouter(spatialIndex, &sync.RWMutex{}))
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}
