package osm

import (
	"context"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"io"
	"os"
	"strings"
	"time"
)

// OsmDataHandler receives all OSM objects of a file in the order they appear in the file. Handlers are called in the
// order they have been passed to the reader.
type OsmDataHandler interface {
	Name() string
	Init() error
	HandleNode(node *osm.Node) error
	HandleWay(way *osm.Way) error
	HandleRelation(relation *osm.Relation) error
	Done() error
}

type OsmReader struct {
	firstWayHasBeenProcessed      bool
	firstRelationHasBeenProcessed bool
}

func NewOsmReader() *OsmReader {
	return &OsmReader{}
}

// Read streams the given .osm or .pbf file through all handlers.
func (r *OsmReader) Read(filename string, handlers ...OsmDataHandler) error {
	r.firstWayHasBeenProcessed = false
	r.firstRelationHasBeenProcessed = false

	file, scanner, err := openScanner(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	defer func() {
		closeErr := scanner.Close()
		if closeErr != nil {
			sigolo.Errorf("Unable to close OSM scanner for %s: %+v", filename, closeErr)
		}
	}()

	sigolo.Infof("Start processing OSM data file %s", filename)
	readStartTime := time.Now()

	for _, handler := range handlers {
		err = handler.Init()
		if err != nil {
			return errors.Wrapf(err, "Initializing OSM data handler '%s' failed", handler.Name())
		}
	}

	sigolo.Debug("Start processing nodes (1/3)")
	for scanner.Scan() {
		switch osmObj := scanner.Object().(type) {
		case *osm.Node:
			for _, handler := range handlers {
				err = handler.HandleNode(osmObj)
				if err != nil {
					return errors.Wrapf(err, "Handling node %d using handler '%s' failed", osmObj.ID, handler.Name())
				}
			}
		case *osm.Way:
			if !r.firstWayHasBeenProcessed {
				sigolo.Debug("Start processing ways (2/3)")
				r.firstWayHasBeenProcessed = true
			}

			for _, handler := range handlers {
				err = handler.HandleWay(osmObj)
				if err != nil {
					return errors.Wrapf(err, "Handling way %d using handler '%s' failed", osmObj.ID, handler.Name())
				}
			}
		case *osm.Relation:
			if !r.firstRelationHasBeenProcessed {
				sigolo.Debug("Start processing relations (3/3)")
				r.firstRelationHasBeenProcessed = true
			}

			for _, handler := range handlers {
				err = handler.HandleRelation(osmObj)
				if err != nil {
					return errors.Wrapf(err, "Handling relation %d using handler '%s' failed", osmObj.ID, handler.Name())
				}
			}
		}
	}

	err = scanner.Err()
	if err != nil {
		return errors.Wrapf(err, "Unable to read OSM data from %s", filename)
	}

	for _, handler := range handlers {
		err = handler.Done()
		if err != nil {
			return errors.Wrapf(err, "Calling done function on handler '%s' failed", handler.Name())
		}
	}

	sigolo.Infof("Done processing OSM data in %s", time.Since(readStartTime))

	return nil
}

// newScanner creates the scanner reading the opened file.
var newScanner = func(reader io.Reader, isPbf bool) osm.Scanner {
	if isPbf {
		return osmpbf.New(context.Background(), reader, 1)
	}
	return osmxml.New(context.Background(), reader)
}

func openScanner(filename string) (*os.File, osm.Scanner, error) {
	isXml := strings.HasSuffix(filename, ".osm")
	isPbf := strings.HasSuffix(filename, ".pbf")
	if !isXml && !isPbf {
		return nil, nil, errors.Errorf("Input file %s must be an .osm or .pbf file", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "Unable to open OSM input file %s", filename)
	}

	return file, newScanner(file, isPbf), nil
}
