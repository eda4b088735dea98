package io

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"io"
	"os"
	"spatialneighbors/osm"
	"time"
)

func WriteNodesAsGeoJsonFile(nodes []osm.Node, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "Unable to create GeoJSON file %s", filename)
	}

	defer func() {
		err = file.Close()
		sigolo.FatalCheck(errors.Wrapf(err, "Unable to close file handle for GeoJSON file %s", file.Name()))
	}()

	return WriteNodesAsGeoJson(nodes, file)
}

// WriteNodesAsGeoJson writes one point feature per node as feature collection.
func WriteNodesAsGeoJson(nodes []osm.Node, writer io.Writer) error {
	sigolo.Debugf("Write %d nodes to GeoJSON", len(nodes))
	writeStartTime := time.Now()

	featureCollection := geojson.NewFeatureCollection()
	for _, node := range nodes {
		geoJsonFeature := geojson.NewFeature(node.Position)
		geoJsonFeature.Properties["@osm_id"] = node.ID
		geoJsonFeature.Properties["@osm_type"] = "node"

		featureCollection.Append(geoJsonFeature)
	}

	geojsonBytes, err := featureCollection.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Unable to marshal GeoJSON feature collection")
	}

	_, err = writer.Write(geojsonBytes)
	if err != nil {
		return errors.Wrap(err, "Unable to write GeoJSON data")
	}

	sigolo.Debugf("Finished writing in %s", time.Since(writeStartTime))

	return nil
}
