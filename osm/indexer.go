package osm

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/osm"
	"spatialneighbors/index"
)

// NodeIndexer inserts every node matching the filter into the spatial index.
type NodeIndexer struct {
	spatialIndex index.SpatialIndex[Node]
	filter       TagFilter
}

func NewNodeIndexer(spatialIndex index.SpatialIndex[Node], filter TagFilter) *NodeIndexer {
	return &NodeIndexer{
		spatialIndex: spatialIndex,
		filter:       filter,
	}
}

func (i *NodeIndexer) Name() string {
	return "NodeIndexer"
}

func (i *NodeIndexer) Init() error {
	return nil
}

func (i *NodeIndexer) HandleNode(node *osm.Node) error {
	if !i.filter.Matches(node.Tags) {
		return nil
	}

	sigolo.Tracef("Index node %d at %f,%f", node.ID, node.Lon, node.Lat)
	indexNode := NewNode(node)
	return i.spatialIndex.Insert(indexNode.Position, indexNode)
}

func (i *NodeIndexer) HandleWay(way *osm.Way) error {
	return nil
}

func (i *NodeIndexer) HandleRelation(relation *osm.Relation) error {
	return nil
}

func (i *NodeIndexer) Done() error {
	sigolo.Debugf("Indexed %d nodes", i.spatialIndex.Count())
	return nil
}
