package osm

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Node is the payload stored in the spatial index for every imported OSM node. The position is in lon/lat order.
type Node struct {
	ID       osm.NodeID
	Position orb.Point
}

func NewNode(node *osm.Node) Node {
	return Node{
		ID:       node.ID,
		Position: orb.Point{node.Lon, node.Lat},
	}
}
