package graph

import (
	"sort"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint returns a 64-bit content hash of the graph, stable across
// rebuilds of equal documents. Node order does not affect the result.
func Fingerprint(g *Graph) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	guids := make([]string, 0, len(g.Nodes))
	for guid := range g.Nodes {
		guids = append(guids, guid)
	}
	sort.Strings(guids)
	for _, guid := range guids {
		node := g.Nodes[guid]
		hash.Write([]byte(node.GUID))
		hash.Write([]byte(node.Kind))
		hash.Write([]byte(node.Name))
		props := make([]string, 0, len(node.Properties))
		for name, value := range node.Properties {
			props = append(props, name+"="+value)
		}
		sort.Strings(props)
		for _, prop := range props {
			hash.Write([]byte(prop))
		}
		for _, pin := range node.Pins {
			hash.Write([]byte(pin.ID))
			hash.Write([]byte(pin.Name))
			hash.Write([]byte(string(pin.Direction)))
			hash.Write([]byte(string(pin.Kind)))
			hash.Write([]byte(pin.Default))
			links := make([]string, 0, len(pin.Links))
			for _, link := range pin.Links {
				links = append(links, link.NodeGUID+":"+link.PinID)
			}
			sort.Strings(links)
			for _, link := range links {
				hash.Write([]byte(link))
			}
		}
	}
	return hash.Sum64(), nil
}
