package rdf

import "strconv"

// blankNodeGenerator hands out sequential blank node labels for one parse.
type blankNodeGenerator struct {
	prefix  string
	counter int
}

func newBlankNodeGenerator(prefix string) *blankNodeGenerator {
	return &blankNodeGenerator{prefix: prefix}
}

// next returns the next blank node, e.g. genid1, genid2.
func (g *blankNodeGenerator) next() BlankNode {
	g.counter++
	return BlankNode{ID: g.prefix + strconv.Itoa(g.counter)}
}
