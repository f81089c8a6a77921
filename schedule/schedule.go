// Package schedule orders the nodes of a shader into dependency tiers.
//
// Tier 0 holds every node without an incoming link. A node joins tier k+1
// once every node linking into it sits in tier k or earlier, so each link
// goes from a lower tier to a strictly higher one. Within a tier nodes are
// ordered by name, which makes the layout byte-stable for identical input.
package schedule

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/The0x539/eyesight-xml2py/ir"
)

// Tier is one layer of the schedule, sorted by node name.
type Tier []ir.Node

// Tiers layers the nodes of s. A dependency cycle, or a link naming a node
// that does not exist, fails with ErrCycleOrUnreachableNode.
func Tiers(s *ir.Shader) ([]Tier, error) {
	byName := make(map[string]ir.Node, len(s.Nodes))
	for _, n := range s.Nodes {
		byName[n.NodeName()] = n
	}

	indegree := make(map[string]int, len(s.Nodes))
	outbound := make(map[string][]string)
	var dangling []string
	for _, l := range s.Links {
		_, fromOK := byName[l.FromNode]
		_, toOK := byName[l.ToNode]
		if !fromOK || !toOK {
			dangling = append(dangling, fmt.Sprintf("%s.%s -> %s.%s", l.FromNode, l.FromSocket, l.ToNode, l.ToSocket))
			continue
		}
		indegree[l.ToNode]++
		outbound[l.FromNode] = append(outbound[l.FromNode], l.ToNode)
	}
	if len(dangling) > 0 {
		return nil, ir.NewError(ir.ErrCycleOrUnreachableNode, "",
			"links reference unknown nodes: %s", strings.Join(dangling, ", "))
	}

	var current Tier
	for _, n := range s.Nodes {
		if indegree[n.NodeName()] == 0 {
			current = append(current, n)
		}
	}

	var tiers []Tier
	placed := 0
	for len(current) > 0 {
		sortTier(current)
		tiers = append(tiers, current)
		placed += len(current)

		var next Tier
		for _, n := range current {
			for _, dst := range outbound[n.NodeName()] {
				indegree[dst]--
				if indegree[dst] == 0 {
					next = append(next, byName[dst])
				}
			}
		}
		current = next
	}

	if placed != len(s.Nodes) {
		var stuck []string
		for _, n := range s.Nodes {
			if indegree[n.NodeName()] > 0 {
				stuck = append(stuck, n.NodeName())
			}
		}
		slices.Sort(stuck)
		return nil, ir.NewError(ir.ErrCycleOrUnreachableNode, "",
			"dependency cycle, unplaced nodes: %s", strings.Join(stuck, ", "))
	}

	return tiers, nil
}

func sortTier(t Tier) {
	slices.SortFunc(t, func(a, b ir.Node) int {
		return cmp.Compare(a.NodeName(), b.NodeName())
	})
}

// Position is the cosmetic layout coordinate of a scheduled node.
type Position struct {
	Tier  int
	Index int
}

// Spacing between tiers and between nodes of a tier, in target units.
const (
	TierSpacing = 300
	RowSpacing  = 200
)

// Location returns the 2D editor location of the position. Tiers advance
// along x, nodes within a tier go down along y.
func (p Position) Location() (x, y int) {
	return p.Tier * TierSpacing, -p.Index * RowSpacing
}

// Layout returns the position of every scheduled node by name.
func Layout(tiers []Tier) map[string]Position {
	out := make(map[string]Position)
	for i, t := range tiers {
		for j, n := range t {
			out[n.NodeName()] = Position{Tier: i, Index: j}
		}
	}
	return out
}
