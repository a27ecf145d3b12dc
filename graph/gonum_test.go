/*
 * gonum_test.go, part of graphpot.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/rmera/graphpot/graph"
)

//The bonded graph implements gonum's graph.Directed, so gonum algorithms
//run on it directly. A BFS from the carbon must visit all of methane.
func TestGonumTraversal(t *testing.T) {
	g := graphCH4(t)
	visited := 0
	bfs := traverse.BreadthFirst{}
	bfs.Walk(g, g.Node(0), func(n gograph.Node, depth int) bool {
		visited++
		return false
	})
	require.Equal(t, g.NumNodes(), visited)
}

func TestGonumEdgeQueries(t *testing.T) {
	g := graphCH4(t)
	//every C-H bond shows up in both directions
	require.True(t, g.HasEdgeFromTo(0, 1))
	require.True(t, g.HasEdgeFromTo(1, 0))
	require.True(t, g.HasEdgeBetween(0, 4))
	require.NotNil(t, g.Edge(0, 2))
	require.Nil(t, g.Edge(0, 0))
	require.Nil(t, g.Node(99))
	//From must list the 4 neighbors of the carbon once each
	from := g.From(0)
	count := 0
	for from.Next() {
		count++
	}
	require.Equal(t, 4, count)
	e := graph.Edge{F: graph.Node(0), T: graph.Node(1)}
	require.Equal(t, int64(1), e.ReversedEdge().From().ID())
}
