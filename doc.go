/*
 * doc.go, part of graphpot.
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

/*Package pot is the main package of the graphPot library: graph-based
machine-learning potentials for crystals and molecules.


	**graphPot capabilities**

    Represents crystals (fractional coordinates plus lattice) and molecules
	(cartesian coordinates) as immutable Structure values.

    Converts structures into bonded graphs via a periodic neighbor-list
	search at a cutoff radius: one node per atom, one directed edge per
	ordered neighbor pair, with the periodic image offset of every bond.

    Computes bond vectors and distances for every edge of a bonded graph,
	respecting periodic images (package graph).

    Builds line graphs over bond pairs, in undirected and directed variants,
	for the three-body (angular) terms of the potentials (package graph).

    Computes the angular features (cos theta, theta, and the reserved phi
	slot) consumed by the message-passing layers (package graph).

    Prunes graph edges by a predicate on any scalar edge attribute
	(package graph).

    Accumulates angular distribution functions from line graphs and plots
	them (package adf).

    Downloads and caches pretrained model archives, with transparent zstd
	and gzip decompression (package data).

All the per-structure computations are synchronous, CPU-bound and free of
shared mutable state: batching and parallelism across structures belong to
the caller's data pipeline, which can simply run one goroutine per structure.

The training loops, the neural-network layers themselves and the
serialization of trained weights live outside this library, on top of the
tensor framework of your choice.
*/
package pot
