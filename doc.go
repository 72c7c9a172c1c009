/*
 * doc.go, part of atomdb.
 *
 * Copyright 2023 The AtomDB Developers
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

/*Package atomdb implements a file-backed database of precomputed atomic and
ionic properties: energies, orbital energies and occupations, and radial
profiles of the electron density, its derivatives, and the kinetic energy
density.

A database entry is a SpeciesData record, produced once by a dataset-specific
compute routine (an external quantum-chemistry pipeline) and read-only
afterwards. The record is wrapped in a Species, which derives charge,
multiplicity and spin number from the identity fields and exposes the
tabulated radial profiles as continuous functions via cubic-spline
interpolation (DensitySpline, not-a-knot boundary conditions, optional
log-domain fitting for strictly positive quantities).

Records are stored one per file as zstd-compressed MessagePack under

	<datapath>/<dataset>/db/<ELEM>_<charge>_<mult>_<nexc>.msgz

with charge, multiplicity and excitation index zero-padded to three digits.
Raw intermediate artifacts from the compute routines live under
<datapath>/<dataset>/raw/ with the same key. Queries take either an exact key
(Load) or a per-field exact/wildcard selection (LoadAll), the latter
returning every matching record.

Dataset compute routines register themselves with RegisterDataset; Compile
dispatches to the registered routine and stores the result.*/
package atomdb
