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

/*Package numeric compiles database entries from pretabulated numeric radial
profiles, the output of an external quantum-chemistry pipeline dumped as
plain-text tables in the raw-artifact area of the database:

	<datapath>/numeric/raw/<ELEM>_<charge>_<mult>_<nexc>.grid.dat

and, with the same key, .mo_dens_a.dat, .mo_dens_b.dat, .dens_tot.dat (and
the analogous files for the density gradient, Laplacian and kinetic energy
density), .mo_energy_[ab].dat, .mo_occs_[ab].dat, .scf.dat with the scalar
properties as "name value" lines, and .basis.dat naming the basis set on a
single line.

Each table holds one row of whitespace-separated floats per line; lines
starting with # are comments. Per-orbital files hold one orbital per row
over the radial grid; vector files hold a single row. Only the grid file is
required, every other quantity is an empty placeholder when its file is
absent.

Importing this package registers its compute routine under the dataset name
"numeric".*/
package numeric
