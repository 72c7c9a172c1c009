/*
 * main.go, part of atomdb.
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

//Command atomdb is a minimal entry point to the species database: it
//compiles entries through the registered dataset routines, and prints or
//plots stored entries.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theochem/atomdb"
	_ "github.com/theochem/atomdb/datasets/numeric"
	"github.com/theochem/atomdb/radplot"
)

var (
	dataset  string
	datapath string
	nexc     int
)

func main() {
	root := &cobra.Command{
		Use:          "atomdb",
		Short:        "Compile and query the atomic species database",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dataset, "dataset", "numeric", "source dataset")
	root.PersistentFlags().StringVar(&datapath, "data", ".", "database root directory")
	root.PersistentFlags().IntVar(&nexc, "nexc", 0, "excitation index")
	root.AddCommand(compileCmd(), showCmd(), plotCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

//key parses the positional <elem> <charge> <mult> arguments.
func key(args []string) (string, int, int, error) {
	charge, err := strconv.Atoi(args[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("bad charge '%s'", args[1])
	}
	mult, err := strconv.Atoi(args[2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("bad multiplicity '%s'", args[2])
	}
	return args[0], charge, mult, nil
}

func compileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <elem> <charge> <mult>",
		Short: "Run the dataset's compute routine and store the entry",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			elem, charge, mult, err := key(args)
			if err != nil {
				return err
			}
			s, err := atomdb.Compile(elem, charge, mult, nexc, dataset, datapath)
			if err != nil {
				return err
			}
			fn, err := atomdb.DataFile(s.Elem(), s.Charge(), s.Mult(), s.Nexc(), dataset, datapath)
			if err != nil {
				return err
			}
			fmt.Printf("compiled %s charge %+d mult %d into %s\n", s.Elem(), s.Charge(), s.Mult(), fn)
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <elem> <charge> <mult>",
		Short: "Print a stored entry as JSON",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			elem, charge, mult, err := key(args)
			if err != nil {
				return err
			}
			s, err := atomdb.Load(elem, charge, mult, nexc, dataset, datapath)
			if err != nil {
				return err
			}
			b, err := s.ToJSON()
			if err != nil {
				return err
			}
			var out bytes.Buffer
			if err := json.Indent(&out, b, "", "  "); err != nil {
				return err
			}
			fmt.Println(out.String())
			return nil
		},
	}
}

func plotCmd() *cobra.Command {
	var quantity, spin, outfile string
	cmd := &cobra.Command{
		Use:   "plot <elem> <charge> <mult>",
		Short: "Plot a radial profile of a stored entry to a PNG file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			elem, charge, mult, err := key(args)
			if err != nil {
				return err
			}
			s, err := atomdb.Load(elem, charge, mult, nexc, dataset, datapath)
			if err != nil {
				return err
			}
			if outfile == "" {
				outfile = fmt.Sprintf("%s_%03d_%03d_%s.png", s.Elem(), charge, mult, quantity)
			}
			if err := radplot.Profile(s, quantity, spin, outfile, 0); err != nil {
				return err
			}
			fmt.Println("wrote", outfile)
			return nil
		},
	}
	cmd.Flags().StringVar(&quantity, "quantity", "dens", "profile to plot: dens, d_dens, dd_dens or ked")
	cmd.Flags().StringVar(&spin, "spin", "t", "spin channel: t, a, b or m")
	cmd.Flags().StringVar(&outfile, "out", "", "output PNG file")
	return cmd
}
