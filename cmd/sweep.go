/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/coons/InputParameters"
	"github.com/notargets/coons/coons"
	"github.com/notargets/coons/types"
	"github.com/notargets/coons/utils"
)

// SweepCmd represents the sweep command
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate a Coons patch over a lattice of points in its domain",
	Long: `Evaluate a Coons patch over a lattice of n points per direction, replacing
the query points of the job file. Triangle and prism lattices stay inside the
open simplex. Rows are printed as a table, one column per datum.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sweep called")
		pr := newPatchRun(cmd)
		job := processInput(pr)
		n := viper.GetInt("lattice")
		if _, err := RunSweep(cmd.OutOrStdout(), job, n, pr); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	SweepCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML job file with the domain, corners and curves")
	SweepCmd.Flags().IntP("lattice", "n", 8, "lattice points per direction")
	if err := viper.BindPFlag("lattice", SweepCmd.Flags().Lookup("lattice")); err != nil {
		panic(err)
	}
}

// Lattice returns the query points of an n lattice over a domain
func Lattice(dt types.DomainType, n int) (points [][]float64, err error) {
	if n < 1 {
		err = fmt.Errorf("lattice needs at least one point per direction, have %d", n)
		return
	}
	switch dt {
	case types.Domain_Square:
		points = coons.SquareLattice(n)
	case types.Domain_Triangle:
		points = coons.TriangleLattice(n)
	case types.Domain_Cube:
		points = coons.CubeLattice(n)
	case types.Domain_Prism:
		points = coons.PrismLattice(n)
	default:
		err = fmt.Errorf("no lattice for domain %s", dt)
	}
	return
}

// RunSweep replaces the job's query points with an n lattice, evaluates them
// over pr.Parallel goroutines and writes a table of the results
func RunSweep(w io.Writer, job *InputParameters.PatchJob, n int, pr *PatchRun) (results []coons.Result, err error) {
	var (
		ev    coons.Evaluator
		dt    = job.DomainType()
		start = time.Now()
	)
	if job.Points, err = Lattice(dt, n); err != nil {
		return
	}
	job.Print()
	if ev, err = job.Evaluator(); err != nil {
		return
	}
	if results, err = coons.Sweep(job.Points, ev, pr.Parallel); err != nil {
		return
	}
	elapsed := time.Since(start)

	var (
		header = coordLabels(dt)
		labels = gradLabels(job)
		tri, _ = job.Triangle()
		mapped = dt == types.Domain_Prism
	)
	if mapped {
		header = append(header, "x", "y")
	}
	size := results[0].Value.Size()
	for k := 0; k < size; k++ {
		header = append(header, fmt.Sprintf("f[%d]", k))
	}
	for _, l := range labels {
		for k := 0; k < size; k++ {
			header = append(header, fmt.Sprintf("%s[%d]", l, k))
		}
	}
	width := pr.Precision + 8
	writeRow(w, width, header)
	for _, r := range results {
		row := make([]string, 0, len(header))
		for _, c := range r.Point {
			row = append(row, strconv.FormatFloat(c, 'g', pr.Precision, 64))
		}
		if mapped {
			x, y := tri.ToCartesian(r.Point[0], r.Point[1])
			row = append(row,
				strconv.FormatFloat(x, 'g', pr.Precision, 64),
				strconv.FormatFloat(y, 'g', pr.Precision, 64))
		}
		for _, v := range r.Value.Data {
			row = append(row, strconv.FormatFloat(v, 'g', pr.Precision, 64))
		}
		for _, g := range r.Grad {
			for _, v := range g.Data {
				row = append(row, strconv.FormatFloat(v, 'g', pr.Precision, 64))
			}
		}
		writeRow(w, width, row)
	}
	fmt.Fprintf(w, "%d points in %v with %d goroutines, %s\n", len(results), elapsed, pr.Parallel, utils.MemUsage())
	return
}

func coordLabels(dt types.DomainType) []string {
	switch dt {
	case types.Domain_Triangle:
		return []string{"u", "v"}
	case types.Domain_Prism:
		return []string{"u", "v", "z"}
	case types.Domain_Cube:
		return []string{"x", "y", "z"}
	default:
		return []string{"x", "y"}
	}
}

func writeRow(w io.Writer, width int, cols []string) {
	var (
		sb strings.Builder
	)
	for _, c := range cols {
		sb.WriteString(fmt.Sprintf("%*s", width, c))
	}
	fmt.Fprintln(w, sb.String())
}
