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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/coons/InputParameters"
	"github.com/notargets/coons/coons"
	"github.com/notargets/coons/types"
	"github.com/notargets/coons/utils"
)

type PatchRun struct {
	JobFile   string
	Parallel  int
	Precision int
}

const exampleFile = `
########################################
Title: "Plate"
Domain: triangle # square, triangle, cube or prism
Shape: [] # scalar field, [3, 3] for a tensor
Points: [[0.2, 0.3], [0.25, 0.25]]
Corners: {U: [1], V: [2], W: [0]}
Curves:
  WU: [[0], [1], [0.5]] # coefficients of t^0, t^1, t^2
########################################
`

// EvalCmd represents the eval command
var EvalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a Coons patch and its gradient at the query points of a job file",
	Long: `Evaluate a Coons patch and its gradient at the query points of a job file.
Edges without curve coefficients are straight lines between their corners.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("eval called")
		pr := newPatchRun(cmd)
		job := processInput(pr)
		job.Print()
		if _, err := RunEval(cmd.OutOrStdout(), job, pr); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(EvalCmd)
	EvalCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML job file with the domain, corners, curves and query points")
}

func newPatchRun(cmd *cobra.Command) (pr *PatchRun) {
	var (
		err error
	)
	pr = &PatchRun{
		Parallel:  viper.GetInt("parallel"),
		Precision: viper.GetInt("precision"),
	}
	if pr.JobFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
		panic(err)
	}
	return
}

func processInput(pr *PatchRun) (job *InputParameters.PatchJob) {
	var (
		err  error
		data []byte
	)
	if len(pr.JobFile) == 0 {
		err = fmt.Errorf("must supply a job file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(pr.JobFile); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	job = &InputParameters.PatchJob{}
	if err = job.Parse(data); err != nil {
		fmt.Printf("error: reading %s: %s\n", pr.JobFile, err.Error())
		os.Exit(1)
	}
	return
}

// RunEval evaluates every query point of the job and writes one block per
// point with the value and each gradient component
func RunEval(w io.Writer, job *InputParameters.PatchJob, pr *PatchRun) (results []coons.Result, err error) {
	var (
		ev coons.Evaluator
	)
	if ev, err = job.Evaluator(); err != nil {
		return
	}
	if results, err = coons.Sweep(job.Points, ev, pr.Parallel); err != nil {
		return
	}
	labels := gradLabels(job)
	for _, r := range results {
		fmt.Fprintf(w, "point %s\n", formatFloats(r.Point, pr.Precision))
		fmt.Fprintf(w, "\tvalue\t= %s\n", formatField(r.Value, pr.Precision))
		for i, g := range r.Grad {
			fmt.Fprintf(w, "\t%s\t= %s\n", labels[i], formatField(g, pr.Precision))
		}
	}
	return
}

// gradLabels names the frame each gradient component is taken in
func gradLabels(job *InputParameters.PatchJob) []string {
	switch job.DomainType() {
	case types.Domain_Triangle:
		return []string{"d/du", "d/dv"}
	case types.Domain_Prism:
		if job.Barycentric {
			return []string{"d/du", "d/dv", "d/dz"}
		}
		return []string{"d/dx", "d/dy", "d/dz"}
	case types.Domain_Cube:
		return []string{"d/dx", "d/dy", "d/dz"}
	default:
		return []string{"d/dx", "d/dy"}
	}
}

func formatFloats(vals []float64, precision int) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = strconv.FormatFloat(v, 'g', precision, 64)
	}
	return "[" + strings.Join(s, " ") + "]"
}

func formatField(f utils.Field, precision int) string {
	if f.IsScalar() {
		return strconv.FormatFloat(f.Data[0], 'g', precision, 64)
	}
	return fmt.Sprintf("%v%s", f.Shape, formatFloats(f.Data, precision))
}
