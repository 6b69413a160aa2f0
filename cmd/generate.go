package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/quadindex/InputParameters"
	"github.com/notargets/quadindex/geometry2D"
	"github.com/notargets/quadindex/readfiles"
	"github.com/notargets/quadindex/utils"
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate quad indices and write them to a file",
	Long: `Generate the triangle list index buffer for a number of independent quads.
Quad n uses vertices 4n..4n+3 and is written as the triangles (4n, 4n+1, 4n+2) and (4n+1, 4n+2, 4n+3).`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(GenerateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	var (
		qp *InputParameters.QuadParameters
	)
	inputFile, _ := cmd.Flags().GetString("inputFile")
	if qp, err = resolveParameters(viper.GetViper(), inputFile); err != nil {
		return
	}
	if len(inputFile) != 0 {
		qp.Print(cmd.OutOrStdout())
	}
	return RunQuads(qp, cmd.OutOrStdout())
}

// resolveParameters layers the input file, then config file, environment and changed flags over the defaults
func resolveParameters(v *viper.Viper, inputFile string) (qp *InputParameters.QuadParameters, err error) {
	qp = InputParameters.NewQuadParameters()
	if len(inputFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(inputFile); err != nil {
			return nil, err
		}
		if err = qp.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", inputFile, err)
		}
	}
	if v.IsSet("numQuads") {
		qp.NumQuads = v.GetInt("numQuads")
	}
	if v.IsSet("startIndex") {
		qp.StartIndex = v.GetInt("startIndex")
	}
	if v.IsSet("outputFile") {
		qp.OutputFile = v.GetString("outputFile")
	}
	if v.IsSet("format") {
		qp.Format = v.GetString("format")
	}
	if v.IsSet("strict") {
		qp.Strict = v.GetBool("strict")
	}
	if v.IsSet("print") {
		qp.PrintIndices = v.GetBool("print")
	}
	if err = qp.Validate(); err != nil {
		return nil, err
	}
	return
}

// RunQuads generates the indices described by qp, reports on out and writes the output file
func RunQuads(qp *InputParameters.QuadParameters, out io.Writer) (err error) {
	var (
		I utils.Index
	)
	fmt.Fprintf(out, "Generating indices for %d quads...\n", qp.NumQuads)
	if qp.Strict {
		if I, err = geometry2D.QuadIndicesFromStrict(qp.NumQuads, qp.StartIndex); err != nil {
			return
		}
	} else {
		I = geometry2D.QuadIndicesFrom(qp.NumQuads, qp.StartIndex)
	}
	if qp.PrintIndices {
		fmt.Fprintln(out, I.String())
	}
	if err = readfiles.WriteIndexFile(qp.OutputFile, I, qp.IndexFormat()); err != nil {
		fmt.Fprintf(out, "Error writing to file: %v\n", err)
		return fmt.Errorf("unable to write %s: %w", qp.OutputFile, err)
	}
	fmt.Fprintf(out, "Indices successfully written to %s\n", qp.OutputFile)
	return
}
