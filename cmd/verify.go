package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/notargets/quadindex/geometry2D"
	"github.com/notargets/quadindex/readfiles"
	"github.com/notargets/quadindex/utils"
)

// VerifyCmd represents the verify command
var VerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that an index file holds a valid independent quad index buffer",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			f readfiles.Format
		)
		fileName, _ := cmd.Flags().GetString("file")
		formatName, _ := cmd.Flags().GetString("fileFormat")
		if len(fileName) == 0 {
			return fmt.Errorf("must supply an index file (-F, --file)")
		}
		if len(formatName) == 0 {
			f = readfiles.FormatFromFilename(fileName)
		} else if f, err = readfiles.NewFormat(formatName); err != nil {
			return
		}
		return VerifyIndexFile(fileName, f, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(VerifyCmd)
	VerifyCmd.Flags().StringP("file", "F", "", "Index file to check")
	VerifyCmd.Flags().String("fileFormat", "", "Format of the index file: csv, inl or yaml (default from the file extension)")
}

func VerifyIndexFile(fileName string, f readfiles.Format, out io.Writer) (err error) {
	var (
		I utils.Index
	)
	if I, err = readfiles.ReadIndexFile(fileName, f); err != nil {
		return
	}
	if err = geometry2D.ValidateQuadIndices(I); err != nil {
		return fmt.Errorf("%s is not a valid quad index buffer: %w", fileName, err)
	}
	fmt.Fprintf(out, "%s: %d quads, %d triangles, %d indices\n",
		fileName, len(I)/geometry2D.IndicesPerQuad, len(I)/geometry2D.IndicesPerTri, len(I))
	return
}
