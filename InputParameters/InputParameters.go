package InputParameters

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"
	"github.com/go-playground/validator/v10"

	"github.com/notargets/quadindex/readfiles"
)

const (
	DefaultNumQuads   = 65536
	DefaultOutputFile = "quad_indices.txt"
	DefaultFormat     = "csv"
)

var paramValidate *validator.Validate

func init() {
	paramValidate = validator.New()
	_ = paramValidate.RegisterValidation("indexformat", validateIndexFormat)
}

func validateIndexFormat(fl validator.FieldLevel) bool {
	_, err := readfiles.NewFormat(fl.Field().String())
	return err == nil
}

// Parameters obtained from the YAML input file, command line and environment
type QuadParameters struct {
	Title        string `json:"Title"`
	NumQuads     int    `json:"NumQuads"` // Negative counts are allowed, they produce an empty index list
	StartIndex   int    `json:"StartIndex"`
	OutputFile   string `json:"OutputFile" validate:"required"`
	Format       string `json:"Format" validate:"required,indexformat"`
	Strict       bool   `json:"Strict"` // A negative NumQuads is an error instead of a warning
	PrintIndices bool   `json:"PrintIndices"`
}

func NewQuadParameters() (qp *QuadParameters) {
	return &QuadParameters{
		Title:        "Quad Indices",
		NumQuads:     DefaultNumQuads,
		OutputFile:   DefaultOutputFile,
		Format:       DefaultFormat,
		PrintIndices: true,
	}
}

// Parse overlays the YAML document onto qp, keys missing from data keep their current values
func (qp *QuadParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, qp)
}

func (qp *QuadParameters) Validate() (err error) {
	if err = paramValidate.Struct(qp); err != nil {
		err = fmt.Errorf("invalid quad parameters: %w", err)
	}
	return
}

func (qp *QuadParameters) IndexFormat() (f readfiles.Format) {
	var err error
	if f, err = readfiles.NewFormat(qp.Format); err != nil {
		// Validate has not been called, fall back to the output file extension
		f = readfiles.FormatFromFilename(qp.OutputFile)
	}
	return
}

func (qp *QuadParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", qp.Title)
	fmt.Fprintf(w, "[%d]\t\t\t= Number of Quads\n", qp.NumQuads)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Start Index\n", qp.StartIndex)
	fmt.Fprintf(w, "[%s]\t= Output File\n", qp.OutputFile)
	fmt.Fprintf(w, "[%s]\t\t\t= Format\n", qp.Format)
	fmt.Fprintf(w, "[%v]\t\t\t= Strict\n", qp.Strict)
}
