package readfiles

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/quadindex/utils"
)

type Format uint8

const (
	CSV  Format = iota // 0,1,2,1,2,3 with no trailing newline
	INL                // brace initializer body, one quad per line, for inclusion in C/C++ sources
	YAML
)

var FormatNameMap = map[string]Format{
	"csv":  CSV,
	"txt":  CSV,
	"inl":  INL,
	"yaml": YAML,
	"yml":  YAML,
}

func NewFormat(label string) (f Format, err error) {
	var ok bool
	if f, ok = FormatNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown index file format [%s], must be one of csv, inl, yaml", label)
	}
	return
}

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case INL:
		return "inl"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

func FormatFromFilename(filename string) (f Format) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".inl":
		return INL
	case ".yaml", ".yml":
		return YAML
	}
	return CSV
}

// IndexDocument is the YAML form of an index file
type IndexDocument struct {
	NumQuads int   `json:"numQuads"`
	Indices  []int `json:"indices"`
}

const indicesPerQuad = 6

func WriteIndices(w io.Writer, I utils.Index, f Format) (err error) {
	switch f {
	case CSV:
		_, err = io.WriteString(w, I.String())
	case INL:
		var sb strings.Builder
		for n := 0; n < len(I); n += indicesPerQuad {
			end := n + indicesPerQuad
			if end > len(I) {
				end = len(I)
			}
			sb.WriteString(I[n:end].Join(","))
			sb.WriteString(",\n")
		}
		_, err = io.WriteString(w, sb.String())
	case YAML:
		var data []byte
		doc := IndexDocument{NumQuads: len(I) / indicesPerQuad, Indices: []int(I)}
		if doc.Indices == nil {
			doc.Indices = []int{}
		}
		if data, err = yaml.Marshal(doc); err != nil {
			return
		}
		_, err = w.Write(data)
	default:
		err = fmt.Errorf("unable to write index format %s", f)
	}
	return
}

// WriteIndexFile creates or truncates filename and writes I to it in a single pass
func WriteIndexFile(filename string, I utils.Index, f Format) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err = WriteIndices(file, I, f); err != nil {
		err = fmt.Errorf("writing %s: %w", filename, err)
	}
	return
}

func ReadIndices(r io.Reader, f Format) (I utils.Index, err error) {
	var (
		data []byte
	)
	if data, err = io.ReadAll(r); err != nil {
		return
	}
	switch f {
	case CSV, INL:
		I, err = utils.ParseIndex(string(data), ",")
	case YAML:
		var doc IndexDocument
		if err = yaml.Unmarshal(data, &doc); err != nil {
			return
		}
		I = utils.Index(doc.Indices)
		if I == nil {
			I = utils.Index{}
		}
		if doc.NumQuads*indicesPerQuad != len(I) {
			err = fmt.Errorf("document declares %d quads but holds %d indices", doc.NumQuads, len(I))
		}
	default:
		err = fmt.Errorf("unable to read index format %s", f)
	}
	return
}

func ReadIndexFile(filename string, f Format) (I utils.Index, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return
	}
	defer file.Close()
	if I, err = ReadIndices(file, f); err != nil {
		err = fmt.Errorf("reading %s: %w", filename, err)
	}
	return
}
