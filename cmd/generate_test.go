package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/quadindex/InputParameters"
	"github.com/notargets/quadindex/geometry2D"
	"github.com/notargets/quadindex/readfiles"
)

func newTestParameters(t *testing.T, numQuads int) (qp *InputParameters.QuadParameters) {
	qp = InputParameters.NewQuadParameters()
	qp.NumQuads = numQuads
	qp.OutputFile = filepath.Join(t.TempDir(), InputParameters.DefaultOutputFile)
	return
}

func TestRunQuads(t *testing.T) {
	{ // Test one quad writes exactly the csv string
		var out bytes.Buffer
		qp := newTestParameters(t, 1)
		require.NoError(t, RunQuads(qp, &out))
		data, err := os.ReadFile(qp.OutputFile)
		require.NoError(t, err)
		assert.Equal(t, "0,1,2,1,2,3", string(data))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Equal(t, 3, len(lines))
		assert.Equal(t, "Generating indices for 1 quads...", lines[0])
		assert.Equal(t, "0,1,2,1,2,3", lines[1])
		assert.Contains(t, lines[2], "successfully written")
	}
	{ // Test printing can be turned off
		var out bytes.Buffer
		qp := newTestParameters(t, 2)
		qp.PrintIndices = false
		require.NoError(t, RunQuads(qp, &out))
		assert.NotContains(t, out.String(), "0,1,2")
	}
	{ // Test start index and inl output
		var out bytes.Buffer
		qp := newTestParameters(t, 1)
		qp.StartIndex = 4
		qp.Format = "inl"
		require.NoError(t, RunQuads(qp, &out))
		data, err := os.ReadFile(qp.OutputFile)
		require.NoError(t, err)
		assert.Equal(t, "4,5,6,5,6,7,\n", string(data))
	}
	{ // Test a negative count is lenient by default
		var out bytes.Buffer
		qp := newTestParameters(t, -1)
		require.NoError(t, RunQuads(qp, &out))
		data, err := os.ReadFile(qp.OutputFile)
		require.NoError(t, err)
		assert.Equal(t, 0, len(data))
	}
	{ // Test a negative count fails in strict mode without writing
		var out bytes.Buffer
		qp := newTestParameters(t, -1)
		qp.Strict = true
		err := RunQuads(qp, &out)
		assert.True(t, errors.Is(err, geometry2D.ErrInvalidQuadCount))
		_, err = os.Stat(qp.OutputFile)
		assert.True(t, os.IsNotExist(err))
	}
	{ // Test a write failure is reported and returned
		var out bytes.Buffer
		qp := newTestParameters(t, 1)
		qp.OutputFile = filepath.Join(t.TempDir(), "no_such_dir", "quad_indices.txt")
		err := RunQuads(qp, &out)
		assert.Error(t, err)
		assert.Contains(t, out.String(), "Error writing to file:")
		assert.NotContains(t, out.String(), "successfully")
	}
}

func TestResolveParameters(t *testing.T) {
	{ // Test defaults
		qp, err := resolveParameters(viper.New(), "")
		require.NoError(t, err)
		assert.Equal(t, 65536, qp.NumQuads)
		assert.Equal(t, "quad_indices.txt", qp.OutputFile)
		assert.Equal(t, readfiles.CSV, qp.IndexFormat())
	}
	{ // Test the input file is overridden by set values
		inputFile := filepath.Join(t.TempDir(), "quads.yaml")
		require.NoError(t, os.WriteFile(inputFile, []byte(`
Title: Text Batch
NumQuads: 16
OutputFile: text.inl
Format: inl
`), 0644))
		v := viper.New()
		v.Set("numQuads", 32)
		v.Set("strict", true)
		qp, err := resolveParameters(v, inputFile)
		require.NoError(t, err)
		assert.Equal(t, "Text Batch", qp.Title)
		assert.Equal(t, 32, qp.NumQuads)
		assert.Equal(t, "text.inl", qp.OutputFile)
		assert.Equal(t, readfiles.INL, qp.IndexFormat())
		assert.True(t, qp.Strict)
	}
	{ // Test invalid values are rejected
		v := viper.New()
		v.Set("format", "xml")
		_, err := resolveParameters(v, "")
		assert.Error(t, err)

		_, err = resolveParameters(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	}
}

func TestVerifyIndexFile(t *testing.T) {
	dir := t.TempDir()
	{ // Test a generated file verifies
		var out bytes.Buffer
		fileName := filepath.Join(dir, "good.txt")
		require.NoError(t, readfiles.WriteIndexFile(fileName, geometry2D.QuadIndices(10), readfiles.CSV))
		require.NoError(t, VerifyIndexFile(fileName, readfiles.CSV, &out))
		assert.Contains(t, out.String(), "10 quads, 20 triangles, 60 indices")
	}
	{ // Test a corrupted file fails
		var out bytes.Buffer
		fileName := filepath.Join(dir, "bad.txt")
		require.NoError(t, os.WriteFile(fileName, []byte("0,1,2,0,2,3"), 0644))
		assert.Error(t, VerifyIndexFile(fileName, readfiles.CSV, &out))
	}
}
