package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhinav/huffcode/internal/huffman"
	"github.com/abhinav/huffcode/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newReport(t *testing.T, text string) *Report {
	t.Helper()

	freqs := token.CountString(text, 64)
	codes, err := huffman.Codes(freqs)
	require.NoError(t, err)
	return New(freqs, codes)
}

func TestNew(t *testing.T) {
	t.Parallel()

	r := newReport(t, "aa b aa")
	assert.Equal(t, 3, r.Symbols)
	assert.Equal(t, 5, r.Total)
	assert.Equal(t, []Entry{
		{Symbol: "aa", Frequency: 2, Code: "0"},
		{Symbol: "b", Frequency: 1, Code: "10"},
		{Symbol: " ", Frequency: 2, Code: "11"},
	}, r.Codes)
	assert.Equal(t, 8, r.Bits)
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	r := &Report{
		Symbols: 3,
		Total:   115,
		Bits:    130,
		Codes: []Entry{
			{Symbol: "the", Frequency: 100, Code: "0"},
			{Symbol: " ", Frequency: 10, Code: "10"},
			{Symbol: "日本", Frequency: 5, Code: "11"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, Text))
	assert.Equal(t, strings.Join([]string{
		"the   100  0",
		`" "    10  10`,
		"日本    5  11",
		"115 symbols, 3 distinct, 130 bits",
		"",
	}, "\n"), buf.String())
}

func TestWriteStructured(t *testing.T) {
	t.Parallel()

	r := newReport(t, "x, x")

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, r.Write(&buf, JSON))

		var got Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, *r, got)
		assert.Contains(t, buf.String(), `"symbol": ","`)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, r.Write(&buf, YAML))

		var got Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, *r, got)
		assert.Contains(t, buf.String(), "codes:\n  - symbol: x\n")
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		err := r.Write(new(bytes.Buffer), Format("xml"))
		assert.ErrorContains(t, err, `unknown format "xml"`)
	})
}

func TestFormatSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    string
		want    Format
		wantErr string
	}{
		{give: "text", want: Text},
		{give: "YAML", want: YAML},
		{give: "json", want: JSON},
		{give: "csv", wantErr: `unknown format "csv"`},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			var f Format
			err := f.Set(tt.give)
			if len(tt.wantErr) > 0 {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
			assert.Equal(t, string(tt.want), f.String())
		})
	}
}

func TestFormatUnmarshalYAML(t *testing.T) {
	t.Parallel()

	var got struct {
		Format Format `yaml:"format"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("format: json\n"), &got))
	assert.Equal(t, JSON, got.Format)

	err := yaml.Unmarshal([]byte("format: xml\n"), &got)
	assert.ErrorContains(t, err, "unknown format")
}

func TestQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want string
	}{
		{give: "word", want: "word"},
		{give: "don't", want: "don't"},
		{give: ",", want: ","},
		{give: " ", want: `" "`},
		{give: "\n", want: `"\n"`},
		{give: `"`, want: `"\""`},
		{give: "", want: `""`},
		{give: "é", want: "é"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.give), "Quote(%q)", tt.give)
	}
}
