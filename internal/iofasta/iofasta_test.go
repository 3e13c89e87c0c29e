package iofasta_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gnames/gnbarcode/internal/iofasta"
	"github.com/gnames/gnbarcode/pkg/bold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const data = `>GBMIN1|Apis mellifera|COI-5P|KX1
ACGTNN
acgt
>GBMIN2|Bombus|COI-5P
GGCC-TT
`

func TestScan(t *testing.T) {
	var recs []iofasta.Record
	err := iofasta.Scan(strings.NewReader(data), func(r iofasta.Record) error {
		recs = append(recs, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "GBMIN1|Apis", recs[0].ID)
	assert.Equal(t, "mellifera|COI-5P|KX1", recs[0].Desc)
	assert.Equal(t, "ACGTNNacgt", recs[0].Seq)
	assert.Equal(t, "GBMIN2|Bombus|COI-5P", recs[1].ID)
}

func TestIDs(t *testing.T) {
	ids, err := iofasta.IDs(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"GBMIN1|Apis", "GBMIN2|Bombus|COI-5P"}, ids)

	ids, err = iofasta.IDs(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStats(t *testing.T) {
	st, err := iofasta.Stats(strings.NewReader(data))
	require.NoError(t, err)
	// lower case letters and gaps are not counted
	assert.Equal(t, bold.SeqStats{Sequences: 2, BasePairs: 10}, st)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := iofasta.Write(&buf, []bold.FastaEntry{
		{Header: "A1 Arthropoda;Insecta;;;;", Sequence: "ACGT"},
		{Header: "A2 Arthropoda;Insecta;;;;", Sequence: ""},
	})
	require.NoError(t, err)
	assert.Equal(t,
		">A1 Arthropoda;Insecta;;;;\nACGT\n>A2 Arthropoda;Insecta;;;;\n\n",
		buf.String())
}
