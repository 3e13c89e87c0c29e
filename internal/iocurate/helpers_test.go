package iocurate_test

import (
	"os"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/require"
)

func writeGzip(t *testing.T, path, content string) {
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
}
