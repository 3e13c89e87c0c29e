package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnbarcode/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors verifies structure of errors raised by the package.
func TestErrors(t *testing.T) {
	cause := errors.New("root cause")

	tests := []struct {
		name  string
		err   error
		code  gn.ErrorCode
		path  string
		inner string
	}{
		{
			"create dir", CreateDirError("/dir", cause),
			errcode.CreateDirError, "/dir", "cannot create",
		},
		{
			"copy file", CopyFileError("/file", cause),
			errcode.CopyFileError, "/file", "cannot copy",
		},
		{
			"read file", ReadFileError("/path", cause),
			errcode.ReadFileError, "/path", "cannot read /path",
		},
		{
			"stage file", StageFileError("/out.tsv", cause),
			errcode.StageFileError, "/out.tsv", "scratch file for /out.tsv",
		},
		{
			"commit file", CommitFileError("/out.fasta", cause),
			errcode.CommitFileError, "/out.fasta", "cannot commit /out.fasta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "%s")
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, tt.path, gnErr.Vars[0])

			assert.ErrorIs(t, gnErr.Err, cause)
			assert.Contains(t, gnErr.Err.Error(), "from github.com/gnames/gnbarcode/internal/iofs.TestErrors")
			assert.NotContains(t, gnErr.Err.Error(), "&{")
			assert.Contains(t, gnErr.Err.Error(), tt.inner)
		})
	}
}
