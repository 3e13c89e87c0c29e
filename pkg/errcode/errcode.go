package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	StageFileError
	CommitFileError

	// Logging errors
	LogFileError

	// Table errors
	TableOpenError
	TableFieldCountError
	TableDuplicateIDError
	TableHeaderError
	TableWriteError

	// Curate errors
	CurateSpecimensError
	CurateSequencesError
	CurateOutputError

	// Manifest errors
	ManifestScanError
	ManifestColumnError

	// Subset errors
	SubsetPatternError
	SubsetNoMatchError

	// Primer errors
	PrimerInvalidError

	// BOLD API errors
	BoldRequestError
	BoldResponseError
	BoldFastaError
)
