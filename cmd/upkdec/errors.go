package main

import "errors"

var (
	ErrAlreadyConverted = errors.New("file name already carries the output suffix")
	ErrNoInputFiles     = errors.New("no input files")
	ErrNotPackageFile   = errors.New("not a package file")
	ErrSuffixRequired   = errors.New("suffix required")
)
