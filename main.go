/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
// Package main provides the gnbarcode CLI application.
package main

import "github.com/gnames/gnbarcode/cmd"

func main() {
	cmd.Execute()
}
