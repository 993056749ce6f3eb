package main

import (
	"fmt"
	"io"
	"os"
)

/*
logger is the verbose-flag switch for progress messages: true
prints them on stderr prefixed with the tool name, false drops
them.
*/
type logger bool

func (l logger) Logf(format string, a ...interface{}) {
	l.logTo(os.Stderr, format, a...)
}

func (l logger) logTo(w io.Writer, format string, a ...interface{}) {
	if !l {
		return
	}
	fmt.Fprintf(w, "treelight: "+format+"\n", a...)
}
