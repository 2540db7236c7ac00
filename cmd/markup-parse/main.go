// Command markup-parse parses a markup document and prints the element
// tree.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/parserkit/comb/markup"
)

var (
	fileArg = kingpin.Arg("file", "Markup file to parse. Reads stdin if omitted.").ExistingFile()
)

func main() {
	kingpin.CommandLine.Help = "Parse a markup document and print the element tree."
	kingpin.Parse()

	name := "<stdin>"
	var (
		text []byte
		err  error
	)
	if *fileArg != "" {
		name = *fileArg
		text, err = os.ReadFile(*fileArg)
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	kingpin.FatalIfError(err, "read %s", name)

	element, err := markup.ParseNamed(name, string(text))
	kingpin.FatalIfError(err, "parse")

	repr.Println(element)
}
