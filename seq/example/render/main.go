package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/charmbracelet/log"

	"github.com/BurntSushi/protseq/seq"
)

var (
	flagMode = "short"
	flagFind = ""
)

func main() {
	if flag.NArg() < 1 {
		usage()
	}

	mode, err := seq.ParseMode(flagMode)
	if err != nil {
		log.Fatal("bad mode", "err", err)
	}

	// A single argument may be a run of one letter codes. More than one
	// argument is always a list of residue names.
	var input interface{} = flag.Args()
	if flag.NArg() == 1 {
		input = flag.Arg(0)
	}
	s, err := seq.New(input)
	if err != nil {
		log.Fatal("could not read sequence", "err", err)
	}
	log.Info("read sequence", "residues", s.Len())

	if len(flagFind) > 0 {
		pattern, err := seq.FromString(flagFind)
		if err != nil {
			log.Fatal("could not read pattern", "err", err)
		}
		i, err := s.HasSubSequence(pattern, 0)
		switch {
		case err != nil:
			log.Warn("pattern is longer than the sequence", "err", err)
		case i == seq.NotFound:
			log.Info("pattern not found", "pattern", pattern)
		default:
			log.Info("pattern found", "pattern", pattern, "index", i,
				"count", s.Count(pattern))
		}
	}

	if err := s.SetMode(mode); err != nil {
		log.Fatal("could not set mode", "err", err)
	}
	fmt.Println(s)
}

func init() {
	log.SetReportTimestamp(false)
	log.SetPrefix(path.Base(os.Args[0]))

	flag.StringVar(&flagMode, "mode", flagMode,
		"Render mode: 'short', 'medium' or 'long'.")
	flag.StringVar(&flagFind, "find", flagFind,
		"A run of one letter codes to search for.")
	flag.Usage = usage
	flag.Parse()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] residue ...\n",
		path.Base(os.Args[0]))
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr,
		"\nex. './%s -mode long -find KW MKWVTFISLL'\n"+
			"    './%s Met Lys Trp'\n",
		path.Base(os.Args[0]), path.Base(os.Args[0]))
	os.Exit(1)
}
