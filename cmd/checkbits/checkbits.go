package main

import (
	"log"
	"math/big"
	"os"

	"github.com/Demindiro/checkbits"
	"github.com/Demindiro/checkbits/numexpr"
	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
)

type CLI struct {
	Expression string `arg:"" help:"Integer expression to inspect, e.g. 0x10 or 1<<42|5."`
	Verbose    bool   `help:"Log the evaluated value before the bit listing."`
}

func main() {
	cli := CLI{}
	kong.Parse(&cli)

	value, err := numexpr.Eval(cli.Expression)
	if err != nil {
		log.Fatalf("error evaluating %q: %s", cli.Expression, err)
	}
	if cli.Verbose {
		// BigComma flips negative inputs with Abs in place, so hand it a copy.
		log.Printf("value: %s (%d of %d inspected bits set)",
			humanize.BigComma(new(big.Int).Set(value)), checkbits.Count(value), checkbits.Width)
	}
	err = checkbits.Write(os.Stdout, value)
	if err != nil {
		log.Fatalf("error writing bit listing: %s", err)
	}
}
