/*
Command gen rebuilds the code page tables committed as tables_gen.go in the
root package.

It reads the unicode.org vendor mapping files from a source directory and
emits one decoding table per code page. With --fetch, missing mapping files
are downloaded first. With --json, the mapping data is additionally written
as a JSON asset.

Usage:

	go run ./internal/gen --source=internal/gen/sources --out=tables_gen.go
*/
package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

var cli struct {
	Source string `default:"internal/gen/sources" help:"Directory holding the unicode.org mapping files."`
	Fetch  bool   `help:"Download missing mapping files from unicode.org."`
	Out    string `default:"tables_gen.go" help:"Path of the generated Go file."`
	JSON   string `name:"json" help:"Optional path for a JSON dump of the mapping data."`
	Pkg    string `default:"oemcp" help:"Package name of the generated file."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("gen"),
		kong.Description("Rebuild the OEM code page tables."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	if cli.Fetch {
		n, err := fetchSources(cli.Source)
		if err != nil {
			return err
		}
		fmt.Printf("fetched %d mapping files into %s\n", n, cli.Source)
	}
	pages, err := loadPages(cli.Source, sources)
	if err != nil {
		return err
	}
	if err := writeGoTables(cli.Out, cli.Pkg, pages); err != nil {
		return err
	}
	fmt.Printf("wrote %d code page tables to %s\n", len(pages), cli.Out)
	if cli.JSON != "" {
		if err := writeJSONTables(cli.JSON, pages); err != nil {
			return err
		}
		fmt.Printf("wrote mapping data to %s\n", cli.JSON)
	}
	return nil
}
