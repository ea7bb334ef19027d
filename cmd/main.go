package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/docopt/docopt-go"

	"github.com/TFMV/cyclo"
	"github.com/TFMV/cyclo/db"
	"github.com/TFMV/cyclo/report"
	"github.com/TFMV/cyclo/types"
)

const usage = `cyclo computes the cyclomatic complexity of every function in C source and
writes one record per function to a report log. With no paths, the whole of
standard input is analyzed as one translation unit.

Usage:
  cyclo [options] [<path>...]

Options:
  --out=<file>       Report file [default: output.cy]
  --summary          Print a JSON summary to stdout
  --db=<url>         SurrealDB endpoint to mirror records to
  --namespace=<ns>   SurrealDB namespace [default: test]
  --database=<name>  SurrealDB database [default: test]
  --db-user=<user>   SurrealDB username [default: root]
  --db-pass=<pass>   SurrealDB password [default: root]
  -h --help          Show this help`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(argv []string) error {
	opts, err := docopt.ParseArgs(usage, argv, "")
	if err != nil {
		return err
	}

	out, _ := opts.String("--out")
	paths, _ := opts["<path>"].([]string)

	analyzer, err := newAnalyzer(opts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := analyzer.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}

	// The report is truncated before analysis begins and closed on every
	// exit path, parse failure included.
	writer, err := report.NewWriter(out)
	if err != nil {
		return err
	}
	defer writer.Close()

	var rep types.AnalysisReport
	if len(paths) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read standard input: %w", err)
		}
		rep.Functions, err = analyzer.AnalyzeSource(ctx, "unsaved.c", src)
		if err != nil {
			return err
		}
	} else {
		rep, err = analyzer.AnalyzeFiles(ctx, paths)
		if err != nil {
			return err
		}
	}

	if err := writer.WriteReport(rep); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if summary, _ := opts.Bool("--summary"); summary {
		fmt.Println(rep.PrettyPrint())
	}

	return analyzer.StoreReport(ctx, rep)
}

func newAnalyzer(opts docopt.Opts) (*cyclo.Analyzer, error) {
	url, err := opts.String("--db")
	if err != nil || url == "" {
		return cyclo.NewAnalyzer(), nil
	}

	namespace, _ := opts.String("--namespace")
	database, _ := opts.String("--database")
	user, _ := opts.String("--db-user")
	pass, _ := opts.String("--db-pass")

	return cyclo.NewAnalyzerWithDB(db.Config{
		URL:       url,
		Namespace: namespace,
		Database:  database,
		Username:  user,
		Password:  pass,
	})
}
