package main

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/sirkon/message"
	"go.uber.org/multierr"
)

func main() {
	var args struct {
		Pointer bool   `arg:"-p" help:"implement union interface over pointer to struct"`
		Stdout  bool   `arg:"-n" help:"print generated code to stdout instead of rewriting FILE"`
		FILE    string `arg:"positional,required" help:"file path to process"`
	}
	p := arg.MustParse(&args)

	if !strings.HasSuffix(args.FILE, ".go") {
		p.Fail("FILE must be go file")
	}

	src, err := ioutil.ReadFile(args.FILE)
	if err != nil {
		message.Fatal(err)
	}

	res, err := NewGenerator(args.Pointer).Generate(args.FILE, src)
	if err != nil {
		errs := multierr.Errors(err)
		if len(errs) == 1 {
			message.Fatal(err)
		}
		for _, e := range errs {
			message.Error(e)
		}
		message.Fatalf("cannot continue")
	}

	if args.Stdout {
		if _, err := os.Stdout.Write(res); err != nil {
			message.Fatal(err)
		}
		return
	}

	if err := ioutil.WriteFile(args.FILE, res, 0644); err != nil {
		message.Fatal(err)
	}
}
