package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/editor"
	"github.com/zephyrtronium/calculator/tape"
)

const usage = `usage: calc [-kp] [-d tape.db] [-t n] [expr ...]

	-d path	record the tape in a SQLite database
	-k	read key presses from stdin; C clears and = resolves
	-p	print the postfix form of each expression
	-t n	print the last n tape entries when done

With no expressions, stdin is read one expression per line.
`

var (
	errorf   = color.New(color.FgRed).FprintfFunc()
	noResult = color.New(color.FgYellow).SprintFunc()
	echo     = color.New(color.FgCyan).SprintFunc()
)

func main() {
	log.SetFlags(0)
	var (
		dbpath        string
		keys, postfix bool
		tail          int
	)
	opts, optind, err := getopt.Getopts(os.Args, "d:kpt:")
	if err != nil {
		log.Fatal(err, "\n", usage)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'd':
			dbpath = opt.Value
		case 'k':
			keys = true
		case 'p':
			postfix = true
		case 't':
			tail, err = strconv.Atoi(opt.Value)
			if err != nil || tail < 0 {
				log.Fatalf("invalid -t %q\n%s", opt.Value, usage)
			}
		}
	}
	args := os.Args[optind:]

	var tp tape.Store = tape.NewMemory()
	if dbpath != "" {
		tp, err = tape.NewSQLite(dbpath)
		if err != nil {
			log.Fatalf("opening tape: %v", err)
		}
	}
	defer tp.Close()

	switch {
	case keys:
		err = keypad(bufio.NewReader(os.Stdin), os.Stdout, tp)
	case len(args) > 0:
		for _, arg := range args {
			calc(arg, os.Stdout, tp, postfix)
		}
	default:
		err = lines(os.Stdin, os.Stdout, tp, postfix)
	}
	if err != nil {
		log.Fatal(err)
	}

	if tail > 0 {
		r, err := tp.Recent(tail)
		if err != nil {
			log.Fatalf("reading tape: %v", err)
		}
		fmt.Println("----")
		for _, e := range r {
			fmt.Printf("%4d  %s\n", e.ID, e)
		}
	}
}

// lines evaluates each non-blank line of in.
func lines(in io.Reader, out io.Writer, tp tape.Store, postfix bool) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		src := strings.TrimSpace(sc.Text())
		if src == "" {
			continue
		}
		calc(src, out, tp, postfix)
	}
	return sc.Err()
}

// calc evaluates a single expression, writes its result or the reason it has
// none, and records it on the tape.
func calc(src string, out io.Writer, tp tape.Store, postfix bool) {
	e := tape.Entry{Expr: src, At: time.Now()}
	defer func() { record(tp, e) }()
	toks, err := calculator.ParseString(src)
	if err != nil {
		errorf(os.Stderr, "%s: %v\n", src, err)
		return
	}
	pf := calculator.Postfix(toks)
	if postfix {
		fmt.Fprintf(out, "%s : ", echo(calculator.FormatTokens(pf)))
	}
	v, ok := calculator.Evaluate(pf)
	if !ok {
		fmt.Fprintln(out, noResult("no result"))
		return
	}
	e.Result, e.OK = calculator.Format(v), true
	fmt.Fprintln(out, e.Result)
}

// keypad drives an editing buffer with the runes of in. Whitespace is
// ignored. The display is written after every resolve.
func keypad(in io.RuneReader, out io.Writer, tp tape.Store) error {
	b := editor.New()
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		switch r {
		case ' ', '\t', '\r', '\n':
			continue
		case editor.KeyResolve:
			src := b.String()
			res, ok := b.Resolve()
			record(tp, tape.Entry{Expr: src, Result: res, OK: ok, At: time.Now()})
			if !ok {
				fmt.Fprintln(out, noResult("no result"))
				continue
			}
			fmt.Fprintln(out, res)
		default:
			b.Press(r)
		}
	}
}

func record(tp tape.Store, e tape.Entry) {
	if _, err := tp.Append(e); err != nil {
		log.Printf("recording %q: %v", e.Expr, err)
	}
}
