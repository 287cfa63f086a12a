// seehuhn.de/go/bst - a generic unbalanced binary search tree
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"cmp"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/bst"
	"seehuhn.de/go/bst/optional"
	"seehuhn.de/go/bst/textorder"
	"seehuhn.de/go/bst/tools/internal/buildinfo"
)

var (
	typeArg      = flag.String("t", "int", "element `type`: int, float or string")
	nullArg      = flag.String("null", "", "`token` which stands for the absent value")
	langArg      = flag.String("lang", "", "order strings using the collation rules for `language`")
	nfcArg       = flag.Bool("nfc", false, "compare strings after NFC normalisation")
	recursiveArg = flag.Bool("recursive", false, "use the recursive in-order traversal")
	prettyArg    = flag.Bool("pretty", false, "show the tree shape as an indented tree")
	verboseArg   = flag.Bool("v", false, "log every insertion to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bst-show \u2014 build a binary search tree and show its structure\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("bst-show"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  bst-show [options] [value...]\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  value   the root value, followed by the values to insert;\n")
		fmt.Fprintf(os.Stderr, "          read from standard input if omitted\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bst-show 5 3 8 1 4\n")
		fmt.Fprintf(os.Stderr, "  bst-show -t string -null - m a z -\n")
		fmt.Fprintf(os.Stderr, "  seq 1 511 | bst-show -recursive\n")
	}
	flag.Parse()

	tokens := flag.Args()
	if len(tokens) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			flag.Usage()
			os.Exit(1)
		}
		var err error
		tokens, err = readTokens(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verboseArg {
		log.SetLevel(logrus.DebugLevel)
	}

	opt := &options{
		kind:      *typeArg,
		null:      *nullArg,
		lang:      *langArg,
		nfc:       *nfcArg,
		recursive: *recursiveArg,
		pretty:    *prettyArg,
		log:       log,
	}
	if err := run(os.Stdout, opt, tokens); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	kind      string
	null      string
	lang      string
	nfc       bool
	recursive bool
	pretty    bool
	log       *logrus.Logger
}

var errNoValues = errors.New("no values given")

// readTokens returns the whitespace-separated words of r.
func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading values: %w", err)
	}
	return tokens, nil
}

func run(w io.Writer, opt *options, tokens []string) error {
	if len(tokens) == 0 {
		return errNoValues
	}

	switch opt.kind {
	case "int":
		return show(w, opt, tokens, strconv.Atoi, cmp.Compare[int])
	case "float":
		parse := func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}
		return show(w, opt, tokens, parse, cmp.Compare[float64])
	case "string":
		compare, err := stringOrder(opt)
		if err != nil {
			return err
		}
		parse := func(s string) (string, error) {
			return s, nil
		}
		return show(w, opt, tokens, parse, compare)
	default:
		return fmt.Errorf("unknown element type %q", opt.kind)
	}
}

func stringOrder(opt *options) (func(a, b string) int, error) {
	var compare func(a, b string) int
	if opt.lang != "" {
		tag, err := language.Parse(opt.lang)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", opt.lang, err)
		}
		compare = textorder.Collation(tag)
	}
	if opt.nfc {
		compare = textorder.Normalized(norm.NFC, compare)
	}
	if compare == nil {
		compare = strings.Compare
	}
	return compare, nil
}

func show[T any](w io.Writer, opt *options, tokens []string, parse func(string) (T, error), compare func(a, b T) int) error {
	values := make([]optional.Value[T], len(tokens))
	for i, tok := range tokens {
		if opt.null != "" && tok == opt.null {
			continue
		}
		v, err := parse(tok)
		if err != nil {
			return fmt.Errorf("value %d: %w", i+1, err)
		}
		values[i] = optional.Some(v)
	}

	tree := bst.NewOptionalFunc(values[0], compare)
	opt.log.WithField("value", values[0]).Debug("new tree")
	for _, v := range values[1:] {
		node := tree.Insert(v)
		opt.log.WithFields(logrus.Fields{
			"value":  node.Value,
			"height": tree.Height(),
		}).Debug("inserted")
	}

	if opt.pretty {
		root := pterm.TreeNode{
			Children: []pterm.TreeNode{shape(tree, "", opt.null)},
		}
		s, err := pterm.DefaultTree.WithRoot(root).Srender()
		if err != nil {
			return err
		}
		fmt.Fprint(w, s)
	} else {
		fmt.Fprintln(w, tree)
	}
	fmt.Fprintln(w, "height:", tree.Height())
	fmt.Fprintln(w, "balanced:", tree.IsBalanced())

	traverse := tree.InOrderIterative
	if opt.recursive {
		traverse = tree.InOrderRecursive
	}
	var parts []string
	traverse(func(v optional.Value[T]) {
		parts = append(parts, label(v, opt.null))
	})
	fmt.Fprintln(w, "in-order:", strings.Join(parts, ", "))

	return nil
}

// shape converts the subtree at n into a pterm tree.
func shape[T any](n *bst.Node[optional.Value[T]], prefix, null string) pterm.TreeNode {
	node := pterm.TreeNode{Text: prefix + label(n.Value, null)}
	if n.Left != nil {
		node.Children = append(node.Children, shape(n.Left, "L: ", null))
	}
	if n.Right != nil {
		node.Children = append(node.Children, shape(n.Right, "R: ", null))
	}
	return node
}

func label[T any](v optional.Value[T], null string) string {
	if !v.IsSet() {
		return null
	}
	return v.String()
}
