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
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const headerTemplate = `// seehuhn.de/go/bst - a generic unbalanced binary search tree
// Copyright (C) %d  Jochen Voss <voss@seehuhn.de>
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

`

var hasHeader = regexp.MustCompile(`^// seehuhn\.de/go/bst - .*\n// Copyright \(C\) [0-9]{4}`)

var dryRun = flag.Bool("n", false, "only list the files which need a header")

func main() {
	flag.Parse()
	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	year := time.Now().Year()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// the go tool ignores these directories, too
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		res, status := licensify(body, year)
		switch status {
		case unchanged:
			return nil
		case unexpected:
			fmt.Println("ATTENTION " + path)
			return nil
		}

		fmt.Println("updating " + path)
		if *dryRun {
			return nil
		}
		return os.WriteFile(path, res, 0o644)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type status int

const (
	unchanged status = iota
	updated
	unexpected
)

// licensify prepends the license header to the Go source body, unless the
// file already has a header.  Files which start with anything other than a
// package clause are left alone.
func licensify(body []byte, year int) ([]byte, status) {
	if hasHeader.Match(body) {
		return body, unchanged
	}
	if !bytes.HasPrefix(body, []byte("package ")) {
		return body, unexpected
	}

	header := fmt.Sprintf(headerTemplate, year)
	res := make([]byte, 0, len(header)+len(body))
	res = append(res, header...)
	res = append(res, body...)
	return res, updated
}
