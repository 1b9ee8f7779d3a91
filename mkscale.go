// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"
)

const maxScale = 64

var scaleTemplate = `
// Q{{ . }} is the Scale with {{ . }} fractional bits.
type Q{{ . }} struct{}

func (Q{{ . }}) FracBits() uint { return {{ . }} }
`

func main() {
	log.Default().SetFlags(log.Lshortfile)

	tmpl, err := template.New("scaleTemplate").Parse(scaleTemplate)
	if err != nil {
		log.Fatalln(err)
	}

	source := bytes.NewBuffer(nil)
	fmt.Fprintln(source, "// Code generated by \"go run mkscale.go\"; DO NOT EDIT.")
	fmt.Fprintln(source)
	fmt.Fprintln(source, "package fixed")
	for f := 0; f <= maxScale; f++ {
		if err = tmpl.Execute(source, f); err != nil {
			log.Fatalln(err)
		}
	}

	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	if err = os.WriteFile("scale_gen.go", formattedSource, 0644); err != nil {
		log.Fatalln(err)
	}
}
