// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"encoding/xml"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// WriteSVG writes the node and its descendants as SVG XML.
// Attributes are written in sorted order, after the class,
// so that the output is deterministic.
func WriteSVG(w io.Writer, n *Node) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := encodeNode(enc, n); err != nil {
		return fmt.Errorf("scene.WriteSVG: %w", err)
	}
	return enc.Flush()
}

// SVGString returns the SVG XML for the node, or an error string.
func SVGString(n *Node) string {
	var b strings.Builder
	if err := WriteSVG(&b, n); err != nil {
		return err.Error()
	}
	return b.String()
}

func encodeNode(enc *xml.Encoder, n *Node) error {
	se := xml.StartElement{Name: xml.Name{Local: n.Tag}}
	if n.Class != "" {
		se.Attr = append(se.Attr, xml.Attr{Name: xml.Name{Local: "class"}, Value: n.Class})
	}
	for _, k := range slices.Sorted(maps.Keys(n.attrs)) {
		se.Attr = append(se.Attr, xml.Attr{Name: xml.Name{Local: k}, Value: FormatValue(n.attrs[k])})
	}
	if len(n.style) > 0 {
		var sb strings.Builder
		for _, k := range slices.Sorted(maps.Keys(n.style)) {
			sb.WriteString(k + ": " + n.style[k] + ";")
		}
		se.Attr = append(se.Attr, xml.Attr{Name: xml.Name{Local: "style"}, Value: sb.String()})
	}
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := encodeNode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(se.End())
}

// FormatValue formats an attribute value for SVG output.
func FormatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
