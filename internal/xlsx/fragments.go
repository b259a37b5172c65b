package xlsx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/cimax123/asistente-contable/internal/common"
)

// ReadFragments recovers the plain-text fragments embedded in the xlsx
// package outside the cell grid: the shared-string table, drawing (shape)
// text runs, and comment text. The result is deduplicated and keeps a
// stable order — shared strings first, then drawings and comments by part
// name — because the miner's first-match-wins rules depend on it.
func ReadFragments(path string) ([]string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, common.NewAppError("OPEN_PACKAGE", fmt.Sprintf("opening %s", path), common.ErrMalformedDocument)
	}
	defer func() { _ = r.Close() }()

	var shared, drawings, comments []*zip.File
	for _, f := range r.File {
		switch {
		case f.Name == "xl/sharedStrings.xml":
			shared = append(shared, f)
		case strings.HasPrefix(f.Name, "xl/drawings/") && strings.HasSuffix(f.Name, ".xml"):
			drawings = append(drawings, f)
		case strings.HasPrefix(f.Name, "xl/comments") && strings.HasSuffix(f.Name, ".xml"):
			comments = append(comments, f)
		}
	}
	sort.Slice(drawings, func(i, j int) bool { return drawings[i].Name < drawings[j].Name })
	sort.Slice(comments, func(i, j int) bool { return comments[i].Name < comments[j].Name })

	seen := make(map[string]struct{})
	var frags []string
	collect := func(parts []*zip.File) {
		for _, part := range parts {
			for _, text := range textNodes(part) {
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
				if _, dup := seen[text]; dup {
					continue
				}
				seen[text] = struct{}{}
				frags = append(frags, text)
			}
		}
	}
	collect(shared)
	collect(drawings)
	collect(comments)
	return frags, nil
}

// textNodes streams one XML part and gathers the character data of every
// <t> element (shared strings, comments, and DrawingML text runs all use
// that local name). Malformed parts yield whatever was read before the
// error.
func textNodes(part *zip.File) []string {
	rc, err := part.Open()
	if err != nil {
		return nil
	}
	defer func() { _ = rc.Close() }()

	var texts []string
	dec := xml.NewDecoder(rc)
	depth := 0
	var current strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				depth++
				current.Reset()
			}
		case xml.CharData:
			if depth > 0 {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "t" && depth > 0 {
				depth--
				texts = append(texts, current.String())
			}
		}
	}
	return texts
}
