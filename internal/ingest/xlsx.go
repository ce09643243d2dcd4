package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// readSheetRows extracts the raw cell grid of one worksheet from a .xlsx
// workbook. Only the pieces of the OOXML format needed for plain tabular
// data are handled: the workbook sheet list, its relationships, shared
// strings and inline cell values.
func readSheetRows(filePath, sheetName string) ([][]string, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}

	sheets := workbookSheets(zipEntry(zr, "xl/workbook.xml"))
	rels := workbookRels(zipEntry(zr, "xl/_rels/workbook.xml.rels"))

	target := ""
	var names []string
	for _, s := range sheets {
		names = append(names, s.Name)
		if strings.EqualFold(s.Name, sheetName) {
			if rel, ok := rels[s.RID]; ok {
				target = sheetPath(rel)
			}
		}
	}
	if target == "" {
		return nil, fmt.Errorf("sheet %q not found in workbook (available: %s)",
			sheetName, strings.Join(names, ", "))
	}

	shared := sharedStrings(zipEntry(zr, "xl/sharedStrings.xml"))
	rr := &rowReader{dec: xml.NewDecoder(bytes.NewReader(zipEntry(zr, target))), shared: shared}
	var rows [][]string
	for {
		row, ok := rr.next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type workbookSheet struct {
	Name string
	RID  string
}

func workbookSheets(data []byte) []workbookSheet {
	var out []workbookSheet
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return out
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		var s workbookSheet
		for _, a := range se.Attr {
			switch a.Name.Local {
			case "name":
				s.Name = a.Value
			case "id": // r: namespace
				s.RID = a.Value
			}
		}
		out = append(out, s)
	}
}

func workbookRels(data []byte) map[string]string {
	out := map[string]string{}
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return out
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var id, tgt string
		for _, a := range se.Attr {
			switch a.Name.Local {
			case "Id":
				id = a.Value
			case "Target":
				tgt = a.Value
			}
		}
		if id != "" && tgt != "" {
			out[id] = tgt
		}
	}
}

// sheetPath converts a relationship target into a zip entry path. Targets
// may carry a leading slash or be relative to xl/.
func sheetPath(rel string) string {
	rel = strings.TrimPrefix(rel, "/")
	if strings.HasPrefix(rel, "xl/") {
		return rel
	}
	return path.Join("xl", rel)
}

func zipEntry(zr *zip.Reader, name string) []byte {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil
		}
		defer rc.Close()
		b, _ := io.ReadAll(rc)
		return b
	}
	return nil
}

func sharedStrings(data []byte) []string {
	var out []string
	var buf strings.Builder
	inText := false
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return out
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "si":
				buf.Reset()
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "si":
				out = append(out, buf.String())
			}
		case xml.CharData:
			if inText {
				buf.Write(el)
			}
		}
	}
}

// rowReader walks <row> elements, resolving shared-string cells and
// padding skipped columns so every returned slice is positionally
// aligned with the header.
type rowReader struct {
	dec    *xml.Decoder
	shared []string
	cur    []string
	width  int
}

func (r *rowReader) next() ([]string, bool) {
	inRow := false
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, false
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "row":
				inRow = true
				r.cur = nil
				r.width = 0
			case "c":
				if !inRow {
					continue
				}
				var ref, typ string
				for _, a := range el.Attr {
					switch a.Name.Local {
					case "r":
						ref = a.Value
					case "t":
						typ = a.Value
					}
				}
				idx := columnIndex(ref)
				if idx+1 > r.width {
					r.width = idx + 1
				}
				if len(r.cur) <= idx {
					grown := make([]string, idx+1)
					copy(grown, r.cur)
					r.cur = grown
				}
				r.cur[idx] = r.cellValue(typ)
			}
		case xml.EndElement:
			if el.Name.Local == "row" {
				if len(r.cur) < r.width {
					grown := make([]string, r.width)
					copy(grown, r.cur)
					r.cur = grown
				}
				return r.cur, true
			}
		}
	}
}

// cellValue consumes tokens until </c>, capturing <v> (or inline <is><t>)
// content and resolving shared-string references.
func (r *rowReader) cellValue(typ string) string {
	var val string
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return val
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "v" || el.Name.Local == "t" {
				var sb strings.Builder
				for {
					inner, err := r.dec.Token()
					if err != nil {
						break
					}
					if end, ok := inner.(xml.EndElement); ok &&
						(end.Name.Local == "v" || end.Name.Local == "t") {
						break
					}
					if ch, ok := inner.(xml.CharData); ok {
						sb.Write(ch)
					}
				}
				val = sb.String()
			}
		case xml.EndElement:
			if el.Name.Local == "c" {
				if typ == "s" {
					idx := 0
					for i := 0; i < len(val) && val[i] >= '0' && val[i] <= '9'; i++ {
						idx = idx*10 + int(val[i]-'0')
					}
					if idx < len(r.shared) {
						return r.shared[idx]
					}
					return ""
				}
				return val
			}
		}
	}
}

// columnIndex converts an A1-style cell reference to a 0-based column.
func columnIndex(ref string) int {
	idx := 0
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		switch {
		case c >= 'A' && c <= 'Z':
			idx = idx*26 + int(c-'A'+1)
		case c >= 'a' && c <= 'z':
			idx = idx*26 + int(c-'a'+1)
		default:
			return idx - 1
		}
	}
	return idx - 1
}
