package acrotex

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// OutputExt is the extension of generated files.
const OutputExt = ".tex"

// OutputPath derives the output file name from an input path or URL by
// replacing its extension with OutputExt. URL inputs map to their base name
// in the working directory.
func OutputPath(input string) string {
	input = strings.TrimSpace(input)
	if u, err := url.Parse(input); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		if strings.EqualFold(u.Scheme, "file") {
			return replaceExt(fileURLPath(u))
		}
		base := path.Base(u.Path)
		if base == "." || base == "/" || base == "" {
			base = "acronyms"
		}
		return replaceExt(base)
	}
	return replaceExt(input)
}

func replaceExt(p string) string {
	ext := filepath.Ext(p)
	return strings.TrimSuffix(p, ext) + OutputExt
}
