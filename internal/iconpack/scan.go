package iconpack

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/viewy-dev/viewy/internal/errors"
)

// IconNames returns the stems of the *.svg files in dir, sorted and
// deduplicated. Subdirectories are not read.
func IconNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.New("E203").WithField("path", dir).Wrap(err)
	}

	seen := make(map[string]struct{}, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".svg" {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if _, ok := seen[stem]; ok {
			continue
		}
		seen[stem] = struct{}{}
		names = append(names, stem)
	}
	sort.Strings(names)
	return names, nil
}

// InnerMarkup returns the children of the first <svg> element of r,
// serialized as HTML. The result is empty when there is no <svg>.
func InnerMarkup(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	svg := findSVG(doc)
	if svg == nil {
		return "", nil
	}

	var buf bytes.Buffer
	for c := svg.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.CommentNode {
			continue
		}
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

func findSVG(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "svg" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findSVG(c); found != nil {
			return found
		}
	}
	return nil
}

// readIcon reads the inner markup of dir/<name>.svg.
func readIcon(dir, name string) (string, error) {
	path := filepath.Join(dir, name+".svg")
	f, err := os.Open(path)
	if err != nil {
		return "", errors.New("E204").WithField("path", path).Wrap(err)
	}
	defer f.Close()

	markup, err := InnerMarkup(f)
	if err != nil {
		return "", errors.New("E204").WithField("path", path).Wrap(err)
	}
	return markup, nil
}
