package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// The dataset of an element is stored in "data-*" attributes.
// Dataset names are camel-cased, attribute names kebab-cased:
//
//    dataset name   userId   <->   attribute data-user-id
//

const dataPrefix = "data-"

// datasetAttrName converts a dataset name to an attribute name.
// It returns false for names a browser would reject, i.e. names containing
// a hyphen followed by a lower case letter.
func datasetAttrName(name string) (string, bool) {
	var b strings.Builder
	b.WriteString(dataPrefix)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' && i+1 < len(name) && 'a' <= name[i+1] && name[i+1] <= 'z' {
			return "", false
		}
		if 'A' <= c && c <= 'Z' {
			b.WriteByte('-')
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String(), true
}

// datasetName converts an attribute name to a dataset name.
func datasetName(attrName string) (string, bool) {
	if !strings.HasPrefix(attrName, dataPrefix) {
		return "", false
	}
	s := attrName[len(dataPrefix):]
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' && i+1 < len(s) && 'a' <= s[i+1] && s[i+1] <= 'z' {
			i++
			c = s[i] - ('a' - 'A')
		}
		b.WriteByte(c)
	}
	return b.String(), true
}

// SetDataset merges data into the dataset of element n.
// Names which are invalid for a dataset are skipped.
func (d *Document) SetDataset(n *html.Node, data map[string]string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	setDataset(n, data)
}

func setDataset(n *html.Node, data map[string]string) {
	for _, name := range sortedKeys(data) {
		key, ok := datasetAttrName(name)
		if !ok {
			tracer().Infof("dataset name %q is invalid, skipped", name)
			continue
		}
		setAttr(n, key, data[name])
	}
}

// Dataset returns a copy of the dataset of n.
func (d *Document) Dataset(n *html.Node) map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	data := make(map[string]string)
	if n == nil {
		return data
	}
	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		if name, ok := datasetName(a.Key); ok {
			data[name] = a.Val
		}
	}
	return data
}
