package resources

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"golang.org/x/net/html/charset"
	"strings-diff/internal/data"
	"strings-diff/internal/logging"
)

const NameAttribute = "name"

var (
	errNoRoot         = errors.New("no root element found")
	errMultipleRoots  = errors.New("junk after document element")
	errTextBeforeRoot = errors.New("text before document element")

	utf8ByteOrderMark = []byte{0xEF, 0xBB, 0xBF}

	// matches internal general entity declarations like <!ENTITY app "Foo">
	entityDeclaration = regexp.MustCompile(`<!ENTITY\s+([^\s%"'<>]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)
)

// CollectKeys reads the resource file at path and returns the names of all
// direct children of its root element that match filter.
// Elements without a name attribute are skipped.
func CollectKeys(path string, filter TagFilter) (*data.ResourceFile, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, newFileError(path, ErrFileNotFound, err)
		}
		return nil, newFileError(path, ErrRead, err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	result, err := collectKeys(path, file, filter)
	if err != nil {
		return nil, err
	}
	logging.Debug("Collected %d keys (%d duplicates) from %s", result.Keys.Len(), result.DuplicateKeys.Len(), path)
	return result, nil
}

func collectKeys(path string, reader io.Reader, filter TagFilter) (*data.ResourceFile, error) {
	result := data.NewResourceFile(path)

	input, err := skipByteOrderMark(reader)
	if err != nil {
		return nil, newFileError(path, ErrRead, err)
	}
	decoder := xml.NewDecoder(input)
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Entity = map[string]string{}

	namespaces := namespaceScopes{}
	depth := 0
	sawRoot := false
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newFileError(path, ErrParse, err)
		}

		switch element := token.(type) {
		case xml.Directive:
			if !sawRoot {
				addEntities(decoder.Entity, element)
			}
		case xml.StartElement:
			depth++
			if err := namespaces.push(element); err != nil {
				return nil, newFileError(path, ErrParse, err)
			}
			if depth == 1 {
				if sawRoot {
					return nil, newFileError(path, ErrParse, errMultipleRoots)
				}
				sawRoot = true
				continue
			}
			if depth != 2 || !filter.Matches(tagName(element.Name)) {
				continue
			}
			if name := nameAttribute(element); name != "" {
				result.AddKey(name)
			}
		case xml.EndElement:
			depth--
			namespaces.pop()
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(element)) > 0 {
				if sawRoot {
					return nil, newFileError(path, ErrParse, errMultipleRoots)
				}
				return nil, newFileError(path, ErrParse, errTextBeforeRoot)
			}
		}
	}

	if !sawRoot {
		return nil, newFileError(path, ErrParse, errNoRoot)
	}
	return result, nil
}

// skipByteOrderMark drops a leading UTF-8 byte order mark, the decoder would report it as text
func skipByteOrderMark(reader io.Reader) (io.Reader, error) {
	buffered := bufio.NewReader(reader)
	prefix, err := buffered.Peek(len(utf8ByteOrderMark))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if bytes.Equal(prefix, utf8ByteOrderMark) {
		_, _ = buffered.Discard(len(utf8ByteOrderMark))
	}
	return buffered, nil
}

// addEntities registers the internal entities declared in a DOCTYPE directive
func addEntities(entities map[string]string, directive xml.Directive) {
	for _, match := range entityDeclaration.FindAllSubmatch(directive, -1) {
		name := string(match[1])
		if _, exists := entities[name]; exists {
			// the first declaration is binding
			continue
		}
		if match[2] != nil {
			entities[name] = string(match[2])
		} else {
			entities[name] = string(match[3])
		}
	}
}

// tagName returns the local name, prefixed with "{namespace}" for namespaced elements
func tagName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return "{" + name.Space + "}" + name.Local
}

func nameAttribute(element xml.StartElement) string {
	for _, attr := range element.Attr {
		if attr.Name.Space == "" && attr.Name.Local == NameAttribute {
			return attr.Value
		}
	}
	return ""
}

const (
	xmlnsPrefix    = "xmlns"
	xmlNamespace   = "http://www.w3.org/XML/1998/namespace"
	xmlnsNamespace = "http://www.w3.org/2000/xmlns/"
)

// namespaceScopes tracks the namespace URIs declared by the currently open elements.
// The decoder leaves an undeclared prefix in Name.Space instead of failing,
// so a name whose Space is not a URI in scope uses an unbound prefix.
type namespaceScopes [][]string

func (s *namespaceScopes) push(element xml.StartElement) error {
	var declared []string
	for _, attr := range element.Attr {
		if attr.Name.Space == xmlnsPrefix || (attr.Name.Space == "" && attr.Name.Local == xmlnsPrefix) {
			declared = append(declared, attr.Value)
		}
	}
	*s = append(*s, declared)

	if !s.isBound(element.Name.Space) {
		return fmt.Errorf("unbound prefix %q on element <%s>", element.Name.Space, element.Name.Local)
	}
	for _, attr := range element.Attr {
		if attr.Name.Space == xmlnsPrefix {
			continue
		}
		if !s.isBound(attr.Name.Space) {
			return fmt.Errorf("unbound prefix %q on attribute %s of <%s>", attr.Name.Space, attr.Name.Local, element.Name.Local)
		}
	}
	return nil
}

func (s *namespaceScopes) pop() {
	if len(*s) > 0 {
		*s = (*s)[:len(*s)-1]
	}
}

func (s *namespaceScopes) isBound(space string) bool {
	if space == "" || space == xmlNamespace || space == xmlnsNamespace {
		return true
	}
	for _, scope := range *s {
		for _, uri := range scope {
			if uri == space {
				return true
			}
		}
	}
	return false
}
