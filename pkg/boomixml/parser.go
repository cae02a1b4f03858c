// Package boomixml parses Boomi process definition XML into a lightweight
// element tree.
//
// Parsing is strict by default. Options.Recover enables a lenient mode that
// tolerates mismatched or missing end tags and unknown entities, and keeps
// whatever was parsed when a document is truncated.
//
// External entities are never resolved: DOCTYPE declarations are skipped and
// only the predefined XML entities are expanded. Nothing is fetched from the
// network or the filesystem besides the input itself.
package boomixml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/githubnext/boomi-validate/pkg/constants"
	"github.com/githubnext/boomi-validate/pkg/logger"
)

var parserLog = logger.New("boomixml:parser")

var utf8BOM = []byte("\xef\xbb\xbf")

// Options controls parser leniency and limits.
type Options struct {
	// Recover tolerates minor malformations instead of failing.
	Recover bool
	// MaxBytes bounds the input size; zero means constants.DefaultMaxFileBytes.
	MaxBytes int64
}

func (o Options) maxBytes() int64 {
	if o.MaxBytes <= 0 {
		return constants.DefaultMaxFileBytes
	}
	return o.MaxBytes
}

// ParseFile reads and parses the file at path.
func ParseFile(path string, opts Options) (*Element, error) {
	parserLog.Printf("Parsing file: path=%s, recover=%v", path, opts.Recover)

	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Op: OpOpen, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &ParseError{Path: path, Op: OpOpen, Err: err}
	}
	if info.IsDir() {
		return nil, &ParseError{Path: path, Op: OpOpen, Err: ErrIsDirectory}
	}

	root, err := Parse(f, opts)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return root, nil
}

// Parse reads all of r and parses it.
func Parse(r io.Reader, opts Options) (*Element, error) {
	limit := opts.maxBytes()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, &ParseError{Op: OpRead, Err: err}
	}
	if int64(len(data)) > limit {
		return nil, &ParseError{Op: OpRead, Err: fmt.Errorf("%w: exceeds %d bytes", ErrTooLarge, limit)}
	}
	return ParseBytes(data, opts)
}

// ParseBytes parses an in-memory document.
func ParseBytes(data []byte, opts Options) (*Element, error) {
	if int64(len(data)) > opts.maxBytes() {
		return nil, &ParseError{Op: OpRead, Err: fmt.Errorf("%w: exceeds %d bytes", ErrTooLarge, opts.maxBytes())}
	}

	data = bytes.TrimPrefix(data, utf8BOM)

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = !opts.Recover
	dec.CharsetReader = charsetReader

	b := &treeBuilder{recover: opts.Recover}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if b.recoverable() {
				parserLog.Printf("Recovered from parse error after %d elements: %v", b.count, err)
				break
			}
			return nil, &ParseError{Op: OpParse, Err: err}
		}

		stop, err := b.add(tok)
		if err != nil {
			return nil, &ParseError{Op: OpParse, Err: err}
		}
		if stop {
			break
		}
	}

	if b.root == nil {
		return nil, &ParseError{Op: OpParse, Err: ErrNoRoot}
	}
	parserLog.Printf("Parsed document: root=%s, elements=%d", b.root.Name, b.count)
	return b.root, nil
}

// treeBuilder assembles Elements from decoder tokens.
type treeBuilder struct {
	recover bool
	root    *Element
	stack   []*Element
	closed  bool
	count   int
}

func (b *treeBuilder) recoverable() bool {
	return b.recover && b.root != nil
}

// add consumes one token. It returns stop=true when the rest of the input
// should be ignored.
func (b *treeBuilder) add(tok xml.Token) (stop bool, err error) {
	switch t := tok.(type) {
	case xml.StartElement:
		if b.closed {
			if b.recover {
				parserLog.Printf("Ignoring content after root element: <%s>", t.Name.Local)
				return true, nil
			}
			return false, fmt.Errorf("extra content after root element: <%s>", t.Name.Local)
		}

		el := &Element{Name: t.Name.Local}
		if len(t.Attr) > 0 {
			el.Attrs = make([]Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				if isNamespaceDecl(a.Name) {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
		}
		b.count++

		if len(b.stack) == 0 {
			b.root = el
		} else {
			parent := b.stack[len(b.stack)-1]
			parent.Children = append(parent.Children, el)
		}
		b.stack = append(b.stack, el)

	case xml.EndElement:
		if len(b.stack) > 0 {
			b.stack = b.stack[:len(b.stack)-1]
		}
		if len(b.stack) == 0 && b.root != nil {
			b.closed = true
		}

	case xml.CharData:
		if len(b.stack) == 0 && !b.recover && strings.TrimSpace(string(t)) != "" {
			return false, errors.New("text content outside root element")
		}
	}
	return false, nil
}

// isNamespaceDecl reports whether name is an xmlns or xmlns:prefix
// declaration rather than a data attribute.
func isNamespaceDecl(name xml.Name) bool {
	return name.Space == "xmlns" || (name.Space == "" && name.Local == "xmlns")
}
