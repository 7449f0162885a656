/*
Package jsonnode encodes node trees to JSON and decodes them
back, using the nested mapping shape of supernodes.Dict.
*/
package jsonnode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	supernodes "github.com/mubarakalmehairbi/SuperNodes"
)

/*
Write takes an io.Writer and a node and serializes the node and
its descendants as JSON onto the writer. An error is returned if
the node cannot be represented as a Dict or the document cannot
be written.
*/
func Write(w io.Writer, n *supernodes.Node) error {
	d, err := n.ToDict()
	if err != nil {
		return fmt.Errorf("encoding node as JSON: %w", err)
	}
	enc := json.NewEncoder(w)
	// keep <, > and & readable in serialized expressions
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding node as JSON: %v", err)
	}
	return nil
}

/*
Read takes an io.Reader with a JSON document in the nested
mapping shape of supernodes.Dict and returns the node tree
parsed from it or an error.
*/
func Read(r io.Reader) (*supernodes.Node, error) {
	d := &supernodes.Dict{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("parsing JSON node: %v", err)
	}
	return supernodes.FromDict(d)
}

/*
Marshal returns the JSON encoding of the node and its
descendants.
*/
func Marshal(n *supernodes.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, n); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

/*
Unmarshal parses a JSON encoding produced by Marshal and returns
the node tree.
*/
func Unmarshal(data []byte) (*supernodes.Node, error) {
	d := &supernodes.Dict{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parsing JSON node: %v", err)
	}
	return supernodes.FromDict(d)
}

/*
WriteFile serializes the given node as JSON into the file at the
given path, creating or truncating it.
*/
func WriteFile(filepath string, n *supernodes.Node) error {
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("writing node JSON file %s: %v", filepath, err)
	}
	defer f.Close()
	if err := Write(f, n); err != nil {
		return fmt.Errorf("writing node JSON file %s: %v", filepath, err)
	}
	return f.Close()
}

/*
ReadFile takes a filepath string, reads its contents and uses
Read to parse it and return the node tree or an error. If the
file cannot be opened for reading an error will be returned.
*/
func ReadFile(filepath string) (*supernodes.Node, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading node JSON file %s: %v", filepath, err)
	}
	defer f.Close()
	n, err := Read(f)
	if err != nil {
		err = fmt.Errorf("parsing node JSON file %s: %v", filepath, err)
	}
	return n, err
}
