/*
Package yamlnode encodes node trees to YAML documents and decodes
them back, using the nested mapping shape of supernodes.Dict.
*/
package yamlnode

import (
	"fmt"
	"io"
	"os"

	supernodes "github.com/mubarakalmehairbi/SuperNodes"
	yaml "gopkg.in/yaml.v2"
)

/*
Write takes an io.Writer and a node and serializes the node and
its descendants as YAML onto the writer. An error is returned if
the node cannot be represented as a Dict or the document cannot
be written.
*/
func Write(w io.Writer, n *supernodes.Node) error {
	d, err := n.ToDict()
	if err != nil {
		return fmt.Errorf("encoding node as yml: %w", err)
	}
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("encoding node as yml: %v", err)
	}
	_, err = w.Write(data)
	return err
}

/*
Read takes an io.Reader with a YAML document in the nested
mapping shape of supernodes.Dict and returns the node tree
parsed from it or an error.
*/
func Read(r io.Reader) (*supernodes.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading yml node: %v", err)
	}
	d := &supernodes.Dict{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parsing yml node: %v", err)
	}
	return supernodes.FromDict(d)
}

/*
WriteFile serializes the given node as YAML into the file at the
given path, creating or truncating it.
*/
func WriteFile(filepath string, n *supernodes.Node) error {
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("writing node yml file %s: %v", filepath, err)
	}
	defer f.Close()
	if err := Write(f, n); err != nil {
		return fmt.Errorf("writing node yml file %s: %v", filepath, err)
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
		return nil, fmt.Errorf("reading node yml file %s: %v", filepath, err)
	}
	defer f.Close()
	n, err := Read(f)
	if err != nil {
		err = fmt.Errorf("parsing node yml file %s: %v", filepath, err)
	}
	return n, err
}
