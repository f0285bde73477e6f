package hdoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Topic is one openable unit of documentation: a parsed tree plus the
// metadata the renderer needs to qualify and resolve its content.
type Topic struct {
	ID               string
	Path             string // source file, used to resolve relative image paths
	Title            string
	SubjectClass     string
	SubjectMetaclass string
	Root             *Node
}

// Source opens topics by id. Activating an internal hyperlink
// re-enters rendering through a Source.
type Source interface {
	OpenTopic(id string) (*Topic, error)
}

// DirSource opens topics stored as <id>.yaml files in a directory,
// the interchange format written by the external parser.
type DirSource struct {
	Dir string
}

// OpenTopic loads and decodes the topic file for id.
func (s DirSource) OpenTopic(id string) (*Topic, error) {
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, fmt.Errorf("open topic: invalid id %q", id)
	}
	path := filepath.Join(s.Dir, id+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open topic %q: %w", id, ErrResourceNotFound)
		}
		return nil, fmt.Errorf("open topic %q: %w", id, err)
	}
	t, err := DecodeTopic(data)
	if err != nil {
		return nil, fmt.Errorf("open topic %q: %w", id, err)
	}
	t.ID = id
	t.Path = path
	return t, nil
}

type yamlNode struct {
	Tag      string     `yaml:"tag"`
	Text     string     `yaml:"text"`
	Children []yamlNode `yaml:"children"`
}

type yamlTopic struct {
	Title            string    `yaml:"title"`
	SubjectClass     string    `yaml:"subject_class"`
	SubjectMetaclass string    `yaml:"subject_metaclass"`
	Document         *yamlNode `yaml:"document"`
}

// DecodeTopic parses a YAML topic file. Unrecognized tag names decode
// to raw-tag nodes and surface at render time through the unknown-tag
// fallback rather than failing the load.
func DecodeTopic(data []byte) (*Topic, error) {
	var yt yamlTopic
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("decode topic: %w", err)
	}
	if yt.Document == nil {
		return nil, fmt.Errorf("decode topic: no document tree")
	}
	root, err := yt.Document.node()
	if err != nil {
		return nil, fmt.Errorf("decode topic: %w", err)
	}
	return &Topic{
		Title:            yt.Title,
		SubjectClass:     yt.SubjectClass,
		SubjectMetaclass: yt.SubjectMetaclass,
		Root:             root,
	}, nil
}

func (y *yamlNode) node() (*Node, error) {
	if y.Tag == "" {
		return nil, fmt.Errorf("node without tag")
	}
	n := &Node{Text: y.Text}
	tag, ok := ParseTag(y.Tag)
	if ok {
		n.Tag = tag
	} else {
		n.Tag = TagUnknown
		n.Raw = strings.ToUpper(strings.TrimSpace(y.Tag))
	}
	for i := range y.Children {
		c, err := y.Children[i].node()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
	}
	return n, nil
}
