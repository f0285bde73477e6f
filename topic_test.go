package hdoc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const arrayTopicYAML = `title: Array
subject_class: Array
subject_metaclass: Meta_Array
document:
  tag: DOCUMENT
  children:
    - tag: HEADER
      children:
        - tag: TITLE
          text: Array
        - tag: SUMMARY
          text: An ordered collection.
    - tag: BODY
      children:
        - tag: DESCRIPTION
          children:
            - tag: PROSE
              children:
                - tag: TEXT
                  text: "Arrays hold "
                - tag: STRONG
                  text: elements
                - tag: TEXT
                  text: .
        - tag: legacything
          text: opaque
`

func writeTopicFile(t *testing.T, dir, id, content string) string {
	t.Helper()
	path := filepath.Join(dir, id+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDecodeTopic(t *testing.T) {
	topic, err := DecodeTopic([]byte(arrayTopicYAML))
	require.NoError(t, err)
	require.Equal(t, "Array", topic.Title)
	require.Equal(t, "Array", topic.SubjectClass)
	require.Equal(t, "Meta_Array", topic.SubjectMetaclass)
	require.NotNil(t, topic.Root)
	require.Equal(t, TagDocument, topic.Root.Tag)
	require.Len(t, topic.Root.Children, 2)

	body := topic.Root.Children[1]
	require.Equal(t, TagBody, body.Tag)
	legacy := body.Children[1]
	require.Equal(t, TagUnknown, legacy.Tag)
	require.Equal(t, "LEGACYTHING", legacy.Raw)
	require.Equal(t, "opaque", legacy.Text)
}

func TestDecodeTopicWithoutDocument(t *testing.T) {
	_, err := DecodeTopic([]byte("title: nothing here\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no document tree")
}

func TestDecodeTopicNodeWithoutTag(t *testing.T) {
	_, err := DecodeTopic([]byte("document:\n  children:\n    - tag: BODY\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "without tag")
}

func TestDirSourceOpenTopic(t *testing.T) {
	dir := t.TempDir()
	path := writeTopicFile(t, dir, "Array", arrayTopicYAML)

	source := DirSource{Dir: dir}
	topic, err := source.OpenTopic("Array")
	require.NoError(t, err)
	require.Equal(t, "Array", topic.ID)
	require.Equal(t, path, topic.Path)
	require.Equal(t, "Array", topic.SubjectClass)
}

func TestDirSourceMissingTopic(t *testing.T) {
	source := DirSource{Dir: t.TempDir()}
	_, err := source.OpenTopic("Nope")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrResourceNotFound)
}

func TestDirSourceRejectsPathTraversal(t *testing.T) {
	source := DirSource{Dir: t.TempDir()}
	for _, id := range []string{"", "../etc", `a\b`} {
		_, err := source.OpenTopic(id)
		require.Error(t, err, "id %q", id)
	}
}

func TestOpenedTopicRenders(t *testing.T) {
	dir := t.TempDir()
	writeTopicFile(t, dir, "Array", arrayTopicYAML)

	topic, err := DirSource{Dir: dir}.OpenTopic("Array")
	require.NoError(t, err)

	var buf bytes.Buffer
	r := NewRenderer(NewTextSink(&buf))
	require.NoError(t, r.RenderTopic(topic))
	require.Contains(t, buf.String(), "# Array")
	require.Contains(t, buf.String(), "Arrays hold elements.")
	require.Contains(t, buf.String(), "<LEGACYTHING opaque>")

	var unknown *UnknownTagError
	require.Len(t, r.Problems(), 1)
	require.True(t, errors.As(r.Problems()[0], &unknown))
}
