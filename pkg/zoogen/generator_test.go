package zoogen_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoogen/pkg/core"
	"zoogen/pkg/render"
	"zoogen/pkg/zoogen"
)

// memorySource implements core.Source without touching the filesystem.
type memorySource struct {
	records []core.Record
	tmpl    string
	err     error
}

func (m *memorySource) Records(ctx context.Context) ([]core.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *memorySource) Template(ctx context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.tmpl, nil
}

// memorySink captures the rendered page.
type memorySink struct {
	page    string
	written bool
	err     error
}

func (m *memorySink) Write(ctx context.Context, html string) error {
	if m.err != nil {
		return m.err
	}
	m.page = html
	m.written = true
	return nil
}

func testSource() *memorySource {
	return &memorySource{
		records: []core.Record{
			{Name: "Fox", Characteristics: core.Characteristics{"diet": "Omnivore", "type": "Mammal"}, Locations: []string{"Forest"}},
			{Name: "Deer", Characteristics: core.Characteristics{"diet": "Herbivore", "type": "Mammal"}, Locations: []string{"Forest"}},
		},
		tmpl: "<ul>" + render.Placeholder + "</ul>",
	}
}

func TestRun_Success(t *testing.T) {
	sink := &memorySink{}
	gen := zoogen.New(zoogen.DefaultConfig("."), zoogen.WithSource(testSource()), zoogen.WithSink(sink))

	res := gen.Run(context.Background(), nil)

	require.True(t, res.OK, res.Message)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "generated page with 2 animals", res.Message)
	assert.True(t, strings.HasPrefix(sink.page, "<ul>"))
	assert.Contains(t, sink.page, "Fox")
	assert.Contains(t, sink.page, "Deer")
}

func TestRun_FilteredSuccessMessage(t *testing.T) {
	sink := &memorySink{}
	gen := zoogen.New(zoogen.DefaultConfig("."), zoogen.WithSource(testSource()), zoogen.WithSink(sink))

	filters := core.Filters{}.Set(core.FieldDiet, "Herbivore")
	res := gen.Run(context.Background(), filters)

	require.True(t, res.OK, res.Message)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "generated page with 1 animals (diet: Herbivore)", res.Message)
	assert.Contains(t, sink.page, "Deer")
	assert.NotContains(t, sink.page, "Fox")
}

func TestRun_NoMatches(t *testing.T) {
	sink := &memorySink{}
	gen := zoogen.New(zoogen.DefaultConfig("."), zoogen.WithSource(testSource()), zoogen.WithSink(sink))

	filters := core.Filters{}.Set(core.FieldDiet, "Carnivore")
	res := gen.Run(context.Background(), filters)

	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "no animals match")
	assert.Contains(t, res.Message, "diet: Carnivore")
	assert.False(t, sink.written, "no output may be produced on an empty filter result")
}

func TestRun_SourceFailure(t *testing.T) {
	src := &memorySource{err: fmt.Errorf("%w: data/animals.json", core.ErrSourceMissing)}
	sink := &memorySink{}
	gen := zoogen.New(zoogen.DefaultConfig("."), zoogen.WithSource(src), zoogen.WithSink(sink))

	res := gen.Run(context.Background(), nil)

	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "data/animals.json")
	assert.False(t, sink.written)
}

func TestRun_SinkFailure(t *testing.T) {
	sink := &memorySink{err: errors.New("disk full")}
	gen := zoogen.New(zoogen.DefaultConfig("."), zoogen.WithSource(testSource()), zoogen.WithSink(sink))

	res := gen.Run(context.Background(), nil)

	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "disk full")
}

func TestRun_TemplateWithoutPlaceholder(t *testing.T) {
	src := testSource()
	src.tmpl = "<html>static</html>"
	sink := &memorySink{}
	gen := zoogen.New(zoogen.DefaultConfig("."), zoogen.WithSource(src), zoogen.WithSink(sink))

	res := gen.Run(context.Background(), nil)

	// Pass-through, not an error.
	require.True(t, res.OK, res.Message)
	assert.Equal(t, "<html>static</html>", sink.page)
}

func TestRun_VerbatimValues(t *testing.T) {
	src := testSource()
	src.records[0].Characteristics["diet"] = "Fish & Chips"
	sink := &memorySink{}
	gen := zoogen.New(zoogen.DefaultConfig("."),
		zoogen.WithSource(src), zoogen.WithSink(sink), zoogen.WithVerbatimValues(true))

	res := gen.Run(context.Background(), nil)

	require.True(t, res.OK, res.Message)
	assert.Contains(t, sink.page, "Fish & Chips")
	assert.NotContains(t, sink.page, "&amp;")
}
