package export

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/talgya/realmgen/internal/mapgen"
)

func TestRoundTrip(t *testing.T) {
	list, err := mapgen.New().Generate(mapgen.Config{
		Width: 600, Height: 400, TerritoryCount: 8, Seed: 11,
	})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, list); err != nil {
		t.Fatal(err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, list) {
		t.Fatal("round trip changed the territory list")
	}
}

func TestFileRoundTrip(t *testing.T) {
	list, err := mapgen.New().Generate(mapgen.Config{
		Width: 600, Height: 400, TerritoryCount: 5, Seed: 23,
	})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "map.json")
	if err := WriteFile(path, list); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, list) {
		t.Fatal("file round trip changed the territory list")
	}
}

// Import is structural: a list that breaks generation invariants still
// decodes, validation is the producer's job.
func TestReadDoesNotValidate(t *testing.T) {
	doc := `[{"id":"territory-0","name":"","color":"not-a-color",
		"center":{"x":1,"y":1},"borderPoints":[],"area":-5,
		"metadata":{"population":0,"terrain":"desert",
		"resources":{"food":999,"gold":0,"military":0},
		"culture":"Nowhere","development":-1}}]`
	list, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Area != -5 {
		t.Fatalf("structural decode mangled the document: %+v", list)
	}
}

func TestReadMalformed(t *testing.T) {
	if _, err := Read(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}
