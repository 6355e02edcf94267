package xml

import (
	"testing"

	"github.com/aleksaelezovic/rdfterm/pkg/term"
)

func TestIrisValid(t *testing.T) {
	if len(all) == 0 {
		t.Fatal("no vocabulary terms registered")
	}
	for _, tm := range all {
		iri := tm.Value()
		if _, err := term.NewIri[term.Ref](iri); err != nil {
			t.Errorf("invalid vocabulary IRI %q: %v", iri, err)
		}
	}
}
