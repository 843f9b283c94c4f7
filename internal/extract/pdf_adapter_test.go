package extract

import (
	"context"
	"testing"

	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

func TestSanitize(t *testing.T) {
	in := []entity.PageRecord{
		{PageNumber: 5, Text: "first", Tables: nil},
		{PageNumber: 9, Text: "", Tables: []entity.RawTable{nil, {{"a"}}}},
	}
	got := Sanitize(in)

	for i, p := range got {
		if p.PageNumber != i+1 {
			t.Errorf("page %d numbered %d", i, p.PageNumber)
		}
		if p.Tables == nil {
			t.Errorf("page %d has nil tables", p.PageNumber)
		}
	}
	if got[0].Text != "first" {
		t.Errorf("text = %q", got[0].Text)
	}
	if len(got[1].Tables) != 2 || got[1].Tables[0] == nil {
		t.Errorf("tables = %#v", got[1].Tables)
	}
	if in[0].PageNumber != 5 {
		t.Error("input must not be modified")
	}
}

func TestStaticSource(t *testing.T) {
	src := StaticSource{{PageNumber: 1, Text: "a"}}
	pages, err := src.Pages(context.Background(), "ignored.pdf")
	if err != nil || len(pages) != 1 || pages[0].Text != "a" {
		t.Errorf("Pages() = %v, %v", pages, err)
	}
}
