package profile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/joseph-ayodele/labreport-extractor/internal/common"
	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
	"github.com/joseph-ayodele/labreport-extractor/internal/pdftext"
)

// fakeExtractor serves pages by file name.
type fakeExtractor struct {
	counts   map[string]int
	pages    map[string][]entity.PageRecord
	failPage map[string]error
	calls    atomic.Int32
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (pdftext.Document, error) {
	f.calls.Add(1)
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if cur <= seen || f.maxSeen.CompareAndSwap(seen, cur) {
			break
		}
	}
	name := filepath.Base(path)
	n, ok := f.counts[name]
	if !ok {
		return pdftext.Document{}, errors.New("not a pdf")
	}
	if err := f.failPage[name]; err != nil {
		return pdftext.Document{}, err
	}
	return pdftext.Document{PageCount: n, Pages: f.pages[name]}, nil
}

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProfileFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "site.pdf", 1024*1024)
	fx := &fakeExtractor{
		counts: map[string]int{"site.pdf": 40},
		pages: map[string][]entity.PageRecord{"site.pdf": {
			{PageNumber: 1, Text: "Borehole BH01 log", Tables: []entity.RawTable{}},
			{PageNumber: 2, Text: "", Tables: []entity.RawTable{}},
			{PageNumber: 3, Text: "Lead 12 mg/kg", Tables: []entity.RawTable{{{"a", "b"}}}},
			{PageNumber: 4, Text: "Arsenic", Tables: []entity.RawTable{{{"a", "b"}}}},
		}},
	}
	p := NewProfiler(fx, common.ProfileConfig{Workers: 1, MaxPages: 3, SampleChars: 10}, nil)

	got := p.ProfileFile(context.Background(), path)
	want := FileProfile{
		Filename:   "site.pdf",
		SizeMB:     1,
		Pages:      40,
		HasText:    true,
		HasTables:  true,
		TextSample: "Borehole B",
		TablePages: []int{3},
		// borehole, bh, lead, mg/kg
		PotentialChemicalKeywords: 4,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProfileFile() =\n%+v\nwant\n%+v", got, want)
	}
	if n := fx.calls.Load(); n != 1 {
		t.Errorf("extractor called %d times, want 1", n)
	}
}

func TestProfileFile_Failures(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.pdf", 10)
	blank := writeFile(t, dir, "blank.pdf", 10)
	fx := &fakeExtractor{
		counts: map[string]int{"blank.pdf": 1},
		pages:  map[string][]entity.PageRecord{"blank.pdf": {{PageNumber: 1, Tables: []entity.RawTable{}}}},
	}
	p := NewProfiler(fx, common.ProfileConfig{MaxPages: 10, SampleChars: 500}, nil)

	got := p.ProfileFile(context.Background(), broken)
	if got.Error == "" || got.Pages != 0 || got.TablePages == nil {
		t.Errorf("broken profile = %+v", got)
	}

	got = p.ProfileFile(context.Background(), blank)
	if got.Error != "" || got.HasText || got.TextSample != NoTextSample {
		t.Errorf("blank profile = %+v", got)
	}

	got = p.ProfileFile(context.Background(), filepath.Join(dir, "missing.pdf"))
	if got.Error == "" {
		t.Error("missing file should record an error")
	}
}

func TestProfileDirectory(t *testing.T) {
	dir := t.TempDir()
	fx := &fakeExtractor{
		counts:   map[string]int{},
		pages:    map[string][]entity.PageRecord{},
		failPage: map[string]error{"c.pdf": errors.New("pdftotext failed")},
	}
	names := []string{"e.pdf", "a.pdf", "d.pdf", "c.pdf", "b.pdf"}
	for _, name := range names {
		writeFile(t, dir, name, 2048)
		fx.counts[name] = 2
		fx.pages[name] = []entity.PageRecord{{PageNumber: 1, Text: "ppm", Tables: []entity.RawTable{}}}
	}
	writeFile(t, dir, "readme.txt", 10)

	p := NewProfiler(fx, common.ProfileConfig{Workers: 2, MaxPages: 10, SampleChars: 500}, nil)
	results, err := p.ProfileDirectory(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	var order []string
	for _, r := range results {
		order = append(order, r.Filename)
	}
	if want := []string{"a.pdf", "b.pdf", "c.pdf", "d.pdf", "e.pdf"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if results[2].Error == "" {
		t.Error("c.pdf failure should be recorded, not abort the batch")
	}
	if results[0].PotentialChemicalKeywords != 1 {
		t.Errorf("keywords = %d", results[0].PotentialChemicalKeywords)
	}
	if n := fx.maxSeen.Load(); n > 2 {
		t.Errorf("max in flight = %d, want <= 2", n)
	}

	s := Summarize(results)
	if s.TotalPDFs != 5 || s.WithText != 4 || s.Failed != 1 || s.AveragePages != 1.6 {
		t.Errorf("summary = %+v", s)
	}
}

func TestProfileDirectory_MissingDir(t *testing.T) {
	p := NewProfiler(&fakeExtractor{}, common.ProfileConfig{Workers: 1}, nil)
	_, err := p.ProfileDirectory(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if common.CodeOf(err) != common.CodeIngest {
		t.Errorf("err = %v", err)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v", s)
	}
	if !strings.Contains(s.String(), "Total PDFs: 0") {
		t.Errorf("String() = %q", s.String())
	}
}

func TestCountKeywords(t *testing.T) {
	if got := CountKeywords("LEAD lead µg/l PPM benzene"); got != 5 {
		t.Errorf("CountKeywords() = %d, want 5", got)
	}
}
