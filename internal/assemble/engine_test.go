package assemble

import (
	"bytes"
	"errors"
	"testing"

	"codeberg.org/go-pdf/fpdf"

	"github.com/EdwardMesmine/VDPPDF-Merger/internal/compose"
	"github.com/EdwardMesmine/VDPPDF-Merger/internal/source"
)

// makeDocument builds a PDF with one page per size and parses it back.
// With no sizes it yields a document whose page tree is empty.
func makeDocument(t *testing.T, role source.Role, sizes ...compose.Size) *source.Document {
	t.Helper()
	var buf bytes.Buffer
	if len(sizes) == 0 {
		if err := compose.WriteEmptyDocument(&buf); err != nil {
			t.Fatalf("building empty fixture PDF: %v", err)
		}
	} else {
		pdf := fpdf.New("P", "pt", "", "")
		pdf.SetAutoPageBreak(false, 0)
		for _, size := range sizes {
			pdf.AddPageFormat("P", fpdf.SizeType{Wd: size.W, Ht: size.H})
		}
		if err := pdf.Output(&buf); err != nil {
			t.Fatalf("building fixture PDF: %v", err)
		}
	}
	doc, err := source.FromBytes(buf.Bytes(), role)
	if err != nil {
		t.Fatalf("parsing fixture PDF: %v", err)
	}
	return doc
}

func TestAssembleNumberedRun(t *testing.T) {
	masterSize := compose.Size{W: 200, H: 300}
	contentSize := compose.Size{W: 180, H: 280}
	master := makeDocument(t, source.RoleMaster, masterSize, masterSize)
	content := makeDocument(t, source.RoleContent, contentSize, contentSize, contentSize)

	b := compose.NewBuilder(compose.Metadata{})
	engine := NewEngine()
	engine.SetOptions(Options{
		FrontX:      compose.Auto,
		FrontY:      compose.Auto,
		StartNumber: 5,
		NumberX:     50,
		NumberY:     50,
		FontFamily:  "Helvetica",
		FontSize:    20,
	})

	records, err := engine.Assemble(b, master, content)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("len(records) = %d, want 6", len(records))
	}
	if b.PageCount() != 6 {
		t.Fatalf("PageCount = %d, want 6", b.PageCount())
	}

	for i, rec := range records {
		if rec.Merge.Index != i {
			t.Errorf("records[%d].Merge.Index = %d, want %d", i, rec.Merge.Index, i)
		}
		if rec.Merge.Tier != compose.MergeTranslated {
			t.Errorf("records[%d].Merge.Tier = %v, want translated", i, rec.Merge.Tier)
		}
		if want := i/2 + 1; rec.ContentPage != want {
			t.Errorf("records[%d].ContentPage = %d, want %d", i, rec.ContentPage, want)
		}

		if i%2 == 0 {
			// Front pages alternate first, auto-centered: (200-180)/2 = 10.
			if rec.Kind != Front {
				t.Errorf("records[%d].Kind = %v, want front", i, rec.Kind)
			}
			if rec.Merge.Offset != (compose.Point{X: 10, Y: 10}) {
				t.Errorf("records[%d].Merge.Offset = %+v, want (10, 10)", i, rec.Merge.Offset)
			}
		} else {
			if rec.Kind != Back {
				t.Errorf("records[%d].Kind = %v, want back", i, rec.Kind)
			}
			// The stamp composites at the origin regardless of the number
			// position inside the stamp canvas.
			if rec.Merge.Offset != (compose.Point{}) {
				t.Errorf("records[%d].Merge.Offset = %+v, want zero", i, rec.Merge.Offset)
			}
			if want := 5 + i/2; rec.Number != want {
				t.Errorf("records[%d].Number = %d, want %d", i, rec.Number, want)
			}
		}
	}
}

func TestAssembleExplicitPlacement(t *testing.T) {
	masterSize := compose.Size{W: 200, H: 300}
	master := makeDocument(t, source.RoleMaster, masterSize, masterSize)
	content := makeDocument(t, source.RoleContent, compose.Size{W: 180, H: 280})

	b := compose.NewBuilder(compose.Metadata{})
	engine := NewEngine()
	engine.SetOptions(Options{
		FrontX:      25,
		FrontY:      30,
		StartNumber: 1,
		NumberX:     50,
		NumberY:     50,
		FontFamily:  "Helvetica",
		FontSize:    20,
	})

	records, err := engine.Assemble(b, master, content)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if records[0].Merge.Offset != (compose.Point{X: 25, Y: 30}) {
		t.Errorf("front offset = %+v, want (25, 30)", records[0].Merge.Offset)
	}
}

func TestAssembleInvalidMaster(t *testing.T) {
	master := makeDocument(t, source.RoleMaster, compose.Size{W: 200, H: 300})
	content := makeDocument(t, source.RoleContent, compose.Size{W: 180, H: 280})

	b := compose.NewBuilder(compose.Metadata{})
	records, err := NewEngine().Assemble(b, master, content)
	if !errors.Is(err, source.ErrInvalidMaster) {
		t.Fatalf("error = %v, want ErrInvalidMaster", err)
	}
	if records != nil {
		t.Error("no records should be produced for an invalid master")
	}
	if b.PageCount() != 0 {
		t.Errorf("PageCount = %d, want 0: failure must precede any output", b.PageCount())
	}
}

func TestAssembleEmptyContent(t *testing.T) {
	masterSize := compose.Size{W: 200, H: 300}
	master := makeDocument(t, source.RoleMaster, masterSize, masterSize)
	content := makeDocument(t, source.RoleContent)

	b := compose.NewBuilder(compose.Metadata{})
	records, err := NewEngine().Assemble(b, master, content)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
	if b.PageCount() != 0 {
		t.Errorf("PageCount = %d, want 0", b.PageCount())
	}
}

func TestAssembleRunsAreIndependent(t *testing.T) {
	masterSize := compose.Size{W: 200, H: 300}
	master := makeDocument(t, source.RoleMaster, masterSize, masterSize)
	content := makeDocument(t, source.RoleContent, compose.Size{W: 180, H: 280}, compose.Size{W: 180, H: 280})

	engine := NewEngine()
	engine.SetOptions(Options{
		FrontX:      compose.Auto,
		FrontY:      compose.Auto,
		StartNumber: 7,
		NumberX:     50,
		NumberY:     50,
		FontFamily:  "Helvetica",
		FontSize:    20,
	})

	// Each run restarts from StartNumber; nothing leaks between runs.
	for run := 0; run < 2; run++ {
		b := compose.NewBuilder(compose.Metadata{})
		records, err := engine.Assemble(b, master, content)
		if err != nil {
			t.Fatalf("run %d: Assemble returned error: %v", run, err)
		}
		if got := records[1].Number; got != 7 {
			t.Errorf("run %d: first number = %d, want 7", run, got)
		}
		if got := records[3].Number; got != 8 {
			t.Errorf("run %d: second number = %d, want 8", run, got)
		}
	}
}

func TestPageKindString(t *testing.T) {
	if Front.String() != "front" || Back.String() != "back" {
		t.Errorf("PageKind strings = %q, %q", Front, Back)
	}
}
