package layout

import "testing"

import "github.com/google/uuid"

import "github.com/tinne26/unitext/font"

func TestBoxDefaults(t *testing.T) {
	box := NewBox("", nil, "text", 100, 20)
	if _, err := uuid.Parse(box.Name()); err != nil {
		t.Fatalf("expected a uuid name, got %q", box.Name())
	}
	if NewBox("", nil, "", 1, 1).Name() == box.Name() { t.Fatal("expected unique names") }
	if box.GetLowerBound() != DefaultLowerBound || box.GetUpperBound() != DefaultUpperBound {
		t.Fatalf("unexpected default bounds [%d, %d]", box.GetLowerBound(), box.GetUpperBound())
	}
	if box.GetFittedSize() != 0 { t.Fatalf("expected no fitted size before layout, got %d", box.GetFittedSize()) }
	if !box.NeedsLayout() { t.Fatal("new boxes need a layout pass") }
	if box.FitRequest().Font != font.Default() { t.Fatal("expected the default font for nil fonts") }
}

func TestBoxDirtyTracking(t *testing.T) {
	host := NewHost(nil)
	box := NewBox("box", font.Default(), "dirty", 100, 20)
	host.Attach(box)
	host.ForceLayout()
	if box.NeedsLayout() { t.Fatal("expected clean box after layout pass") }

	// unchanged values don't invalidate the layout
	box.SetText("dirty")
	box.SetSize(100, 20)
	box.SetWrap(false)
	box.SetFont(font.Default())
	box.SetLowerBound(box.GetLowerBound())
	box.SetUpperBound(box.GetUpperBound())
	if box.NeedsLayout() { t.Fatal("setting unchanged values must not dirty the box") }

	mutations := []func(){
		func() { box.SetText("changed") },
		func() { box.SetSize(90, 20) },
		func() { box.SetWrap(true) },
		func() { box.SetFont(nil) },
		func() { box.SetLowerBound(2) },
		func() { box.SetUpperBound(100) },
	}
	for i, mutate := range mutations {
		mutate()
		if !box.NeedsLayout() { t.Fatalf("mutation #%d didn't dirty the box", i) }
		host.ForceLayout()
	}
}

func TestBoxFittedSizeRespectsBounds(t *testing.T) {
	host := NewHost(nil)
	box := NewBox("bounded", nil, "bounded", 400, 400)
	host.Attach(box)
	box.SetUpperBound(30)
	host.ForceLayout()
	if box.GetFittedSize() != 30 { t.Fatalf("expected fitted size 30, got %d", box.GetFittedSize()) }

	box.SetSize(1, 1)
	box.SetLowerBound(12)
	host.ForceLayout()
	if box.GetFittedSize() != 12 { t.Fatalf("expected fitted size 12, got %d", box.GetFittedSize()) }
}
