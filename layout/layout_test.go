// ABOUTME: Tests for board layout and dimension building
// ABOUTME: Checks column and row placement, scroll clipping and hit testing

package layout

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"listdrag/board"
	"listdrag/dimension"
	"listdrag/geometry"
	"listdrag/pool"
)

var testOptions = Options{Width: 80, Height: 30, ColumnWidth: 28, ColumnGap: 2, ItemGap: 1}

func parse(t *testing.T, content string) *board.Board {
	t.Helper()

	b, err := board.Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	return b
}

func tallBoard(t *testing.T, items int) *board.Board {
	t.Helper()

	var sb strings.Builder
	sb.WriteString("# Tall\n")
	for i := range items {
		fmt.Fprintf(&sb, "- item %d\n", i)
	}

	return parse(t, sb.String())
}

const threeLists = `# Todo
- one
- two
- three
# Done {task}
# Shelf [horizontal]
- a
- b
`

func TestMeasurePlacement(t *testing.T) {
	b := parse(t, threeLists)
	l := NewMeasurer(testOptions, nil).Measure(b)

	if len(l.Lists) != 3 {
		t.Fatalf("lists = %d, want 3", len(l.Lists))
	}

	todo, done, shelf := l.Lists[0], l.Lists[1], l.Lists[2]

	tests := []struct {
		name string
		got  geometry.Rect
		want geometry.Rect
	}{
		{"todo frame", todo.Frame, geometry.RectFromSize(2, 2, 28, 22)},
		{"done frame", done.Frame, geometry.RectFromSize(32, 2, 28, 22)},
		{"shelf frame", shelf.Frame, geometry.RectFromSize(2, 26, 76, 3)},
		{"first item", l.Items[b.Lists[0].Items[0].ID].Rect, geometry.RectFromSize(2, 2, 28, 3)},
		{"second item", l.Items[b.Lists[0].Items[1].ID].Rect, geometry.RectFromSize(2, 6, 28, 3)},
		{"third item", l.Items[b.Lists[0].Items[2].ID].Rect, geometry.RectFromSize(2, 10, 28, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("rect = %+v, want %+v", tt.got, tt.want)
			}
		})
	}

	a := l.Items[b.Lists[2].Items[0].ID].Rect
	bb := l.Items[b.Lists[2].Items[1].ID].Rect
	if a.Top != 26 || bb.Left != a.Right+2 {
		t.Errorf("row items = %+v then %+v, want side by side with a gap of 2", a, bb)
	}

	if todo.Scrollable() || done.Scrollable() {
		t.Error("short columns should not scroll")
	}
}

func TestMeasureWrapsLongTitles(t *testing.T) {
	b := parse(t, "# L\n- "+strings.Repeat("word ", 20)+"\n- short\n")
	l := NewMeasurer(testOptions, nil).Measure(b)

	long := l.Items[b.Lists[0].Items[0].ID].Rect
	short := l.Items[b.Lists[0].Items[1].ID].Rect

	if long.Height <= 3 {
		t.Errorf("wrapped height = %v, want more than one line", long.Height)
	}

	if short.Top != long.Bottom+1 {
		t.Errorf("next item top = %v, want %v", short.Top, long.Bottom+1)
	}
}

func TestMeasureOnPoolMatchesInline(t *testing.T) {
	b := tallBoard(t, 40)

	p := pool.NewWorkerPool(8)
	defer p.Close()

	inline := NewMeasurer(testOptions, nil).Measure(b)
	pooled := NewMeasurer(testOptions, p).Measure(b)

	if !reflect.DeepEqual(inline, pooled) {
		t.Error("pooled measurement differs from inline measurement")
	}
}

func TestDimensions(t *testing.T) {
	b := parse(t, threeLists)
	l := NewMeasurer(testOptions, nil).Measure(b)
	dims := l.Dimensions(Scroll{})

	if len(dims.Draggables) != 5 || len(dims.Droppables) != 3 {
		t.Fatalf("dimensions = %d draggables %d droppables, want 5 and 3", len(dims.Draggables), len(dims.Droppables))
	}

	second := dims.Draggables[dimension.DraggableID(b.Lists[0].Items[1].ID)]
	if second.Descriptor.Index != 1 || second.Descriptor.DroppableID != dimension.DroppableID(b.Lists[0].ID) {
		t.Errorf("descriptor = %+v", second.Descriptor)
	}

	if second.Page.WithMargin.Bottom != second.Page.WithoutMargin.Bottom+1 {
		t.Errorf("item gap not applied as bottom margin: %+v", second.Page)
	}

	done := dims.Droppables[dimension.DroppableID(b.Lists[1].ID)]
	if done.Descriptor.Type != "task" || !done.IsEnabled || done.Axis.Direction != geometry.Vertical {
		t.Errorf("done droppable = %+v", done.Descriptor)
	}

	shelf := dims.Droppables[dimension.DroppableID(b.Lists[2].ID)]
	if shelf.Axis.Direction != geometry.Horizontal {
		t.Errorf("shelf direction = %v, want horizontal", shelf.Axis.Direction)
	}
}

func TestDimensionsWindowScrollKeepsPageSpace(t *testing.T) {
	b := parse(t, threeLists)
	l := NewMeasurer(testOptions, nil).Measure(b)

	still := l.Dimensions(Scroll{})
	scrolled := l.Dimensions(Scroll{Window: geometry.Position{X: 10}})

	id := dimension.DraggableID(b.Lists[0].Items[0].ID)
	if still.Draggables[id].Page != scrolled.Draggables[id].Page {
		t.Errorf("page rect moved with window scroll: %+v vs %+v", still.Draggables[id].Page, scrolled.Draggables[id].Page)
	}

	if got := scrolled.Draggables[id].Client.WithoutMargin.Left; got != -8 {
		t.Errorf("client left = %v, want -8", got)
	}
}

func TestDimensionsScrolledList(t *testing.T) {
	b := tallBoard(t, 10)
	l := NewMeasurer(testOptions, nil).Measure(b)
	list := l.Lists[0]

	if !list.Scrollable() {
		t.Fatal("ten items should overflow the column")
	}

	if got := list.MaxScroll(); got != (geometry.Position{Y: 40 - 28}) {
		t.Errorf("MaxScroll() = %+v, want {0 12}", got)
	}

	scroll := Scroll{}.WithList(list.ID, geometry.Position{Y: 5})
	dims := l.Dimensions(scroll)

	droppable := dims.Droppables[dimension.DroppableID(list.ID)]
	if !droppable.Container.IsClipped || droppable.Container.Frame != list.Frame {
		t.Errorf("container = %+v, want clipped to the column frame", droppable.Container)
	}

	if droppable.Container.Scroll.Initial != (geometry.Position{Y: 5}) {
		t.Errorf("scroll initial = %+v, want {0 5}", droppable.Container.Scroll.Initial)
	}

	first := dims.Draggables[dimension.DraggableID(b.Lists[0].Items[0].ID)]
	if first.Page.WithoutMargin.Top != -3 {
		t.Errorf("first item top = %v, want -3 after scrolling 5", first.Page.WithoutMargin.Top)
	}
}

func TestClampScroll(t *testing.T) {
	b := tallBoard(t, 10)
	l := NewMeasurer(testOptions, nil).Measure(b)

	tests := []struct {
		in   geometry.Position
		want geometry.Position
	}{
		{geometry.Position{Y: -4}, geometry.Position{}},
		{geometry.Position{Y: 6}, geometry.Position{Y: 6}},
		{geometry.Position{X: 3, Y: 100}, geometry.Position{Y: 12}},
	}

	for _, tt := range tests {
		if got := l.ClampListScroll(l.Lists[0].ID, tt.in); got != tt.want {
			t.Errorf("ClampListScroll(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := l.ClampListScroll("missing", geometry.Position{Y: 3}); got != geometry.Origin {
		t.Errorf("ClampListScroll(missing) = %v, want origin", got)
	}

	if got := l.ClampWindowScroll(geometry.Position{X: 50, Y: 50}); got != (geometry.Position{}) {
		t.Errorf("ClampWindowScroll() = %v, want origin for a board that fits", got)
	}
}

func TestHitTesting(t *testing.T) {
	b := tallBoard(t, 10)
	l := NewMeasurer(testOptions, nil).Measure(b)
	list := l.Lists[0]

	item, ok := l.ItemAt(geometry.Position{X: 10, Y: 7}, Scroll{})
	if !ok || item.Title != "item 1" {
		t.Errorf("ItemAt() = %q %v, want item 1", item.Title, ok)
	}

	scroll := Scroll{}.WithList(list.ID, geometry.Position{Y: 4})
	item, ok = l.ItemAt(geometry.Position{X: 10, Y: 7}, scroll)
	if !ok || item.Title != "item 2" {
		t.Errorf("ItemAt() scrolled = %q %v, want item 2", item.Title, ok)
	}

	if _, ok := l.ItemAt(geometry.Position{X: 10, Y: 1}, scroll); ok {
		t.Error("ItemAt() hit an item clipped above the frame")
	}

	if got, ok := l.ListAt(geometry.Position{X: 10, Y: 0}); !ok || got.ID != list.ID {
		t.Error("ListAt() header miss")
	}

	if _, ok := l.ListAt(geometry.Position{X: 0, Y: 10}); ok {
		t.Error("ListAt() hit the gutter")
	}
}
