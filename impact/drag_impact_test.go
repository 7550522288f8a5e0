// ABOUTME: Tests for the drag impact calculator across home, foreign and empty lists
// ABOUTME: Includes purity, disabled droppable and no-destination properties

package impact

import (
	"reflect"
	"testing"

	"listdrag/dimension"
	"listdrag/geometry"
)

func TestComputeHomeListMovingForward(t *testing.T) {
	f := newFixture()

	got := Compute(Args{
		PageCenter: geometry.Position{X: 50, Y: f.item3.Page.WithMargin.Top + 1},
		Draggable:  f.item1,
		Draggables: f.draggables,
		Droppables: f.droppables,
		Previous:   Home(f.item1, f.home),
		Viewport:   testViewport,
	})

	if got.Destination == nil || got.Destination.Index != 2 || got.Destination.DroppableID != "home" {
		t.Fatalf("Destination = %+v, want home index 2", got.Destination)
	}

	if want := []dimension.DraggableID{"item3", "item2"}; !equalIDs(displacedIDs(got), want) {
		t.Errorf("displaced = %v, want %v", displacedIDs(got), want)
	}

	if !got.Movement.IsBeyondStartPosition {
		t.Error("IsBeyondStartPosition = false, want true")
	}

	if got.Movement.Amount != (geometry.Position{Y: 100}) {
		t.Errorf("Amount = %v, want {0 100}", got.Movement.Amount)
	}

	if got.Direction != geometry.Vertical {
		t.Errorf("Direction = %v, want vertical", got.Direction)
	}
}

func TestComputeHomeListMovingBackward(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name      string
		y         float64
		wantIndex int
		wantIDs   []dimension.DraggableID
	}{
		{"still over own slot", 450, 2, []dimension.DraggableID{}},
		{"onto item2", 299, 1, []dimension.DraggableID{"item2"}},
		{"onto item1", 99, 0, []dimension.DraggableID{"item1", "item2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(Args{
				PageCenter: geometry.Position{X: 50, Y: tt.y},
				Draggable:  f.item3,
				Draggables: f.draggables,
				Droppables: f.droppables,
				Previous:   Home(f.item3, f.home),
				Viewport:   testViewport,
			})

			if got.Destination == nil || got.Destination.Index != tt.wantIndex {
				t.Fatalf("Destination = %+v, want index %d", got.Destination, tt.wantIndex)
			}

			if !equalIDs(displacedIDs(got), tt.wantIDs) {
				t.Errorf("displaced = %v, want %v", displacedIDs(got), tt.wantIDs)
			}

			if got.Movement.IsBeyondStartPosition {
				t.Error("IsBeyondStartPosition = true, want false")
			}
		})
	}
}

func TestComputeForeignList(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name      string
		y         float64
		wantIndex int
		wantIDs   []dimension.DraggableID
	}{
		{"over first item", 10, 0, []dimension.DraggableID{"foreign1", "foreign2"}},
		{"over second item", 60, 1, []dimension.DraggableID{"foreign2"}},
		{"below all items", 500, 2, []dimension.DraggableID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(Args{
				PageCenter: geometry.Position{X: 250, Y: tt.y},
				Draggable:  f.item1,
				Draggables: f.draggables,
				Droppables: f.droppables,
				Previous:   Home(f.item1, f.home),
				Viewport:   testViewport,
			})

			if got.Destination == nil || got.Destination.DroppableID != "foreign" || got.Destination.Index != tt.wantIndex {
				t.Fatalf("Destination = %+v, want foreign index %d", got.Destination, tt.wantIndex)
			}

			if !equalIDs(displacedIDs(got), tt.wantIDs) {
				t.Errorf("displaced = %v, want %v", displacedIDs(got), tt.wantIDs)
			}

			if got.Movement.IsBeyondStartPosition {
				t.Error("foreign movement should never be beyond start position")
			}
		})
	}
}

func TestComputeEmptyList(t *testing.T) {
	f := newFixture()

	got := Compute(Args{
		PageCenter: geometry.Position{X: 450, Y: 300},
		Draggable:  f.item2,
		Draggables: f.draggables,
		Droppables: f.droppables,
		Previous:   Home(f.item2, f.home),
		Viewport:   testViewport,
	})

	want := &Location{DroppableID: "empty", Index: 0}
	if !SameLocation(got.Destination, want) {
		t.Errorf("Destination = %+v, want %+v", got.Destination, want)
	}

	if len(got.Movement.Displaced) != 0 {
		t.Errorf("displaced = %v, want none", displacedIDs(got))
	}
}

func TestComputeDisabledDroppable(t *testing.T) {
	f := newFixture()
	droppables := f.droppables.WithDroppable(dimension.WithEnabled(f.foreign, false))

	got := Compute(Args{
		PageCenter: geometry.Position{X: 250, Y: 10},
		Draggable:  f.item1,
		Draggables: f.draggables,
		Droppables: droppables,
		Previous:   Home(f.item1, f.home),
		Viewport:   testViewport,
	})

	if !reflect.DeepEqual(got, None()) {
		t.Errorf("Compute() over disabled droppable = %+v, want no impact", got)
	}
}

func TestComputeOutsideAllDroppables(t *testing.T) {
	f := newFixture()

	got := Compute(Args{
		PageCenter: geometry.Position{X: 150, Y: 10},
		Draggable:  f.item1,
		Draggables: f.draggables,
		Droppables: f.droppables,
		Previous:   Home(f.item1, f.home),
		Viewport:   testViewport,
	})

	if got.Destination != nil {
		t.Errorf("Destination = %+v, want nil", got.Destination)
	}

	if len(got.Movement.Displaced) != 0 {
		t.Errorf("displaced = %v, want none when there is no destination", displacedIDs(got))
	}
}

func TestComputeIgnoresOtherTypes(t *testing.T) {
	f := newFixture()
	other := dimension.BuildDroppable(dimension.DroppableArgs{
		ID:        "foreign",
		Type:      "other",
		Direction: geometry.Vertical,
		BorderBox: f.foreign.Client.WithoutMargin,
		IsEnabled: true,
	})

	got := Compute(Args{
		PageCenter: geometry.Position{X: 250, Y: 10},
		Draggable:  f.item1,
		Draggables: f.draggables,
		Droppables: f.droppables.WithDroppable(other),
		Previous:   Home(f.item1, f.home),
		Viewport:   testViewport,
	})

	if got.Destination != nil {
		t.Errorf("Destination = %+v, want nil for a list of another type", got.Destination)
	}
}

func TestComputeIsPure(t *testing.T) {
	f := newFixture()
	args := Args{
		PageCenter: geometry.Position{X: 50, Y: 350},
		Draggable:  f.item1,
		Draggables: f.draggables,
		Droppables: f.droppables,
		Previous:   Home(f.item1, f.home),
		Viewport:   testViewport,
	}

	first := Compute(args)
	second := Compute(args)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Compute() not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestComputeAccountsForDroppableScroll(t *testing.T) {
	f := newFixture()
	scrolled := dimension.ScrollDroppable(f.foreign, geometry.Position{Y: 50})

	// visually at y=10, but the list has scrolled 50 so in measured space that is y=60
	got := Compute(Args{
		PageCenter: geometry.Position{X: 250, Y: 10},
		Draggable:  f.item1,
		Draggables: f.draggables,
		Droppables: f.droppables.WithDroppable(scrolled),
		Previous:   Home(f.item1, f.home),
		Viewport:   testViewport,
	})

	if got.Destination == nil || got.Destination.Index != 1 {
		t.Fatalf("Destination = %+v, want foreign index 1", got.Destination)
	}
}

func TestComputePlaceholderGrowth(t *testing.T) {
	f := newFixture()
	short := droppable("foreign", 0, 100, 200, 300)
	droppables := f.droppables.WithDroppable(short)
	below := geometry.Position{X: 250, Y: 150}

	fresh := Compute(Args{
		PageCenter: below,
		Draggable:  f.item1,
		Draggables: f.draggables,
		Droppables: droppables,
		Previous:   Home(f.item1, f.home),
		Viewport:   testViewport,
	})

	if fresh.Destination != nil {
		t.Fatalf("Destination = %+v, want nil below a list the item has not entered", fresh.Destination)
	}

	previous := DragImpact{
		Movement:    Movement{Displaced: []Displacement{}, Amount: geometry.Position{Y: 100}},
		Direction:   geometry.Vertical,
		Destination: &Location{DroppableID: "foreign", Index: 2},
	}

	grown := Compute(Args{
		PageCenter: below,
		Draggable:  f.item1,
		Draggables: f.draggables,
		Droppables: droppables,
		Previous:   previous,
		Viewport:   testViewport,
	})

	want := &Location{DroppableID: "foreign", Index: 2}
	if !SameLocation(grown.Destination, want) {
		t.Errorf("Destination = %+v, want %+v once the list holds a placeholder", grown.Destination, want)
	}
}

func TestHomeImpact(t *testing.T) {
	f := newFixture()

	got := Home(f.item2, f.home)
	if !SameLocation(got.Destination, &Location{DroppableID: "home", Index: 1}) {
		t.Errorf("Destination = %+v", got.Destination)
	}

	if disabled := Home(f.item2, dimension.WithEnabled(f.home, false)); disabled.Destination != nil {
		t.Errorf("Home() of a disabled list = %+v, want no destination", disabled.Destination)
	}
}
