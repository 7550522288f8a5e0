// ABOUTME: Tests for cross-axis keyboard movement between lists
// ABOUTME: Covers droppable selection, target choice, empty lists and returning home

package movement

import (
	"reflect"
	"testing"

	"listdrag/dimension"
	"listdrag/geometry"
	"listdrag/impact"
)

func crossArgs(f fixture, forward bool, center geometry.Position, over dimension.DroppableID) CrossAxisArgs {
	return CrossAxisArgs{
		IsMovingForward: forward,
		PageCenter:      center,
		DraggableID:     "item1",
		DroppableID:     over,
		Home:            impact.Location{DroppableID: "home", Index: 0},
		Draggables:      f.draggables,
		Droppables:      f.droppables,
		Previous:        impact.Home(f.item1, f.home),
		Viewport:        testViewport,
	}
}

func TestMoveCrossAxisIntoForeignList(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name       string
		center     geometry.Position
		wantCenter geometry.Position
		wantIndex  int
		wantIDs    []dimension.DraggableID
	}{
		{
			name:       "before the closest item",
			center:     geometry.Position{X: 50, Y: 20},
			wantCenter: geometry.Position{X: 250, Y: 50},
			wantIndex:  0,
			wantIDs:    []dimension.DraggableID{"foreign1", "foreign2"},
		},
		{
			name:       "after the closest item",
			center:     geometry.Position{X: 50, Y: 50},
			wantCenter: geometry.Position{X: 250, Y: 100},
			wantIndex:  1,
			wantIDs:    []dimension.DraggableID{"foreign2"},
		},
		{
			name:       "after the last item",
			center:     geometry.Position{X: 50, Y: 500},
			wantCenter: geometry.Position{X: 250, Y: 150},
			wantIndex:  2,
			wantIDs:    []dimension.DraggableID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveCrossAxis(crossArgs(f, true, tt.center, "home"))
			if got == nil {
				t.Fatal("MoveCrossAxis() = nil")
			}

			if got.PageCenter != tt.wantCenter {
				t.Errorf("PageCenter = %v, want %v", got.PageCenter, tt.wantCenter)
			}

			want := &impact.Location{DroppableID: "foreign", Index: tt.wantIndex}
			if !impact.SameLocation(got.Impact.Destination, want) {
				t.Errorf("Destination = %+v, want %+v", got.Impact.Destination, want)
			}

			if !equalIDs(displacedIDs(got.Impact), tt.wantIDs) {
				t.Errorf("displaced = %v, want %v", displacedIDs(got.Impact), tt.wantIDs)
			}

			if got.Impact.Movement.IsBeyondStartPosition {
				t.Error("IsBeyondStartPosition = true, want false in a foreign list")
			}
		})
	}
}

func TestMoveCrossAxisIntoEmptyList(t *testing.T) {
	f := newFixture()

	got := MoveCrossAxis(crossArgs(f, true, geometry.Position{X: 250, Y: 100}, "foreign"))
	if got == nil {
		t.Fatal("MoveCrossAxis() = nil")
	}

	if want := (geometry.Position{X: 450, Y: 50}); got.PageCenter != want {
		t.Errorf("PageCenter = %v, want %v", got.PageCenter, want)
	}

	want := &impact.Location{DroppableID: "empty", Index: 0}
	if !impact.SameLocation(got.Impact.Destination, want) {
		t.Errorf("Destination = %+v, want %+v", got.Impact.Destination, want)
	}

	if len(got.Impact.Movement.Displaced) != 0 {
		t.Errorf("displaced = %v, want none", displacedIDs(got.Impact))
	}
}

func TestMoveCrossAxisBackHome(t *testing.T) {
	f := newFixture()

	t.Run("original slot", func(t *testing.T) {
		got := MoveCrossAxis(crossArgs(f, false, geometry.Position{X: 250, Y: 100}, "foreign"))
		if got == nil {
			t.Fatal("MoveCrossAxis() = nil")
		}

		if got.PageCenter != f.item1.Page.WithoutMargin.Center {
			t.Errorf("PageCenter = %v, want %v", got.PageCenter, f.item1.Page.WithoutMargin.Center)
		}

		if home := impact.Home(f.item1, f.home); !reflect.DeepEqual(got.Impact, home) {
			t.Errorf("Impact = %+v, want %+v", got.Impact, home)
		}
	})

	t.Run("past the original slot", func(t *testing.T) {
		got := MoveCrossAxis(crossArgs(f, false, geometry.Position{X: 250, Y: 400}, "foreign"))
		if got == nil {
			t.Fatal("MoveCrossAxis() = nil")
		}

		if want := (geometry.Position{X: 50, Y: 550}); got.PageCenter != want {
			t.Errorf("PageCenter = %v, want %v", got.PageCenter, want)
		}

		if got.Impact.Destination == nil || got.Impact.Destination.Index != 2 {
			t.Fatalf("Destination = %+v, want home index 2", got.Impact.Destination)
		}

		if want := []dimension.DraggableID{"item3", "item2"}; !equalIDs(displacedIDs(got.Impact), want) {
			t.Errorf("displaced = %v, want %v", displacedIDs(got.Impact), want)
		}

		if !got.Impact.Movement.IsBeyondStartPosition {
			t.Error("IsBeyondStartPosition = false, want true")
		}
	})
}

func TestMoveCrossAxisDeadEnds(t *testing.T) {
	f := newFixture()

	t.Run("nothing behind the first list", func(t *testing.T) {
		if got := MoveCrossAxis(crossArgs(f, false, geometry.Position{X: 50, Y: 50}, "home")); got != nil {
			t.Errorf("MoveCrossAxis() = %+v, want nil", got)
		}
	})

	t.Run("nothing after the last list", func(t *testing.T) {
		if got := MoveCrossAxis(crossArgs(f, true, geometry.Position{X: 450, Y: 50}, "empty")); got != nil {
			t.Errorf("MoveCrossAxis() = %+v, want nil", got)
		}
	})

	t.Run("no visible target", func(t *testing.T) {
		args := crossArgs(f, true, geometry.Position{X: 50, Y: 200}, "home")
		args.Viewport = dimension.NewViewport(1000, 1000, geometry.Position{Y: 150})

		if got := MoveCrossAxis(args); got != nil {
			t.Errorf("MoveCrossAxis() = %+v, want nil when every item is off screen", got)
		}
	})
}

func TestMoveCrossAxisSkipsDisabledAndOtherTypes(t *testing.T) {
	f := newFixture()

	other := dimension.BuildDroppable(dimension.DroppableArgs{
		ID:        "foreign",
		Type:      "other",
		Direction: geometry.Vertical,
		BorderBox: f.foreign.Client.WithoutMargin,
		IsEnabled: true,
	})

	tests := []struct {
		name       string
		droppables dimension.DroppableMap
	}{
		{"disabled", f.droppables.WithDroppable(dimension.WithEnabled(f.foreign, false))},
		{"other type", f.droppables.WithDroppable(other)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := crossArgs(f, true, geometry.Position{X: 50, Y: 50}, "home")
			args.Droppables = tt.droppables

			got := MoveCrossAxis(args)
			if got == nil {
				t.Fatal("MoveCrossAxis() = nil")
			}

			if got.Impact.Destination == nil || got.Impact.Destination.DroppableID != "empty" {
				t.Errorf("Destination = %+v, want the empty list", got.Impact.Destination)
			}
		})
	}
}

func TestBestCrossAxisDroppable(t *testing.T) {
	f := newFixture()
	tall := dimension.NewViewport(1000, 5000, geometry.Origin)

	upper := droppable("upper", 0, 400, 200, 300)
	lower := droppable("lower", 500, 900, 200, 300)
	far := droppable("far", 2000, 2500, 600, 700)

	stacked := dimension.DroppableMap{"home": f.home, "upper": upper, "lower": lower, "far": far}

	tests := []struct {
		name   string
		center geometry.Position
		want   dimension.DroppableID
	}{
		{"center inside the lower list", geometry.Position{X: 50, Y: 600}, "lower"},
		{"center inside the upper list", geometry.Position{X: 50, Y: 100}, "upper"},
		{"between lists, closer to lower", geometry.Position{X: 50, Y: 460}, "lower"},
		{"between lists, equal distance", geometry.Position{X: 50, Y: 450}, "upper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestCrossAxisDroppable(true, tt.center, f.home, stacked, tall)
			if !ok {
				t.Fatal("BestCrossAxisDroppable() found nothing")
			}

			if got.Descriptor.ID != tt.want {
				t.Errorf("BestCrossAxisDroppable() = %q, want %q", got.Descriptor.ID, tt.want)
			}
		})
	}

	// far does not overlap home's main axis extent
	onlyFar := dimension.DroppableMap{"home": f.home, "far": far}
	if got, ok := BestCrossAxisDroppable(true, geometry.Position{X: 50, Y: 50}, f.home, onlyFar, tall); ok {
		t.Errorf("BestCrossAxisDroppable() = %q, want none", got.Descriptor.ID)
	}
}

func TestClosestDraggable(t *testing.T) {
	f := newFixture()
	inside := dimension.DraggablesInside(f.home, f.draggables)

	tests := []struct {
		name   string
		center geometry.Position
		want   dimension.DraggableID
	}{
		{"near the top", geometry.Position{X: 250, Y: 10}, "item1"},
		{"near the middle", geometry.Position{X: 250, Y: 210}, "item2"},
		{"far below", geometry.Position{X: 250, Y: 900}, "item3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClosestDraggable(tt.center, f.home, inside, testViewport)
			if !ok {
				t.Fatal("ClosestDraggable() found nothing")
			}

			if got.Descriptor.ID != tt.want {
				t.Errorf("ClosestDraggable() = %q, want %q", got.Descriptor.ID, tt.want)
			}
		})
	}

	if _, ok := ClosestDraggable(geometry.Position{}, f.empty, nil, testViewport); ok {
		t.Error("ClosestDraggable() in an empty list should find nothing")
	}
}
