// ABOUTME: Lays a board out into terminal cells and builds drag dimensions from it
// ABOUTME: Vertical lists become scrollable columns, horizontal lists become rows below them

// Package layout is the measurement side of the drag host. It places every
// list and item of a board on a cell grid (page space) and turns that
// placement plus the current scroll offsets into dimension snapshots.
package layout

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"listdrag/board"
	"listdrag/dimension"
	"listdrag/geometry"
	"listdrag/pool"
)

// Fixed chrome, in cells
const (
	HeaderHeight = 2 // list title plus rule
	RowBoxHeight = 3 // a single-line bordered item
	minBody      = 4
)

// Options are the layout settings
type Options struct {
	Width       int // visible board area
	Height      int
	ColumnWidth int
	ColumnGap   int
	ItemGap     int
}

// ItemBox is an item placed in page space, before any scrolling
type ItemBox struct {
	ID     string
	ListID string
	Index  int
	Title  string
	Label  string // text drawn inside the box
	Rect   geometry.Rect
	Margin geometry.Spacing
}

// ListBox is a placed list
type ListBox struct {
	ID         string
	Title      string
	Type       string
	Disabled   bool
	Horizontal bool
	Header     geometry.Rect
	Frame      geometry.Rect // visible body; items outside it are clipped
	Content    geometry.Rect // full body, at least as large as Frame
	Items      []string      // item ids in order
}

// Scrollable reports whether the content overflows the frame
func (l ListBox) Scrollable() bool {
	return l.Content.Height > l.Frame.Height || l.Content.Width > l.Frame.Width
}

// MaxScroll is the largest scroll offset the list accepts
func (l ListBox) MaxScroll() geometry.Position {
	return geometry.Position{
		X: max(0, l.Content.Width-l.Frame.Width),
		Y: max(0, l.Content.Height-l.Frame.Height),
	}
}

// Layout is a measured board
type Layout struct {
	Lists  []ListBox
	Items  map[string]ItemBox
	Width  float64 // page extent
	Height float64
	View   geometry.Rect // size of the visible window, at the origin
}

// Scroll is the scroll state applied when building dimensions
type Scroll struct {
	Window geometry.Position
	Lists  map[string]geometry.Position
}

// List returns the scroll of list id
func (s Scroll) List(id string) geometry.Position {
	return s.Lists[id]
}

// WithList returns a copy of s with list id scrolled to p
func (s Scroll) WithList(id string, p geometry.Position) Scroll {
	lists := make(map[string]geometry.Position, len(s.Lists)+1)
	for k, v := range s.Lists {
		lists[k] = v
	}

	lists[id] = p

	return Scroll{Window: s.Window, Lists: lists}
}

// Provider measures boards
type Provider interface {
	Measure(b *board.Board) *Layout
}

// Measurer is the terminal Provider. Item heights depend on wrapped text and
// are measured in parallel on the pool.
type Measurer struct {
	mu   sync.RWMutex
	opts Options
	pool *pool.WorkerPool
}

// NewMeasurer creates a Measurer. p may be nil to measure inline.
func NewMeasurer(opts Options, p *pool.WorkerPool) *Measurer {
	return &Measurer{opts: opts, pool: p}
}

// SetSize updates the visible board area
func (m *Measurer) SetSize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opts.Width = width
	m.opts.Height = height
}

// SetOptions replaces every setting
func (m *Measurer) SetOptions(opts Options) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opts = opts
}

// Options returns the current settings
func (m *Measurer) Options() Options {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.opts
}

// ItemStyle is the bordered box every item is drawn in. width is the outer
// width; zero leaves the box sized to its content.
func ItemStyle(width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	if width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize())
	}

	return style
}

// Label returns the text drawn for an item. Row items are a single line.
func Label(title string, horizontal bool, columnWidth int) string {
	if !horizontal {
		return title
	}

	return ansi.Truncate(title, max(1, columnWidth-4), "…")
}

type measured struct {
	width, height float64
	label         string
}

// Measure places b
func (m *Measurer) Measure(b *board.Board) *Layout {
	o := m.Options()

	type job struct {
		list int
		item board.Item
	}

	var jobs []job
	for li, list := range b.Lists {
		for _, item := range list.Items {
			jobs = append(jobs, job{list: li, item: item})
		}
	}

	sizes := pool.Map(m.pool, len(jobs), func(i int) measured {
		j := jobs[i]
		horizontal := b.Lists[j.list].Horizontal
		label := Label(j.item.Title, horizontal, o.ColumnWidth)

		width := o.ColumnWidth
		if horizontal {
			width = 0
		}

		box := ItemStyle(width).Render(label)

		return measured{
			width:  float64(lipgloss.Width(box)),
			height: float64(lipgloss.Height(box)),
			label:  label,
		}
	})

	sizeOf := make(map[string]measured, len(jobs))
	for i, j := range jobs {
		sizeOf[j.item.ID] = sizes[i]
	}

	rows := 0
	for _, list := range b.Lists {
		if list.Horizontal {
			rows++
		}
	}

	rowHeight := float64(HeaderHeight + RowBoxHeight + o.ItemGap)
	columnHeight := max(float64(o.Height)-float64(rows)*rowHeight, float64(HeaderHeight+minBody))
	bodyHeight := columnHeight - HeaderHeight

	out := &Layout{
		Items: make(map[string]ItemBox, len(jobs)),
		View:  geometry.RectFromSize(0, 0, float64(o.Width), float64(o.Height)),
	}

	column := 0
	row := 0
	step := float64(o.ColumnWidth + o.ColumnGap)
	gap := float64(o.ColumnGap)
	rowWidth := max(float64(o.Width)-2*gap, float64(o.ColumnWidth))

	for _, list := range b.Lists {
		box := ListBox{
			ID:         list.ID,
			Title:      list.Title,
			Type:       list.Type,
			Disabled:   list.Disabled,
			Horizontal: list.Horizontal,
		}

		if !list.Horizontal {
			left := gap + float64(column)*step
			column++

			box.Header = geometry.RectFromSize(left, 0, float64(o.ColumnWidth), HeaderHeight)
			box.Frame = geometry.RectFromSize(left, HeaderHeight, float64(o.ColumnWidth), bodyHeight)

			y := box.Frame.Top
			for i, item := range list.Items {
				size := sizeOf[item.ID]
				out.Items[item.ID] = ItemBox{
					ID:     item.ID,
					ListID: list.ID,
					Index:  i,
					Title:  item.Title,
					Label:  size.label,
					Rect:   geometry.RectFromSize(left, y, size.width, size.height),
					Margin: geometry.Spacing{Bottom: float64(o.ItemGap)},
				}
				y += size.height + float64(o.ItemGap)
				box.Items = append(box.Items, item.ID)
			}

			contentHeight := max(y-box.Frame.Top, box.Frame.Height)
			box.Content = geometry.RectFromSize(left, box.Frame.Top, box.Frame.Width, contentHeight)
		} else {
			top := columnHeight + float64(row)*rowHeight
			row++

			box.Header = geometry.RectFromSize(gap, top, rowWidth, HeaderHeight)
			box.Frame = geometry.RectFromSize(gap, top+HeaderHeight, rowWidth, RowBoxHeight)

			x := box.Frame.Left
			for i, item := range list.Items {
				size := sizeOf[item.ID]
				out.Items[item.ID] = ItemBox{
					ID:     item.ID,
					ListID: list.ID,
					Index:  i,
					Title:  item.Title,
					Label:  size.label,
					Rect:   geometry.RectFromSize(x, box.Frame.Top, size.width, size.height),
					Margin: geometry.Spacing{Right: gap},
				}
				x += size.width + gap
				box.Items = append(box.Items, item.ID)
			}

			contentWidth := max(x-box.Frame.Left, box.Frame.Width)
			box.Content = geometry.RectFromSize(box.Frame.Left, box.Frame.Top, contentWidth, box.Frame.Height)
		}

		out.Lists = append(out.Lists, box)
		out.Width = max(out.Width, box.Header.Right+gap, box.Frame.Right+gap)
		out.Height = max(out.Height, box.Frame.Bottom)
	}

	return out
}

// List returns the list with id
func (l *Layout) List(id string) (ListBox, bool) {
	for _, list := range l.Lists {
		if list.ID == id {
			return list, true
		}
	}

	return ListBox{}, false
}

// MaxWindowScroll is the largest window scroll the layout allows
func (l *Layout) MaxWindowScroll() geometry.Position {
	return geometry.Position{
		X: max(0, l.Width-l.View.Width),
		Y: max(0, l.Height-l.View.Height),
	}
}

// ClampWindowScroll bounds p to the scrollable page
func (l *Layout) ClampWindowScroll(p geometry.Position) geometry.Position {
	return clamp(p, l.MaxWindowScroll())
}

// ClampListScroll bounds p to what list id can scroll
func (l *Layout) ClampListScroll(id string, p geometry.Position) geometry.Position {
	list, ok := l.List(id)
	if !ok {
		return geometry.Origin
	}

	return clamp(p, list.MaxScroll())
}

func clamp(p, upper geometry.Position) geometry.Position {
	return geometry.Position{
		X: min(max(p.X, 0), upper.X),
		Y: min(max(p.Y, 0), upper.Y),
	}
}

// ItemRect is where item id currently sits in page space, after its list scrolled
func (l *Layout) ItemRect(id string, scroll Scroll) (geometry.Rect, bool) {
	item, ok := l.Items[id]
	if !ok {
		return geometry.Rect{}, false
	}

	return item.Rect.Offset(scroll.List(item.ListID).Negate()), true
}

// ItemAt returns the item under page point p. Items clipped by their list
// frame cannot be hit outside it.
func (l *Layout) ItemAt(p geometry.Position, scroll Scroll) (ItemBox, bool) {
	for _, list := range l.Lists {
		if !list.Frame.Contains(p) {
			continue
		}

		for _, id := range list.Items {
			rect, _ := l.ItemRect(id, scroll)
			if rect.Contains(p) {
				return l.Items[id], true
			}
		}
	}

	return ItemBox{}, false
}

// ListAt returns the list whose header or frame holds page point p
func (l *Layout) ListAt(p geometry.Position) (ListBox, bool) {
	for _, list := range l.Lists {
		if list.Frame.Contains(p) || list.Header.Contains(p) {
			return list, true
		}
	}

	return ListBox{}, false
}

// Viewport is the window snapshot for scroll
func (l *Layout) Viewport(scroll geometry.Position) dimension.Viewport {
	return dimension.NewViewport(l.View.Width, l.View.Height, scroll)
}

// Dimensions builds drag dimensions as they are at scroll. Measured rects
// are client rects: page space minus the window scroll and minus the list's
// own scroll.
func (l *Layout) Dimensions(scroll Scroll) dimension.Dimensions {
	dims := dimension.Dimensions{
		Draggables: make(dimension.DraggableMap, len(l.Items)),
		Droppables: make(dimension.DroppableMap, len(l.Lists)),
	}

	toClient := scroll.Window.Negate()

	for _, list := range l.Lists {
		listScroll := scroll.List(list.ID)
		shift := toClient.Add(listScroll.Negate())

		direction := geometry.Vertical
		if list.Horizontal {
			direction = geometry.Horizontal
		}

		args := dimension.DroppableArgs{
			ID:              dimension.DroppableID(list.ID),
			Type:            dimension.TypeID(list.Type),
			Direction:       direction,
			BorderBox:       list.Content.Offset(shift),
			WindowScroll:    scroll.Window,
			ContainerScroll: listScroll,
			IsEnabled:       !list.Disabled,
		}

		if list.Scrollable() {
			frame := list.Frame.Offset(toClient)
			args.Container = &frame
		}

		dims.Droppables[args.ID] = dimension.BuildDroppable(args)

		for _, id := range list.Items {
			item := l.Items[id]
			dims.Draggables[dimension.DraggableID(id)] = dimension.BuildDraggable(
				dimension.DraggableID(id),
				dimension.DroppableID(list.ID),
				item.Index,
				item.Rect.Offset(shift),
				item.Margin,
				scroll.Window,
			)
		}
	}

	return dims
}
