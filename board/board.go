// ABOUTME: Reads and writes board files made of titled lists of items
// ABOUTME: Applies finished drops to the board and keeps a .bak backup on save

// Package board holds the on-disk model that drags rearrange.
// A board is a sequence of lists; each list holds ordered items.
package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// DefaultType is the type of lists that do not name one
const DefaultType = "DEFAULT"

// Item is one draggable entry
type Item struct {
	ID    string
	Title string
}

// List is one droppable column (or row, when horizontal)
type List struct {
	ID         string
	Title      string
	Type       string
	Disabled   bool
	Horizontal bool
	Items      []Item
}

// Board is the whole file
type Board struct {
	Lists []List
}

// ErrNotFound is returned when an item or list id is unknown
var ErrNotFound = errors.New("not found")

// ReadBoard reads a board file from disk
func ReadBoard(path string) (*Board, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open board: %w", err)
	}

	defer func() {
		_ = file.Close() // Explicitly ignore error for read-only file
	}()

	return Parse(file)
}

// Parse reads the board format:
//
//	# Title {type} [disabled] [horizontal]
//	- item
//
// Blank lines and // comments are skipped. Ids are generated fresh on every parse.
func Parse(r io.Reader) (*Board, error) {
	b := &Board{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "" || strings.HasPrefix(line, "//"):
			continue
		case strings.HasPrefix(line, "#"):
			b.Lists = append(b.Lists, parseHeader(strings.TrimSpace(strings.TrimPrefix(line, "#"))))
		case strings.HasPrefix(line, "-"):
			if len(b.Lists) == 0 {
				return nil, fmt.Errorf("line %d: item outside of a list", lineNo)
			}

			title := strings.TrimSpace(strings.TrimPrefix(line, "-"))
			last := &b.Lists[len(b.Lists)-1]
			last.Items = append(last.Items, Item{ID: uuid.NewString(), Title: title})
		default:
			return nil, fmt.Errorf("line %d: unrecognised line %q", lineNo, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading board: %w", err)
	}

	return b, nil
}

// parseHeader reads flags off the end of header; everything before them,
// inner spacing included, is the title
func parseHeader(header string) List {
	list := List{ID: uuid.NewString(), Type: DefaultType}
	rest := strings.TrimSpace(header)

	for rest != "" {
		cut := strings.LastIndexAny(rest, " \t") + 1
		word := rest[cut:]

		switch {
		case word == "[disabled]":
			list.Disabled = true
		case word == "[horizontal]":
			list.Horizontal = true
		case len(word) > 2 && strings.HasPrefix(word, "{") && strings.HasSuffix(word, "}"):
			list.Type = word[1 : len(word)-1]
		default:
			list.Title = rest
			return list
		}

		rest = strings.TrimRight(rest[:cut], " \t")
	}

	return list
}

// Format renders b in the file format
func (b *Board) Format() string {
	var sb strings.Builder

	for i, list := range b.Lists {
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString("# " + list.Title)

		if list.Type != "" && list.Type != DefaultType {
			sb.WriteString(" {" + list.Type + "}")
		}

		if list.Disabled {
			sb.WriteString(" [disabled]")
		}

		if list.Horizontal {
			sb.WriteString(" [horizontal]")
		}

		sb.WriteString("\n")

		for _, item := range list.Items {
			sb.WriteString("- " + item.Title + "\n")
		}
	}

	return sb.String()
}

// WriteBoard writes b to path.
// Creates a backup (.bak) of the existing file before overwriting
func WriteBoard(path string, b *Board) (err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		backupPath := path + ".bak"
		if err := os.Rename(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close board file: %w", closeErr)
		}
	}()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(b.Format()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}

	return nil
}

// Clone returns a deep copy of b
func (b *Board) Clone() *Board {
	out := &Board{Lists: make([]List, len(b.Lists))}
	for i, list := range b.Lists {
		out.Lists[i] = list
		out.Lists[i].Items = append([]Item{}, list.Items...)
	}

	return out
}

// ListIndex returns the position of the list with id, or -1
func (b *Board) ListIndex(id string) int {
	for i, list := range b.Lists {
		if list.ID == id {
			return i
		}
	}

	return -1
}

// Locate returns the list position and item index of the item with id
func (b *Board) Locate(itemID string) (listIdx, itemIdx int, ok bool) {
	for li, list := range b.Lists {
		for ii, item := range list.Items {
			if item.ID == itemID {
				return li, ii, true
			}
		}
	}

	return -1, -1, false
}

// FindList returns the first list titled title (case-insensitive)
func (b *Board) FindList(title string) (List, bool) {
	for _, list := range b.Lists {
		if strings.EqualFold(list.Title, title) {
			return list, true
		}
	}

	return List{}, false
}

// FindItem returns the first item titled title (case-insensitive)
func (b *Board) FindItem(title string) (Item, bool) {
	for _, list := range b.Lists {
		for _, item := range list.Items {
			if strings.EqualFold(item.Title, title) {
				return item, true
			}
		}
	}

	return Item{}, false
}

// Move removes the item and inserts it into listID at index. The index counts
// positions in the destination after the item has been removed, so moving an
// item to its own index is a no-op.
func (b *Board) Move(itemID, listID string, index int) error {
	fromList, fromIdx, ok := b.Locate(itemID)
	if !ok {
		return fmt.Errorf("item %s: %w", itemID, ErrNotFound)
	}

	toList := b.ListIndex(listID)
	if toList < 0 {
		return fmt.Errorf("list %s: %w", listID, ErrNotFound)
	}

	size := len(b.Lists[toList].Items)
	if toList == fromList {
		size--
	}

	if index < 0 || index > size {
		return fmt.Errorf("index %d out of range for list %q", index, b.Lists[toList].Title)
	}

	item := b.Lists[fromList].Items[fromIdx]
	src := b.Lists[fromList].Items
	b.Lists[fromList].Items = append(src[:fromIdx:fromIdx], src[fromIdx+1:]...)

	dst := b.Lists[toList].Items
	items := make([]Item, 0, len(dst)+1)
	items = append(items, dst[:index]...)
	items = append(items, item)
	items = append(items, dst[index:]...)
	b.Lists[toList].Items = items

	return nil
}

// SetDisabled toggles whether a list accepts drops
func (b *Board) SetDisabled(listID string, disabled bool) error {
	idx := b.ListIndex(listID)
	if idx < 0 {
		return fmt.Errorf("list %s: %w", listID, ErrNotFound)
	}

	b.Lists[idx].Disabled = disabled

	return nil
}
