// Package table implements the generic admin table: an in-memory row set
// with search, pagination, and optional inline edit/delete.
//
// The model is pure state; rendering lives in render.go and persistence is
// the caller's concern. Pages that want edits or deletes to reach the
// backend attach commit hooks; without hooks the table is a local
// scratchpad whose changes live only as long as the page.
package table

import (
	"errors"
	"fmt"
	"strings"
)

// PageSize is the fixed number of rows per page.
const PageSize = 15

// Mode selects which affordances the table shows. The three modes are
// mutually exclusive.
type Mode string

const (
	ModeView   Mode = "view"
	ModeEdit   Mode = "edit"
	ModeDelete Mode = "delete"
)

var (
	ErrNoSuchRow    = errors.New("no such row")
	ErrWrongMode    = errors.New("operation not allowed in this mode")
	ErrNothingArmed = errors.New("nothing selected")
)

// Column describes one displayed field.
type Column struct {
	Key   string
	Label string
}

// Row is a denormalized, display-ready projection of one backend record.
// ID must be unique and stable; Fields hold the displayed values by column key.
type Row struct {
	ID     string
	Fields map[string]string
}

// SaveFunc persists a committed edit; returning an error keeps the scratch
// buffer and leaves the row untouched.
type SaveFunc func(row Row) error

// DeleteFunc persists a confirmed delete; returning an error keeps the row.
type DeleteFunc func(id string) error

// Model is one table instance.
type Model struct {
	title   string
	columns []Column

	rows   []Row
	mode   Mode
	search string
	page   int

	editingID string
	scratch   map[string]string
	deleteID  string

	onSave   SaveFunc
	onDelete DeleteFunc
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithSave wires committed edits to a backend call.
func WithSave(fn SaveFunc) Option {
	return func(m *Model) { m.onSave = fn }
}

// WithDelete wires confirmed deletes to a backend call.
func WithDelete(fn DeleteFunc) Option {
	return func(m *Model) { m.onDelete = fn }
}

func New(title string, columns []Column, opts ...Option) *Model {
	m := &Model{
		title:   title,
		columns: columns,
		mode:    ModeView,
		page:    1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Title() string     { return m.title }
func (m *Model) Columns() []Column { return m.columns }
func (m *Model) Mode() Mode        { return m.mode }
func (m *Model) Search() string    { return m.search }
func (m *Model) Rows() []Row       { return m.rows }

// SetRows replaces the row set and resets the page to 1.
func (m *Model) SetRows(rows []Row) {
	m.rows = rows
	m.page = 1
}

// SetSearch updates the search term and resets the page to 1.
func (m *Model) SetSearch(term string) {
	m.search = term
	m.page = 1
}

// SetMode switches between view, edit, and delete. Leaving a mode discards
// any scratch buffer or armed delete, so edit and delete affordances are
// never active at the same time.
func (m *Model) SetMode(mode Mode) error {
	switch mode {
	case ModeView, ModeEdit, ModeDelete:
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	if mode != m.mode {
		m.CancelEdit()
		m.CancelDelete()
		m.mode = mode
	}
	return nil
}

// Filtered returns the rows matching the current search term: a
// case-insensitive substring match against the string form of every field,
// in original order.
func (m *Model) Filtered() []Row {
	if m.search == "" {
		return m.rows
	}
	needle := strings.ToLower(m.search)
	out := make([]Row, 0, len(m.rows))
	for _, row := range m.rows {
		if rowMatches(row, needle) {
			out = append(out, row)
		}
	}
	return out
}

func rowMatches(row Row, needle string) bool {
	if strings.Contains(strings.ToLower(row.ID), needle) {
		return true
	}
	for _, v := range row.Fields {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// TotalPages is ceil(len(filtered)/PageSize); zero when nothing matches.
func (m *Model) TotalPages() int {
	n := len(m.Filtered())
	return (n + PageSize - 1) / PageSize
}

func (m *Model) Page() int { return m.page }

// GoToPage clamps n to [1, max(1, TotalPages)].
func (m *Model) GoToPage(n int) {
	max := m.TotalPages()
	if max < 1 {
		max = 1
	}
	if n < 1 {
		n = 1
	}
	if n > max {
		n = max
	}
	m.page = n
}

func (m *Model) NextPage() { m.GoToPage(m.page + 1) }
func (m *Model) PrevPage() { m.GoToPage(m.page - 1) }

// VisibleRows returns the current page of the filtered row set.
func (m *Model) VisibleRows() []Row {
	filtered := m.Filtered()
	start := (m.page - 1) * PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// StartEdit snapshots the row's fields into the scratch buffer. Requires
// edit mode.
func (m *Model) StartEdit(id string) error {
	if m.mode != ModeEdit {
		return ErrWrongMode
	}
	row, ok := m.findRow(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchRow, id)
	}
	m.editingID = id
	m.scratch = make(map[string]string, len(row.Fields))
	for k, v := range row.Fields {
		m.scratch[k] = v
	}
	return nil
}

// EditingID returns the id of the row under edit, or "".
func (m *Model) EditingID() string { return m.editingID }

// SetField updates one field in the scratch buffer. The row itself is not
// touched until SaveEdit.
func (m *Model) SetField(key, value string) error {
	if m.editingID == "" {
		return ErrNothingArmed
	}
	m.scratch[key] = value
	return nil
}

// ScratchField reads a field from the scratch buffer.
func (m *Model) ScratchField(key string) string {
	if m.scratch == nil {
		return ""
	}
	return m.scratch[key]
}

// SaveEdit commits the scratch buffer: the save hook runs first (an error
// aborts the commit and keeps the scratch state), then the row is
// overwritten by id and the scratch state cleared.
func (m *Model) SaveEdit() error {
	if m.editingID == "" {
		return ErrNothingArmed
	}
	fields := make(map[string]string, len(m.scratch))
	for k, v := range m.scratch {
		fields[k] = v
	}
	updated := Row{ID: m.editingID, Fields: fields}

	if m.onSave != nil {
		if err := m.onSave(updated); err != nil {
			return err
		}
	}
	for i := range m.rows {
		if m.rows[i].ID == m.editingID {
			m.rows[i] = updated
			break
		}
	}
	m.editingID = ""
	m.scratch = nil
	return nil
}

// CancelEdit discards the scratch buffer without mutating the row.
func (m *Model) CancelEdit() {
	m.editingID = ""
	m.scratch = nil
}

// ArmDelete marks one row as pending delete confirmation. Requires delete
// mode.
func (m *Model) ArmDelete(id string) error {
	if m.mode != ModeDelete {
		return ErrWrongMode
	}
	if _, ok := m.findRow(id); !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchRow, id)
	}
	m.deleteID = id
	return nil
}

// DeleteID returns the id pending delete confirmation, or "".
func (m *Model) DeleteID() string { return m.deleteID }

// ConfirmDelete removes exactly the armed row, preserving the relative order
// of the rest. The delete hook runs first; an error keeps the row and the
// armed state.
func (m *Model) ConfirmDelete() error {
	if m.deleteID == "" {
		return ErrNothingArmed
	}
	if m.onDelete != nil {
		if err := m.onDelete(m.deleteID); err != nil {
			return err
		}
	}
	out := m.rows[:0]
	for _, row := range m.rows {
		if row.ID != m.deleteID {
			out = append(out, row)
		}
	}
	m.rows = out
	m.deleteID = ""
	return nil
}

// CancelDelete disarms the pending delete without mutation.
func (m *Model) CancelDelete() {
	m.deleteID = ""
}

func (m *Model) findRow(id string) (Row, bool) {
	for _, row := range m.rows {
		if row.ID == id {
			return row, true
		}
	}
	return Row{}, false
}
