package source

import (
	"fmt"
	"os"
)

// Manager owns every source file of a session.  The id of a file is its
// index in the manager.
type Manager struct {
	files []*File
}

func NewManager() *Manager {
	return &Manager{}
}

// Add registers a file with the given name and contents.
func (m *Manager) Add(name, contents string) *File {
	f := NewFile(len(m.files), name, contents)
	m.files = append(m.files, f)
	return f
}

// Load reads the file at path and registers it.
func (m *Manager) Load(path string) (*File, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file ‘%s’: %w", path, err)
	}
	return m.Add(path, string(bytes)), nil
}

func (m *Manager) File(id int) (*File, error) {
	if id < 0 || id >= len(m.files) {
		return nil, FileIDError(id)
	}
	return m.files[id], nil
}

// Text returns the text covered by span.
func (m *Manager) Text(span Span) (string, error) {
	f, err := m.File(span.FileID)
	if err != nil {
		return "", err
	}
	return f.Text(span)
}

// Position resolves loc to a file name, line, and column.
func (m *Manager) Position(loc Location) (Position, error) {
	f, err := m.File(loc.FileID)
	if err != nil {
		return Position{}, err
	}
	return f.Position(loc.Offset)
}
