// Package form holds the in-memory field set a registration form is made of.
//
// Fields are addressed two ways, mirroring an HTML form: by ID for single
// reads and writes, and by Name when the whole form is collected with Values.
package form

import (
	"errors"
	"fmt"
	"sync"
)

var ErrUnknownField = errors.New("unknown field")

// Kind is the control type of a field.
type Kind int

const (
	KindText Kind = iota
	KindSelect
	KindCheckbox
)

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// Field describes one form control.
type Field struct {
	ID      string
	Name    string
	Label   string
	Kind    Kind
	Default string
	Options []Option

	// Checkbox only. Value is what gets submitted when checked.
	DefaultChecked bool
}

type fieldState struct {
	Field
	value   string
	checked bool
}

// Form is safe for concurrent use. Writers do not coordinate: the last
// write to a field wins.
type Form struct {
	mu     sync.RWMutex
	fields []*fieldState
	byID   map[string]*fieldState
}

func New(fields ...Field) *Form {
	f := &Form{
		fields: make([]*fieldState, 0, len(fields)),
		byID:   make(map[string]*fieldState, len(fields)),
	}
	for _, fd := range fields {
		fs := &fieldState{Field: fd}
		fs.reset()
		f.fields = append(f.fields, fs)
		if fd.ID != "" {
			f.byID[fd.ID] = fs
		}
	}
	return f
}

func (fs *fieldState) reset() {
	fs.value = fs.Default
	fs.checked = fs.DefaultChecked
}

// Fields returns the field definitions in document order.
func (f *Form) Fields() []Field {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Field, len(f.fields))
	for i, fs := range f.fields {
		out[i] = fs.Field
	}
	return out
}

// Field returns the definition of the field with the given ID.
func (f *Form) Field(id string) (Field, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	fs, ok := f.byID[id]
	if !ok {
		return Field{}, false
	}
	return fs.Field, true
}

// Value returns the current value of the field with the given ID.
func (f *Form) Value(id string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	fs, ok := f.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, id)
	}
	return fs.value, nil
}

// Set overwrites the value of the field with the given ID.
func (f *Form) Set(id, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fs, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, id)
	}
	fs.value = value
	return nil
}

func (f *Form) Checked(id string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	fs, ok := f.byID[id]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownField, id)
	}
	return fs.checked, nil
}

func (f *Form) SetChecked(id string, checked bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fs, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, id)
	}
	fs.checked = checked
	return nil
}

// Values collects the form the way a browser encodes it: fields without a
// name are skipped, unchecked checkboxes are absent and, when names repeat,
// the last field in document order wins.
func (f *Form) Values() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string]string, len(f.fields))
	for _, fs := range f.fields {
		if fs.Name == "" {
			continue
		}
		if fs.Kind == KindCheckbox && !fs.checked {
			continue
		}
		out[fs.Name] = fs.value
	}
	return out
}

// Reset puts every field back to its default.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, fs := range f.fields {
		fs.reset()
	}
}
