package loader

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringList is a YAML value that may be written as a single string or a
// sequence of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

// BindingSpec is one entry of a keymap file.
type BindingSpec struct {
	// Modes uses the registration mode forms: names, "!name", or "all".
	Modes StringList `yaml:"modes"`

	// Keys holds alternative space-separated sequences.
	Keys StringList `yaml:"keys"`

	// Action is the catalog name of the bound action.
	Action string `yaml:"action"`

	// Args parameterises the action.
	Args map[string]any `yaml:"args,omitempty"`

	// Line is the line of the entry in its file, for error messages.
	Line int `yaml:"-"`
}

type keymapFile struct {
	Bindings []yaml.Node `yaml:"bindings"`
}

// KeymapLoader loads binding specs from a YAML file of the form:
//
//	bindings:
//	  - modes: insert
//	    keys: ["Ctrl w", "Alt w"]
//	    action: file.write
//	  - modes: [all]
//	    keys: Ctrl g
//	    action: cursor.moveDown
//	    args: {count: 5}
type KeymapLoader struct {
	fs   FileSystem
	path string
}

// NewKeymapLoader creates a loader for the given path.
func NewKeymapLoader(path string) *KeymapLoader {
	return NewKeymapLoaderWithFS(DefaultFS(), path)
}

// NewKeymapLoaderWithFS creates a keymap loader with a custom file system.
func NewKeymapLoaderWithFS(fs FileSystem, path string) *KeymapLoader {
	return &KeymapLoader{fs: fs, path: path}
}

// Path returns the file the loader reads.
func (l *KeymapLoader) Path() string {
	return l.path
}

// Load reads the binding specs. A missing file yields no bindings.
func (l *KeymapLoader) Load() ([]BindingSpec, error) {
	data, err := readOptional(l.fs, l.path)
	if err != nil || data == nil {
		return nil, err
	}

	var file keymapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, l.parseError(0, err)
	}

	specs := make([]BindingSpec, 0, len(file.Bindings))
	for i := range file.Bindings {
		node := &file.Bindings[i]
		var spec BindingSpec
		if err := node.Decode(&spec); err != nil {
			return nil, l.parseError(node.Line, err)
		}
		spec.Line = node.Line
		if err := spec.validate(); err != nil {
			return nil, l.parseError(node.Line, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (l *KeymapLoader) parseError(line int, err error) error {
	return &ParseError{Path: l.path, Line: line, Message: err.Error(), Err: err}
}

func (s BindingSpec) validate() error {
	var errs []error
	if len(s.Modes) == 0 {
		errs = append(errs, errors.New("binding has no modes"))
	}
	if len(s.Keys) == 0 {
		errs = append(errs, errors.New("binding has no keys"))
	}
	if s.Action == "" {
		errs = append(errs, errors.New("binding has no action"))
	}
	return errors.Join(errs...)
}
