package dirbuild

import (
	"fmt"

	"github.com/gon-format/go-gon/eval"
)

// DirPatch names patch files by glob. A patch whose If expression
// evaluates to false is skipped. In a build file a DirPatch is either a
// glob string or an object with file and if fields.
type DirPatch struct {
	File string `yaml:"file"`
	If   string `yaml:"if,omitempty"`
}

func (d *DirPatch) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	if s, ok := v.(string); ok {
		*d = DirPatch{File: s}
		return nil
	}
	type plain DirPatch
	return unmarshal((*plain)(d))
}

func (d *DirPatch) String() string {
	if d.If == "" {
		return d.File
	}
	return fmt.Sprintf("%s if %s", d.File, d.If)
}

func (d *DirPatch) enabled(env map[string]any) (bool, error) {
	if d.If == "" {
		return true, nil
	}
	v, err := eval.EvalAny(nil, d.If, env)
	if err != nil {
		return false, fmt.Errorf("patch %s: %w", d.File, err)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("patch %s: condition %q gave %T, want bool", d.File, d.If, v)
	}
	return b, nil
}
