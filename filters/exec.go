package filters

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// `exec` pipes content through an external command.
// Options: `command` (required) and `args`.

func init() {
	Register("exec", MakeExecFilter)
}

type execFilter struct {
	command string
	args    []string
}

func MakeExecFilter(o Options) (Filter, error) {
	command, err := o.String("command", "")
	if err != nil {
		return nil, err
	}
	if command == "" {
		return nil, errors.New("exec: missing command")
	}
	args, err := o.Strings("args")
	if err != nil {
		return nil, err
	}
	return &execFilter{command: command, args: args}, nil
}

func (f *execFilter) Name() string { return fmt.Sprintf("exec %s %q", f.command, f.args) }

func (f *execFilter) Apply(in []byte) (out []byte, err error) {
	cmd := exec.Command(f.command, f.args...)
	cmd.Stdin = bytes.NewReader(in)
	var buf, stderr bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%s: %s", err, bytes.TrimSpace(stderr.Bytes()))
		}
		return nil, err
	}
	return buf.Bytes(), nil
}
