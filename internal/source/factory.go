package source

import "fmt"

// Source types understood by New.
const (
	TypeWaveServer = "ws"
	TypeWinston    = "wws"
	TypeFDSN       = "fdsnws"
	TypeFile       = "file"
)

// New builds a DataSource from its config string.
func New(raw string) (DataSource, error) {
	spec, err := ParseSpec(raw)
	if err != nil {
		return nil, err
	}

	var (
		src DataSource
		bad error
	)
	switch spec.Type {
	case TypeWaveServer, TypeWinston:
		ws, e := NewWaveServer(spec)
		src, bad = ws, e
	case TypeFDSN:
		f, e := NewFDSN(spec)
		src, bad = f, e
	case TypeFile:
		f, e := NewFile(spec)
		src, bad = f, e
	default:
		return nil, fmt.Errorf("source %s: unknown type %q", spec.Name, spec.Type)
	}
	if bad != nil {
		return nil, bad
	}
	return src, nil
}
