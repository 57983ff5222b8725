package main

import (
	"errors"
	"io"

	"github.com/joshuapare/minifs/fs/alloc"
	"github.com/joshuapare/minifs/fs/dir"
	"github.com/joshuapare/minifs/fs/pages"
	"github.com/joshuapare/minifs/fs/shell"
	"github.com/joshuapare/minifs/internal/config"
	"github.com/joshuapare/minifs/internal/logger"
)

// machine is the booted stack: arena, bridge, directory and shell.
type machine struct {
	pages  *pages.Allocator
	bridge *alloc.Bridge
	dir    *dir.Directory
	shell  *shell.Shell
}

// boot maps the arena and builds the directory and shell on top of it.
// Close releases the arena.
func boot(cfg *config.Config, out io.Writer, opts shell.Options) (*machine, error) {
	pa, err := pages.NewMapped(cfg.ArenaBytes(), cfg.Arena.LogicalBase, cfg.Arena.PhysicalBase, logger.L)
	if err != nil {
		return nil, err
	}
	b := alloc.NewBridge(pa, logger.L)
	d, err := dir.New(b, logger.L)
	if err != nil {
		return nil, errors.Join(err, pa.Close())
	}
	opts.Logger = logger.L
	return &machine{
		pages:  pa,
		bridge: b,
		dir:    d,
		shell:  shell.New(d, b, out, opts),
	}, nil
}

func (m *machine) Close() error {
	st := m.pages.Stats()
	logger.L.Debug("arena released",
		"allocations", st.Allocations, "bytes", st.BytesServed, "failures", st.Failures, "files", m.dir.Len())
	return m.pages.Close()
}
