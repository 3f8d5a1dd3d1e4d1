// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisfile

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/axis3d/base/errors"
	"cogentcore.org/axis3d/plot3d"
	"github.com/fsnotify/fsnotify"
	pkgerrors "github.com/pkg/errors"
)

// Watcher reloads an axis file whenever it changes, advancing the
// changeset of a document so that its axes recompute.
type Watcher struct {
	// Filename is the file being watched.
	Filename string

	// Document is advanced on every change to the file.
	Document *plot3d.Document

	// OnChange is called with the reloaded configs, or the error
	// from reading them, after each change.
	OnChange func(cfgs []plot3d.Config, err error)

	watcher *fsnotify.Watcher
}

// NewWatcher returns a watcher for the given file, which must be
// started with [Watcher.Run]. The directory of the file is watched
// so that editors replacing the file are seen.
func NewWatcher(filename string, doc *plot3d.Document, onChange func(cfgs []plot3d.Config, err error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "axisfile: creating watcher")
	}
	filename = filepath.Clean(filename)
	if err := fw.Add(filepath.Dir(filename)); err != nil {
		fw.Close()
		return nil, pkgerrors.Wrapf(err, "axisfile: watching %s", filename)
	}
	return &Watcher{Filename: filename, Document: doc, OnChange: onChange, watcher: fw}, nil
}

// Run handles file events until the context is done, then closes
// the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

func (w *Watcher) reload() {
	cs := w.Document.Changed()
	cfgs, err := Open(w.Filename)
	slog.Info("axisfile: reloaded", "file", w.Filename, "axes", len(cfgs), "changeset", cs)
	if w.OnChange != nil {
		w.OnChange(cfgs, err)
	}
}

// Watch watches the given file until the context is done,
// as described in [NewWatcher].
func Watch(ctx context.Context, filename string, doc *plot3d.Document, onChange func(cfgs []plot3d.Config, err error)) error {
	w, err := NewWatcher(filename, doc, onChange)
	if err != nil {
		return err
	}
	w.Run(ctx)
	return nil
}
