// Copyright (c) 2026 The lshindex Authors. All rights reserved.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package glogadapter adapts github.com/aristanetworks/glog to the
// lshlog.Logger interface.
package glogadapter

import "github.com/aristanetworks/glog"

// Glog implements lshlog.Logger on top of glog. The zero value logs
// at the default verbosity.
type Glog struct {
	// InfoLevel is the glog verbosity level Info/Infof log at.
	InfoLevel glog.Level
}

// Info logs at the info level.
func (g *Glog) Info(args ...interface{}) {
	glog.V(g.InfoLevel).Info(args...)
}

// Infof logs at the info level, with format.
func (g *Glog) Infof(format string, args ...interface{}) {
	glog.V(g.InfoLevel).Infof(format, args...)
}

// Error logs at the error level.
func (g *Glog) Error(args ...interface{}) {
	glog.Error(args...)
}

// Errorf logs at the error level, with format.
func (g *Glog) Errorf(format string, args ...interface{}) {
	glog.Errorf(format, args...)
}
