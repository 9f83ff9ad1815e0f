// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎯 TransferOperation describes one completed world transfer
type TransferOperation struct {
	Verb string // "exported" or "imported"
	Name string // World name
	From string // Source directory
	To   string // Destination directory
}

// 💡 Hinter is implemented by errors that carry a remediation hint
type Hinter interface {
	Hint() string
}

// 🎯 Logger writes user-facing lines to the console and structured events to zerolog
type Logger struct {
	zlog   zerolog.Logger
	out    io.Writer
	errOut io.Writer
	level  zerolog.Level
	mu     sync.Mutex
}

// 🏭 New creates a new logger. Informational lines go to out, errors to errOut.
func New(out, errOut io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: errOut, NoColor: color.NoColor}).
		With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:   zlog,
		out:    out,
		errOut: errOut,
		level:  level,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context. The zerolog logger is attached as well.
func NewContext(ctx context.Context, l *Logger) context.Context {
	ctx = l.zlog.WithContext(ctx)
	return context.WithValue(ctx, contextKey{}, l)
}

func (l *Logger) enabled(level zerolog.Level) bool {
	return l.level <= level
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	if !l.enabled(zerolog.InfoLevel) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s %s\n", color.New(color.FgCyan, color.Bold).Sprint("info:"), msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.errOut, "%s %s\n", color.New(color.FgRed, color.Bold).Sprint("error:"), msg)
}

// 💡 Hint logs a remediation hint below an error
func (l *Logger) Hint(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.errOut, "  %s %s\n", color.New(color.FgMagenta, color.Bold).Sprint("help:"), msg)
}

// ❌ LogError prints err and, if any error in its chain carries one, its hint
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}
	l.Error(err.Error())

	var h Hinter
	if errors.As(err, &h) && h.Hint() != "" {
		l.Hint(h.Hint())
	}
}

// 📦 LogTransfer logs a completed world transfer
func (l *Logger) LogTransfer(ctx context.Context, op TransferOperation) {
	l.Infof("%s `%s` to `%s`", op.Verb, op.From, op.To)

	l.zlog.Debug().
		Str("world", op.Name).
		Str("from", op.From).
		Str("to", op.To).
		Msg(op.Verb)
}

// 🌳 LogListing prints the local world paths and the com.mojang world names as a tree.
// An empty branch is left out entirely.
func (l *Logger) LogListing(ctx context.Context, local []string, comMojang []string) {
	if len(local) == 0 && len(comMojang) == 0 {
		l.Info("no worlds found")
		return
	}

	l.Infof("listing all worlds at..\n%s", RenderListing(local, comMojang))
}

// RenderListing renders the listing tree without any console prefix
func RenderListing(local []string, comMojang []string) string {
	root := pterm.TreeNode{}
	if len(local) > 0 {
		root.Children = append(root.Children, branch("local project", local))
	}
	if len(comMojang) > 0 {
		root.Children = append(root.Children, branch("com.mojang", comMojang))
	}

	out, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		// the tree printer only fails on writer errors, which a string cannot produce
		return fmt.Sprintf("%v", err)
	}
	return out
}

func branch(title string, items []string) pterm.TreeNode {
	node := pterm.TreeNode{Text: title}
	for _, item := range items {
		node.Children = append(node.Children, pterm.TreeNode{Text: item})
	}
	return node
}
