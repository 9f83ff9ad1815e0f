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

package world

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🚨 Error kinds, usable with errors.Is
var (
	ErrInvalidPattern   = errors.Base("invalid world glob pattern")
	ErrAccess           = errors.Base("failed to access a world")
	ErrNameConflict     = errors.Base("conflicting local world names")
	ErrNoMatchingWorlds = errors.Base("no matching worlds")
	ErrWorldExists      = errors.Base("world already exists in com.mojang")
	ErrNoLocalMatch     = errors.Base("no local world to import into")
	ErrCopy             = errors.Base("failed to copy world")
	ErrRegistryConsumed = errors.Base("registry has already been consumed")
)

// 🔍 PatternError reports a glob pattern with invalid syntax
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid world glob pattern `%s`", e.Pattern)
	}
	return fmt.Sprintf("invalid world glob pattern `%s`: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
func (e *PatternError) Is(target error) bool { return target == ErrInvalidPattern }

// 📂 AccessError reports a filesystem failure on a specific path
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("failed to access a world at `%s`: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }
func (e *AccessError) Is(target error) bool { return target == ErrAccess }

// ⚔️ ConflictError reports two local worlds sharing one name.
// Path is the newly found world, Existing the one already registered.
type ConflictError struct {
	Path     string
	Existing string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("two local worlds have conflicting names `%s` <-> `%s`", e.Path, e.Existing)
}

func (e *ConflictError) Is(target error) bool { return target == ErrNameConflict }

func (e *ConflictError) Hint() string {
	return "worlds in different directories must have unique names so they are easily identifiable"
}

// 🔎 NotFoundError lists every requested name missing from the source collection
type NotFoundError struct {
	Names []string
}

func (e *NotFoundError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, name := range e.Names {
		quoted[i] = "`" + name + "`"
	}
	return fmt.Sprintf("no worlds matching %s were found", strings.Join(quoted, " and "))
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNoMatchingWorlds }

// 🛑 ExistsError is returned when exporting over an existing world without overwrite
type ExistsError struct {
	Name string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("attempting to export `%s` when one already exists in `com.mojang`", e.Name)
}

func (e *ExistsError) Is(target error) bool { return target == ErrWorldExists }
func (e *ExistsError) Hint() string { return "use --overwrite to bypass" }

// 🛑 NoLocalMatchError is returned when importing a world with no local counterpart
type NoLocalMatchError struct {
	Name string
}

func (e *NoLocalMatchError) Error() string {
	return fmt.Sprintf("attempting to import `%s` when there is no local world matching it", e.Name)
}

func (e *NoLocalMatchError) Is(target error) bool { return target == ErrNoLocalMatch }

func (e *NoLocalMatchError) Hint() string {
	return "worlds must be manually imported to a desired local location for first-time setup"
}

// 📋 CopyError reports a failed recursive copy
type CopyError struct {
	From string
	To   string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("failed to copy world `%s` to `%s`: %v", e.From, e.To, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }
func (e *CopyError) Is(target error) bool { return target == ErrCopy }
