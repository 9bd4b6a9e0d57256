// This file is part of Memcore.
//
// Memcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Memcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Memcore.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/memcore/curated"
)

// DuplicateKey is returned by Group.Add() when the key is already in use.
const DuplicateKey = "prefs: key already in group (%s)"

// Group is a named collection of preference values.
type Group struct {
	entries map[string]Pref

	// keys set by the most recent call to Apply()
	applied map[string]bool
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
		applied: make(map[string]bool),
	}
}

// Add preference value to group under the specified key.
func (g *Group) Add(key string, p Pref) error {
	if _, ok := g.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	g.entries[key] = p
	return nil
}

// Apply sets every preference in the group for which a value has been pushed
// onto the command line stack.
func (g *Group) Apply() error {
	clear(g.applied)
	for _, key := range g.keys() {
		if ok, v := GetCommandLinePref(key); ok {
			if err := g.entries[key].Set(v); err != nil {
				return curated.Errorf(InvalidValue, key, err)
			}
			g.applied[key] = true
		}
	}
	return nil
}

// Applied returns true if the preference with the key was set by the most
// recent call to Apply().
func (g *Group) Applied(key string) bool {
	return g.applied[key]
}

// String returns the group as a prefs string, suitable for passing to
// PushCommandLineStack().
func (g *Group) String() string {
	s := make([]string, 0, len(g.entries))
	for _, key := range g.keys() {
		s = append(s, fmt.Sprintf("%s%s%s", key, valueSep, g.entries[key]))
	}
	return strings.Join(s, fmt.Sprintf("%s ", entrySep))
}

func (g *Group) keys() []string {
	keys := make([]string, 0, len(g.entries))
	for key := range g.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
