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
	"sync"
)

// separators used in the prefs string.
const (
	entrySep = ";"
	valueSep = "::"
)

var commandLine struct {
	crit  sync.Mutex
	stack []map[string]string
}

// PushCommandLineStack forwards command line arguments to the prefs system.
// Key/value pairs are separated by semicolons and the key is separated from
// the value by a double colon. Badly formed entries are ignored.
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	cl := make(map[string]string)
	for _, p := range strings.Split(prefs, entrySep) {
		kv := strings.Split(p, valueSep)
		if len(kv) == 2 {
			key := strings.TrimSpace(kv[0])
			if key != "" {
				cl[key] = strings.TrimSpace(kv[1])
			}
		}
	}

	commandLine.stack = append(commandLine.stack, cl)
}

// PopCommandLineStack removes the top group of command line prefs. The
// entries that were never used are returned as a prefs string with the keys
// sorted alphabetically.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	popped := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s%s ", key, valueSep, popped[key], entrySep))
	}

	return strings.TrimSuffix(s.String(), fmt.Sprintf("%s ", entrySep))
}

// GetCommandLinePref returns the value for the key in the top group of the
// command line stack. The entry is removed from the stack once it has been
// returned.
func GetCommandLinePref(key string) (bool, string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return false, ""
	}

	cl := commandLine.stack[len(commandLine.stack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, ""
}
