// Copyright 2025.
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

package ssh

import (
	"strings"
)

// quoteIfNeeded returns the value single-quoted unless every byte is one the
// shell passes through literally.
func quoteIfNeeded(val string) string {
	if val == "" {
		return "''"
	}
	if strings.IndexFunc(val, func(r rune) bool { return !isShellSafe(r) }) < 0 {
		return val
	}
	return "'" + strings.ReplaceAll(val, "'", `'\''`) + "'"
}

func isShellSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("_@%+=:,./-", r)
}
