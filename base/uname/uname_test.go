// Copyright 2025 Google LLC
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

package uname_test

import (
	"testing"

	"github.com/gx-org/shapeq/base/uname"
)

func TestName(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{
			name: "a",
			want: "a",
		},
		{
			name: "a",
			want: "a.1",
		},
		{
			name: "a",
			want: "a.2",
		},
		{
			name: "b",
			want: "b",
		},
	}
	names := uname.New()
	for ti, test := range tests {
		got := names.Name(test.name)
		if got != test.want {
			t.Errorf("test %d: got name %q but want %q", ti, got, test.want)
		}
	}
}

func TestReserve(t *testing.T) {
	names := uname.New()
	names.Reserve("size0")
	names.Reserve("size0")
	if got, want := names.Name("size0"), "size0.1"; got != want {
		t.Errorf("got name %q but want %q", got, want)
	}
	if got, want := names.Name("fresh"), "fresh"; got != want {
		t.Errorf("got name %q but want %q", got, want)
	}
}
