// Copyright 2015 Google Inc.
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

package yang

import (
	"testing"

	"github.com/openconfig/gnmi/errdiff"
)

func TestParseIdent(t *testing.T) {
	tests := []struct {
		desc        string
		in          string
		start       int
		wantIdent   string
		wantEnd     int
		wantErrSubstr string
	}{
		{desc: "simple", in: "foo", wantIdent: "foo", wantEnd: 3},
		{desc: "with digits and dashes", in: "foo-bar2", wantIdent: "foo-bar2", wantEnd: 8},
		{desc: "with underscore and dot", in: "foo_bar.baz", wantIdent: "foo_bar.baz", wantEnd: 11},
		{desc: "stops at colon", in: "foo:bar", wantIdent: "foo", wantEnd: 3},
		{desc: "offset into string", in: "xx:foo", start: 3, wantIdent: "foo", wantEnd: 6},
		{desc: "starts with digit is invalid", in: "2foo", wantErrSubstr: "invalid start character"},
		{desc: "starts with dash is invalid", in: "-foo", wantErrSubstr: "invalid start character"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			ident, end, err := ParseIdent(tt.in, tt.start)
			if diff := errdiff.Substring(err, tt.wantErrSubstr); diff != "" {
				t.Fatal(diff)
			}
			if err != nil {
				return
			}
			if ident != tt.wantIdent || end != tt.wantEnd {
				t.Errorf("ParseIdent(%q, %d) = (%q, %d), want (%q, %d)", tt.in, tt.start, ident, end, tt.wantIdent, tt.wantEnd)
			}
		})
	}
}

func TestParseIdentDoesNotAdvanceCursorOnFailure(t *testing.T) {
	_, end, err := ParseIdent("2foo", 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if end != 0 {
		t.Errorf("end = %d, want 0 (cursor must not advance on failure)", end)
	}
}

func TestSplitNodeID(t *testing.T) {
	tests := []struct {
		desc           string
		in             string
		wantPrefix     string
		wantName       string
		wantEnd        int
		wantErrSubstr  string
	}{
		{desc: "name only", in: "foo", wantName: "foo", wantEnd: 3},
		{desc: "prefixed", in: "pfx:foo", wantPrefix: "pfx", wantName: "foo", wantEnd: 7},
		{desc: "bad prefix", in: "1pfx:foo", wantErrSubstr: "invalid start character"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			prefix, name, end, err := SplitNodeID(tt.in, 0)
			if diff := errdiff.Substring(err, tt.wantErrSubstr); diff != "" {
				t.Fatal(diff)
			}
			if err != nil {
				return
			}
			if prefix != tt.wantPrefix || name != tt.wantName || end != tt.wantEnd {
				t.Errorf("SplitNodeID(%q) = (%q, %q, %d), want (%q, %q, %d)",
					tt.in, prefix, name, end, tt.wantPrefix, tt.wantName, tt.wantEnd)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		in            string
		wantErrSubstr string
	}{
		{in: "2023-01-01"},
		{in: "2024-02-29"}, // leap year
		{in: "2023-02-29", wantErrSubstr: "day"},
		{in: "2023-13-01", wantErrSubstr: "month"},
		{in: "2023-00-01", wantErrSubstr: "month"},
		{in: "not-a-date"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ValidateDate(tt.in)
			if tt.in == "not-a-date" {
				if err == nil {
					t.Fatal("expected error for malformed date")
				}
				return
			}
			if diff := errdiff.Substring(err, tt.wantErrSubstr); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
