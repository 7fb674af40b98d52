// SPDX-License-Identifier: MIT
package textspan

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	type args struct {
		src  string
		seps []byte
	}
	tests := []struct {
		name string
		args args
		want []string
	}{{
		name: "empty source default separator",
		args: args{"", nil},
		want: []string{""},
	}, {
		name: "default separator",
		args: args{"a b", nil},
		want: []string{"a", "b"},
	}, {
		name: "no match",
		args: args{"a b", []byte{','}},
		want: []string{"a b"},
	}, {
		name: "all separators",
		args: args{",,", []byte{','}},
		want: []string{"", "", ""},
	}, {
		name: "leading & trailing",
		args: args{",a,b,", []byte{','}},
		want: []string{"", "a", "b", ""},
	}, {
		name: "two-element any-of",
		args: args{"a_b-c", []byte{'_', '-'}},
		want: []string{"a", "b", "c"},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.args.src, tt.args.seps...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitRemoveEmpty(t *testing.T) {
	type args struct {
		src  string
		seps []byte
	}
	tests := []struct {
		name string
		args args
		want []string
	}{{
		name: "empty source",
		args: args{"", []byte{','}},
		want: nil,
	}, {
		name: "all separators",
		args: args{",,", []byte{','}},
		want: nil,
	}, {
		name: "leading & trailing dropped",
		args: args{",a,,b,", []byte{','}},
		want: []string{"a", "b"},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitRemoveEmpty(tt.args.src, tt.args.seps...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitRemoveEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSplitWord checks agreement with the standard library's multi-character
// string split.
func TestSplitWord(t *testing.T) {
	sources := []string{
		"aaababbaaabbabbaba",
		"bb",
		"bbbb",
		"abc",
		"",
	}

	for _, src := range sources {
		want := strings.Split(src, "bb")
		if got := SplitWord(src, "bb"); !reflect.DeepEqual(got, want) {
			t.Errorf("SplitWord(%q, %q) = %v, want %v", src, "bb", got, want)
		}
	}
}

func TestSplitWord_EmptyWord(t *testing.T) {
	want := []string{"abc"}
	if got := SplitWord("abc", ""); !reflect.DeepEqual(got, want) {
		t.Errorf("SplitWord() with empty word = %v, want %v", got, want)
	}
}

func TestSplit2(t *testing.T) {
	type args struct {
		src string
		sep byte
	}
	tests := []struct {
		name       string
		args       args
		wantFirst  string
		wantSecond string
	}{{
		name:      "discards third fragment",
		args:      args{"abc_def_ghi", '_'},
		wantFirst: "abc", wantSecond: "def",
	}, {
		name:      "single fragment",
		args:      args{"abc", '_'},
		wantFirst: "abc", wantSecond: "",
	}, {
		name:      "filters empty fragments",
		args:      args{"__abc__def", '_'},
		wantFirst: "abc", wantSecond: "def",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := Split2(tt.args.src, tt.args.sep)
			if first != tt.wantFirst || second != tt.wantSecond {
				t.Errorf("Split2() = (%q, %q), want (%q, %q)", first, second, tt.wantFirst, tt.wantSecond)
			}
		})
	}
}

func TestSplit3(t *testing.T) {
	first, second, third := Split3("a:b:c:d", ':')
	if first != "a" || second != "b" || third != "c" {
		t.Errorf("Split3() = (%q, %q, %q), want (%q, %q, %q)", first, second, third, "a", "b", "c")
	}
}

func TestSplitString2(t *testing.T) {
	type args struct {
		src string
		sep string
	}
	tests := []struct {
		name       string
		args       args
		wantFirst  string
		wantSecond string
		wantCount  int
	}{{
		name:      "split once",
		args:      args{"key=value", "="},
		wantFirst: "key", wantSecond: "value", wantCount: 2,
	}, {
		name:      "absent separator",
		args:      args{"key", "="},
		wantFirst: "key", wantSecond: "", wantCount: 1,
	}, {
		name:      "empty separator",
		args:      args{"key", ""},
		wantFirst: "key", wantSecond: "", wantCount: 1,
	}, {
		name:      "trailing separator",
		args:      args{"key=", "="},
		wantFirst: "key", wantSecond: "", wantCount: 2,
	}, {
		name:      "multi-byte separator",
		args:      args{"a::b::c", "::"},
		wantFirst: "a", wantSecond: "b::c", wantCount: 2,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second, count := SplitString2(tt.args.src, tt.args.sep)
			if first != tt.wantFirst || second != tt.wantSecond || count != tt.wantCount {
				t.Errorf("SplitString2() = (%q, %q, %d), want (%q, %q, %d)",
					first, second, count, tt.wantFirst, tt.wantSecond, tt.wantCount)
			}
		})
	}
}

// TestStringSplitter_StdAgreement checks fragment agreement with
// strings.Split across single-byte separators.
func TestStringSplitter_StdAgreement(t *testing.T) {
	sources := []string{"", ",", "a", "a,b", ",a,b,", ",,,", "a,,b"}

	for _, src := range sources {
		want := strings.Split(src, ",")

		s := NewStringSplitter(src, ",")
		var got []string
		for s.Next() {
			got = append(got, s.Fragment())
		}

		if !reflect.DeepEqual(got, want) {
			t.Errorf("StringSplitter fragments of %q = %v, want %v", src, got, want)
		}
	}
}

func TestStringSplitter_Reset(t *testing.T) {
	s := NewStringWordSplitter("a::b::c", "::")

	var first []string
	for s.Next() {
		first = append(first, s.Fragment())
	}

	s.Reset()

	var second []string
	for s.Next() {
		second = append(second, s.Fragment())
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("fragments after Reset = %v, want %v", second, first)
	}
}

func BenchmarkStringSplitter_Next(b *testing.B) {
	src := "alpha,beta,gamma,delta,epsilon"

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		s := NewStringSplitter(src, ",")
		for s.Next() {
		}
	}
}
