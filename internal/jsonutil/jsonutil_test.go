package jsonutil

import (
	"strings"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestUnmarshalWithContext_WrapsContext(t *testing.T) {
	var v map[string]any
	err := UnmarshalWithContext([]byte(`{`), &v, "parse deck")
	if err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	if got := err.Error(); !strings.HasPrefix(got, "parse deck: ") {
		t.Errorf("error %q should start with context", got)
	}
}

func TestUnmarshalArrayAllowEmpty(t *testing.T) {
	type item struct {
		ID int `json:"id"`
	}

	tests := []struct {
		name    string
		data    string
		want    int
		wantErr bool
	}{
		{"two items", `[{"id":1},{"id":2}]`, 2, false},
		{"empty array", `[]`, 0, false},
		{"object is not an array", `{"id":1}`, 0, true},
		{"invalid", `[`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalArrayAllowEmpty[item]([]byte(tt.data), "items")
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalArrayAllowEmpty() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != tt.want {
				t.Errorf("UnmarshalArrayAllowEmpty() len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestIsArray(t *testing.T) {
	tests := []struct {
		data string
		want bool
	}{
		{`[]`, true},
		{"  \n\t[{\"id\":1}]", true},
		{`{"slides":[]}`, false},
		{``, false},
		{`   `, false},
	}

	for _, tt := range tests {
		if got := IsArray([]byte(tt.data)); got != tt.want {
			t.Errorf("IsArray(%q) = %v, want %v", tt.data, got, tt.want)
		}
	}
}
