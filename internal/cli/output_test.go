package cli

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{name: "text format", input: "text", want: OutputFormatText},
		{name: "json format", input: "json", want: OutputFormatJSON},
		{name: "empty string defaults to text", input: "", want: OutputFormatText},
		{name: "invalid format", input: "xml", want: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutputWriterWrite(t *testing.T) {
	t.Run("json mode encodes data", func(t *testing.T) {
		var buf bytes.Buffer
		o := &OutputWriter{format: OutputFormatJSON, writer: &buf}

		textCalled := false
		err := o.Write(map[string]int{"total": 3}, func() { textCalled = true })
		if err != nil {
			t.Fatal(err)
		}
		if textCalled {
			t.Error("text func must not run in JSON mode")
		}

		var decoded map[string]int
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded["total"] != 3 {
			t.Errorf("unexpected payload: %v", decoded)
		}
	})

	t.Run("text mode calls text func", func(t *testing.T) {
		var buf bytes.Buffer
		o := &OutputWriter{format: OutputFormatText, writer: &buf}

		textCalled := false
		if err := o.Write(nil, func() { textCalled = true }); err != nil {
			t.Fatal(err)
		}
		if !textCalled {
			t.Error("text func was not called")
		}
		if buf.Len() != 0 {
			t.Errorf("text mode must not write JSON, got %q", buf.String())
		}
	})
}
