package cmd

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		width   int
		height  int
		wantErr bool
	}{
		{in: "10x20", width: 10, height: 20},
		{in: "1200x800", width: 1200, height: 800},
		{in: "", wantErr: true},
		{in: "10", wantErr: true},
		{in: "10x", wantErr: true},
		{in: "x10", wantErr: true},
		{in: "10x20xy", wantErr: true},
		{in: "0.5x1.5", wantErr: true},
	}

	for _, tt := range tests {
		width, height, err := parseSize(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSize(%q) = %dx%d, want error", tt.in, width, height)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSize(%q): %v", tt.in, err)
			continue
		}
		if width != tt.width || height != tt.height {
			t.Errorf("parseSize(%q) = %dx%d, want %dx%d", tt.in, width, height, tt.width, tt.height)
		}
	}
}

func TestParseComplex(t *testing.T) {
	tests := []struct {
		in      string
		want    complex128
		wantErr bool
	}{
		{in: "0.0625,-0.0625", want: complex(0.0625, -0.0625)},
		{in: "-1.20,0.35", want: complex(-1.20, 0.35)},
		{in: "1,-1", want: complex(1, -1)},
		{in: "", wantErr: true},
		{in: ",-0.0625", wantErr: true},
		{in: "0.0625,", wantErr: true},
		{in: "1.0", wantErr: true},
		{in: "1.0,abc", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseComplex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseComplex(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseComplex(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseComplex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorizerFor(t *testing.T) {
	tests := []struct {
		name     string
		channels int
		wantErr  bool
	}{
		{name: "gray", channels: 1},
		{name: "rainbow", channels: 3},
		{name: "smooth", channels: 3},
		{name: "sepia", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		c, err := colorizerFor(tt.name, 255)
		if tt.wantErr {
			if err == nil {
				t.Errorf("colorizerFor(%q) succeeded, want error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("colorizerFor(%q): %v", tt.name, err)
			continue
		}
		if c.Channels() != tt.channels {
			t.Errorf("colorizerFor(%q).Channels() = %d, want %d", tt.name, c.Channels(), tt.channels)
		}
	}
}
