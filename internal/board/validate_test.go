package board

import (
	"errors"
	"testing"
)

func TestIsValidTile(t *testing.T) {
	valid := []int{0, 2, 4, 8, 16, 1024, 2048, 131072}
	invalid := []int{-2, 1, 3, 6, 12, 100, 2047}

	for _, v := range valid {
		if !IsValidTile(v) {
			t.Errorf("IsValidTile(%d) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if IsValidTile(v) {
			t.Errorf("IsValidTile(%d) = true, want false", v)
		}
	}
}

func TestFromRows(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]int
		wantErr error
	}{
		{
			name: "valid",
			rows: [][]int{{0, 0, 2, 2}, {0, 0, 0, 2}, {0, 0, 4, 4}, {0, 0, 0, 0}},
		},
		{
			name:    "too few rows",
			rows:    [][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			wantErr: ErrInvalidBoardShape,
		},
		{
			name:    "too many rows",
			rows:    [][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			wantErr: ErrInvalidBoardShape,
		},
		{
			name:    "short row",
			rows:    [][]int{{0, 0, 0, 0}, {0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			wantErr: ErrInvalidBoardShape,
		},
		{
			name:    "nil",
			rows:    nil,
			wantErr: ErrInvalidBoardShape,
		},
		{
			name:    "not a power of two",
			rows:    [][]int{{0, 0, 0, 0}, {0, 3, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			wantErr: ErrInvalidTile,
		},
		{
			name:    "one is not a tile",
			rows:    [][]int{{1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			wantErr: ErrInvalidTile,
		},
		{
			name:    "negative",
			rows:    [][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, -4}},
			wantErr: ErrInvalidTile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromRows(tt.rows)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromRows error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromRows error = %v", err)
			}
			if b != sample {
				t.Errorf("FromRows = \n%v\nwant\n%v", b, sample)
			}
		})
	}
}

func TestParse(t *testing.T) {
	inputs := []string{
		"0,0,2,2/0,0,0,2/0,0,4,4/0,0,0,0",
		"0 0 2 2; 0 0 0 2; 0 0 4 4; 0 0 0 0",
		". . 2 2\n. . . 2\n. . 4 4\n. . . .\n",
	}

	for _, in := range inputs {
		b, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", in, err)
			continue
		}
		if b != sample {
			t.Errorf("Parse(%q) =\n%v\nwant\n%v", in, b, sample)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "", want: ErrInvalidBoardShape},
		{in: "2,2,2,2/2,2,2,2", want: ErrInvalidBoardShape},
		{in: "2,2,2/2,2,2/2,2,2", want: ErrInvalidBoardShape},
		{in: "x,0,0,0/0,0,0,0/0,0,0,0/0,0,0,0", want: ErrInvalidTile},
		{in: "5,0,0,0/0,0,0,0/0,0,0,0/0,0,0,0", want: ErrInvalidTile},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	b := Board{
		{2, 4, 8, 16},
		{0, 0, 0, 0},
		{1024, 0, 2, 0},
		{0, 0, 0, 4},
	}

	got, err := Parse(b.String())
	if err != nil {
		t.Fatalf("Parse(String()) error: %v", err)
	}
	if got != b {
		t.Errorf("round trip =\n%v\nwant\n%v", got, b)
	}
}
