package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfcraft/pdfcraft/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		expr       string
		totalPages int
		want       Selection
		wantErr    bool
	}{
		{
			name:       "mixed ranges and singles",
			expr:       "1-3,5,7-9",
			totalPages: 10,
			want:       Selection{0, 1, 2, 4, 6, 7, 8},
		},
		{
			name:       "empty expression",
			expr:       "",
			totalPages: 5,
			wantErr:    true,
		},
		{
			name:       "single out of range",
			expr:       "99",
			totalPages: 5,
			wantErr:    true,
		},
		{
			name:       "inverted range contributes nothing",
			expr:       "2-1",
			totalPages: 5,
			wantErr:    true,
		},
		{
			name:       "range clamped to document",
			expr:       "3-99",
			totalPages: 5,
			want:       Selection{2, 3, 4},
		},
		{
			name:       "range starting below one is clamped",
			expr:       "0-2",
			totalPages: 5,
			want:       Selection{0, 1},
		},
		{
			name:       "mixed valid and invalid tokens keeps valid",
			expr:       "1,abc,3-x,99,2",
			totalPages: 5,
			want:       Selection{0, 1},
		},
		{
			name:       "order and duplicates preserved",
			expr:       "3,1,3,2-3",
			totalPages: 5,
			want:       Selection{2, 0, 2, 1, 2},
		},
		{
			name:       "whitespace tolerated",
			expr:       " 1 , 2 - 3 ",
			totalPages: 5,
			want:       Selection{0, 1, 2},
		},
		{
			name:       "zero page document",
			expr:       "1",
			totalPages: 0,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expr, tt.totalPages)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.ErrorTypeValidation, domain.TypeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNeverLeavesBounds(t *testing.T) {
	exprs := []string{"1-100", "0-0", "50,60-70", "1,2,3", "-5-3", "99-1"}
	for _, expr := range exprs {
		for total := 1; total <= 12; total++ {
			sel, err := Parse(expr, total)
			if err != nil {
				continue
			}
			for _, p := range sel {
				assert.GreaterOrEqual(t, p, 0, "expr %q total %d", expr, total)
				assert.Less(t, p, total, "expr %q total %d", expr, total)
			}
		}
	}
}

func TestSelectionOneBased(t *testing.T) {
	sel := Selection{2, 0, 2}
	assert.Equal(t, []string{"3", "1", "3"}, sel.OneBased())
}

func TestSelectionSet(t *testing.T) {
	sel := Selection{1, 3, 1}
	assert.Equal(t, map[int]bool{1: true, 3: true}, sel.Set())
}
