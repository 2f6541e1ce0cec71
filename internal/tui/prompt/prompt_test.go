package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/agetick/agetick/errors"
	"github.com/agetick/agetick/pkg/dob"
)

func TestFromStrings(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		time     string
		expected dob.Record
		wantErr  error
	}{
		{
			name:     "date and time",
			date:     "15/06/1990",
			time:     "08:30:15",
			expected: dob.Record{Day: 15, Month: 6, Year: 1990, Hour: 8, Minute: 30, Second: 15},
		},
		{
			name:     "blank time defaults to noon",
			date:     "29/02/2024",
			expected: dob.Record{Day: 29, Month: 2, Year: 2024, Hour: 12},
		},
		{
			name:    "malformed date",
			date:    "6/15/1990",
			time:    "08:30:15",
			wantErr: errUtils.ErrInvalidDate,
		},
		{
			name:    "nonexistent date",
			date:    "31/02/2001",
			wantErr: errUtils.ErrInvalidDate,
		},
		{
			name:    "out-of-range time",
			date:    "15/06/1990",
			time:    "12:60:00",
			wantErr: errUtils.ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromStrings(tt.date, tt.time)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errUtils.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, validateDate("01/01/2000"))
	assert.Error(t, validateDate(""))
	assert.Error(t, validateDate("2000-01-01"))
	assert.Error(t, validateDate("29/02/2023"))
}

func TestValidateTime(t *testing.T) {
	assert.NoError(t, validateTime(""))
	assert.NoError(t, validateTime("23:59:59"))
	assert.Error(t, validateTime("24:00:00"))
	assert.Error(t, validateTime("8:30"))
}
