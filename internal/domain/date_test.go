package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    Date
	}{
		{
			name:  "valid date",
			input: "2024-03-10",
			want:  NewDate(2024, time.March, 10),
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  NewDate(2024, time.February, 29),
		},
		{
			name:    "non-leap february 29",
			input:   "2023-02-29",
			wantErr: true,
		},
		{
			name:    "slash separators",
			input:   "2024/03/10",
			wantErr: true,
		},
		{
			name:    "missing zero padding",
			input:   "2024-3-1",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not a date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, got.IsZero())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	assert.Equal(t, "2024-03-05", d.String())

	assert.Equal(t, "", Date{}.String())
}

func TestDateIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, Today().IsZero())
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, time.March, 31)

	assert.Equal(t, NewDate(2024, time.April, 1), d.AddDays(1))
	assert.Equal(t, NewDate(2024, time.March, 30), d.AddDays(-1))

	// month arithmetic normalizes like time.AddDate
	assert.Equal(t, NewDate(2024, time.May, 1), d.AddMonths(1))
	assert.Equal(t, NewDate(2024, time.March, 1), NewDate(2024, time.February, 1).AddMonths(1))
}

func TestDateBefore(t *testing.T) {
	a := NewDate(2024, time.March, 10)
	b := NewDate(2024, time.March, 11)
	c := NewDate(2025, time.January, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestDateAsJSONKey(t *testing.T) {
	in := map[Date][]string{
		NewDate(2024, time.March, 10): {"task"},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2024-03-10": ["task"]}`, string(data))

	var out map[Date][]string
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestDateUnmarshalRejectsBadKey(t *testing.T) {
	var out map[Date][]string
	err := json.Unmarshal([]byte(`{"not-a-date": []}`), &out)
	assert.Error(t, err)
}

func TestMarshalZeroDate(t *testing.T) {
	_, err := Date{}.MarshalText()
	assert.Error(t, err)
}
