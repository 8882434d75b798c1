package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning time", input: "09:30"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid end of day", input: "23:59"},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minutes", input: "10:60", wantErr: true},
		{name: "with seconds", input: "10:00:00", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	minutes, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within day", func(t *testing.T) {
		end, err := TimeString("10:00").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:30"), end)
	})

	t.Run("crosses midnight", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(45)
		assert.Error(t, err)
	})

	t.Run("negative shift below zero", func(t *testing.T) {
		_, err := TimeString("00:30").AddMinutes(-60)
		assert.Error(t, err)
	})
}

func TestTimeString_Hour(t *testing.T) {
	assert.Equal(t, 9, TimeString("09:30").Hour())
	assert.Equal(t, 0, TimeString("bad").Hour())
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:30").IsAfter("09:15"))
}

func TestTimeString_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(TimeString("14:45"))
		require.NoError(t, err)
		assert.Equal(t, `"14:45"`, string(data))
	})

	t.Run("unmarshal valid", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, json.Unmarshal([]byte(`"08:15"`), &ts))
		assert.Equal(t, TimeString("08:15"), ts)
	})

	t.Run("unmarshal invalid", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &ts))
	})
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:30:00"))
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("09:00:00")))
		assert.Equal(t, TimeString("09:00"), ts)
	})

	t.Run("time value", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 16, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("16:45"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}
