package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.March, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-15"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateUnmarshalRFC3339(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15T10:30:00Z"`), &d))
	assert.Equal(t, "2026-03-15", d.Format("2006-01-02"))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 15, d.Day())

	require.NoError(t, d.Scan("2026-04-01"))
	assert.Equal(t, time.April, d.Month())

	assert.Error(t, d.Scan(12345))
}
