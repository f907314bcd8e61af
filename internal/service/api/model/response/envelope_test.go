package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== Test Helpers =====

func freezeNow(t *testing.T, at time.Time) {
	t.Helper()

	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}

// ===== Tests =====

func TestSuccess(t *testing.T) {
	freezeNow(t, time.Date(2025, 1, 2, 12, 30, 0, 0, time.FixedZone("KST", 9*60*60)))

	env := Success(map[string]int{"a": 1})

	b, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"a":1},"error":null,"timestamp":"2025-01-02T03:30:00Z"}`, string(b))
}

func TestFailure(t *testing.T) {
	freezeNow(t, time.Date(2025, 1, 2, 3, 30, 0, 0, time.UTC))

	env := Failure("잘못된 JSON 형식입니다")

	b, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"data":null,"error":"잘못된 JSON 형식입니다","timestamp":"2025-01-02T03:30:00Z"}`, string(b))
}

func TestEnvelope_RawJSONPassThrough(t *testing.T) {
	body := json.RawMessage(`{"message":"hello","n":[1,2,3]}`)

	b, err := json.Marshal(Success(body))
	require.NoError(t, err)

	var decoded struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *string         `json:"error"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))

	assert.True(t, decoded.Success)
	assert.Nil(t, decoded.Error)
	assert.JSONEq(t, string(body), string(decoded.Data))
}

func TestTimestamp_RFC3339(t *testing.T) {
	ts := Success("x").Timestamp

	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err, ts)
}
