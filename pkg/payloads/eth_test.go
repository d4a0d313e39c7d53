package payloads

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResult(t *testing.T) {
	t.Run("new head push", func(t *testing.T) {
		var raw any
		require.NoError(t, json.Unmarshal([]byte(`{
			"number": "0x1b4",
			"hash": "0xdc0818cf78f21a8e70579cb46a43643f78291264dda342ae31049421c82d21ae",
			"parentHash": "0xe99e022112df268087ea7eafaf4790497fd21dbeeb6bd7a1721df161a6657a54",
			"gasLimit": "0x1388",
			"gasUsed": "0x0",
			"timestamp": "0x55ba467c",
			"extraData": "0x"
		}`), &raw))

		var head NewHead
		require.NoError(t, DecodeResult(raw, &head))
		assert.Equal(t, "0x1b4", head.Number)
		assert.Equal(t, "0x1388", head.GasLimit)
		assert.Equal(t, "0x55ba467c", head.Timestamp)
		assert.Empty(t, head.BaseFeePerGas)
	})

	t.Run("log push", func(t *testing.T) {
		var raw any
		require.NoError(t, json.Unmarshal([]byte(`{
			"address": "0x8320fe7702b96808f7bbc0d4a888ed1468216cfd",
			"topics": ["0xd78a0cb8bb633d06981248b816e7bd33c2a35a6089241d099fa519e361cab902"],
			"data": "0x0000000000000000000000000000000000000000000000000000000000000001",
			"blockNumber": "0x1e",
			"removed": false
		}`), &raw))

		var log Log
		require.NoError(t, DecodeResult(raw, &log))
		assert.Equal(t, "0x8320fe7702b96808f7bbc0d4a888ed1468216cfd", log.Address)
		assert.Len(t, log.Topics, 1)
		assert.False(t, log.Removed)
	})

	t.Run("weakly typed scalars", func(t *testing.T) {
		var raw any
		require.NoError(t, json.Unmarshal([]byte(`{"id": 12, "name": "node", "enabled": "true"}`), &raw))

		var out struct {
			ID      int    `json:"id"`
			Name    string `json:"name"`
			Enabled bool   `json:"enabled"`
		}
		require.NoError(t, DecodeResult(raw, &out))
		assert.Equal(t, 12, out.ID)
		assert.Equal(t, "node", out.Name)
		assert.True(t, out.Enabled)
	})

	t.Run("plain string result", func(t *testing.T) {
		var out string
		require.NoError(t, DecodeResult("0xcd0c3e8af590364c09d0fa6a1210faf5", &out))
		assert.Equal(t, "0xcd0c3e8af590364c09d0fa6a1210faf5", out)
	})

	t.Run("incompatible shape", func(t *testing.T) {
		var out []string
		err := DecodeResult(map[string]any{"a": 1}, &out)
		assert.Error(t, err)
	})
}
