package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTargetHash(t *testing.T) {
	hash := ComputeTargetHash(
		"ws://127.0.0.1:10020",
		"http://127.0.0.1:8283",
		"0x0000000000000000000000000000000000000001",
	)
	assert.Equal(t, "cde13bf04ccf095c", hash)
	assert.Len(t, hash, 16)

	target := Target{
		AssetHub: "ws://127.0.0.1:10020",
		Bulletin: "http://127.0.0.1:8283",
		Registry: "0x0000000000000000000000000000000000000001",
	}
	assert.Equal(t, hash, target.Hash())
	assert.NotEqual(t, hash, ComputeTargetHash("ws://127.0.0.1:10020", "http://127.0.0.1:8283", "0x02"))
}
