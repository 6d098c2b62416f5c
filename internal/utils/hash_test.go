// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/go-filter-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func TestHasher_SumMatchesHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("test-data")

	sum1 := h.Sum(data)
	sum2 := h.Sum(data)
	require.NotEmpty(t, sum1)
	assert.Equal(t, sum1, sum2, "hash must be deterministic for the same input")

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	assert.Equal(t, mac.Sum(nil), sum1)
}

func TestHasher_CriteriaRecordBody(t *testing.T) {
	h := NewHasher(testHashKey)

	body, err := json.Marshal(models.CriteriaRecord{
		ViewName: "contacts",
		Criteria: models.Criteria{"name": []string{"Anna"}},
	})
	require.NoError(t, err)

	sig := h.HexSum(body)
	assert.Len(t, sig, sha256.Size*2)
	assert.True(t, h.Verify(body, sig))
	assert.Equal(t, HashString(string(body), testHashKey), sig)
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(testHashKey)
	body := []byte(`{"viewName":"contacts","criteria":{"a":1}}`)
	sig := h.HexSum(body)

	tests := []struct {
		name string
		data []byte
		sig  string
		want bool
	}{
		{name: "match", data: body, sig: sig, want: true},
		{name: "tampered body", data: []byte(`{"viewName":"contacts","criteria":{"a":2}}`), sig: sig, want: false},
		{name: "not hex", data: body, sig: "zz", want: false},
		{name: "empty signature", data: body, sig: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.data, tt.sig))
		})
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("same-data")
	assert.NotEqual(t, NewHasher("key-1").HexSum(data), NewHasher("key-2").HexSum(data))
}

func TestHasher_Enabled(t *testing.T) {
	var nilHasher *Hasher
	assert.False(t, nilHasher.Enabled())
	assert.False(t, NewHasher("").Enabled())
	assert.True(t, NewHasher("k").Enabled())
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.HexSum([]byte("payload"))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, want, h.HexSum([]byte("payload")))
			}
		}()
	}
	wg.Wait()
}
