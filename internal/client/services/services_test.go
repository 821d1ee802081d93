package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/bookswap/internal/client/cache"
)

type fakeGate struct {
	ready bool
	token string
}

func (f *fakeGate) Ready() bool   { return f.ready }
func (f *fakeGate) Token() string { return f.token }

func openGate() *fakeGate {
	return &fakeGate{ready: true, token: "tok"}
}

func newTestCache() *cache.Cache {
	return cache.New(256, time.Minute)
}

func TestGateEnabled(t *testing.T) {
	assert.ErrorIs(t, gateEnabled(&fakeGate{ready: false}), ErrSessionNotReady)
	assert.ErrorIs(t, gateEnabled(&fakeGate{ready: true, token: ""}), ErrNotSignedIn)
	assert.NoError(t, gateEnabled(openGate()))
}
