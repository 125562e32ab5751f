package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPv4Lookup_Literales(t *testing.T) {
	l := ipv4Lookup{}

	addrs, err := l.LookupHost(context.Background(), "10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.7"}, addrs)

	_, err = l.LookupHost(context.Background(), "2001:db8::1")
	assert.ErrorIs(t, err, errNoIPv4)
}

func TestIPv4Lookup_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ipv4Lookup{}.LookupHost(ctx, "db.invalid")
	assert.Error(t, err)
}
