package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Presigning is computed locally, so it works without a reachable server.
func TestPresignedURLIsSignedForKey(t *testing.T) {
	client, err := newClient(MinioConfig{
		Endpoint:  "127.0.0.1:1",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Region:    "us-east-1",
	})
	require.NoError(t, err)
	s := &MinioStore{client: client, bucket: "product-images"}

	u, err := s.PresignedURL(context.Background(), "abc/img.png", time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "http://127.0.0.1:1/product-images/abc/img.png?"))
	assert.Contains(t, u, "X-Amz-Signature=")
	assert.Contains(t, u, "X-Amz-Expires=60")
}
