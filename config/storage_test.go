package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	url := ObjectURL("my-bucket", "recipes/abc.png")
	assert.Equal(t, "https://my-bucket.s3.amazonaws.com/recipes/abc.png", url)
}
