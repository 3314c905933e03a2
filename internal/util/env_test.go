package util

import (
	"os"
	"testing"

	"github.com/bmizerany/assert"
)

func TestGetenv(t *testing.T) {
	unset := SetEnv("test_foo", "bar")
	defer unset()

	assert.Equal(t, "bar", Getenv("test_foo", "default"))
	assert.Equal(t, "default", Getenv("test_missing", "default"))
}

func TestSetEnv(t *testing.T) {
	_, found := os.LookupEnv("test_foo")
	assert.T(t, !found)

	unset1 := SetEnv("test_foo", "bar")
	assert.Equal(t, "bar", os.Getenv("test_foo"))

	unset2 := SetEnv("test_foo", "bar2")
	assert.Equal(t, "bar2", os.Getenv("test_foo"))
	unset2()
	assert.Equal(t, "bar", os.Getenv("test_foo"))
	unset1()

	_, found = os.LookupEnv("test_foo")
	assert.T(t, !found)
}
