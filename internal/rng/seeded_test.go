package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSeeded_Intn(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(1)
	s2 := NewSeeded(1)

	for i := 0; i < 100; i++ {
		a.Equal(s1.Intn(52), s2.Intn(52))
	}

	s3 := NewSeeded(1)
	s4 := NewSeeded(2)
	same := true
	for i := 0; i < 100; i++ {
		if s3.Intn(52) != s4.Intn(52) {
			same = false
		}
	}
	a.False(same)
}
