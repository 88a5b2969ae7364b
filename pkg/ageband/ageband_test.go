package ageband

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForAge(t *testing.T) {
	cases := []struct {
		age  int
		want Band
	}{
		{1, Younger},
		{7, Younger},
		{8, Middle},
		{11, Middle},
		{12, Older},
		{18, Older},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ForAge(tc.age), "age %d", tc.age)
	}
}

func TestValid(t *testing.T) {
	assert.False(t, Valid(0))
	assert.True(t, Valid(1))
	assert.True(t, Valid(18))
	assert.False(t, Valid(19))
	assert.False(t, Valid(-3))
}

func TestParse(t *testing.T) {
	for _, b := range []Band{Younger, Middle, Older} {
		parsed, err := Parse(string(b))
		assert.NoError(t, err)
		assert.Equal(t, b, parsed)
	}

	_, err := Parse("toddler")
	assert.Error(t, err)
}
