package typestate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/typestate"
)

type emptySchema struct {
	typestate.Schema
}

func TestSchemaDefaults(t *testing.T) {
	var s typestate.Interface = emptySchema{}
	assert.Nil(t, s.Fields())
	assert.Equal(t, typestate.Config{}, s.Config())
}
