package product_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// Global test suite for product package.
type Suite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(Suite))
}
