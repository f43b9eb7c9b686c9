package rvsdgdot_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRvsdgdot(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Rvsdgdot Suite")
}
