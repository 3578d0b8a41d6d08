package acoustics_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAcoustics(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Acoustics Suite")
}
