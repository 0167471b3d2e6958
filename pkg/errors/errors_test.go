package errors_test

import (
	"fmt"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/khimalex/shoedryer/pkg/errors"
)

func TestErrors(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Errors Suite")
}

var _ = Describe("Errors", func() {
	It("should detect wrapped errors", func() {
		err := fmt.Errorf("start: %w", srvErrors.NewGateViolationError("start"))

		Expect(srvErrors.IsGateViolationError(err)).To(BeTrue())
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeFalse())
	})

	It("should describe the offending values", func() {
		Expect(srvErrors.NewInvalidWorkerCountError(99, 8).Error()).To(ContainSubstring("99"))
		Expect(srvErrors.NewRunNotFoundError("abc").Error()).To(Equal(`run "abc" not found`))
	})

	It("should recognize a closed pool", func() {
		Expect(srvErrors.IsPoolClosedError(srvErrors.NewPoolClosedError())).To(BeTrue())
		Expect(srvErrors.IsPoolClosedError(srvErrors.NewInvalidWorkerCountError(1, 1))).To(BeFalse())
	})
})
