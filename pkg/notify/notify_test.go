package notify_test

import (
	"sync"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/khimalex/shoedryer/pkg/notify"
)

func TestNotify(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Notify Suite")
}

var _ = Describe("Notifier", func() {
	var n *notify.Notifier

	BeforeEach(func() {
		n = notify.New("test")
	})

	It("should deliver names in order to subscribers in registration order", func() {
		var got []string
		n.Subscribe(func(name string) { got = append(got, "a:"+name) })
		n.Subscribe(func(name string) { got = append(got, "b:"+name) })

		n.Notify("Status", "Result")

		Expect(got).To(Equal([]string{"a:Status", "b:Status", "a:Result", "b:Result"}))
	})

	It("should stop delivering after unsubscribe", func() {
		calls := 0
		unsubscribe := n.Subscribe(func(string) { calls++ })

		n.Notify("x")
		unsubscribe()
		unsubscribe()
		n.Notify("x")

		Expect(calls).To(Equal(1))
		Expect(n.Subscribers()).To(BeZero())
	})

	It("should keep delivering when a subscriber panics", func() {
		delivered := false
		n.Subscribe(func(string) { panic("bad subscriber") })
		n.Subscribe(func(string) { delivered = true })

		Expect(func() { n.Notify("x") }).NotTo(Panic())
		Expect(delivered).To(BeTrue())
	})

	It("should allow a subscriber to unsubscribe while being notified", func() {
		var unsubscribe func()
		calls := 0
		unsubscribe = n.Subscribe(func(string) {
			calls++
			unsubscribe()
		})

		n.Notify("x", "y")

		Expect(calls).To(Equal(2))
		Expect(n.Subscribers()).To(BeZero())
	})

	It("should be safe for concurrent use", func() {
		var mu sync.Mutex
		count := 0
		n.Subscribe(func(string) {
			mu.Lock()
			count++
			mu.Unlock()
		})

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				n.Notify("x")
			}()
		}
		wg.Wait()

		Expect(count).To(Equal(8))
	})
})
