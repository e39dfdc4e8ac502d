package future_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvrplmlmn/mesos/future"
)

var errBoom = errors.New("boom")

var _ = Describe("Future", func() {
	Context("single assignment", func() {
		It("resolves with the first Set", func() {
			p := future.NewPromise[int]()
			Expect(p.Set(42)).To(BeTrue())
			Expect(p.Set(43)).To(BeFalse())
			Expect(p.Fail(errBoom)).To(BeFalse())

			v, err := p.Future().Result()
			Expect(err).To(BeNil())
			Expect(v).To(Equal(42))
		})

		It("resolves with the first Fail", func() {
			p := future.NewPromise[int]()
			Expect(p.Fail(errBoom)).To(BeTrue())
			Expect(p.Set(1)).To(BeFalse())

			_, err := p.Future().Result()
			Expect(err).To(MatchError(errBoom))
		})

		It("closes Done exactly when resolved", func() {
			p := future.NewPromise[string]()
			select {
			case <-p.Future().Done():
				Fail("future resolved before Set")
			default:
			}
			p.Set("ok")
			Eventually(p.Future().Done()).Should(BeClosed())
		})
	})

	Context("Await", func() {
		It("returns the value once resolved", func() {
			p := future.NewPromise[string]()
			go func() {
				time.Sleep(10 * time.Millisecond)
				p.Set("later")
			}()
			v, err := p.Future().Await(context.Background())
			Expect(err).To(BeNil())
			Expect(v).To(Equal("later"))
		})

		It("honors context cancellation", func() {
			p := future.NewPromise[string]()
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := p.Future().Await(ctx)
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Context("OnComplete", func() {
		It("runs callbacks registered before resolution", func() {
			p := future.NewPromise[int]()
			got := make(chan int, 1)
			p.Future().OnComplete(func(v int, err error) {
				got <- v
			})
			p.Set(7)
			Expect(<-got).To(Equal(7))
		})

		It("runs callbacks registered after resolution synchronously", func() {
			f := future.Value("done")
			var got string
			f.OnComplete(func(v string, err error) {
				got = v
			})
			Expect(got).To(Equal("done"))
		})
	})

	Context("chaining", func() {
		It("applies continuations in sequence", func() {
			f := future.Value(2)
			doubled := future.Then(f, func(v int) (int, error) {
				return v * 2, nil
			})
			asString := future.Then(doubled, func(v int) (string, error) {
				return fmt.Sprintf("%d", v), nil
			})
			v, err := asString.Result()
			Expect(err).To(BeNil())
			Expect(v).To(Equal("4"))
		})

		It("short-circuits on upstream failure", func() {
			f := future.Failed[int](errBoom)
			ran := false
			chained := future.Then(f, func(v int) (int, error) {
				ran = true
				return v, nil
			})
			_, err := chained.Result()
			Expect(err).To(MatchError(errBoom))
			Expect(ran).To(BeFalse())
		})

		It("fails the chain when a continuation errors", func() {
			f := future.Value(1)
			chained := future.Then(f, func(int) (int, error) {
				return 0, errBoom
			})
			_, err := chained.Result()
			Expect(err).To(MatchError(errBoom))
		})

		It("flattens asynchronous continuations", func() {
			p := future.NewPromise[int]()
			chained := future.ThenFuture(future.Value(10), func(v int) *future.Future[int] {
				go p.Set(v + 1)
				return p.Future()
			})
			v, err := chained.Result()
			Expect(err).To(BeNil())
			Expect(v).To(Equal(11))
		})
	})
})
