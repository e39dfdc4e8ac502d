package httpc_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvrplmlmn/mesos/httpc"
)

func requestAccepting(value string) httpc.Request {
	return httpc.Request{
		Headers: map[string]string{"Accept-Encoding": value},
	}
}

var _ = Describe("Request", func() {
	Describe("Accepts", func() {
		It("is false without an Accept-Encoding header", func() {
			Expect(httpc.Request{}.Accepts("gzip")).To(BeFalse())
		})

		It("accepts an explicitly listed encoding", func() {
			Expect(requestAccepting("gzip").Accepts("gzip")).To(BeTrue())
			Expect(requestAccepting("compress, gzip").Accepts("gzip")).To(BeTrue())
		})

		It("tolerates whitespace", func() {
			Expect(requestAccepting(" gzip , identity ").Accepts("gzip")).To(BeTrue())
		})

		It("accepts via the '*' wildcard", func() {
			Expect(requestAccepting("*").Accepts("gzip")).To(BeTrue())
		})

		It("rejects unlisted encodings", func() {
			Expect(requestAccepting("identity").Accepts("gzip")).To(BeFalse())
		})

		It("rejects a zero q value", func() {
			Expect(requestAccepting("gzip;q=0.0").Accepts("gzip")).To(BeFalse())
			Expect(requestAccepting("gzip;q=0").Accepts("gzip")).To(BeFalse())
		})

		It("accepts a positive q value", func() {
			Expect(requestAccepting("gzip;q=0.5").Accepts("gzip")).To(BeTrue())
		})

		It("accepts a malformed q value", func() {
			Expect(requestAccepting("gzip;q=high").Accepts("gzip")).To(BeFalse())
			Expect(requestAccepting("gzip;q=1;q=2").Accepts("gzip")).To(BeTrue())
		})
	})
})

var _ = Describe("StatusLine", func() {
	It("renders known codes", func() {
		Expect(httpc.StatusLine(200)).To(Equal("200 OK"))
		Expect(httpc.StatusLine(404)).To(Equal("404 Not Found"))
		Expect(httpc.StatusLine(503)).To(Equal("503 Service Unavailable"))
	})

	It("is empty for unknown codes", func() {
		Expect(httpc.StatusLine(418)).To(Equal(""))
	})
})
