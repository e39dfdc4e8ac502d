package httpc_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jvrplmlmn/mesos/common"
	"github.com/jvrplmlmn/mesos/httpc"
)

var _ = Describe("Query", func() {
	Context("decoding", func() {
		It("splits pairs on '&' and ';'", func() {
			q, err := httpc.DecodeQuery("a=1&b=2;c=3")
			Expect(err).To(BeNil())
			Expect(q).To(Equal(map[string]string{"a": "1", "b": "2", "c": "3"}))
		})

		It("maps valueless keys to the empty string", func() {
			q, err := httpc.DecodeQuery("full&verbose=1")
			Expect(err).To(BeNil())
			Expect(q).To(Equal(map[string]string{"full": "", "verbose": "1"}))
		})

		It("percent-decodes keys and values", func() {
			q, err := httpc.DecodeQuery("path=%2Ftmp%2Ffile&name=hello%20world")
			Expect(err).To(BeNil())
			Expect(q).To(Equal(map[string]string{
				"path": "/tmp/file",
				"name": "hello world",
			}))
		})

		It("splits only on the first '='", func() {
			q, err := httpc.DecodeQuery("expr=a%3Db")
			Expect(err).To(BeNil())
			Expect(q).To(Equal(map[string]string{"expr": "a=b"}))
		})

		It("rejects malformed escapes", func() {
			_, err := httpc.DecodeQuery("bad=%zz")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("encoding", func() {
		It("omits '=' for empty values", func() {
			Expect(httpc.EncodeQuery(map[string]string{"full": ""})).To(Equal("full"))
		})

		It("percent-encodes reserved characters", func() {
			Expect(httpc.EncodeQuery(map[string]string{"q": "a b&c"})).
				To(Equal("q=a%20b%26c"))
		})
	})

	Context("round trip", func() {
		It("preserves arbitrary key/value pairs", func() {
			for i := 0; i < 20; i++ {
				in := map[string]string{
					common.RandomString(8):             common.RandomString(16),
					"key with spaces & separators;=%":  common.RandomString(4),
					common.RandomString(4) + "/?#[]@!": "",
				}
				out, err := httpc.DecodeQuery(httpc.EncodeQuery(in))
				Expect(err).To(BeNil())
				Expect(out).To(Equal(in))
			}
		})
	})
})

var _ = Describe("Percent codec", func() {
	It("passes unreserved characters through", func() {
		s := "AZaz09-_.~"
		Expect(httpc.PercentEncode(s)).To(Equal(s))
	})

	It("escapes everything else as uppercase hex", func() {
		Expect(httpc.PercentEncode("a b/c")).To(Equal("a%20b%2Fc"))
	})

	It("decodes '+' as a space", func() {
		s, err := httpc.PercentDecode("a+b")
		Expect(err).To(BeNil())
		Expect(s).To(Equal("a b"))
	})

	It("rejects truncated escapes", func() {
		_, err := httpc.PercentDecode("abc%2")
		Expect(err).To(HaveOccurred())
	})

	It("round-trips arbitrary bytes", func() {
		in := "\x00\x01 %&=+\xff mixed TEXT 123"
		out, err := httpc.PercentDecode(httpc.PercentEncode(in))
		Expect(err).To(BeNil())
		Expect(out).To(Equal(in))
	})
})
